package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "garage-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports JSON field names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the validator and converts violations into a field level ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return validationError(err, "")
	}
	return nil
}

// validateEach validates every element of a slice, prefixing field names with the element index
func validateEach[T any](v *validator.Validate, prefix string, items []T) error {
	var fields []apperrors.FieldError
	for i := range items {
		if err := v.Struct(&items[i]); err != nil {
			verr, ok := apperrors.AsValidation(validationError(err, fmt.Sprintf("%s[%d].", prefix, i)))
			if !ok {
				return err
			}
			fields = append(fields, verr.Fields...)
		}
	}
	if len(fields) > 0 {
		return apperrors.NewFieldsValidationError(fields)
	}
	return nil
}

func validationError(err error, prefix string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("", err.Error())
	}
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   prefix + fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return apperrors.NewFieldsValidationError(fields)
}

// fieldPath drops the root struct and embedded struct names from the namespace,
// so CreateCardRequest.VehicleInput.plaka becomes plaka. JSON names here are lower camel case.
func fieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")
	kept := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i == 0 || seg == "" {
			continue
		}
		if c := seg[0]; c >= 'A' && c <= 'Z' {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// ValidateRequest validates a request DTO owned by another package
func ValidateRequest(v *validator.Validate, req interface{}) error {
	return validateStruct(v, req)
}
