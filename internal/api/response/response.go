package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string                 `json:"error" example:"card not found"`
	Fields []apperrors.FieldError `json:"fields,omitempty"`
}

// Status maps an application error onto its HTTP status code
func Status(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as JSON and aborts the request
func Error(c *gin.Context, err error) {
	status := Status(err)
	body := ErrorResponse{Error: err.Error()}

	if verr, ok := apperrors.AsValidation(err); ok {
		body.Fields = verr.Details()
	}

	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error("request failed")
		body.Error = "internal server error"
	}

	c.AbortWithStatusJSON(status, body)
}

// BadRequest reports a malformed request that never reached validation
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// BindJSON decodes the request body into req. It answers 400 and returns
// false when the body is not valid JSON. A value of the wrong JSON type is
// reported against its field like any other validation failure.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			Error(c, apperrors.NewValidationError(typeField(typeErr), "must be "+typeName(typeErr.Type)))
			return false
		}
		BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func typeField(err *json.UnmarshalTypeError) string {
	if err.Field == "" {
		return "body"
	}
	return err.Field
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a " + t.String()
	}
}
