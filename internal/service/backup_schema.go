package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const backupSchemaURL = "memory://schemas/backup/1.0"

// backupSchema describes an exported tenant document. Unknown properties are
// allowed so documents from newer exports still restore.
const backupSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["data"],
  "properties": {
    "tenant_id": {"type": "integer"},
    "timestamp": {"type": "string"},
    "version": {"type": "string"},
    "data": {
      "type": "object",
      "properties": {
        "cards": {"type": "array", "items": {"$ref": "#/definitions/vehicle"}},
        "teklifler": {"type": "array", "items": {"$ref": "#/definitions/vehicle"}},
        "stoklar": {"type": "array", "items": {"$ref": "#/definitions/stock"}}
      }
    }
  },
  "definitions": {
    "nullableString": {"type": ["string", "null"]},
    "nullableInteger": {"type": ["integer", "null"]},
    "vehicle": {
      "type": "object",
      "properties": {
        "adSoyad": {"$ref": "#/definitions/nullableString"},
        "telNo": {"$ref": "#/definitions/nullableString"},
        "markaModel": {"$ref": "#/definitions/nullableString"},
        "plaka": {"$ref": "#/definitions/nullableString"},
        "km": {"$ref": "#/definitions/nullableInteger"},
        "modelYili": {"$ref": "#/definitions/nullableInteger"},
        "sasi": {"$ref": "#/definitions/nullableString"},
        "renk": {"$ref": "#/definitions/nullableString"},
        "girisTarihi": {"$ref": "#/definitions/nullableString"},
        "notlar": {"$ref": "#/definitions/nullableString"},
        "adres": {"$ref": "#/definitions/nullableString"},
        "odemeAlindi": {"type": ["boolean", "null"]},
        "periyodikBakim": {"type": ["boolean", "null"]},
        "yapilanlar": {"type": ["array", "null"], "items": {"$ref": "#/definitions/workItem"}}
      }
    },
    "workItem": {
      "type": "object",
      "required": ["parcaAdi"],
      "properties": {
        "birimAdedi": {"type": "integer", "minimum": 0},
        "parcaAdi": {"type": "string", "maxLength": 255},
        "birimFiyati": {"type": "integer", "minimum": 0},
        "toplamFiyat": {"type": "integer", "minimum": 0},
        "isFromStock": {"type": ["boolean", "null"]}
      }
    },
    "stock": {
      "type": "object",
      "required": ["stokAdi", "adet"],
      "properties": {
        "stokAdi": {"type": "string", "minLength": 1, "maxLength": 255},
        "adet": {"type": "integer", "minimum": 0},
        "info": {"$ref": "#/definitions/nullableString"},
        "eklenisTarihi": {"type": ["string", "null"], "format": "date-time"},
        "kategori": {"$ref": "#/definitions/nullableString"},
        "minStokSeviyesi": {"$ref": "#/definitions/nullableInteger"}
      }
    }
  }
}`

var (
	backupSchemaOnce     sync.Once
	backupSchemaCompiled *jsonschema.Schema
	backupSchemaErr      error
)

func compiledBackupSchema() (*jsonschema.Schema, error) {
	backupSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(backupSchemaURL, strings.NewReader(backupSchema)); err != nil {
			backupSchemaErr = fmt.Errorf("register backup schema: %w", err)
			return
		}
		backupSchemaCompiled, backupSchemaErr = compiler.Compile(backupSchemaURL)
	})
	return backupSchemaCompiled, backupSchemaErr
}

// validateBackupDocument checks payload against the backup schema. The returned
// error is a *jsonschema.ValidationError for schema violations.
func validateBackupDocument(payload []byte) error {
	schema, err := compiledBackupSchema()
	if err != nil {
		return err
	}

	var document interface{}
	if err := json.Unmarshal(payload, &document); err != nil {
		return err
	}
	return schema.Validate(document)
}
