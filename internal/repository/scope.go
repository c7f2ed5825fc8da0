package repository

import (
	"encoding/json"

	"gorm.io/gorm"
)

// tenantScope restricts a query to rows owned by tenantID. Every tenant-owned
// read, update and delete goes through it.
func tenantScope(tenantID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// orderedWorkItems preloads work items in insertion order
func orderedWorkItems(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// affected turns a zero-row write into gorm.ErrRecordNotFound so callers can
// treat "missing" and "owned by another tenant" the same way.
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// encodeJSONColumns rewrites list values of jsonb columns in a map update.
// Map updates bypass the field serializer, so the value is cast explicitly.
func encodeJSONColumns(updates map[string]interface{}, columns ...string) error {
	for _, column := range columns {
		v, ok := updates[column]
		if !ok {
			continue
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		updates[column] = gorm.Expr("?::jsonb", string(b))
	}
	return nil
}
