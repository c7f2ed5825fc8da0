package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"
	"garage-backend/internal/repository"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BackupVersion is the document version written by Create and accepted by Restore
const BackupVersion = "1.0"

// BackupService exports and restores a tenant's cards, quotes and stock
type BackupService struct {
	cards   repository.CardRepositoryInterface
	quotes  repository.QuoteRepositoryInterface
	stock   repository.StockRepositoryInterface
	restore repository.BackupRepositoryInterface
}

// NewBackupService creates a new backup service
func NewBackupService(cards repository.CardRepositoryInterface, quotes repository.QuoteRepositoryInterface, stock repository.StockRepositoryInterface, restore repository.BackupRepositoryInterface) *BackupService {
	return &BackupService{
		cards:   cards,
		quotes:  quotes,
		stock:   stock,
		restore: restore,
	}
}

// BackupData holds the exported rows
type BackupData struct {
	Cards     []models.Card  `json:"cards"`
	Teklifler []models.Quote `json:"teklifler"`
	Stoklar   []models.Stock `json:"stoklar"`
}

// BackupDocument is the exported tenant snapshot
type BackupDocument struct {
	TenantID  int64      `json:"tenant_id"`
	Timestamp string     `json:"timestamp"`
	Version   string     `json:"version"`
	Data      BackupData `json:"data"`
}

// RestoreCounts reports how many rows of each kind were inserted
type RestoreCounts struct {
	Cards     int `json:"cards"`
	Teklifler int `json:"teklifler"`
	Stoklar   int `json:"stoklar"`
}

// RestoreResponse wraps RestoreCounts
type RestoreResponse struct {
	Restored RestoreCounts `json:"restored"`
}

// BackupInfo describes a stored backup. Nothing is stored server side so lists are always empty.
type BackupInfo struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Create exports the tenant's data
func (s *BackupService) Create(ctx context.Context, tenantID int64) (*BackupDocument, error) {
	cards, err := s.cards.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to export cards: %w", err)
	}
	quotes, err := s.quotes.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to export quotes: %w", err)
	}
	stock, err := s.stock.GetAll(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to export stock: %w", err)
	}

	doc := &BackupDocument{
		TenantID:  tenantID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   BackupVersion,
		Data: BackupData{
			Cards:     nonNil(cards),
			Teklifler: nonNil(quotes),
			Stoklar:   nonNil(stock),
		},
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"cards":     len(doc.Data.Cards),
		"teklifler": len(doc.Data.Teklifler),
		"stoklar":   len(doc.Data.Stoklar),
	}).Info("Backup created")
	return doc, nil
}

// Restore validates payload against the backup schema and inserts its rows
// under tenantID. Ids and the tenant id in the document are ignored.
func (s *BackupService) Restore(ctx context.Context, tenantID int64, payload []byte) (*RestoreResponse, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, apperrors.ErrRestoreDocumentEmpty
	}
	if err := validateBackupDocument(payload); err != nil {
		var schemaErr *jsonschema.ValidationError
		if errors.As(err, &schemaErr) {
			return nil, apperrors.NewValidationError("document", schemaErr.Error())
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, apperrors.NewValidationError("document", "malformed JSON")
		}
		return nil, fmt.Errorf("failed to validate backup: %w", err)
	}

	var doc BackupDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, apperrors.NewValidationError("document", err.Error())
	}
	if doc.Version != "" && doc.Version != BackupVersion {
		return nil, apperrors.ErrBackupDocumentUnsupported
	}

	now := time.Now()
	for i := range doc.Data.Cards {
		detachStock(doc.Data.Cards[i].Yapilanlar)
	}
	for i := range doc.Data.Teklifler {
		detachStock(doc.Data.Teklifler[i].Yapilanlar)
	}
	for i := range doc.Data.Stoklar {
		item := &doc.Data.Stoklar[i]
		if item.EklenisTarihi.IsZero() {
			item.EklenisTarihi = now
		}
		if item.MinStokSeviyesi == nil {
			level := models.DefaultMinStockLevel
			item.MinStokSeviyesi = &level
		}
	}

	if err := s.restore.Restore(tenantID, doc.Data.Cards, doc.Data.Teklifler, doc.Data.Stoklar); err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	counts := RestoreCounts{
		Cards:     len(doc.Data.Cards),
		Teklifler: len(doc.Data.Teklifler),
		Stoklar:   len(doc.Data.Stoklar),
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"cards":     counts.Cards,
		"teklifler": counts.Teklifler,
		"stoklar":   counts.Stoklar,
	}).Info("Backup restored")
	return &RestoreResponse{Restored: counts}, nil
}

// List returns the stored backups
func (s *BackupService) List(ctx context.Context, tenantID int64) ([]BackupInfo, error) {
	return []BackupInfo{}, nil
}

// detachStock drops stock references because restored stock rows get new ids
func detachStock(items []models.WorkItem) {
	for i := range items {
		items[i].StockID = nil
		items[i].IsFromStock = false
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
