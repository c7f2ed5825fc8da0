package service

import (
	"context"
	"fmt"
	"time"

	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"
)

const (
	DefaultCardArchiveDays = 365
	DefaultLogArchiveDays  = 90
)

// ArchiveService reports stale cards and prunes old activity logs
type ArchiveService struct {
	cards repository.CardRepositoryInterface
	logs  *ActivityLogService
}

// NewArchiveService creates a new archive service
func NewArchiveService(cards repository.CardRepositoryInterface, logs *ActivityLogService) *ArchiveService {
	return &ArchiveService{
		cards: cards,
		logs:  logs,
	}
}

// ArchiveCardsResponse reports how many cards are older than the cutoff
type ArchiveCardsResponse struct {
	Archived int    `json:"archived"`
	Message  string `json:"message"`
}

// ArchiveLogsResponse reports how many log rows were removed
type ArchiveLogsResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// ArchiveCards counts the tenant's cards whose girisTarihi lies before now minus daysOld.
// Cards with an unparseable date are skipped.
func (s *ArchiveService) ArchiveCards(ctx context.Context, tenantID int64, daysOld int) (*ArchiveCardsResponse, error) {
	if daysOld <= 0 {
		return nil, apperrors.ErrArchiveDaysInvalid
	}

	dates, err := s.cards.EntryDates(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card dates: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -daysOld)
	archived := 0
	for _, d := range dates {
		entered, err := parseDate(d)
		if err != nil {
			continue
		}
		if entered.Before(cutoff) {
			archived++
		}
	}

	return &ArchiveCardsResponse{
		Archived: archived,
		Message:  fmt.Sprintf("%d günden eski %d kart bulundu", daysOld, archived),
	}, nil
}

// ArchiveLogs deletes the tenant's activity log rows older than daysOld
func (s *ArchiveService) ArchiveLogs(ctx context.Context, tenantID int64, daysOld int) (*ArchiveLogsResponse, error) {
	if daysOld <= 0 {
		return nil, apperrors.ErrArchiveDaysInvalid
	}

	deleted, err := s.logs.Prune(ctx, tenantID, daysOld)
	if err != nil {
		return nil, err
	}
	return &ArchiveLogsResponse{
		Deleted: deleted,
		Message: fmt.Sprintf("%d günden eski %d log kaydı silindi", daysOld, deleted),
	}, nil
}
