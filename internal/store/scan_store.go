package store

import (
	"context"
	"fmt"
	"strings"

	"scanintake/internal/domain"

	"gorm.io/gorm"
)

type ScanStore struct{ db *gorm.DB }

func (s *Store) Scans() *ScanStore { return &ScanStore{db: s.DB} }

// Insert appends a new record and assigns its id. The caller computes
// CreatedAt; the store only refuses records that would violate the table's
// own constraints.
func (sc *ScanStore) Insert(ctx context.Context, rec *domain.ScanRecord) error {
	if strings.TrimSpace(rec.Employee) == "" {
		return fmt.Errorf("%w: employee must not be empty", ErrInvalidRecord)
	}
	if rec.CreatedAt == "" {
		return fmt.Errorf("%w: created_at must be set", ErrInvalidRecord)
	}
	return sc.db.WithContext(ctx).Create(rec).Error
}

// ListAll returns records newest first. A non-empty employee restricts the
// result to exact matches; no match yields an empty slice, not an error.
func (sc *ScanStore) ListAll(ctx context.Context, employee string) ([]domain.ScanRecord, error) {
	tx := sc.db.WithContext(ctx).Order("created_at DESC")
	if employee != "" {
		tx = tx.Where("employee = ?", employee)
	}
	var recs []domain.ScanRecord
	if err := tx.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListChronological returns every record oldest first, for export.
func (sc *ScanStore) ListChronological(ctx context.Context) ([]domain.ScanRecord, error) {
	var recs []domain.ScanRecord
	if err := sc.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
