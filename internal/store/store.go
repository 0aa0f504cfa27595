package store

import (
	"context"
	"errors"

	"scanintake/internal/domain"

	"gorm.io/gorm"
)

// ErrInvalidRecord marks a record the storage layer refuses to persist.
// Callers validate before inserting; this is a defense-in-depth check.
var ErrInvalidRecord = errors.New("invalid record")

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// Init ensures the schema exists. It is idempotent and safe to run on
// every process start; existing rows are untouched.
func (s *Store) Init(ctx context.Context) error {
	return s.DB.WithContext(ctx).AutoMigrate(&domain.ScanRecord{})
}

func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}
