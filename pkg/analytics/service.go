package analytics

import (
	"gorm.io/gorm"
)

// Service answers aggregation queries over the transaction ledger.
type Service struct {
	db *gorm.DB
}

// New returns an analytics service reading from the given database handle.
func New(db *gorm.DB) *Service {
	return &Service{db: db}
}
