// Package repository declares persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// SaveHistoryRepository persists every flattened payload that was handed to a sink.
type SaveHistoryRepository interface {
	// Save stores the record and fills in its ID, Digest and CreatedAt.
	Save(ctx context.Context, record *entity.SaveRecord) error
	GetRecent(ctx context.Context, limit int) ([]*entity.SaveRecord, error)

	// GetLatest returns the newest save for packageName, or nil when none exists.
	GetLatest(ctx context.Context, packageName string) (*entity.SaveRecord, error)

	// DeleteOlderThanKeep keeps the newest keepCount saves per package.
	// Returns number of deleted saves.
	DeleteOlderThanKeep(ctx context.Context, keepCount int) (int64, error)
}
