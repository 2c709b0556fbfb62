package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/repository"
	"github.com/bnema/clonecfg/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/clonecfg/internal/logging"
)

type saveRepo struct {
	queries *sqlc.Queries
	now     func() time.Time
}

// NewSaveHistoryRepository creates a SQLite-backed save history.
func NewSaveHistoryRepository(db *sql.DB) repository.SaveHistoryRepository {
	return &saveRepo{queries: sqlc.New(db), now: time.Now}
}

// PayloadDigest is the hex BLAKE2b-256 of payload.
func PayloadDigest(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func (r *saveRepo) Save(ctx context.Context, record *entity.SaveRecord) error {
	if record == nil {
		return fmt.Errorf("save record cannot be nil")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now()
	}
	record.Digest = PayloadDigest(record.Payload)

	payload := record.Payload
	if payload == nil {
		payload = []byte{}
	}

	id, err := r.queries.InsertSave(ctx, sqlc.InsertSaveParams{
		PackageName: record.PackageName,
		Destination: record.Destination,
		Digest:      record.Digest,
		KeyCount:    int64(record.KeyCount),
		Payload:     payload,
		CreatedAt:   record.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}
	record.ID = id

	logging.FromContext(ctx).Debug().
		Int64("id", id).
		Str("package", record.PackageName).
		Str("digest", record.Digest[:12]).
		Msg("save recorded")
	return nil
}

func (r *saveRepo) GetRecent(ctx context.Context, limit int) ([]*entity.SaveRecord, error) {
	if limit <= 0 {
		return []*entity.SaveRecord{}, nil
	}
	rows, err := r.queries.ListRecentSaves(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	records := make([]*entity.SaveRecord, 0, len(rows))
	for i := range rows {
		records = append(records, saveFromRow(rows[i]))
	}
	return records, nil
}

func (r *saveRepo) GetLatest(ctx context.Context, packageName string) (*entity.SaveRecord, error) {
	row, err := r.queries.GetLatestSave(ctx, packageName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return saveFromRow(row), nil
}

func (r *saveRepo) DeleteOlderThanKeep(ctx context.Context, keepCount int) (int64, error) {
	if keepCount < 0 {
		keepCount = 0
	}
	return r.queries.DeleteSavesBeyondKeep(ctx, int64(keepCount))
}

func saveFromRow(row sqlc.SaveRecord) *entity.SaveRecord {
	return &entity.SaveRecord{
		ID:          row.ID,
		PackageName: row.PackageName,
		Destination: row.Destination,
		Digest:      row.Digest,
		KeyCount:    int(row.KeyCount),
		Payload:     row.Payload,
		CreatedAt:   time.UnixMilli(row.CreatedAt),
	}
}
