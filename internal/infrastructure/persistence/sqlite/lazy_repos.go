package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/repository"
)

// LazySaveHistoryRepository resolves its database on the first call.
type LazySaveHistoryRepository struct {
	provider port.DatabaseProvider
	repo     repository.SaveHistoryRepository
	once     sync.Once
	initErr  error
}

// NewLazySaveHistoryRepository wraps provider.
func NewLazySaveHistoryRepository(provider port.DatabaseProvider) repository.SaveHistoryRepository {
	return &LazySaveHistoryRepository{provider: provider}
}

func (r *LazySaveHistoryRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSaveHistoryRepository(db)
	})
	return r.initErr
}

func (r *LazySaveHistoryRepository) Save(ctx context.Context, record *entity.SaveRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, record)
}

func (r *LazySaveHistoryRepository) GetRecent(ctx context.Context, limit int) ([]*entity.SaveRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetRecent(ctx, limit)
}

func (r *LazySaveHistoryRepository) GetLatest(ctx context.Context, packageName string) (*entity.SaveRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetLatest(ctx, packageName)
}

func (r *LazySaveHistoryRepository) DeleteOlderThanKeep(ctx context.Context, keepCount int) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteOlderThanKeep(ctx, keepCount)
}
