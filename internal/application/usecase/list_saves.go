package usecase

import (
	"context"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/repository"
	"github.com/bnema/clonecfg/internal/logging"
)

const defaultSaveListLimit = 20

// ListSavesUseCase lists the save history, newest first.
type ListSavesUseCase struct {
	repo repository.SaveHistoryRepository
}

// NewListSavesUseCase creates a new ListSavesUseCase.
func NewListSavesUseCase(repo repository.SaveHistoryRepository) *ListSavesUseCase {
	return &ListSavesUseCase{repo: repo}
}

// ListSavesInput filters the listing.
type ListSavesInput struct {
	PackageName string // empty lists every package
	Limit       int
	// LatestOnly returns only the newest save of PackageName.
	LatestOnly bool
}

// ListSavesOutput contains matching saves.
type ListSavesOutput struct {
	Saves []*entity.SaveRecord
}

// Execute returns up to Limit recent saves. A package filter is applied
// after the limit.
func (uc *ListSavesUseCase) Execute(ctx context.Context, input ListSavesInput) (*ListSavesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSaveListLimit
	}

	if input.LatestOnly && input.PackageName != "" {
		latest, err := uc.repo.GetLatest(ctx, input.PackageName)
		if err != nil {
			return nil, err
		}
		if latest == nil {
			return &ListSavesOutput{}, nil
		}
		return &ListSavesOutput{Saves: []*entity.SaveRecord{latest}}, nil
	}

	saves, err := uc.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if input.PackageName != "" {
		filtered := saves[:0]
		for _, s := range saves {
			if s.PackageName == input.PackageName {
				filtered = append(filtered, s)
			}
		}
		saves = filtered
	}

	logging.FromContext(ctx).Debug().Int("count", len(saves)).Msg("listed saves")
	return &ListSavesOutput{Saves: saves}, nil
}

// PruneSavesUseCase trims the save history.
type PruneSavesUseCase struct {
	repo repository.SaveHistoryRepository
}

// NewPruneSavesUseCase creates a new PruneSavesUseCase.
func NewPruneSavesUseCase(repo repository.SaveHistoryRepository) *PruneSavesUseCase {
	return &PruneSavesUseCase{repo: repo}
}

// Execute keeps the newest keepCount saves per package and returns how many were deleted.
func (uc *PruneSavesUseCase) Execute(ctx context.Context, keepCount int) (int64, error) {
	if keepCount < 0 {
		keepCount = 0
	}
	deleted, err := uc.repo.DeleteOlderThanKeep(ctx, keepCount)
	if err != nil {
		return 0, err
	}
	logging.FromContext(ctx).Info().Int64("deleted", deleted).Int("keep", keepCount).Msg("pruned save history")
	return deleted, nil
}
