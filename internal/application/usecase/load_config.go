// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/relationship"
	"github.com/bnema/clonecfg/internal/logging"
)

// LoadConfigUseCase loads a configuration and prepares it for editing.
type LoadConfigUseCase struct {
	source   port.ConfigSource
	analyzer *relationship.Analyzer
	tables   *entity.Tables
	now      func() time.Time
}

// NewLoadConfigUseCase creates a new LoadConfigUseCase.
func NewLoadConfigUseCase(
	source port.ConfigSource,
	analyzer *relationship.Analyzer,
	tables *entity.Tables,
) *LoadConfigUseCase {
	return &LoadConfigUseCase{
		source:   source,
		analyzer: analyzer,
		tables:   tables,
		now:      time.Now,
	}
}

// LoadConfigInput contains the save target carried by the session.
type LoadConfigInput struct {
	PackageName string
	SplitCount  int // zero means entity.DefaultSplitCount
}

// LoadConfigOutput contains the prepared session.
type LoadConfigOutput struct {
	Session *entity.EditSession
	// Seeded lists "category.key" entries added with composite defaults.
	Seeded []string
}

// Execute loads, snapshots, seeds and analyzes the configuration.
// The original snapshot is taken before seeding so it reflects the input exactly.
func (uc *LoadConfigUseCase) Execute(ctx context.Context, input LoadConfigInput) (*LoadConfigOutput, error) {
	log := logging.FromContext(ctx)

	cfg, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from %s: %w", uc.source.Location(), err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: source returned no configuration", entity.ErrMalformedConfiguration)
	}

	original := cfg.Clone()
	seeded := seedComposites(cfg, uc.tables)

	index, err := uc.analyzer.Analyze(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze configuration: %w", err)
	}

	splitCount := input.SplitCount
	if splitCount <= 0 {
		splitCount = entity.DefaultSplitCount
	}

	log.Debug().
		Int("categories", len(cfg.Categories())).
		Int("keys", cfg.KeyCount()).
		Int("parents", len(index.ParentKeys())).
		Int("children", len(index.ChildKeys())).
		Strs("seeded", seeded).
		Msg("configuration loaded")

	return &LoadConfigOutput{
		Session: &entity.EditSession{
			Current:     cfg,
			Original:    original,
			Index:       index,
			PackageName: input.PackageName,
			SplitCount:  splitCount,
			LoadedAt:    uc.now(),
		},
		Seeded: seeded,
	}, nil
}

// seedComposites adds every missing composite toggle (as false) and member
// (at its default) so the editor always has the full unit to work with.
func seedComposites(cfg *entity.Configuration, tables *entity.Tables) []string {
	var seeded []string
	for _, group := range tables.Composites {
		category := cfg.EnsureCategory(group.Category)
		if !category.Has(group.Key) {
			category.Set(group.Key, entity.Bool(false))
			seeded = append(seeded, group.Category+"."+group.Key)
		}
		for _, m := range group.Members {
			if category.Has(m.Key) {
				continue
			}
			category.Set(m.Key, entity.Clone(m.Default))
			seeded = append(seeded, group.Category+"."+m.Key)
		}
	}
	return seeded
}
