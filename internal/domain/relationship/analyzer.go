// Package relationship infers the parent/child hierarchy hidden in a flat
// settings configuration.
//
// The format stores dependent settings as independent keys. They are tied to
// their parent toggle by record shape, by camel-case naming, by a prefix alias
// table or by an explicit group table. Each of these is a Strategy; the
// Analyzer runs them per category and accumulates every claim into one index.
package relationship

import (
	"fmt"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// Strategy registers parent/child links found in one category.
type Strategy interface {
	Name() string
	Infer(category *entity.Category, index *entity.RelationshipIndex)
}

// Preparer is implemented by strategies that add missing keys to a category.
// Prepare runs for every preparer before any strategy infers links, so a
// second analysis of the same configuration sees the same keys as the first.
// It returns the keys it added.
type Preparer interface {
	Prepare(category *entity.Category) []string
}

// Analyzer builds a RelationshipIndex from a configuration.
type Analyzer struct {
	strategies []Strategy
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStrategies replaces the default strategy list.
func WithStrategies(strategies ...Strategy) Option {
	return func(a *Analyzer) {
		a.strategies = strategies
	}
}

// NewAnalyzer creates an analyzer running the default strategies built from
// tables, in order: structural, naming, prefix alias, explicit group,
// placeholder.
func NewAnalyzer(tables *entity.Tables, opts ...Option) (*Analyzer, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{strategies: DefaultStrategies(tables)}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// DefaultStrategies returns the built-in inference rules in resolution order.
func DefaultStrategies(tables *entity.Tables) []Strategy {
	return []Strategy{
		StructuralRule{},
		NamingRule{},
		PrefixAliasRule{Aliases: tables.PrefixAliases},
		ExplicitGroupRule{Groups: tables.ExplicitGroups},
		PlaceholderRule{},
	}
}

// Analyze infers the relationship index of cfg. Missing explicit-group parents
// are written into cfg.
func (a *Analyzer) Analyze(cfg *entity.Configuration) (*entity.RelationshipIndex, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration is nil", entity.ErrMalformedConfiguration)
	}

	index := entity.NewRelationshipIndex()
	for _, category := range cfg.Categories() {
		for _, s := range a.strategies {
			if p, ok := s.(Preparer); ok {
				p.Prepare(category)
			}
		}
		for _, s := range a.strategies {
			s.Infer(category, index)
		}
	}
	return index, nil
}
