package usecase

import (
	"context"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/summary"
	"github.com/bnema/clonecfg/internal/logging"
)

// SettingRole is the position of a setting in the inferred hierarchy.
type SettingRole string

const (
	RoleParent SettingRole = "parent"
	RoleChild  SettingRole = "child"
	RoleLeaf   SettingRole = "leaf"
)

// SettingView is one row of a described session.
type SettingView struct {
	Category string
	Key      string
	Kind     entity.Kind
	Role     SettingRole
	Parents  []string
	Children []string
	Summary  string
}

// DescribeSessionUseCase lists settings with their role and summary text.
type DescribeSessionUseCase struct {
	tables *entity.Tables
}

// NewDescribeSessionUseCase creates a new DescribeSessionUseCase.
func NewDescribeSessionUseCase(tables *entity.Tables) *DescribeSessionUseCase {
	return &DescribeSessionUseCase{tables: tables}
}

// DescribeSessionInput selects what to describe.
type DescribeSessionInput struct {
	Session  *entity.EditSession
	Category string // empty describes every category
}

// DescribeSessionOutput contains rows in configuration order.
type DescribeSessionOutput struct {
	Settings    []SettingView
	ParentCount int
	ChildCount  int
}

// Execute builds the view. A key both parent and child is reported as parent.
func (uc *DescribeSessionUseCase) Execute(ctx context.Context, input DescribeSessionInput) (*DescribeSessionOutput, error) {
	if input.Session == nil || input.Session.Current == nil {
		return nil, ErrNoSession
	}
	index := input.Session.Index

	out := &DescribeSessionOutput{}
	for _, category := range input.Session.Current.Categories() {
		if input.Category != "" && category.Name() != input.Category {
			continue
		}
		log := logging.FromContext(logging.WithCategory(ctx, category.Name()))
		parents, children := out.ParentCount, out.ChildCount
		for _, key := range category.Keys() {
			value, _ := category.Get(key)
			view := SettingView{
				Category: category.Name(),
				Key:      key,
				Kind:     value.Kind(),
				Role:     RoleLeaf,
				Summary:  summary.Text(uc.tables, category, key, value),
			}
			if index.IsChild(key) {
				view.Role = RoleChild
				view.Parents = index.ParentsOf(key)
				out.ChildCount++
			}
			if index.IsParent(key) {
				view.Role = RoleParent
				view.Children = index.Children(key)
				out.ParentCount++
			}
			out.Settings = append(out.Settings, view)
		}
		log.Debug().
			Int("settings", category.Len()).
			Int("parents", out.ParentCount-parents).
			Int("children", out.ChildCount-children).
			Msg("category described")
	}
	return out, nil
}
