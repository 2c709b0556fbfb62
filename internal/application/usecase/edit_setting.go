package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/logging"
)

var (
	// ErrNoSession is returned when a use case needs a loaded session.
	ErrNoSession = errors.New("no configuration loaded")
	// ErrInvalidEdit is returned for edits without a category, key or value.
	ErrInvalidEdit = errors.New("invalid edit")
)

// EditSettingUseCase applies a single user edit to the live configuration.
// The relationship index is frozen and never recomputed here.
type EditSettingUseCase struct{}

// NewEditSettingUseCase creates a new EditSettingUseCase.
func NewEditSettingUseCase() *EditSettingUseCase {
	return &EditSettingUseCase{}
}

// EditSettingInput identifies the setting and its new value.
type EditSettingInput struct {
	Session  *entity.EditSession
	Category string
	Key      string
	Value    entity.Value
}

// EditSettingOutput reports what the edit replaced.
type EditSettingOutput struct {
	Previous entity.Value
	Existed  bool
}

// Execute stores a copy of the value at (category, key).
func (uc *EditSettingUseCase) Execute(ctx context.Context, input EditSettingInput) (*EditSettingOutput, error) {
	if input.Session == nil || input.Session.Current == nil {
		return nil, ErrNoSession
	}
	if input.Category == "" || input.Key == "" {
		return nil, fmt.Errorf("%w: category and key are required", ErrInvalidEdit)
	}
	if input.Value == nil {
		return nil, fmt.Errorf("%w: %s.%s has no value", ErrInvalidEdit, input.Category, input.Key)
	}

	previous, existed := input.Session.Current.Get(input.Category, input.Key)
	input.Session.Current.Set(input.Category, input.Key, entity.Clone(input.Value))

	logging.FromContext(ctx).Debug().
		Str("category", input.Category).
		Str("key", input.Key).
		Str("kind", input.Value.Kind().String()).
		Bool("existed", existed).
		Msg("setting edited")

	return &EditSettingOutput{Previous: previous, Existed: existed}, nil
}
