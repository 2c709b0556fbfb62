package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/flatten"
	"github.com/bnema/clonecfg/internal/logging"
)

// FlattenConfigUseCase rebuilds the flat settings payload of a session.
type FlattenConfigUseCase struct {
	serializer *flatten.Serializer
	encoder    port.OutputEncoder
}

// NewFlattenConfigUseCase creates a new FlattenConfigUseCase.
func NewFlattenConfigUseCase(serializer *flatten.Serializer, encoder port.OutputEncoder) *FlattenConfigUseCase {
	return &FlattenConfigUseCase{
		serializer: serializer,
		encoder:    encoder,
	}
}

// FlattenConfigInput contains the session to flatten.
type FlattenConfigInput struct {
	Session *entity.EditSession
}

// FlattenConfigOutput contains the flat mapping and its encoded form.
type FlattenConfigOutput struct {
	Output  *entity.FlatOutput
	Payload []byte
}

// Execute flattens and encodes. The session is left untouched.
func (uc *FlattenConfigUseCase) Execute(ctx context.Context, input FlattenConfigInput) (*FlattenConfigOutput, error) {
	if input.Session == nil {
		return nil, ErrNoSession
	}

	out, err := uc.serializer.Flatten(input.Session.Current, input.Session.Original, input.Session.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten configuration: %w", err)
	}

	payload, err := uc.encoder.EncodeFlat(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int("keys", out.Len()).
		Int("bytes", len(payload)).
		Msg("configuration flattened")

	return &FlattenConfigOutput{Output: out, Payload: payload}, nil
}
