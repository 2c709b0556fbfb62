package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/clonecfg/internal/application/port"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/repository"
	"github.com/bnema/clonecfg/internal/logging"
)

// ErrPackageNameRequired is returned when saving without a target package.
var ErrPackageNameRequired = errors.New("package name is required")

// SaveConfigUseCase flattens a session, hands the payload to a sink and
// records it in the save history.
type SaveConfigUseCase struct {
	flattener *FlattenConfigUseCase
	sink      port.ConfigSink
	history   repository.SaveHistoryRepository // optional
}

// NewSaveConfigUseCase creates a new SaveConfigUseCase. history may be nil.
func NewSaveConfigUseCase(
	flattener *FlattenConfigUseCase,
	sink port.ConfigSink,
	history repository.SaveHistoryRepository,
) *SaveConfigUseCase {
	return &SaveConfigUseCase{
		flattener: flattener,
		sink:      sink,
		history:   history,
	}
}

// SaveConfigInput contains the session to save.
type SaveConfigInput struct {
	Session *entity.EditSession
}

// SaveConfigOutput describes the completed save.
type SaveConfigOutput struct {
	Destination string
	Payload     []byte
	KeyCount    int
	// Record is nil when no history is configured or recording failed.
	Record *entity.SaveRecord
}

// Execute saves the session. Flattening completes before any I/O starts.
// A history failure is logged and does not fail the save.
func (uc *SaveConfigUseCase) Execute(ctx context.Context, input SaveConfigInput) (*SaveConfigOutput, error) {
	log := logging.FromContext(ctx)

	if input.Session == nil {
		return nil, ErrNoSession
	}
	if input.Session.PackageName == "" {
		return nil, ErrPackageNameRequired
	}

	flat, err := uc.flattener.Execute(ctx, FlattenConfigInput{Session: input.Session})
	if err != nil {
		return nil, err
	}

	splitCount := input.Session.SplitCount
	if splitCount <= 0 {
		splitCount = entity.DefaultSplitCount
	}

	destination, err := uc.sink.Save(ctx, port.SaveRequest{
		PackageName: input.Session.PackageName,
		SplitCount:  splitCount,
		Payload:     flat.Payload,
	})
	if err != nil {
		log.Error().Err(err).Str("package", input.Session.PackageName).Msg("save failed")
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	output := &SaveConfigOutput{
		Destination: destination,
		Payload:     flat.Payload,
		KeyCount:    flat.Output.Len(),
	}

	if uc.history != nil {
		record := &entity.SaveRecord{
			PackageName: input.Session.PackageName,
			Destination: destination,
			KeyCount:    flat.Output.Len(),
			Payload:     flat.Payload,
		}
		if err := uc.history.Save(ctx, record); err != nil {
			log.Warn().Err(err).Msg("failed to record save history")
		} else {
			output.Record = record
		}
	}

	log.Info().
		Str("package", input.Session.PackageName).
		Str("destination", destination).
		Int("keys", output.KeyCount).
		Msg("configuration saved")

	return output, nil
}
