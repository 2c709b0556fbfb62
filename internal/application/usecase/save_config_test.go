package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/application/port"
	portmocks "github.com/bnema/clonecfg/internal/application/port/mocks"
	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/flatten"
	repomocks "github.com/bnema/clonecfg/internal/domain/repository/mocks"
)

func newFlattener(t *testing.T, encoder port.OutputEncoder) *usecase.FlattenConfigUseCase {
	t.Helper()
	serializer, err := flatten.NewSerializer(entity.DefaultTables())
	require.NoError(t, err)
	return usecase.NewFlattenConfigUseCase(serializer, encoder)
}

func TestFlattenConfigUseCase_Execute(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	session := newSession(t, buildConfig(t, "display", "addSnow", false, "snowSpeed", 2))

	encoder.EXPECT().EncodeFlat(mock.AnythingOfType("*entity.FlatOutput")).
		RunAndReturn(func(out *entity.FlatOutput) ([]byte, error) {
			assert.Equal(t, []string{"addSnow"}, out.Keys())
			return []byte(`{"addSnow":false}`), nil
		})

	out, err := newFlattener(t, encoder).Execute(testContext(), usecase.FlattenConfigInput{Session: session})

	require.NoError(t, err)
	assert.Equal(t, `{"addSnow":false}`, string(out.Payload))
	assert.Equal(t, 1, out.Output.Len())
}

func TestFlattenConfigUseCase_Execute_EncoderError(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	session := newSession(t, buildConfig(t, "general", "a", 1))
	encoder.EXPECT().EncodeFlat(mock.Anything).Return(nil, errors.New("boom"))

	_, err := newFlattener(t, encoder).Execute(testContext(), usecase.FlattenConfigInput{Session: session})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode configuration")
}

func TestSaveConfigUseCase_Execute_SavesAndRecords(t *testing.T) {
	ctx := testContext()
	encoder := portmocks.NewMockOutputEncoder(t)
	sink := portmocks.NewMockConfigSink(t)
	history := repomocks.NewMockSaveHistoryRepository(t)
	session := newSession(t, buildConfig(t, "general", "appName", "Clone"))
	session.SplitCount = 0

	payload := []byte(`{"appName":"Clone"}`)
	encoder.EXPECT().EncodeFlat(mock.Anything).Return(payload, nil)
	sink.EXPECT().Save(mock.Anything, port.SaveRequest{
		PackageName: "com.example.app",
		SplitCount:  entity.DefaultSplitCount,
		Payload:     payload,
	}).Return("/tmp/com.example.app_cloneSettings.json", nil)
	history.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.SaveRecord")).
		Run(func(_ context.Context, r *entity.SaveRecord) {
			assert.Equal(t, "com.example.app", r.PackageName)
			assert.Equal(t, 1, r.KeyCount)
			r.ID = 42
		}).
		Return(nil)

	uc := usecase.NewSaveConfigUseCase(newFlattener(t, encoder), sink, history)
	out, err := uc.Execute(ctx, usecase.SaveConfigInput{Session: session})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/com.example.app_cloneSettings.json", out.Destination)
	assert.Equal(t, 1, out.KeyCount)
	require.NotNil(t, out.Record)
	assert.Equal(t, int64(42), out.Record.ID)
}

func TestSaveConfigUseCase_Execute_HistoryFailureIsNotFatal(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	sink := portmocks.NewMockConfigSink(t)
	history := repomocks.NewMockSaveHistoryRepository(t)
	session := newSession(t, buildConfig(t, "general", "a", 1))

	encoder.EXPECT().EncodeFlat(mock.Anything).Return([]byte(`{"a":1}`), nil)
	sink.EXPECT().Save(mock.Anything, mock.Anything).Return("bridge", nil)
	history.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewSaveConfigUseCase(newFlattener(t, encoder), sink, history)
	out, err := uc.Execute(testContext(), usecase.SaveConfigInput{Session: session})

	require.NoError(t, err)
	assert.Nil(t, out.Record)
}

func TestSaveConfigUseCase_Execute_WithoutHistory(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	sink := portmocks.NewMockConfigSink(t)
	session := newSession(t, buildConfig(t, "general", "a", 1))

	encoder.EXPECT().EncodeFlat(mock.Anything).Return([]byte(`{"a":1}`), nil)
	sink.EXPECT().Save(mock.Anything, mock.Anything).Return("out.json", nil)

	uc := usecase.NewSaveConfigUseCase(newFlattener(t, encoder), sink, nil)
	out, err := uc.Execute(testContext(), usecase.SaveConfigInput{Session: session})

	require.NoError(t, err)
	assert.Equal(t, "out.json", out.Destination)
}

func TestSaveConfigUseCase_Execute_SinkError(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	sink := portmocks.NewMockConfigSink(t)
	history := repomocks.NewMockSaveHistoryRepository(t)
	session := newSession(t, buildConfig(t, "general", "a", 1))
	boom := errors.New("bridge exited with status 1")

	encoder.EXPECT().EncodeFlat(mock.Anything).Return([]byte(`{}`), nil)
	sink.EXPECT().Save(mock.Anything, mock.Anything).Return("", boom)

	uc := usecase.NewSaveConfigUseCase(newFlattener(t, encoder), sink, history)
	_, err := uc.Execute(testContext(), usecase.SaveConfigInput{Session: session})

	require.ErrorIs(t, err, boom)
}

func TestSaveConfigUseCase_Execute_RequiresPackageName(t *testing.T) {
	encoder := portmocks.NewMockOutputEncoder(t)
	sink := portmocks.NewMockConfigSink(t)
	session := newSession(t, buildConfig(t, "general", "a", 1))
	session.PackageName = ""

	uc := usecase.NewSaveConfigUseCase(newFlattener(t, encoder), sink, nil)
	_, err := uc.Execute(testContext(), usecase.SaveConfigInput{Session: session})

	require.ErrorIs(t, err, usecase.ErrPackageNameRequired)

	_, err = uc.Execute(testContext(), usecase.SaveConfigInput{})
	require.ErrorIs(t, err, usecase.ErrNoSession)
}
