package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/clonecfg/internal/application/port/mocks"
	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/relationship"
	"github.com/bnema/clonecfg/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newAnalyzer(t *testing.T) *relationship.Analyzer {
	t.Helper()
	a, err := relationship.NewAnalyzer(entity.DefaultTables())
	require.NoError(t, err)
	return a
}

func buildConfig(t *testing.T, category string, pairs ...any) *entity.Configuration {
	t.Helper()
	cfg := entity.NewConfiguration()
	for i := 0; i < len(pairs); i += 2 {
		v, err := entity.FromAny(pairs[i+1])
		require.NoError(t, err)
		cfg.Set(category, pairs[i].(string), v)
	}
	return cfg
}

func TestLoadConfigUseCase_Execute_BuildsSession(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockConfigSource(t)

	cfg := buildConfig(t, "display",
		"addSnow", true,
		"snowSpeed", 2,
	)
	source.EXPECT().Load(mock.Anything).Return(cfg, nil)

	uc := usecase.NewLoadConfigUseCase(source, newAnalyzer(t), entity.DefaultTables())
	out, err := uc.Execute(ctx, usecase.LoadConfigInput{PackageName: "com.example.app"})

	require.NoError(t, err)
	session := out.Session
	assert.Equal(t, "com.example.app", session.PackageName)
	assert.Equal(t, entity.DefaultSplitCount, session.SplitCount)
	assert.False(t, session.LoadedAt.IsZero())
	assert.Equal(t, []string{"snowSpeed"}, session.Index.Children("addSnow"))

	// The snapshot predates seeding.
	_, ok := session.Original.Category("privacy")
	assert.False(t, ok)
	v, ok := session.Current.Get("privacy", "spoofGpsTrack")
	require.True(t, ok)
	assert.Equal(t, entity.Bool(false), v)
	assert.Len(t, out.Seeded, 8)
}

func TestLoadConfigUseCase_Execute_SeedsOnlyMissingMembers(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockConfigSource(t)

	cfg := buildConfig(t, "privacy",
		"spoofGpsTrack", true,
		"spoofGpsTrackDuration", 15,
	)
	source.EXPECT().Load(mock.Anything).Return(cfg, nil)

	uc := usecase.NewLoadConfigUseCase(source, newAnalyzer(t), entity.DefaultTables())
	out, err := uc.Execute(ctx, usecase.LoadConfigInput{SplitCount: 7})

	require.NoError(t, err)
	assert.Equal(t, 7, out.Session.SplitCount)
	assert.NotContains(t, out.Seeded, "privacy.spoofGpsTrack")
	assert.NotContains(t, out.Seeded, "privacy.spoofGpsTrackDuration")
	assert.Contains(t, out.Seeded, "privacy.spoofGpsTrackPath")

	v, _ := out.Session.Current.Get("privacy", "spoofGpsTrackDuration")
	assert.Equal(t, entity.Number(15), v)
	assert.Equal(t, 2, out.Session.Original.KeyCount())
	assert.Equal(t, 8, out.Session.Current.KeyCount())
}

func TestLoadConfigUseCase_Execute_SourceError(t *testing.T) {
	ctx := testContext()
	source := portmocks.NewMockConfigSource(t)
	boom := errors.New("connection refused")

	source.EXPECT().Load(mock.Anything).Return(nil, boom)
	source.EXPECT().Location().Return("https://example.com/config")

	uc := usecase.NewLoadConfigUseCase(source, newAnalyzer(t), entity.DefaultTables())
	_, err := uc.Execute(ctx, usecase.LoadConfigInput{})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "https://example.com/config")
}

func TestLoadConfigUseCase_Execute_NilConfiguration(t *testing.T) {
	source := portmocks.NewMockConfigSource(t)
	source.EXPECT().Load(mock.Anything).Return(nil, nil)

	uc := usecase.NewLoadConfigUseCase(source, newAnalyzer(t), entity.DefaultTables())
	_, err := uc.Execute(testContext(), usecase.LoadConfigInput{})

	require.ErrorIs(t, err, entity.ErrMalformedConfiguration)
}
