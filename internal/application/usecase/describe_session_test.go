package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/logging"
)

func TestDescribeSessionUseCase_Execute(t *testing.T) {
	cfg := buildConfig(t, "display",
		"addSnow", true,
		"snowSpeed", 2,
		"theme", []any{"DARK", "LIGHT"},
	)
	session := newSession(t, cfg)

	out, err := usecase.NewDescribeSessionUseCase(entity.DefaultTables()).
		Execute(testContext(), usecase.DescribeSessionInput{Session: session})

	require.NoError(t, err)
	require.Len(t, out.Settings, 3)
	assert.Equal(t, 1, out.ParentCount)
	assert.Equal(t, 1, out.ChildCount)

	parent := out.Settings[0]
	assert.Equal(t, usecase.RoleParent, parent.Role)
	assert.Equal(t, []string{"snowSpeed"}, parent.Children)
	assert.Equal(t, "Enabled", parent.Summary)

	child := out.Settings[1]
	assert.Equal(t, usecase.RoleChild, child.Role)
	assert.Equal(t, []string{"addSnow"}, child.Parents)
	assert.Equal(t, "2", child.Summary)

	leaf := out.Settings[2]
	assert.Equal(t, usecase.RoleLeaf, leaf.Role)
	assert.Equal(t, entity.KindSequence, leaf.Kind)
	assert.Equal(t, "DARK", leaf.Summary)
}

func TestDescribeSessionUseCase_Execute_FiltersCategory(t *testing.T) {
	cfg := buildConfig(t, "display", "theme", "dark")
	cfg.Set("general", "appName", entity.Text("Clone"))
	session := newSession(t, cfg)

	out, err := usecase.NewDescribeSessionUseCase(entity.DefaultTables()).
		Execute(testContext(), usecase.DescribeSessionInput{Session: session, Category: "general"})

	require.NoError(t, err)
	require.Len(t, out.Settings, 1)
	assert.Equal(t, "appName", out.Settings[0].Key)
}

func TestDescribeSessionUseCase_Execute_NoSession(t *testing.T) {
	_, err := usecase.NewDescribeSessionUseCase(entity.DefaultTables()).
		Execute(testContext(), usecase.DescribeSessionInput{})

	require.ErrorIs(t, err, usecase.ErrNoSession)
}

func TestDescribeSessionUseCase_Execute_LogsPerCategory(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	ctx := logging.WithContext(context.Background(), logger)

	cfg := buildConfig(t, "display", "addSnow", true, "snowSpeed", 2)
	cfg.Set("general", "appName", entity.Text("Clone"))
	session := newSession(t, cfg)

	_, err := usecase.NewDescribeSessionUseCase(entity.DefaultTables()).
		Execute(ctx, usecase.DescribeSessionInput{Session: session})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"category":"display","settings":2,"parents":1,"children":1`)
	assert.Contains(t, out, `"category":"general","settings":1,"parents":0,"children":0`)
}
