package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/domain/entity"
	"github.com/bnema/clonecfg/internal/domain/repository/mocks"
)

func newModel(t *testing.T, repo *mocks.MockSaveHistoryRepository) SavesModel {
	t.Helper()
	return NewSavesModel(context.Background(), styles.NewTheme(), usecase.NewListSavesUseCase(repo), usecase.ListSavesInput{Limit: 10})
}

func TestSavesModel_LoadsAndRenders(t *testing.T) {
	repo := mocks.NewMockSaveHistoryRepository(t)
	saves := []*entity.SaveRecord{
		{ID: 2, PackageName: "com.example.b", Destination: "/out/b.json", Digest: "ffffffffffffffff", KeyCount: 4, CreatedAt: time.Now()},
		{ID: 1, PackageName: "com.example.a", Destination: "/out/a.json", Digest: "0000000000000000", KeyCount: 2, CreatedAt: time.Now()},
	}
	repo.EXPECT().GetRecent(context.Background(), 10).Return(saves, nil)

	m := newModel(t, repo)
	assert.Contains(t, m.View(), "Loading")

	msg := m.Init()()
	updated, _ := m.Update(msg)
	m = updated.(SavesModel)

	require.NoError(t, m.Err())
	require.NotNil(t, m.Selected())
	assert.Equal(t, int64(2), m.Selected().ID)
	view := m.View()
	assert.Contains(t, view, "com.example.b")
	assert.Contains(t, view, "/out/b.json")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(SavesModel)
	assert.Equal(t, int64(1), m.Selected().ID)
}

func TestSavesModel_LoadError(t *testing.T) {
	repo := mocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(context.Background(), 10).Return(nil, errors.New("db locked"))

	m := newModel(t, repo)
	updated, _ := m.Update(m.Init()())
	m = updated.(SavesModel)

	assert.EqualError(t, m.Err(), "db locked")
	assert.Contains(t, m.View(), "db locked")
	assert.Nil(t, m.Selected())
}

func TestSavesModel_QuitKeys(t *testing.T) {
	m := newModel(t, mocks.NewMockSaveHistoryRepository(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSavesModel_EnterChoosesSelection(t *testing.T) {
	repo := mocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(context.Background(), 10).Return([]*entity.SaveRecord{
		{ID: 7, PackageName: "com.example.a", Payload: []byte(`{"a":1}`), CreatedAt: time.Now()},
	}, nil)

	m := newModel(t, repo)
	updated, _ := m.Update(m.Init()())
	m = updated.(SavesModel)
	assert.False(t, m.Chosen())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SavesModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, m.Chosen())
	assert.Equal(t, int64(7), m.Selected().ID)
}

func TestSavesModel_EnterWithoutSavesQuitsUnchosen(t *testing.T) {
	repo := mocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(context.Background(), 10).Return(nil, nil)

	m := newModel(t, repo)
	updated, _ := m.Update(m.Init()())
	updated, _ = updated.(SavesModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, updated.(SavesModel).Chosen())
}
