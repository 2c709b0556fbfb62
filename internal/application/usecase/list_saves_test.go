package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/domain/entity"
	repomocks "github.com/bnema/clonecfg/internal/domain/repository/mocks"
)

func saves() []*entity.SaveRecord {
	now := time.Now()
	return []*entity.SaveRecord{
		{ID: 3, PackageName: "com.a", CreatedAt: now},
		{ID: 2, PackageName: "com.b", CreatedAt: now.Add(-time.Minute)},
		{ID: 1, PackageName: "com.a", CreatedAt: now.Add(-time.Hour)},
	}
}

func TestListSavesUseCase_Execute_DefaultLimit(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 20).Return(saves(), nil)

	out, err := usecase.NewListSavesUseCase(repo).Execute(testContext(), usecase.ListSavesInput{})

	require.NoError(t, err)
	assert.Len(t, out.Saves, 3)
}

func TestListSavesUseCase_Execute_FiltersByPackage(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 5).Return(saves(), nil)

	out, err := usecase.NewListSavesUseCase(repo).Execute(testContext(), usecase.ListSavesInput{
		PackageName: "com.a",
		Limit:       5,
	})

	require.NoError(t, err)
	require.Len(t, out.Saves, 2)
	assert.Equal(t, int64(3), out.Saves[0].ID)
	assert.Equal(t, int64(1), out.Saves[1].ID)
}

func TestListSavesUseCase_Execute_LatestOnly(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetLatest(mock.Anything, "com.b").Return(saves()[1], nil)

	out, err := usecase.NewListSavesUseCase(repo).Execute(testContext(), usecase.ListSavesInput{
		PackageName: "com.b",
		LatestOnly:  true,
	})

	require.NoError(t, err)
	require.Len(t, out.Saves, 1)
	assert.Equal(t, int64(2), out.Saves[0].ID)
}

func TestListSavesUseCase_Execute_LatestOnlyNone(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetLatest(mock.Anything, "com.c").Return(nil, nil)

	out, err := usecase.NewListSavesUseCase(repo).Execute(testContext(), usecase.ListSavesInput{
		PackageName: "com.c",
		LatestOnly:  true,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Saves)
}

func TestListSavesUseCase_Execute_RepoError(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 20).Return(nil, errors.New("db locked"))

	_, err := usecase.NewListSavesUseCase(repo).Execute(testContext(), usecase.ListSavesInput{})

	require.Error(t, err)
}

func TestPruneSavesUseCase_Execute(t *testing.T) {
	repo := repomocks.NewMockSaveHistoryRepository(t)
	repo.EXPECT().DeleteOlderThanKeep(mock.Anything, 0).Return(int64(4), nil)

	deleted, err := usecase.NewPruneSavesUseCase(repo).Execute(testContext(), -3)

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
