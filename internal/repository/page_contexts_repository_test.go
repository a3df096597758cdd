package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/internal/repository"
	"github.com/limbo/flowmotion/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndList(t *testing.T) {
	t.Parallel()
	repo := repository.NewPageContextsRepo(nil)
	ctx := context.Background()

	first, err := repo.Register(ctx, "http://app.test/dashboard/", "")
	require.NoError(t, err)
	second, err := repo.Register(ctx, "http://app.test/settings/", entity.ContextKindCommand)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.ContextKindWindow, first.Kind)
	assert.True(t, first.Navigable())
	assert.Equal(t, entity.ContextKindCommand, second.Kind)
	assert.False(t, second.Navigable())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	// Returned values are copies
	list[0].URL = "changed"
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://app.test/dashboard/", got.URL)
}

func TestNavigateAndFocus(t *testing.T) {
	t.Parallel()
	repo := repository.NewPageContextsRepo(nil)
	ctx := context.Background()
	a, _ := repo.Register(ctx, "http://app.test/dashboard/", "")
	b, _ := repo.Register(ctx, "http://app.test/habits/", "")

	require.NoError(t, repo.Navigate(ctx, a.ID, "http://app.test/habits/1/"))
	require.NoError(t, repo.Focus(ctx, a.ID))
	got, _ := repo.GetByID(ctx, a.ID)
	assert.Equal(t, "http://app.test/habits/1/", got.URL)
	assert.True(t, got.Focused)

	require.NoError(t, repo.Focus(ctx, b.ID))
	got, _ = repo.GetByID(ctx, a.ID)
	assert.False(t, got.Focused)

	assert.ErrorIs(t, repo.Navigate(ctx, uuid.New(), "x"), errorvalues.ErrPageContextNotFound)
	assert.ErrorIs(t, repo.Focus(ctx, uuid.New()), errorvalues.ErrPageContextNotFound)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	var opened []string
	repo := repository.NewPageContextsRepo(func(url string) error {
		opened = append(opened, url)
		return nil
	})
	ctx := context.Background()
	existing, _ := repo.Register(ctx, "http://app.test/settings/", "")
	require.NoError(t, repo.Focus(ctx, existing.ID))

	pc, err := repo.Open(ctx, "http://app.test/habits/2/")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://app.test/habits/2/"}, opened)
	assert.True(t, pc.Focused)
	assert.Equal(t, entity.ContextKindWindow, pc.Kind)

	old, _ := repo.GetByID(ctx, existing.ID)
	assert.False(t, old.Focused)
	list, _ := repo.List(ctx)
	assert.Len(t, list, 2)
}

func TestOpenFailure(t *testing.T) {
	t.Parallel()
	repo := repository.NewPageContextsRepo(func(string) error { return errors.New("no browser") })
	_, err := repo.Open(context.Background(), "http://app.test/")
	assert.Error(t, err)
	list, _ := repo.List(context.Background())
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	repo := repository.NewPageContextsRepo(nil)
	ctx := context.Background()
	a, _ := repo.Register(ctx, "http://app.test/a/", "")
	b, _ := repo.Register(ctx, "http://app.test/b/", "")

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), errorvalues.ErrPageContextNotFound)
	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, errorvalues.ErrPageContextNotFound)

	list, _ := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	repo := repository.NewPageContextsRepo(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Register(ctx, "http://app.test/", "")
	assert.ErrorIs(t, err, context.Canceled)
}
