package repository_test

import (
	"context"
	"testing"

	"game-store-service/models"
	"game-store-service/repository"
	"game-store-service/store"

	"github.com/stretchr/testify/assert"
)

func TestContentRepository_SlidesSortedByOrder(t *testing.T) {
	repo := repository.NewKVContentRepository(store.NewMemoryKV(), nil)
	ctx := context.Background()

	assert.NoError(t, repo.UpsertSlide(ctx, &models.HeroSlide{ID: "s1", Title: "second", SortOrder: 2}))
	assert.NoError(t, repo.UpsertSlide(ctx, &models.HeroSlide{ID: "s2", Title: "first", SortOrder: 1}))

	slides, err := repo.FindSlides(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, []string{slides[0].Title, slides[1].Title})
}

func TestContentRepository_DeleteSlide(t *testing.T) {
	repo := repository.NewKVContentRepository(store.NewMemoryKV(), nil)
	ctx := context.Background()

	assert.NoError(t, repo.UpsertSlide(ctx, &models.HeroSlide{ID: "s1"}))
	assert.NoError(t, repo.DeleteSlide(ctx, "s1"))
	assert.ErrorIs(t, repo.DeleteSlide(ctx, "s1"), repository.ErrNotFound)
}

func TestContentRepository_SiteConfigDefaults(t *testing.T) {
	repo := repository.NewKVContentRepository(store.NewMemoryKV(), nil)
	ctx := context.Background()

	// Nothing saved yet: defaults come back.
	cfg, err := repo.GetSiteConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "2ND Game Shop", cfg.StoreName)

	assert.NoError(t, repo.SetSiteConfig(ctx, &models.SiteConfig{StoreName: "My Shop"}))

	cfg, err = repo.GetSiteConfig(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "My Shop", cfg.StoreName)
	// Fields left empty by the saved blob are backfilled.
	assert.Equal(t, "1900 0000", cfg.Hotline)
}
