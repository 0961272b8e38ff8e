package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"game-store-service/models"
	"game-store-service/store"
)

// ContentRepository manages storefront content: hero slides and the site
// configuration blob.
type ContentRepository interface {
	FindSlides(ctx context.Context) ([]models.HeroSlide, error)
	UpsertSlide(ctx context.Context, slide *models.HeroSlide) error
	DeleteSlide(ctx context.Context, id string) error
	GetSiteConfig(ctx context.Context) (*models.SiteConfig, error)
	SetSiteConfig(ctx context.Context, cfg *models.SiteConfig) error
}

// KVContentRepository implements ContentRepository over the KV store.
type KVContentRepository struct {
	slides collection[models.HeroSlide]
	kv     store.KV
	bus    *store.Bus
}

// NewKVContentRepository creates a KV-backed content repository.
func NewKVContentRepository(kv store.KV, bus *store.Bus) ContentRepository {
	return &KVContentRepository{
		slides: newCollection[models.HeroSlide](kv, bus, store.CollectionHeroSlides),
		kv:     kv,
		bus:    bus,
	}
}

// FindSlides returns slides ordered by sort order.
func (r *KVContentRepository) FindSlides(ctx context.Context) ([]models.HeroSlide, error) {
	slides, err := r.slides.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].SortOrder < slides[j].SortOrder
	})
	return slides, nil
}

func (r *KVContentRepository) UpsertSlide(ctx context.Context, slide *models.HeroSlide) error {
	slides, err := r.slides.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range slides {
		if slides[i].ID == slide.ID {
			slides[i] = *slide
			replaced = true
			break
		}
	}
	if !replaced {
		slides = append(slides, *slide)
	}

	if err := r.slides.save(ctx, slides); err != nil {
		return err
	}
	r.slides.notify(store.OpUpsert, slide.ID)
	return nil
}

func (r *KVContentRepository) DeleteSlide(ctx context.Context, id string) error {
	slides, err := r.slides.load(ctx)
	if err != nil {
		return err
	}

	kept := slides[:0]
	found := false
	for _, s := range slides {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return ErrNotFound
	}

	if err := r.slides.save(ctx, kept); err != nil {
		return err
	}
	r.slides.notify(store.OpDelete, id)
	return nil
}

// GetSiteConfig reads the config blob, falling back to defaults when no
// config exists yet and filling in fields absent from older blobs.
func (r *KVContentRepository) GetSiteConfig(ctx context.Context) (*models.SiteConfig, error) {
	data, err := r.kv.Get(ctx, keyPrefix+store.CollectionSiteConfig)
	if errors.Is(err, store.ErrKeyNotFound) {
		cfg := models.DefaultSiteConfig()
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg models.SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

func (r *KVContentRepository) SetSiteConfig(ctx context.Context, cfg *models.SiteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := r.kv.Set(ctx, keyPrefix+store.CollectionSiteConfig, data); err != nil {
		return err
	}
	if r.bus != nil {
		r.bus.Publish(store.Change{Collection: store.CollectionSiteConfig, Op: store.OpUpsert})
	}
	return nil
}
