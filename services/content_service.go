package services

import (
	"context"
	"errors"
	"time"

	"game-store-service/models"
	"game-store-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentService manages storefront content (hero slides, site config).
type ContentService interface {
	ListSlides(ctx context.Context) ([]models.HeroSlide, *ServiceError)
	SaveSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, *ServiceError)
	DeleteSlide(ctx context.Context, id string) *ServiceError
	GetSiteConfig(ctx context.Context) (*models.SiteConfig, *ServiceError)
	SetSiteConfig(ctx context.Context, cfg *models.SiteConfig) *ServiceError
}

type contentServiceImpl struct {
	repo   repository.ContentRepository
	logger *zap.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(repo repository.ContentRepository, logger *zap.Logger) ContentService {
	return &contentServiceImpl{repo: repo, logger: logger}
}

func (s *contentServiceImpl) ListSlides(ctx context.Context) ([]models.HeroSlide, *ServiceError) {
	slides, err := s.repo.FindSlides(ctx)
	if err != nil {
		s.logger.Error("Failed to list slides", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list slides"}
	}
	return slides, nil
}

// SaveSlide upserts a slide, assigning an id on first save.
func (s *contentServiceImpl) SaveSlide(ctx context.Context, slide *models.HeroSlide) (*models.HeroSlide, *ServiceError) {
	now := time.Now()
	if slide.ID == "" {
		slide.ID = uuid.NewString()
		slide.CreatedAt = now
	}
	slide.UpdatedAt = now

	if err := s.repo.UpsertSlide(ctx, slide); err != nil {
		s.logger.Error("Failed to save slide", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to save slide"}
	}
	return slide, nil
}

func (s *contentServiceImpl) DeleteSlide(ctx context.Context, id string) *ServiceError {
	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Slide not found"}
		}
		s.logger.Error("Failed to delete slide", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete slide"}
	}
	return nil
}

func (s *contentServiceImpl) GetSiteConfig(ctx context.Context) (*models.SiteConfig, *ServiceError) {
	cfg, err := s.repo.GetSiteConfig(ctx)
	if err != nil {
		s.logger.Error("Failed to load site config", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load site config"}
	}
	return cfg, nil
}

func (s *contentServiceImpl) SetSiteConfig(ctx context.Context, cfg *models.SiteConfig) *ServiceError {
	if err := s.repo.SetSiteConfig(ctx, cfg); err != nil {
		s.logger.Error("Failed to save site config", zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to save site config"}
	}
	return nil
}
