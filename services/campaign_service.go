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

// CampaignService defines the interface for campaign management and the
// "active campaigns" predicate the pricing engine's callers rely on.
type CampaignService interface {
	CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, *ServiceError)
	UpdateCampaign(ctx context.Context, id string, req *models.UpdateCampaignRequest) (*models.Campaign, *ServiceError)
	GetCampaign(ctx context.Context, id string) (*models.Campaign, *ServiceError)
	ListCampaigns(ctx context.Context) ([]models.Campaign, *ServiceError)
	DeleteCampaign(ctx context.Context, id string) *ServiceError
	ActiveCampaigns(ctx context.Context, now time.Time) ([]models.Campaign, error)
}

type campaignServiceImpl struct {
	repo   repository.CampaignRepository
	logger *zap.Logger
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(repo repository.CampaignRepository, logger *zap.Logger) CampaignService {
	return &campaignServiceImpl{repo: repo, logger: logger}
}

// CreateCampaign creates a new campaign.
func (s *campaignServiceImpl) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, *ServiceError) {
	if req.Type == models.CampaignTypeDiscountPercent && req.Value <= 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Discount percentage must be greater than zero"}
	}
	if req.Type == models.CampaignTypeGiftVoucher && req.VoucherConfig == nil {
		return nil, &ServiceError{StatusCode: 400, Message: "Gift campaigns require a voucher config"}
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return nil, &ServiceError{StatusCode: 400, Message: "End date must not precede start date"}
	}

	now := time.Now()
	campaign := &models.Campaign{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Type:             req.Type,
		Value:            req.Value,
		VoucherConfig:    req.VoucherConfig,
		TargetProductIDs: req.TargetProductIDs,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         req.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Upsert(ctx, campaign); err != nil {
		s.logger.Error("Failed to create campaign", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create campaign"}
	}

	s.logger.Info("Campaign created",
		zap.String("id", campaign.ID),
		zap.String("type", string(campaign.Type)),
		zap.Int("targets", len(campaign.TargetProductIDs)),
	)
	return campaign, nil
}

// UpdateCampaign applies a partial update to an existing campaign.
func (s *campaignServiceImpl) UpdateCampaign(ctx context.Context, id string, req *models.UpdateCampaignRequest) (*models.Campaign, *ServiceError) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Campaign not found"}
		}
		s.logger.Error("Failed to load campaign", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update campaign"}
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Value != nil {
		campaign.Value = *req.Value
	}
	if req.VoucherConfig != nil {
		campaign.VoucherConfig = req.VoucherConfig
	}
	if req.TargetProductIDs != nil {
		campaign.TargetProductIDs = req.TargetProductIDs
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}
	campaign.UpdatedAt = time.Now()

	if err := s.repo.Upsert(ctx, campaign); err != nil {
		s.logger.Error("Failed to update campaign", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update campaign"}
	}
	return campaign, nil
}

// GetCampaign retrieves a campaign by id.
func (s *campaignServiceImpl) GetCampaign(ctx context.Context, id string) (*models.Campaign, *ServiceError) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Campaign not found"}
		}
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch campaign"}
	}
	return campaign, nil
}

// ListCampaigns returns all campaigns in insertion order.
func (s *campaignServiceImpl) ListCampaigns(ctx context.Context) ([]models.Campaign, *ServiceError) {
	campaigns, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list campaigns", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list campaigns"}
	}
	return campaigns, nil
}

// DeleteCampaign hard-deletes a campaign.
func (s *campaignServiceImpl) DeleteCampaign(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Campaign not found"}
		}
		s.logger.Error("Failed to delete campaign", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete campaign"}
	}
	s.logger.Info("Campaign deleted", zap.String("id", id))
	return nil
}

// ActiveCampaigns returns campaigns that are switched on and whose inclusive
// start/end window contains now, preserving insertion order. This is the
// caller-side predicate the pricing engine relies on; the engine itself does
// no date filtering.
func (s *campaignServiceImpl) ActiveCampaigns(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	campaigns, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.IsActive && c.InDateRange(now) {
			active = append(active, c)
		}
	}
	return active, nil
}
