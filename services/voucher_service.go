package services

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"game-store-service/models"
	"game-store-service/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const voucherCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// VoucherService mints concrete vouchers from gift campaigns and manages the
// minted records.
type VoucherService interface {
	MintForCampaign(ctx context.Context, campaign *models.Campaign, userID string) (*models.Voucher, error)
	ListUserVouchers(ctx context.Context, userID string) ([]models.Voucher, *ServiceError)
}

type voucherServiceImpl struct {
	repo   repository.VoucherRepository
	logger *zap.Logger
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(repo repository.VoucherRepository, logger *zap.Logger) VoucherService {
	return &voucherServiceImpl{repo: repo, logger: logger}
}

// MintForCampaign creates one voucher from a GIFT_VOUCHER campaign's config.
// The campaign's code prefix is combined with a random suffix; validity runs
// from now for the configured number of days.
func (s *voucherServiceImpl) MintForCampaign(ctx context.Context, campaign *models.Campaign, userID string) (*models.Voucher, error) {
	cfg := campaign.VoucherConfig
	if cfg == nil {
		// Tolerated: a gift campaign without config grants nothing.
		return nil, nil
	}

	now := time.Now()
	voucher := &models.Voucher{
		ID:            uuid.NewString(),
		Code:          strings.ToUpper(cfg.CodePrefix) + randomCode(8),
		CampaignID:    campaign.ID,
		UserID:        userID,
		DiscountValue: cfg.DiscountValue,
		MaxDiscount:   cfg.MaxDiscount,
		ExpiresAt:     now.AddDate(0, 0, cfg.ValidityDays),
		CreatedAt:     now,
	}

	if err := s.repo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	s.logger.Info("Voucher minted",
		zap.String("code", voucher.Code),
		zap.String("campaign_id", campaign.ID),
	)
	return voucher, nil
}

// ListUserVouchers returns the vouchers owned by a user.
func (s *voucherServiceImpl) ListUserVouchers(ctx context.Context, userID string) ([]models.Voucher, *ServiceError) {
	vouchers, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list vouchers", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list vouchers"}
	}
	return vouchers, nil
}

// randomCode returns n random characters from an unambiguous alphabet.
func randomCode(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(voucherCodeAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			idx = big.NewInt(int64(i) % max.Int64())
		}
		b.WriteByte(voucherCodeAlphabet[idx.Int64()])
	}
	return b.String()
}
