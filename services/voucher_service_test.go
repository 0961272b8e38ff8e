package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"game-store-service/models"
	"game-store-service/repository"
	"game-store-service/services"
	"game-store-service/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newVoucherService(t *testing.T) services.VoucherService {
	t.Helper()
	repo := repository.NewKVVoucherRepository(store.NewMemoryKV(), nil)
	return services.NewVoucherService(repo, zap.NewNop())
}

func TestMintForCampaign(t *testing.T) {
	svc := newVoucherService(t)
	campaign := &models.Campaign{
		ID:   "c1",
		Type: models.CampaignTypeGiftVoucher,
		VoucherConfig: &models.VoucherConfig{
			CodePrefix:    "tet",
			DiscountValue: 100000,
			MaxDiscount:   100000,
			ValidityDays:  14,
		},
	}

	voucher, err := svc.MintForCampaign(context.Background(), campaign, "u1")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(voucher.Code, "TET"))
	assert.Len(t, voucher.Code, len("TET")+8)
	assert.Equal(t, "c1", voucher.CampaignID)
	assert.Equal(t, float64(100000), voucher.DiscountValue)
	assert.False(t, voucher.Redeemed)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 14), voucher.ExpiresAt, time.Minute)
}

func TestMintForCampaign_NilConfig(t *testing.T) {
	svc := newVoucherService(t)
	campaign := &models.Campaign{ID: "c1", Type: models.CampaignTypeGiftVoucher}

	voucher, err := svc.MintForCampaign(context.Background(), campaign, "u1")

	assert.NoError(t, err)
	assert.Nil(t, voucher)
}

func TestMintForCampaign_CodesAreUnique(t *testing.T) {
	svc := newVoucherService(t)
	campaign := &models.Campaign{
		ID:            "c1",
		Type:          models.CampaignTypeGiftVoucher,
		VoucherConfig: &models.VoucherConfig{CodePrefix: "GIFT", ValidityDays: 7},
	}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		voucher, err := svc.MintForCampaign(context.Background(), campaign, "u1")
		assert.NoError(t, err)
		assert.False(t, seen[voucher.Code], voucher.Code)
		seen[voucher.Code] = true
	}
}

func TestListUserVouchers(t *testing.T) {
	svc := newVoucherService(t)
	ctx := context.Background()
	campaign := &models.Campaign{
		ID:            "c1",
		Type:          models.CampaignTypeGiftVoucher,
		VoucherConfig: &models.VoucherConfig{CodePrefix: "GIFT", ValidityDays: 7},
	}

	_, err := svc.MintForCampaign(ctx, campaign, "u1")
	assert.NoError(t, err)
	_, err = svc.MintForCampaign(ctx, campaign, "u2")
	assert.NoError(t, err)

	owned, svcErr := svc.ListUserVouchers(ctx, "u1")
	assert.Nil(t, svcErr)
	assert.Len(t, owned, 1)
	assert.Equal(t, "u1", owned[0].UserID)
}
