package services_test

import (
	"context"
	"testing"
	"time"

	"game-store-service/models"
	"game-store-service/repository"
	"game-store-service/services"
	"game-store-service/store"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newCampaignService(t *testing.T) (services.CampaignService, repository.CampaignRepository) {
	t.Helper()
	repo := repository.NewKVCampaignRepository(store.NewMemoryKV(), nil)
	return services.NewCampaignService(repo, zap.NewNop()), repo
}

func TestCreateCampaign_DiscountRequiresPositiveValue(t *testing.T) {
	svc, _ := newCampaignService(t)

	created, svcErr := svc.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		Name:  "summer sale",
		Type:  models.CampaignTypeDiscountPercent,
		Value: 0,
	})

	assert.Nil(t, created)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateCampaign_GiftRequiresVoucherConfig(t *testing.T) {
	svc, _ := newCampaignService(t)

	created, svcErr := svc.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		Name: "launch gift",
		Type: models.CampaignTypeGiftVoucher,
	})

	assert.Nil(t, created)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateCampaign_EndBeforeStartRejected(t *testing.T) {
	svc, _ := newCampaignService(t)

	created, svcErr := svc.CreateCampaign(context.Background(), &models.CreateCampaignRequest{
		Name:      "backwards",
		Type:      models.CampaignTypeDiscountPercent,
		Value:     10,
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, created)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestActiveCampaigns_FiltersInactiveAndOutOfWindow(t *testing.T) {
	svc, repo := newCampaignService(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	seed := []models.Campaign{
		{ID: "live", Type: models.CampaignTypeDiscountPercent, Value: 10, IsActive: true,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 1)},
		{ID: "flagged-off", Type: models.CampaignTypeDiscountPercent, Value: 10, IsActive: false,
			StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 1)},
		{ID: "not-yet", Type: models.CampaignTypeDiscountPercent, Value: 10, IsActive: true,
			StartDate: now.AddDate(0, 0, 1)},
		{ID: "expired", Type: models.CampaignTypeDiscountPercent, Value: 10, IsActive: true,
			EndDate: now.AddDate(0, 0, -1)},
		{ID: "unbounded", Type: models.CampaignTypeDiscountPercent, Value: 10, IsActive: true},
	}
	for i := range seed {
		assert.NoError(t, repo.Upsert(ctx, &seed[i]))
	}

	active, err := svc.ActiveCampaigns(ctx, now)
	assert.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, c := range active {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"live", "unbounded"}, ids)
}

func TestActiveCampaigns_WindowBoundariesInclusive(t *testing.T) {
	svc, repo := newCampaignService(t)
	ctx := context.Background()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	assert.NoError(t, repo.Upsert(ctx, &models.Campaign{
		ID: "c1", Type: models.CampaignTypeDiscountPercent, Value: 10,
		IsActive: true, StartDate: start, EndDate: end,
	}))

	atStart, err := svc.ActiveCampaigns(ctx, start)
	assert.NoError(t, err)
	assert.Len(t, atStart, 1)

	atEnd, err := svc.ActiveCampaigns(ctx, end)
	assert.NoError(t, err)
	assert.Len(t, atEnd, 1)

	justBefore, err := svc.ActiveCampaigns(ctx, start.Add(-time.Second))
	assert.NoError(t, err)
	assert.Empty(t, justBefore)

	justAfter, err := svc.ActiveCampaigns(ctx, end.Add(time.Second))
	assert.NoError(t, err)
	assert.Empty(t, justAfter)
}

func TestActiveCampaigns_PreservesInsertionOrder(t *testing.T) {
	svc, repo := newCampaignService(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		assert.NoError(t, repo.Upsert(ctx, &models.Campaign{
			ID: id, Type: models.CampaignTypeDiscountPercent, Value: 5, IsActive: true,
		}))
	}

	active, err := svc.ActiveCampaigns(ctx, time.Now())
	assert.NoError(t, err)

	ids := make([]string, 0, len(active))
	for _, c := range active {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"first", "second", "third"}, ids)
}

func TestUpdateCampaign_PartialUpdate(t *testing.T) {
	svc, _ := newCampaignService(t)
	ctx := context.Background()

	created, svcErr := svc.CreateCampaign(ctx, &models.CreateCampaignRequest{
		Name:             "autumn sale",
		Type:             models.CampaignTypeDiscountPercent,
		Value:            10,
		TargetProductIDs: []string{"p1"},
		IsActive:         true,
	})
	assert.Nil(t, svcErr)

	newValue := 25.0
	off := false
	updated, svcErr := svc.UpdateCampaign(ctx, created.ID, &models.UpdateCampaignRequest{
		Value:    &newValue,
		IsActive: &off,
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "autumn sale", updated.Name)
	assert.Equal(t, 25.0, updated.Value)
	assert.False(t, updated.IsActive)
	assert.Equal(t, []string{"p1"}, updated.TargetProductIDs)
}

func TestDeleteCampaign_NotFound(t *testing.T) {
	svc, _ := newCampaignService(t)

	svcErr := svc.DeleteCampaign(context.Background(), "missing")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
