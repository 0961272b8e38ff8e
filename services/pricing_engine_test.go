package services_test

import (
	"testing"
	"time"

	"game-store-service/models"
	"game-store-service/services"

	"github.com/stretchr/testify/assert"
)

func product(id string, price int64) *models.Product {
	return &models.Product{ID: id, Title: "Game " + id, Price: price}
}

func discountCampaign(id string, value float64, targets ...string) models.Campaign {
	return models.Campaign{
		ID:               id,
		Name:             "discount " + id,
		Type:             models.CampaignTypeDiscountPercent,
		Value:            value,
		TargetProductIDs: targets,
		IsActive:         true,
	}
}

func giftCampaign(id string, targets ...string) models.Campaign {
	return models.Campaign{
		ID:   id,
		Name: "gift " + id,
		Type: models.CampaignTypeGiftVoucher,
		VoucherConfig: &models.VoucherConfig{
			CodePrefix:    "GIFT",
			DiscountValue: 50000,
			MaxDiscount:   100000,
			ValidityDays:  30,
		},
		TargetProductIDs: targets,
		IsActive:         true,
	}
}

func TestComputePrice_NoCampaigns(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)

	quote := engine.ComputePrice(p, nil)

	assert.Equal(t, float64(1000000), quote.FinalPrice)
	assert.Equal(t, float64(0), quote.DiscountPercent)
	assert.Nil(t, quote.DiscountCampaign)
	assert.Nil(t, quote.GiftCampaign)
}

func TestComputePrice_MatchingDiscount(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	campaigns := []models.Campaign{discountCampaign("c1", 20, "p1")}

	quote := engine.ComputePrice(p, campaigns)

	assert.Equal(t, float64(800000), quote.FinalPrice)
	assert.Equal(t, float64(20), quote.DiscountPercent)
	assert.NotNil(t, quote.DiscountCampaign)
	assert.Equal(t, "c1", quote.DiscountCampaign.ID)
}

func TestComputePrice_InactiveCampaignIgnored(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	c := discountCampaign("c1", 20, "p1")
	c.IsActive = false

	quote := engine.ComputePrice(p, []models.Campaign{c})

	assert.Equal(t, float64(1000000), quote.FinalPrice)
	assert.Equal(t, float64(0), quote.DiscountPercent)
	assert.Nil(t, quote.DiscountCampaign)
}

func TestComputePrice_NonTargetingCampaignIgnored(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	campaigns := []models.Campaign{discountCampaign("c1", 50, "p2", "p3")}

	quote := engine.ComputePrice(p, campaigns)

	assert.Equal(t, float64(1000000), quote.FinalPrice)
	assert.Nil(t, quote.DiscountCampaign)
}

func TestComputePrice_FirstMatchWinsInListOrder(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	// The second campaign offers a deeper discount but loses: selection is
	// list order, not best-value.
	campaigns := []models.Campaign{
		discountCampaign("c1", 10, "p1"),
		discountCampaign("c2", 50, "p1"),
	}

	quote := engine.ComputePrice(p, campaigns)

	assert.Equal(t, "c1", quote.DiscountCampaign.ID)
	assert.Equal(t, float64(10), quote.DiscountPercent)
	assert.Equal(t, float64(900000), quote.FinalPrice)
}

func TestComputePrice_DiscountAndGiftAreOrthogonal(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	campaigns := []models.Campaign{
		discountCampaign("c1", 10, "p1"),
		giftCampaign("c2", "p1"),
	}

	quote := engine.ComputePrice(p, campaigns)

	assert.NotNil(t, quote.DiscountCampaign)
	assert.NotNil(t, quote.GiftCampaign)
	assert.Equal(t, "c2", quote.GiftCampaign.ID)
	assert.Equal(t, float64(1000000)*0.9, quote.FinalPrice)
}

func TestComputePrice_NoRounding(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 999)
	campaigns := []models.Campaign{discountCampaign("c1", 10, "p1")}

	quote := engine.ComputePrice(p, campaigns)

	assert.InDelta(t, 899.1, quote.FinalPrice, 1e-9)
}

func TestComputePrice_GiftWithoutConfigTolerated(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 1000000)
	c := giftCampaign("c1", "p1")
	c.VoucherConfig = nil

	quote := engine.ComputePrice(p, []models.Campaign{c})

	assert.NotNil(t, quote.GiftCampaign)
	assert.Equal(t, float64(1000000), quote.FinalPrice)
}

func TestComputePrice_Deterministic(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 750000)
	campaigns := []models.Campaign{
		discountCampaign("c1", 25, "p1"),
		giftCampaign("c2", "p1"),
	}

	first := engine.ComputePrice(p, campaigns)
	second := engine.ComputePrice(p, campaigns)

	assert.Equal(t, first.FinalPrice, second.FinalPrice)
	assert.Equal(t, first.DiscountCampaign.ID, second.DiscountCampaign.ID)
	assert.Equal(t, first.GiftCampaign.ID, second.GiftCampaign.ID)
}

func TestPricedView_CarriesQuote(t *testing.T) {
	engine := services.NewPricingEngine()
	p := product("p1", 200000)
	p.ReleaseDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	campaigns := []models.Campaign{discountCampaign("c1", 50, "p1")}

	view := engine.PricedView(p, campaigns)

	assert.Equal(t, "p1", view.ID)
	assert.Equal(t, float64(100000), view.FinalPrice)
	assert.Equal(t, float64(50), view.DiscountPercent)
}
