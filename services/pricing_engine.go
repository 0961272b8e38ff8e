package services

import "game-store-service/models"

// PriceQuote is the result of evaluating a product against the active
// campaign list. DiscountCampaign and GiftCampaign are independent: a
// product can carry both a percentage discount and a gift-voucher grant.
type PriceQuote struct {
	FinalPrice       float64          `json:"final_price"`
	DiscountPercent  float64          `json:"discount_percent"`
	DiscountCampaign *models.Campaign `json:"discount_campaign,omitempty"`
	GiftCampaign     *models.Campaign `json:"gift_campaign,omitempty"`
}

// PricingEngine derives a product's charged price from its base price and
// the caller-supplied campaign list. It is a pure read-time projection: it
// holds no state, never errors and makes no date-range decisions of its own
// (the caller filters campaigns to the active window first).
type PricingEngine struct{}

// NewPricingEngine creates a stateless pricing engine.
func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// ComputePrice selects at most one discount campaign and at most one gift
// campaign for the product. Selection is first match in list order; there is
// no tie-break by value or date. The discounted price is not rounded to an
// integer currency unit.
func (e *PricingEngine) ComputePrice(product *models.Product, campaigns []models.Campaign) PriceQuote {
	quote := PriceQuote{
		FinalPrice:      float64(product.Price),
		DiscountPercent: 0,
	}

	for i := range campaigns {
		c := &campaigns[i]
		if !c.IsActive || !c.Targets(product.ID) {
			continue
		}
		switch c.Type {
		case models.CampaignTypeDiscountPercent:
			if quote.DiscountCampaign == nil {
				quote.DiscountCampaign = c
			}
		case models.CampaignTypeGiftVoucher:
			if quote.GiftCampaign == nil {
				quote.GiftCampaign = c
			}
		}
	}

	if quote.DiscountCampaign != nil {
		quote.DiscountPercent = quote.DiscountCampaign.Value
		quote.FinalPrice = float64(product.Price) * (1 - quote.DiscountPercent/100)
	}
	return quote
}

// PricedView annotates a product with its computed quote.
func (e *PricingEngine) PricedView(product *models.Product, campaigns []models.Campaign) models.PricedProduct {
	quote := e.ComputePrice(product, campaigns)
	return models.PricedProduct{
		Product:          *product,
		FinalPrice:       quote.FinalPrice,
		DiscountPercent:  quote.DiscountPercent,
		DiscountCampaign: quote.DiscountCampaign,
		GiftCampaign:     quote.GiftCampaign,
	}
}
