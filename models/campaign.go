package models

import "time"

// CampaignType represents the kind of promotion a campaign grants.
type CampaignType string

const (
	CampaignTypeDiscountPercent CampaignType = "DISCOUNT_PERCENT"
	CampaignTypeGiftVoucher     CampaignType = "GIFT_VOUCHER"
)

// VoucherConfig describes the vouchers a GIFT_VOUCHER campaign mints at
// checkout. It is nil for percentage campaigns.
type VoucherConfig struct {
	CodePrefix    string  `json:"code_prefix"`
	DiscountValue float64 `json:"discount_value"`
	MaxDiscount   float64 `json:"max_discount"`
	ValidityDays  int     `json:"validity_days"`
}

// Campaign is a time-boxed, product-targeted promotion. Value is the
// discount percentage and is meaningful only for DISCOUNT_PERCENT campaigns.
type Campaign struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             CampaignType   `json:"type"`
	Value            float64        `json:"value"`
	VoucherConfig    *VoucherConfig `json:"voucher_config,omitempty"`
	TargetProductIDs []string       `json:"target_product_ids"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Targets reports whether the campaign applies to the given product.
func (c *Campaign) Targets(productID string) bool {
	for _, id := range c.TargetProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// InDateRange reports whether now falls inside the campaign's inclusive
// start/end window. A zero start or end date leaves that side unbounded.
func (c *Campaign) InDateRange(now time.Time) bool {
	if !c.StartDate.IsZero() && now.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && now.After(c.EndDate) {
		return false
	}
	return true
}

// CreateCampaignRequest is the payload for creating a campaign.
type CreateCampaignRequest struct {
	Name             string         `json:"name" binding:"required"`
	Type             CampaignType   `json:"type" binding:"required,oneof=DISCOUNT_PERCENT GIFT_VOUCHER"`
	Value            float64        `json:"value" binding:"gte=0,lte=100"`
	VoucherConfig    *VoucherConfig `json:"voucher_config"`
	TargetProductIDs []string       `json:"target_product_ids"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	IsActive         bool           `json:"is_active"`
}

// UpdateCampaignRequest is the payload for editing a campaign.
type UpdateCampaignRequest struct {
	Name             *string        `json:"name" binding:"omitempty,min=1"`
	Value            *float64       `json:"value" binding:"omitempty,gte=0,lte=100"`
	VoucherConfig    *VoucherConfig `json:"voucher_config"`
	TargetProductIDs []string       `json:"target_product_ids"`
	StartDate        *time.Time     `json:"start_date"`
	EndDate          *time.Time     `json:"end_date"`
	IsActive         *bool          `json:"is_active"`
}
