package models

import "time"

// Voucher is a concrete discount voucher minted from a GIFT_VOUCHER campaign
// when a targeted product is purchased.
type Voucher struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	CampaignID    string    `json:"campaign_id"`
	UserID        string    `json:"user_id,omitempty"`
	DiscountValue float64   `json:"discount_value"`
	MaxDiscount   float64   `json:"max_discount"`
	ExpiresAt     time.Time `json:"expires_at"`
	Redeemed      bool      `json:"redeemed"`
	CreatedAt     time.Time `json:"created_at"`
}
