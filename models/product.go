package models

import "time"

// Product is a catalog entry. Price and CostPrice are integer currency
// units; CostPrice always mirrors the unit cost of the most recent stock
// import (last cost wins).
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	CostPrice   int64     `json:"cost_price"`
	Category    string    `json:"category"` // Category.Slug, not referentially enforced
	Images      []string  `json:"images"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	ReleaseDate time.Time `json:"release_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PricedProduct is a Product annotated with the campaign-adjusted price.
// FinalPrice is intentionally fractional: percentage discounts are applied
// without rounding.
type PricedProduct struct {
	Product
	FinalPrice       float64   `json:"final_price"`
	DiscountPercent  float64   `json:"discount_percent"`
	DiscountCampaign *Campaign `json:"discount_campaign,omitempty"`
	GiftCampaign     *Campaign `json:"gift_campaign,omitempty"`
}

// CreateProductRequest is the payload for creating a product. A nonzero
// InitialStock is recorded through the inventory ledger so that every unit
// of stock is backed by exactly one stock-import entry.
type CreateProductRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	Price           int64     `json:"price" binding:"required,gte=0"`
	Category        string    `json:"category" binding:"required"`
	Images          []string  `json:"images"`
	Rating          float64   `json:"rating" binding:"gte=0,lte=5"`
	ReleaseDate     time.Time `json:"release_date"`
	InitialStock    int       `json:"initial_stock" binding:"gte=0"`
	InitialUnitCost int64     `json:"initial_unit_cost" binding:"gte=0"`
}

// UpdateProductRequest is the payload for editing a product. Stock and cost
// are deliberately absent: only the inventory ledger mutates them after
// creation.
type UpdateProductRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Price       *int64     `json:"price" binding:"omitempty,gte=0"`
	Category    *string    `json:"category"`
	Images      []string   `json:"images"`
	Rating      *float64   `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ReleaseDate *time.Time `json:"release_date"`
}
