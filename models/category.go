package models

import "time"

// Category groups products. Products reference it by slug only; deleting a
// category leaves product slugs dangling and the storefront falls back to
// showing the raw slug.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required,slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// UpdateCategoryRequest is the payload for editing a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Slug        *string `json:"slug" binding:"omitempty,slug"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}
