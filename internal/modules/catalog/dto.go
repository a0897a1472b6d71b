package catalog

import "github.com/shopspring/decimal"

type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Brand        string          `json:"brand"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	CategoryID   *int64          `json:"category_id"`
}

type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	Brand        *string          `json:"brand"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
	CategoryID   *int64           `json:"category_id"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ItemCount   int64  `json:"item_count"`
}
