package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a rentable piece of sports equipment. Available is false exactly
// while one active reservation holds the item; nobody else may claim it.
type Item struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Available    bool            `json:"available"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
