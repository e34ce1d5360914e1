package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	ID             *string          `json:"id"              validate:"omitempty,uuid"`
	Name           string           `json:"name"            validate:"required,min=1,max=120"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"            validate:"omitempty,max=32"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit"`
	ToBuy          bool             `json:"to_buy"`
	NotifyOnLow    *bool            `json:"notify_on_low"`
	NotifyOnExpire *bool            `json:"notify_on_expire"`
	LowThreshold   *float64         `json:"low_threshold"`
}

// UpdateItemRequest replaces every mutable attribute of the item on PUT.
type UpdateItemRequest struct {
	Name           string           `json:"name"            validate:"required,min=1,max=120"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"            validate:"omitempty,max=32"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit"`
	ToBuy          bool             `json:"to_buy"`
	NotifyOnLow    bool             `json:"notify_on_low"`
	NotifyOnExpire bool             `json:"notify_on_expire"`
	LowThreshold   float64          `json:"low_threshold"   validate:"omitempty"`
}

// AlertsQuery is bound from the query string of GET /v1/items/alerts.
type AlertsQuery struct {
	Days      int      `form:"days,default=3" validate:"min=0,max=365"`
	Threshold *float64 `form:"threshold"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"`
	ExpirationDate *string          `json:"expiration_date"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit"`
	ToBuy          bool             `json:"to_buy"`
	NotifyOnLow    bool             `json:"notify_on_low"`
	NotifyOnExpire bool             `json:"notify_on_expire"`
	LowThreshold   float64          `json:"low_threshold"`
	CreatedAt      string           `json:"created_at"`
	UpdatedAt      string           `json:"updated_at"`
}

// AlertsResponse groups the four alert categories. An item may appear in more
// than one category; each list carries its own ordering.
type AlertsResponse struct {
	Low        []ItemResponse `json:"low"`
	ExpSoon    []ItemResponse `json:"exp_soon"`
	OutOfStock []ItemResponse `json:"out_of_stock"`
	ToBuy      []ItemResponse `json:"to_buy"`
	Now        string         `json:"now"`
}
