package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RecordEventRequest is the payload of POST /v1/events. DeltaQuantity
// deliberately carries no "required" tag: a zero delta is a legal event.
type RecordEventRequest struct {
	ID               *string          `json:"id"                  validate:"omitempty,uuid"`
	ItemID           string           `json:"item_id"             validate:"required,uuid"`
	DeltaQuantity    float64          `json:"delta_quantity"`
	UnitPriceAtEvent *decimal.Decimal `json:"unit_price_at_event"`
	Type             string           `json:"type"                validate:"omitempty,oneof=adjust purchase consume correction discard"`
	OccurredAt       *time.Time       `json:"occurred_at"`
}

// EventFilter is bound from the query string of GET /v1/events.
type EventFilter struct {
	ItemID string `form:"item_id" validate:"omitempty,uuid"`
	Type   string `form:"type"    validate:"omitempty,oneof=adjust purchase consume correction discard"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=500"`
}

// SummaryQuery is bound from the query string of GET /v1/events/summary.
type SummaryQuery struct {
	Range string `form:"range,default=weekly"`
	Start string `form:"start"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EventResponse struct {
	ID               string           `json:"id"`
	ItemID           string           `json:"item_id"`
	ItemName         *string          `json:"item_name,omitempty"`
	DeltaQuantity    float64          `json:"delta_quantity"`
	UnitPriceAtEvent *decimal.Decimal `json:"unit_price_at_event"`
	Type             string           `json:"type"`
	OccurredAt       string           `json:"occurred_at"`
	CreatedAt        string           `json:"created_at"`
}

type EventListResponse struct {
	Data  []EventResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// SummaryResponse echoes the resolved window alongside the aggregates.
// TotalCost is money (priced restocks); TotalUsage is a quantity magnitude.
type SummaryResponse struct {
	Start      string          `json:"start"`
	Range      string          `json:"range"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	TotalUsage float64         `json:"total_usage"`
}
