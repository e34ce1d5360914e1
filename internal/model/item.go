package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a trackable household good. Quantity is a materialized running total
// maintained by the ledger service; it is signed and never clamped at zero, so
// backdated corrections may leave it transiently negative.
type Item struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"index;not null"`
	Quantity       float64   `gorm:"not null;default:0"`
	Unit           string    `gorm:"not null;default:'pcs'"`
	ExpirationDate *time.Time
	PricePerUnit   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ToBuy          bool             `gorm:"not null;default:false"`
	NotifyOnLow    bool             `gorm:"not null;default:true"`
	NotifyOnExpire bool             `gorm:"not null;default:true"`
	// LowThreshold is the quantity at or below which the item is flagged
	// for replenishment (per-item; alert queries may override it).
	LowThreshold float64 `gorm:"not null;default:1"`
	CreatedAt    time.Time
	// UpdatedAt backs the /items/since range scan — keep it indexed.
	UpdatedAt time.Time `gorm:"index"`
}
