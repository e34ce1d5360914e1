package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event type tags. The set is closed; unknown tags are rejected at the API edge.
const (
	EventAdjust     = "adjust"
	EventPurchase   = "purchase"
	EventConsume    = "consume"
	EventCorrection = "correction"
	EventDiscard    = "discard"
)

// InventoryEvent is one immutable row of the quantity ledger. Events are only
// ever appended; history survives item deletion, so ItemID is a weak reference
// (no FK constraint is created — see infra.NewDatabase).
type InventoryEvent struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index"`
	DeltaQuantity float64   `gorm:"not null"` // positive = restock, negative = consumption
	// UnitPriceAtEvent snapshots the price at the moment of the event;
	// nil when the caller did not capture one.
	UnitPriceAtEvent *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Type             string           `gorm:"not null;default:'adjust'"`
	// OccurredAt is business time and may be backdated; it backs the
	// summary window scan — keep it indexed.
	OccurredAt time.Time `gorm:"index;not null"`
	CreatedAt  time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

// TableName overrides GORM's default pluralization (inventory_events is fine,
// but being explicit keeps the ledger table name stable across GORM upgrades).
func (InventoryEvent) TableName() string { return "inventory_events" }

// ValidEventType reports whether t is one of the closed event type tags.
func ValidEventType(t string) bool {
	switch t {
	case EventAdjust, EventPurchase, EventConsume, EventCorrection, EventDiscard:
		return true
	}
	return false
}
