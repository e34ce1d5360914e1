package repository

import (
	"context"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventFilter defines filters for listing ledger events.
type EventFilter struct {
	ItemID *uuid.UUID
	Type   string
	Page   int
	Limit  int
}

// ItemDeltaSum is one row of the ledger replay aggregation.
type ItemDeltaSum struct {
	ItemID uuid.UUID
	Total  float64
}

// EventRepository is the append-and-read contract for the ledger.
// There is deliberately no update or delete: events are immutable.
type EventRepository interface {
	CreateTx(tx *gorm.DB, e *model.InventoryEvent) error
	List(ctx context.Context, filter EventFilter) ([]model.InventoryEvent, int64, error)
	// ListSince returns events with occurred_at >= start, backed by the
	// occurred_at index. Open-ended upward: "now" is not a bound.
	ListSince(ctx context.Context, start time.Time) ([]model.InventoryEvent, error)
	// SumDeltasByItem replays the whole ledger as SUM(delta_quantity)
	// grouped by item — the recount audit's source of truth.
	SumDeltasByItem(ctx context.Context) ([]ItemDeltaSum, error)
	DB() *gorm.DB
}

type eventRepo struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &eventRepo{db: db} }

func (r *eventRepo) CreateTx(tx *gorm.DB, e *model.InventoryEvent) error {
	return tx.Create(e).Error
}

func (r *eventRepo) List(ctx context.Context, filter EventFilter) ([]model.InventoryEvent, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.InventoryEvent{}).
		Preload("Item")
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}
	offset := (page - 1) * limit

	var events []model.InventoryEvent
	err := q.Order("occurred_at DESC, id DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, total, err
}

func (r *eventRepo) ListSince(ctx context.Context, start time.Time) ([]model.InventoryEvent, error) {
	var events []model.InventoryEvent
	err := r.db.WithContext(ctx).
		Where("occurred_at >= ?", start).
		Find(&events).Error
	return events, err
}

func (r *eventRepo) SumDeltasByItem(ctx context.Context) ([]ItemDeltaSum, error) {
	var sums []ItemDeltaSum
	err := r.db.WithContext(ctx).Model(&model.InventoryEvent{}).
		Select("item_id, SUM(delta_quantity) AS total").
		Group("item_id").
		Scan(&sums).Error
	return sums, err
}

func (r *eventRepo) DB() *gorm.DB { return r.db }
