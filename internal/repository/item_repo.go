package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	// List returns every item ordered by name (id as tie-break).
	List(ctx context.Context) ([]model.Item, error)
	// ListSince returns items with updated_at >= ts; backed by the
	// updated_at index.
	ListSince(ctx context.Context, ts time.Time) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	// Delete hard-deletes the item and reports whether a row existed.
	// Ledger rows referencing the item are left untouched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// ApplyDeltaTx adds delta to the item's quantity and refreshes
	// updated_at, inside the caller's transaction. The increment happens
	// in SQL so concurrent deltas for the same item both land. Returns
	// false when the item does not exist (which is not an error for the
	// ledger — see service.LedgerService).
	ApplyDeltaTx(tx *gorm.DB, id uuid.UUID, delta float64, now time.Time) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) ListSince(ctx context.Context, ts time.Time) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("updated_at >= ?", ts).
		Order("updated_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *itemRepo) ApplyDeltaTx(tx *gorm.DB, id uuid.UUID, delta float64, now time.Time) (bool, error) {
	if tx == nil {
		return false, errors.New("ApplyDeltaTx requires a live transaction")
	}
	res := tx.Model(&model.Item{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   gorm.Expr("quantity + ?", delta),
		"updated_at": now,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
