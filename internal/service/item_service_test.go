package service

import (
	"context"
	"testing"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemDefaults(t *testing.T) {
	items := newStubItemRepo()
	svc := NewItemService(items)

	resp, err := svc.Create(context.Background(), dto.CreateItemRequest{Name: "Milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pcs", resp.Unit)
	assert.Equal(t, 0.0, resp.Quantity)
	assert.Equal(t, 1.0, resp.LowThreshold)
	assert.True(t, resp.NotifyOnLow)
	assert.True(t, resp.NotifyOnExpire)
	assert.Nil(t, resp.ExpirationDate)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
}

func TestCreateItemHonorsSuppliedID(t *testing.T) {
	items := newStubItemRepo()
	svc := NewItemService(items)

	id := uuid.NewString()
	notify := false
	threshold := 0.25
	price := decimal.RequireFromString("7.50")

	resp, err := svc.Create(context.Background(), dto.CreateItemRequest{
		ID:           &id,
		Name:         "Olive oil",
		Quantity:     0.8,
		Unit:         "l",
		PricePerUnit: &price,
		NotifyOnLow:  &notify,
		LowThreshold: &threshold,
	})
	require.NoError(t, err)

	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "l", resp.Unit)
	assert.False(t, resp.NotifyOnLow)
	assert.Equal(t, 0.25, resp.LowThreshold)

	bad := "definitely-not-a-uuid"
	_, err = svc.Create(context.Background(), dto.CreateItemRequest{ID: &bad, Name: "X"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestUpdateItemReplacesAllFieldsAndRefreshesTimestamp(t *testing.T) {
	items := newStubItemRepo()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	svc := &itemService{repo: items, now: fixedClock(now)}

	it := items.add(model.Item{
		Name: "Milk", Quantity: 2, Unit: "l", ToBuy: true,
		NotifyOnLow: true, NotifyOnExpire: true, LowThreshold: 1,
		CreatedAt: created, UpdatedAt: created,
	})

	exp := now.AddDate(0, 0, 5)
	resp, err := svc.Update(context.Background(), it.ID, dto.UpdateItemRequest{
		Name:           "Whole milk",
		Quantity:       1.5,
		Unit:           "l",
		ExpirationDate: &exp,
		ToBuy:          false,
		NotifyOnLow:    false,
		NotifyOnExpire: true,
		LowThreshold:   0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Whole milk", resp.Name)
	assert.Equal(t, 1.5, resp.Quantity)
	assert.False(t, resp.ToBuy)
	assert.False(t, resp.NotifyOnLow)
	assert.Equal(t, 0.5, resp.LowThreshold)
	assert.Equal(t, now.Format(time.RFC3339), resp.UpdatedAt)
	assert.Equal(t, created.Format(time.RFC3339), resp.CreatedAt, "created_at is immutable")
}

func TestUpdateAndDeleteMissingItem(t *testing.T) {
	svc := NewItemService(newStubItemRepo())

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateItemRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrItemNotFound)

	err = svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListSinceFiltersOnUpdatedAt(t *testing.T) {
	items := newStubItemRepo()
	svc := NewItemService(items)

	cutoff := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	items.add(model.Item{Name: "Old", UpdatedAt: cutoff.AddDate(0, 0, -1)})
	items.add(model.Item{Name: "Exact", UpdatedAt: cutoff})
	items.add(model.Item{Name: "Fresh", UpdatedAt: cutoff.AddDate(0, 0, 1)})

	resp, err := svc.ListSince(context.Background(), "2026-02-01T00:00:00Z")
	require.NoError(t, err)

	require.Len(t, resp, 2, "boundary timestamp is inclusive")
	assert.Equal(t, "Exact", resp[0].Name)
	assert.Equal(t, "Fresh", resp[1].Name)
}

func TestListSinceRejectsGarbageTimestamp(t *testing.T) {
	svc := NewItemService(newStubItemRepo())

	_, err := svc.ListSince(context.Background(), "next tuesday")
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestListOrdersByName(t *testing.T) {
	items := newStubItemRepo()
	svc := NewItemService(items)

	items.add(model.Item{Name: "Yogurt"})
	items.add(model.Item{Name: "Butter"})
	items.add(model.Item{Name: "Milk"})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp, 3)
	assert.Equal(t, []string{"Butter", "Milk", "Yogurt"},
		[]string{resp[0].Name, resp[1].Name, resp[2].Name})
}
