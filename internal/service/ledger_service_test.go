package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestRecordEventAppliesDeltaToItem(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	svc := &ledgerService{events: events, items: items, now: fixedClock(now)}

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	it := items.add(model.Item{Name: "Milk", Quantity: 5, Unit: "l", UpdatedAt: created})

	price := decimal.RequireFromString("1.89")
	resp, err := svc.Record(context.Background(), dto.RecordEventRequest{
		ItemID:           it.ID.String(),
		DeltaQuantity:    -2,
		UnitPriceAtEvent: &price,
		Type:             model.EventConsume,
	})
	require.NoError(t, err)

	assert.Equal(t, it.ID.String(), resp.ItemID)
	assert.Equal(t, -2.0, resp.DeltaQuantity)
	assert.Equal(t, model.EventConsume, resp.Type)
	assert.NotEmpty(t, resp.ID)

	stored, err := items.FindByID(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.0, stored.Quantity)
	assert.True(t, stored.UpdatedAt.After(created), "updated_at must be refreshed")
	require.Len(t, events.events, 1)
}

func TestRecordEventDanglingItemReferenceTolerated(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	svc := NewLedgerService(events, items)

	ghost := uuid.NewString()
	resp, err := svc.Record(context.Background(), dto.RecordEventRequest{
		ItemID:        ghost,
		DeltaQuantity: 4,
	})
	require.NoError(t, err, "events for missing items are accepted")
	assert.Equal(t, ghost, resp.ItemID)

	// The event is durable, and no item was conjured up.
	require.Len(t, events.events, 1)
	all, err := items.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordEventDefaults(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	svc := &ledgerService{events: events, items: items, now: fixedClock(now)}

	it := items.add(model.Item{Name: "Eggs", Quantity: 6})

	resp, err := svc.Record(context.Background(), dto.RecordEventRequest{ItemID: it.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, model.EventAdjust, resp.Type, "type defaults to adjust")
	assert.Equal(t, now.Format(time.RFC3339), resp.OccurredAt, "occurred_at defaults to now")
	assert.Equal(t, now.Format(time.RFC3339), resp.CreatedAt)
	assert.Equal(t, 0.0, resp.DeltaQuantity, "zero delta is a legal event")
}

func TestRecordEventHonorsSuppliedIDAndBackdating(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	svc := &ledgerService{events: events, items: items, now: fixedClock(now)}

	it := items.add(model.Item{Name: "Butter", Quantity: 1})
	evID := uuid.NewString()
	occurred := now.AddDate(0, 0, -9)

	resp, err := svc.Record(context.Background(), dto.RecordEventRequest{
		ID:            &evID,
		ItemID:        it.ID.String(),
		DeltaQuantity: 2,
		OccurredAt:    &occurred,
	})
	require.NoError(t, err)

	assert.Equal(t, evID, resp.ID)
	assert.Equal(t, occurred.Format(time.RFC3339), resp.OccurredAt, "business time is kept verbatim")
	assert.Equal(t, now.Format(time.RFC3339), resp.CreatedAt, "system time is always now")
}

func TestRecordEventNeverClampsQuantity(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	svc := NewLedgerService(events, items)

	it := items.add(model.Item{Name: "Yogurt", Quantity: 1})

	_, err := svc.Record(context.Background(), dto.RecordEventRequest{
		ItemID:        it.ID.String(),
		DeltaQuantity: -5,
		Type:          model.EventCorrection,
	})
	require.NoError(t, err)

	stored, err := items.FindByID(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, -4.0, stored.Quantity, "corrections may drive quantity negative")
}

func TestRecordEventRejectsMalformedInput(t *testing.T) {
	svc := NewLedgerService(newStubEventRepo(), newStubItemRepo())

	_, err := svc.Record(context.Background(), dto.RecordEventRequest{ItemID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrInvalidID)

	bad := "also-not-a-uuid"
	_, err = svc.Record(context.Background(), dto.RecordEventRequest{ID: &bad, ItemID: uuid.NewString()})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Record(context.Background(), dto.RecordEventRequest{
		ItemID: uuid.NewString(),
		Type:   "teleport",
	})
	assert.ErrorIs(t, err, ErrInvalidEventType)
}

func TestRecordEventFailedAppendLeavesItemUntouched(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	events.createErr = errors.New("disk on fire")
	svc := NewLedgerService(events, items)

	it := items.add(model.Item{Name: "Tomatoes", Quantity: 3})

	_, err := svc.Record(context.Background(), dto.RecordEventRequest{
		ItemID:        it.ID.String(),
		DeltaQuantity: -1,
	})
	require.Error(t, err)

	stored, findErr := items.FindByID(context.Background(), it.ID)
	require.NoError(t, findErr)
	assert.Equal(t, 3.0, stored.Quantity, "no partial application on failure")
	assert.Empty(t, events.events)
}

func TestListEventsFiltersByItemAndType(t *testing.T) {
	items := newStubItemRepo()
	events := newStubEventRepo()
	svc := NewLedgerService(events, items)

	a := items.add(model.Item{Name: "Milk"})
	b := items.add(model.Item{Name: "Eggs"})

	for _, req := range []dto.RecordEventRequest{
		{ItemID: a.ID.String(), DeltaQuantity: 2, Type: model.EventPurchase},
		{ItemID: a.ID.String(), DeltaQuantity: -1, Type: model.EventConsume},
		{ItemID: b.ID.String(), DeltaQuantity: 6, Type: model.EventPurchase},
	} {
		_, err := svc.Record(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), dto.EventFilter{ItemID: a.ID.String()})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)

	resp, err = svc.List(context.Background(), dto.EventFilter{Type: model.EventPurchase})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Total)

	_, err = svc.List(context.Background(), dto.EventFilter{ItemID: "nope"})
	assert.ErrorIs(t, err, ErrInvalidID)
}
