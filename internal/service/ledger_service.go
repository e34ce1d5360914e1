package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/model"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService owns the one consistency rule of the system: appending an
// event and applying its delta to the referenced item is a single atomic unit.
// Direct item edits can still bypass the ledger; the recount audit exists to
// spot the resulting drift.
type LedgerService interface {
	Record(ctx context.Context, req dto.RecordEventRequest) (*dto.EventResponse, error)
	List(ctx context.Context, filter dto.EventFilter) (*dto.EventListResponse, error)
}

type ledgerService struct {
	events repository.EventRepository
	items  repository.ItemRepository
	now    func() time.Time
}

func NewLedgerService(events repository.EventRepository, items repository.ItemRepository) LedgerService {
	return &ledgerService{events: events, items: items, now: time.Now}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Record appends one event and applies its delta to the item, atomically.
// A well-formed item id that matches no item is NOT an error: the event is
// committed anyway (history accepts rows for items that were deleted or
// mistyped) and no item is touched. Quantity is never clamped; corrections
// may drive it negative and out-of-stock detection relies on that.
func (s *ledgerService) Record(ctx context.Context, req dto.RecordEventRequest) (*dto.EventResponse, error) {
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: item_id %q", ErrInvalidID, req.ItemID)
	}

	now := s.now().UTC()

	ev := model.InventoryEvent{
		ItemID:           itemID,
		DeltaQuantity:    req.DeltaQuantity,
		UnitPriceAtEvent: req.UnitPriceAtEvent,
		Type:             req.Type,
		OccurredAt:       now,
		CreatedAt:        now,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: event id %q", ErrInvalidID, *req.ID)
		}
		ev.ID = id
	} else {
		ev.ID = uuid.New()
	}
	if ev.Type == "" {
		ev.Type = model.EventAdjust
	}
	if !model.ValidEventType(ev.Type) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, ev.Type)
	}
	if req.OccurredAt != nil {
		ev.OccurredAt = req.OccurredAt.UTC()
	}

	txErr := runTx(ctx, s.events.DB(), func(tx *gorm.DB) error {
		if err := s.events.CreateTx(tx, &ev); err != nil {
			return err
		}
		// RowsAffected 0 means the item is gone — tolerated, the event
		// alone still commits.
		if _, err := s.items.ApplyDeltaTx(tx, itemID, ev.DeltaQuantity, now); err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return eventToResponse(&ev), nil
}

func (s *ledgerService) List(ctx context.Context, filter dto.EventFilter) (*dto.EventListResponse, error) {
	repoFilter := repository.EventFilter{
		Type:  filter.Type,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	if filter.ItemID != "" {
		id, err := uuid.Parse(filter.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: item_id %q", ErrInvalidID, filter.ItemID)
		}
		repoFilter.ItemID = &id
	}

	events, total, err := s.events.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	resp := &dto.EventListResponse{
		Data:  make([]dto.EventResponse, 0, len(events)),
		Total: total,
		Page:  repoFilter.Page,
		Limit: repoFilter.Limit,
	}
	if resp.Page < 1 {
		resp.Page = 1
	}
	if resp.Limit < 1 || resp.Limit > 500 {
		resp.Limit = 50
	}
	for i := range events {
		resp.Data = append(resp.Data, *eventToResponse(&events[i]))
	}
	return resp, nil
}

func eventToResponse(e *model.InventoryEvent) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:               e.ID.String(),
		ItemID:           e.ItemID.String(),
		DeltaQuantity:    e.DeltaQuantity,
		UnitPriceAtEvent: e.UnitPriceAtEvent,
		Type:             e.Type,
		OccurredAt:       e.OccurredAt.UTC().Format(time.RFC3339),
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.Item != nil {
		resp.ItemName = &e.Item.Name
	}
	return resp
}
