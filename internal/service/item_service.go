package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/model"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemService is the business logic contract for item CRUD.
type ItemService interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	List(ctx context.Context) ([]dto.ItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ListSince returns items touched at or after the given timestamp
	// (RFC 3339, or a bare date). Used by clients to poll for changes.
	ListSince(ctx context.Context, raw string) ([]dto.ItemResponse, error)
}

type itemService struct {
	repo repository.ItemRepository
	now  func() time.Time
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo, now: time.Now}
}

func (s *itemService) Create(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := s.now().UTC()

	it := model.Item{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
		PricePerUnit:   req.PricePerUnit,
		ToBuy:          req.ToBuy,
		NotifyOnLow:    true,
		NotifyOnExpire: true,
		LowThreshold:   1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, *req.ID)
		}
		it.ID = id
	} else {
		it.ID = uuid.New()
	}
	if it.Unit == "" {
		it.Unit = "pcs"
	}
	if req.NotifyOnLow != nil {
		it.NotifyOnLow = *req.NotifyOnLow
	}
	if req.NotifyOnExpire != nil {
		it.NotifyOnExpire = *req.NotifyOnExpire
	}
	if req.LowThreshold != nil {
		it.LowThreshold = *req.LowThreshold
	}

	if err := s.repo.Create(ctx, &it); err != nil {
		return nil, err
	}
	return ItemToResponse(&it), nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return ItemToResponse(it), nil
}

func (s *itemService) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(items), nil
}

// Update is a full-field replace of the mutable attributes.
func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	it.Name = req.Name
	it.Quantity = req.Quantity
	it.Unit = req.Unit
	if it.Unit == "" {
		it.Unit = "pcs"
	}
	it.ExpirationDate = req.ExpirationDate
	it.PricePerUnit = req.PricePerUnit
	it.ToBuy = req.ToBuy
	it.NotifyOnLow = req.NotifyOnLow
	it.NotifyOnExpire = req.NotifyOnExpire
	it.LowThreshold = req.LowThreshold
	it.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return ItemToResponse(it), nil
}

// Delete hard-deletes the item. Ledger events keep their (now dangling)
// reference: history outlives the item.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrItemNotFound
	}
	return nil
}

func (s *itemService) ListSince(ctx context.Context, raw string) ([]dto.ItemResponse, error) {
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListSince(ctx, ts)
	if err != nil {
		return nil, err
	}
	return itemsToResponses(items), nil
}

// ParseTimestamp accepts RFC 3339 (with or without sub-second precision) and
// bare dates, mirroring the lenient parsing clients already rely on.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
}

// ItemToResponse maps a stored item to its API shape. Exported because the
// ledger and alert services reuse it.
func ItemToResponse(it *model.Item) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:             it.ID.String(),
		Name:           it.Name,
		Quantity:       it.Quantity,
		Unit:           it.Unit,
		PricePerUnit:   it.PricePerUnit,
		ToBuy:          it.ToBuy,
		NotifyOnLow:    it.NotifyOnLow,
		NotifyOnExpire: it.NotifyOnExpire,
		LowThreshold:   it.LowThreshold,
		CreatedAt:      it.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      it.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if it.ExpirationDate != nil {
		exp := it.ExpirationDate.UTC().Format(time.RFC3339)
		resp.ExpirationDate = &exp
	}
	return resp
}

func itemsToResponses(items []model.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *ItemToResponse(&items[i]))
	}
	return out
}
