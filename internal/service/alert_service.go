package service

import (
	"context"
	"sort"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/model"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"
)

// AlertService classifies the current item snapshot into actionable lists.
// Read-only: repeated calls over unchanged data return identical results.
type AlertService interface {
	Evaluate(ctx context.Context, q dto.AlertsQuery) (*dto.AlertsResponse, error)
	// ShoppingList returns the raw to-buy and running-low items for the
	// PDF export, plus the evaluation instant.
	ShoppingList(ctx context.Context) (toBuy, low []model.Item, now time.Time, err error)
}

type alertService struct {
	repo repository.ItemRepository
	now  func() time.Time
}

func NewAlertService(repo repository.ItemRepository) AlertService {
	return &alertService{repo: repo, now: time.Now}
}

// Evaluate buckets every item into the categories it belongs to. An item can
// land in several lists at once (out of stock is usually also low). All
// ordering ties break on id so results are reproducible.
func (s *alertService) Evaluate(ctx context.Context, q dto.AlertsQuery) (*dto.AlertsResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	horizon := now.AddDate(0, 0, q.Days)

	var low, expSoon, outOfStock, toBuy []model.Item
	for _, it := range items {
		threshold := it.LowThreshold
		if q.Threshold != nil {
			threshold = *q.Threshold
		}
		if it.Quantity <= threshold {
			low = append(low, it)
		}
		// Boundary is inclusive: expiring exactly at the horizon counts.
		// Items without an expiration are simply not in this category.
		if it.ExpirationDate != nil && !it.ExpirationDate.After(horizon) {
			expSoon = append(expSoon, it)
		}
		if it.Quantity <= 0 {
			outOfStock = append(outOfStock, it)
		}
		if it.ToBuy {
			toBuy = append(toBuy, it)
		}
	}

	sort.Slice(low, func(i, j int) bool {
		if low[i].Quantity != low[j].Quantity {
			return low[i].Quantity < low[j].Quantity
		}
		return low[i].ID.String() < low[j].ID.String()
	})
	sort.Slice(expSoon, func(i, j int) bool {
		a, b := *expSoon[i].ExpirationDate, *expSoon[j].ExpirationDate
		if !a.Equal(b) {
			return a.Before(b)
		}
		return expSoon[i].ID.String() < expSoon[j].ID.String()
	})
	sortByName(outOfStock)
	sortByName(toBuy)

	return &dto.AlertsResponse{
		Low:        itemsToResponses(low),
		ExpSoon:    itemsToResponses(expSoon),
		OutOfStock: itemsToResponses(outOfStock),
		ToBuy:      itemsToResponses(toBuy),
		Now:        now.Format(time.RFC3339),
	}, nil
}

func (s *alertService) ShoppingList(ctx context.Context) ([]model.Item, []model.Item, time.Time, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, time.Time{}, err
	}

	now := s.now().UTC()
	var toBuy, low []model.Item
	for _, it := range items {
		if it.ToBuy {
			toBuy = append(toBuy, it)
		}
		// The printed list respects the per-item notify flag; the API
		// alert lists do not filter on it.
		if it.NotifyOnLow && !it.ToBuy && it.Quantity <= it.LowThreshold {
			low = append(low, it)
		}
	}
	sortByName(toBuy)
	sort.Slice(low, func(i, j int) bool {
		if low[i].Quantity != low[j].Quantity {
			return low[i].Quantity < low[j].Quantity
		}
		return low[i].ID.String() < low[j].ID.String()
	})
	return toBuy, low, now, nil
}

func sortByName(items []model.Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID.String() < items[j].ID.String()
	})
}
