package service

// In-memory repository stubs shared by the service unit tests. They implement
// the repository contracts over plain maps/slices; transactions degrade to
// direct calls (runTx passes a nil tx when DB() is nil).

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/model"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Item repository stub ─────────────────────────────────────────────────────

type stubItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Item
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) add(it model.Item) *model.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	r.items[it.ID] = &it
	return &it
}

func (r *stubItemRepo) Create(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *stubItemRepo) List(_ context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *stubItemRepo) ListSince(_ context.Context, ts time.Time) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Item
	for _, it := range r.items {
		if !it.UpdatedAt.Before(ts) {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return out, nil
}

func (r *stubItemRepo) Update(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *stubItemRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *stubItemRepo) ApplyDeltaTx(_ *gorm.DB, id uuid.UUID, delta float64, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return false, nil
	}
	it.Quantity += delta
	it.UpdatedAt = now
	return true, nil
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

// ── Event repository stub ────────────────────────────────────────────────────

type stubEventRepo struct {
	mu        sync.Mutex
	events    []model.InventoryEvent
	createErr error     // when set, CreateTx fails with it
	lastSince time.Time // records the window start ListSince was given
}

func newStubEventRepo() *stubEventRepo { return &stubEventRepo{} }

func (r *stubEventRepo) CreateTx(_ *gorm.DB, e *model.InventoryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *stubEventRepo) List(_ context.Context, filter repository.EventFilter) ([]model.InventoryEvent, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InventoryEvent
	for _, e := range r.events {
		if filter.ItemID != nil && e.ItemID != *filter.ItemID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, int64(len(out)), nil
}

func (r *stubEventRepo) ListSince(_ context.Context, start time.Time) ([]model.InventoryEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastSince = start
	var out []model.InventoryEvent
	for _, e := range r.events {
		if !e.OccurredAt.Before(start) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEventRepo) SumDeltasByItem(_ context.Context) ([]repository.ItemDeltaSum, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := make(map[uuid.UUID]float64)
	for _, e := range r.events {
		totals[e.ItemID] += e.DeltaQuantity
	}
	out := make([]repository.ItemDeltaSum, 0, len(totals))
	for id, total := range totals {
		out = append(out, repository.ItemDeltaSum{ItemID: id, Total: total})
	}
	return out, nil
}

func (r *stubEventRepo) DB() *gorm.DB { return nil }
