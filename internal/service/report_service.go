package service

import (
	"context"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportService computes cost and usage totals over a window of the ledger.
type ReportService interface {
	Summarize(ctx context.Context, rng string, explicitStart *time.Time) (*dto.SummaryResponse, error)
}

type reportService struct {
	events repository.EventRepository
	now    func() time.Time
}

func NewReportService(events repository.EventRepository) ReportService {
	return &reportService{events: events, now: time.Now}
}

// Summarize aggregates all events from the window start upward (no upper
// bound). Cost counts only positive deltas that captured a price; unpriced
// restocks contribute nothing. Usage is the magnitude of all consumption.
// Any range other than "monthly" — "weekly" included, typos included — falls
// back to the 7-day window; the label is echoed back verbatim so callers can
// spot the fallback.
func (s *reportService) Summarize(ctx context.Context, rng string, explicitStart *time.Time) (*dto.SummaryResponse, error) {
	var start time.Time
	if explicitStart != nil {
		start = *explicitStart
	} else {
		t := s.now().UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if rng == "monthly" {
			start = day.AddDate(0, 0, -30)
		} else {
			start = day.AddDate(0, 0, -7)
		}
	}

	events, err := s.events.ListSince(ctx, start)
	if err != nil {
		return nil, err
	}

	cost := decimal.Zero
	usage := 0.0
	for _, e := range events {
		switch {
		case e.DeltaQuantity > 0:
			if e.UnitPriceAtEvent != nil {
				cost = cost.Add(e.UnitPriceAtEvent.Mul(decimal.NewFromFloat(e.DeltaQuantity)))
			}
		case e.DeltaQuantity < 0:
			usage += -e.DeltaQuantity
		}
	}

	return &dto.SummaryResponse{
		Start:      start.UTC().Format(time.RFC3339),
		Range:      rng,
		TotalCost:  cost,
		TotalUsage: usage,
	}, nil
}
