package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Tiny-Clowns/FridgeNaut/internal/dto"
	"github.com/Tiny-Clowns/FridgeNaut/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecountService fronts the async ledger recount: enqueue a job, fetch its
// report later. The heavy lifting happens in worker.RecountWorker.
type RecountService interface {
	Enqueue(ctx context.Context) (*dto.RecountJobResponse, error)
	Report(ctx context.Context, jobID string) (*dto.RecountReport, error)
}

type recountService struct {
	dispatcher *worker.Dispatcher
	rdb        *redis.Client
	ttl        time.Duration
}

func NewRecountService(dispatcher *worker.Dispatcher, rdb *redis.Client, ttl time.Duration) RecountService {
	return &recountService{dispatcher: dispatcher, rdb: rdb, ttl: ttl}
}

func (s *recountService) Enqueue(ctx context.Context) (*dto.RecountJobResponse, error) {
	jobID := uuid.NewString()

	// Park a "queued" report immediately so the status endpoint never 404s
	// between enqueue and pickup.
	queued := dto.RecountReport{
		JobID:     jobID,
		Status:    "queued",
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Drifted:   []dto.RecountDrift{},
	}
	data, err := json.Marshal(queued)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, worker.RecountKey(jobID), data, s.ttl).Err(); err != nil {
		return nil, err
	}

	if err := s.dispatcher.EnqueueRecount(ctx, jobID); err != nil {
		return nil, err
	}
	return &dto.RecountJobResponse{JobID: jobID, Status: "queued"}, nil
}

func (s *recountService) Report(ctx context.Context, jobID string) (*dto.RecountReport, error) {
	data, err := s.rdb.Get(ctx, worker.RecountKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	var report dto.RecountReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
