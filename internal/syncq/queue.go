// Package syncq makes mutating network calls resilient to connectivity loss
// by queueing failed requests durably and replaying them on a reconnect
// signal. Delivery is at-least-once: replay targets must be idempotent or
// tolerate duplicates.
package syncq

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mojicode/internal/models"
	"mojicode/internal/observability"
	"mojicode/internal/repository"

	"github.com/google/uuid"
)

// Queue is the durable pending-request list, stored as persisted records in
// the local database.
type Queue struct {
	repo repository.PendingRequestRepository
}

// NewQueue returns a Queue over the given repository.
func NewQueue(repo repository.PendingRequestRepository) *Queue {
	return &Queue{repo: repo}
}

// Enqueue persists the request envelope for later replay. Each entry gets a
// fresh idempotency key; the queue records it for downstream dedup but does
// not dedupe on it itself.
func (q *Queue) Enqueue(ctx context.Context, method, url string, headers http.Header, body []byte) (*models.PendingRequest, error) {
	headerJSON, err := json.Marshal(headers)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	entry := &models.PendingRequest{
		Method:         method,
		URL:            url,
		Headers:        string(headerJSON),
		Body:           body,
		IdempotencyKey: uuid.NewString(),
		CreatedAt:      time.Now(),
	}
	if err := q.repo.Add(ctx, entry); err != nil {
		return nil, err
	}

	q.refreshDepth(ctx)
	return entry, nil
}

// Pending returns every queued entry in enqueue order.
func (q *Queue) Pending(ctx context.Context) ([]models.PendingRequest, error) {
	return q.repo.ListPending(ctx)
}

// Remove deletes one entry; an absent id is a no-op.
func (q *Queue) Remove(ctx context.Context, id uint) error {
	if err := q.repo.Delete(ctx, id); err != nil {
		return err
	}
	q.refreshDepth(ctx)
	return nil
}

// Depth returns the number of entries awaiting replay.
func (q *Queue) Depth(ctx context.Context) (int64, error) {
	return q.repo.Count(ctx)
}

func (q *Queue) refreshDepth(ctx context.Context) {
	if count, err := q.repo.Count(ctx); err == nil {
		observability.SyncQueueDepth.Set(float64(count))
	}
}

// decodeHeaders rebuilds the header map from its stored form.
func decodeHeaders(stored string) http.Header {
	headers := http.Header{}
	if stored == "" {
		return headers
	}
	_ = json.Unmarshal([]byte(stored), &headers)
	if headers == nil {
		// A stored "null" (nil headers at enqueue) must still yield a
		// usable map.
		headers = http.Header{}
	}
	return headers
}
