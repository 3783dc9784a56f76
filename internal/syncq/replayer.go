package syncq

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"mojicode/internal/observability"
)

// SyncTag is the signal name that triggers a replay pass.
const SyncTag = "sync-posts"

// Replayer re-issues queued requests when the sync signal fires. Each signal
// triggers exactly one replay pass: every pending entry is attempted once,
// in enqueue order, and removed only after a network response is received —
// success and semantic failure alike. Entries whose re-issue fails at the
// transport layer stay queued for the next signal.
type Replayer struct {
	queue   *Queue
	client  *http.Client
	signals chan string
}

// NewReplayer returns a Replayer draining the given queue.
func NewReplayer(queue *Queue, httpClient *http.Client) *Replayer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Replayer{
		queue:  queue,
		client: httpClient,
		// Size 1 so back-to-back signals coalesce into one pending pass.
		signals: make(chan string, 1),
	}
}

// Signal requests a replay pass for the given tag. Unknown tags are ignored.
// Never blocks; a signal arriving while one is already pending is folded
// into it.
func (r *Replayer) Signal(tag string) {
	if tag != SyncTag {
		return
	}
	select {
	case r.signals <- tag:
	default:
	}
}

// Run processes signals until ctx is done. Call it on its own goroutine.
func (r *Replayer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.signals:
			if err := r.ReplayPass(ctx); err != nil {
				observability.GlobalLogger.Error("Replay pass failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// ReplayPass re-issues every pending entry once, in enqueue order. If the
// process dies mid-pass, entries already replayed but not yet removed will
// be replayed again on the next pass.
func (r *Replayer) ReplayPass(ctx context.Context) error {
	pending, err := r.queue.Pending(ctx)
	if err != nil {
		return err
	}

	for _, entry := range pending {
		req, err := http.NewRequestWithContext(ctx, entry.Method, entry.URL, bytes.NewReader(entry.Body))
		if err != nil {
			// The envelope cannot be reconstructed; it will never succeed.
			observability.GlobalLogger.Error("Dropping malformed queued request",
				slog.Uint64("id", uint64(entry.ID)),
				slog.String("error", err.Error()),
			)
			observability.SyncReplayTotal.WithLabelValues("malformed").Inc()
			if err := r.queue.Remove(ctx, entry.ID); err != nil {
				return err
			}
			continue
		}
		req.Header = decodeHeaders(entry.Headers)
		req.Header.Set("X-Idempotency-Key", entry.IdempotencyKey)

		resp, err := r.client.Do(req)
		if err != nil {
			// Still offline for this target; keep the entry and move on.
			observability.SyncReplayTotal.WithLabelValues("retry").Inc()
			continue
		}
		resp.Body.Close()

		observability.SyncReplayTotal.WithLabelValues("replayed").Inc()
		observability.GlobalLogger.Info("Replayed queued request",
			slog.Uint64("id", uint64(entry.ID)),
			slog.String("method", entry.Method),
			slog.String("url", entry.URL),
			slog.Int("status", resp.StatusCode),
		)

		if err := r.queue.Remove(ctx, entry.ID); err != nil {
			return err
		}
	}
	return nil
}
