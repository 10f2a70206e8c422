package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// AsyncClickRecorder persists click events off the response-critical path.
// Record enqueues onto a bounded channel and returns immediately; a
// background goroutine (Run) drains the channel and writes each event with
// its own timeout. A full queue drops the event with a warning rather than
// blocking a redirect. Implements port.ClickRecorder.
type AsyncClickRecorder struct {
	store        port.EntityStore
	logger       *slog.Logger
	queue        chan domain.ClickEvent
	writeTimeout time.Duration
}

func NewAsyncClickRecorder(store port.EntityStore, logger *slog.Logger, queueSize int, writeTimeout time.Duration) *AsyncClickRecorder {
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &AsyncClickRecorder{
		store:        store,
		logger:       logger,
		queue:        make(chan domain.ClickEvent, queueSize),
		writeTimeout: writeTimeout,
	}
}

// Record enqueues a click event without blocking. Never returns an error:
// attribution is best-effort and must not affect the redirect.
func (r *AsyncClickRecorder) Record(ev domain.ClickEvent) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	select {
	case r.queue <- ev:
	default:
		r.logger.Warn("click queue full, dropping event", slog.String("short_code", ev.ShortCode))
	}
}

// Run drains the queue until ctx is cancelled, then flushes whatever is
// still buffered. Call it in its own goroutine.
func (r *AsyncClickRecorder) Run(ctx context.Context) {
	for {
		select {
		case ev := <-r.queue:
			r.insert(ev)
		case <-ctx.Done():
			r.drain()
			return
		}
	}
}

func (r *AsyncClickRecorder) drain() {
	for {
		select {
		case ev := <-r.queue:
			r.insert(ev)
		default:
			return
		}
	}
}

func (r *AsyncClickRecorder) insert(ev domain.ClickEvent) {
	// independent context: the originating request is long gone
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.store.InsertClickEvent(ctx, ev); err != nil {
		r.logger.Error("click attribution write failed",
			slog.String("short_code", ev.ShortCode),
			slog.Any("error", err))
	}
}
