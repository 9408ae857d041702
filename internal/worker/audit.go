// Package worker runs background tasks detached from the request path.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dealstack/internal/usecase/commands"
)

// AuditWriter persists one audit record.
type AuditWriter interface {
	Write(ctx context.Context, rec commands.AuditRecord) error
}

// AuditWorker drains a bounded queue of click audit records on a single
// goroutine. Delivery is at most once: a full queue drops the record at
// enqueue time, a write failure logs and drops, and records still queued
// at shutdown are flushed but anything in flight during a crash is lost.
type AuditWorker struct {
	writer AuditWriter
	queue  chan commands.AuditRecord
	logger *slog.Logger
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

const writeTimeout = 5 * time.Second

func NewAuditWorker(writer AuditWriter, queueSize int, logger *slog.Logger) *AuditWorker {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &AuditWorker{
		writer: writer,
		queue:  make(chan commands.AuditRecord, queueSize),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Enqueue hands a record to the worker without blocking. The response to
// the client must never wait on the audit path, so a full queue reports
// false and the record is gone. The server keeps answering requests while
// the process shuts down; once Stop has begun, Enqueue reports false
// instead of racing the closing queue.
func (w *AuditWorker) Enqueue(rec commands.AuditRecord) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	select {
	case w.queue <- rec:
		return true
	default:
		return false
	}
}

// Start launches the drain goroutine.
func (w *AuditWorker) Start() {
	go w.run()
}

func (w *AuditWorker) run() {
	defer close(w.done)
	for rec := range w.queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := w.writer.Write(ctx, rec); err != nil {
			w.logger.Error("audit write failed, record dropped", "offer_ref", rec.OfferRef, "error", err)
		}
		cancel()
	}
}

// Stop refuses further records, then waits for queued ones to flush. The
// queue is only closed under the same lock Enqueue sends under, so a click
// served mid-shutdown cannot send on a closed channel.
func (w *AuditWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
