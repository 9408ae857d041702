//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dealstack/internal/usecase/commands"
	"dealstack/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingWriter collects written records; failUntil forces the first n
// writes to fail.
type recordingWriter struct {
	mu        sync.Mutex
	records   []commands.AuditRecord
	failUntil int
	calls     int
}

func (w *recordingWriter) Write(_ context.Context, rec commands.AuditRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failUntil {
		return errors.New("insert failed")
	}
	w.records = append(w.records, rec)
	return nil
}

func (w *recordingWriter) written() []commands.AuditRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]commands.AuditRecord, len(w.records))
	copy(out, w.records)
	return out
}

func auditRecord(ref string) commands.AuditRecord {
	return commands.AuditRecord{OfferRef: ref, MerchantID: 42, ClientIP: "1.2.3.4", Source: "canonical", OccurredAt: time.Now()}
}

func TestAuditWorker(t *testing.T) {
	t.Run("queued records are flushed on stop", func(t *testing.T) {
		writer := &recordingWriter{}
		w := worker.NewAuditWorker(writer, 8, discardLogger())
		w.Start()

		require.True(t, w.Enqueue(auditRecord("101")))
		require.True(t, w.Enqueue(auditRecord("102")))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		require.NoError(t, w.Stop(ctx))

		records := writer.written()
		require.Len(t, records, 2)
		assert.Equal(t, "101", records[0].OfferRef)
		assert.Equal(t, "102", records[1].OfferRef)
	})

	t.Run("full queue drops without blocking", func(t *testing.T) {
		writer := &recordingWriter{}
		w := worker.NewAuditWorker(writer, 2, discardLogger())
		// not started: nothing drains the queue

		assert.True(t, w.Enqueue(auditRecord("1")))
		assert.True(t, w.Enqueue(auditRecord("2")))
		assert.False(t, w.Enqueue(auditRecord("3")))
	})

	t.Run("a write failure drops the record and keeps draining", func(t *testing.T) {
		writer := &recordingWriter{failUntil: 1}
		w := worker.NewAuditWorker(writer, 8, discardLogger())
		w.Start()

		require.True(t, w.Enqueue(auditRecord("fails")))
		require.True(t, w.Enqueue(auditRecord("succeeds")))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		require.NoError(t, w.Stop(ctx))

		records := writer.written()
		require.Len(t, records, 1)
		assert.Equal(t, "succeeds", records[0].OfferRef)
	})

	t.Run("enqueue after stop reports false instead of panicking", func(t *testing.T) {
		writer := &recordingWriter{}
		w := worker.NewAuditWorker(writer, 8, discardLogger())
		w.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		require.NoError(t, w.Stop(ctx))

		// The server keeps serving clicks while fx tears the worker down.
		assert.NotPanics(t, func() {
			assert.False(t, w.Enqueue(auditRecord("late")))
		})
		assert.Empty(t, writer.written())
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		writer := &recordingWriter{}
		w := worker.NewAuditWorker(writer, 8, discardLogger())
		w.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		require.NoError(t, w.Stop(ctx))
		require.NoError(t, w.Stop(ctx))
	})
}
