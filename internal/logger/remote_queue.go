package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultQueueSize    = 1024
	defaultFlushTimeout = 5 * time.Second

	// shedLevel is the lowest level still queued once the queue is three
	// quarters full, so reload failures and panics outlive chat access logs.
	shedLevel = slog.LevelWarn
)

// QueueOptions sizes the buffer in front of the Better Stack sink.
type QueueOptions struct {
	Size         int           // records held; default 1024
	FlushTimeout time.Duration // Shutdown bound when ctx has no deadline; default 5s
}

// QueueStats reports the depth and losses of the remote log queue.
type QueueStats struct {
	Pending int
	Shed    uint64 // below-warn records skipped while the queue was under pressure
	Dropped uint64 // records lost because the queue was full or already closed
}

type queuedRecord struct {
	ctx     context.Context
	record  slog.Record
	handler slog.Handler
}

// remoteQueue ships records to a slow handler on one goroutine so that a
// stalled log endpoint never delays a chat reply.
type remoteQueue struct {
	ch           chan queuedRecord
	shedAt       int
	flushTimeout time.Duration
	done         chan struct{}

	mu     sync.RWMutex // guards closed against sends on a closed ch
	closed bool

	shed    atomic.Uint64
	dropped atomic.Uint64
}

func newRemoteQueue(opts QueueOptions) *remoteQueue {
	size := opts.Size
	if size <= 0 {
		size = defaultQueueSize
	}
	flushTimeout := opts.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = defaultFlushTimeout
	}

	q := &remoteQueue{
		ch:           make(chan queuedRecord, size),
		shedAt:       max(1, size*3/4),
		flushTimeout: flushTimeout,
		done:         make(chan struct{}),
	}
	go q.drain()
	return q
}

func (q *remoteQueue) drain() {
	defer close(q.done)
	for rec := range q.ch {
		_ = rec.handler.Handle(rec.ctx, rec.record)
	}
}

// push never blocks. The record's context is detached because the request
// that logged it is usually finished by the time it is shipped.
func (q *remoteQueue) push(ctx context.Context, r slog.Record, h slog.Handler) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.dropped.Add(1)
		return
	}
	if r.Level < shedLevel && len(q.ch) >= q.shedAt {
		q.shed.Add(1)
		return
	}
	select {
	case q.ch <- queuedRecord{ctx: context.WithoutCancel(ctx), record: r, handler: h}:
	default:
		q.dropped.Add(1)
	}
}

func (q *remoteQueue) stats() QueueStats {
	return QueueStats{
		Pending: len(q.ch),
		Shed:    q.shed.Load(),
		Dropped: q.dropped.Load(),
	}
}

// close stops intake and waits for queued records to be shipped. A ctx
// without deadline is bounded by the flush timeout.
func (q *remoteQueue) close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.flushTimeout)
		defer cancel()
	}
	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// queuedHandler is the slog.Handler face of a remoteQueue. Derived handlers
// share the queue.
type queuedHandler struct {
	queue *remoteQueue
	next  slog.Handler
}

func newQueuedHandler(next slog.Handler, opts QueueOptions) *queuedHandler {
	return &queuedHandler{queue: newRemoteQueue(opts), next: next}
}

func (h *queuedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *queuedHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.next.Enabled(ctx, r.Level) {
		return nil
	}
	h.queue.push(ctx, r.Clone(), h.next)
	return nil
}

func (h *queuedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &queuedHandler{queue: h.queue, next: h.next.WithAttrs(attrs)}
}

func (h *queuedHandler) WithGroup(name string) slog.Handler {
	return &queuedHandler{queue: h.queue, next: h.next.WithGroup(name)}
}
