package cart

import (
	"context"
	"sync"
	"time"

	"technotrove/internal/logger"

	"go.uber.org/zap"
)

const saveTimeout = 5 * time.Second

// Writer persists cart snapshots in the background. At most one write is
// in flight; snapshots enqueued while a write is running coalesce so only
// the latest state is written next. A failed save is logged and dropped —
// the in-memory cart stays authoritative.
type Writer struct {
	repo    Repository
	pending chan Items
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWriter starts the background flush loop.
func NewWriter(repo Repository) *Writer {
	w := &Writer{
		repo:    repo,
		pending: make(chan Items, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w
}

// Enqueue schedules a snapshot for persistence without blocking the
// caller. A snapshot still waiting to be written is replaced.
func (w *Writer) Enqueue(items Items) {
	for {
		select {
		case w.pending <- items:
			return
		default:
		}
		// slot taken by a stale snapshot; drop it and retry
		select {
		case <-w.pending:
		default:
		}
	}
}

// Close flushes any pending snapshot and stops the writer.
func (w *Writer) Close() {
	w.once.Do(func() { close(w.quit) })
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)
	for {
		select {
		case items := <-w.pending:
			w.save(items)
		case <-w.quit:
			select {
			case items := <-w.pending:
				w.save(items)
			default:
			}
			return
		}
	}
}

func (w *Writer) save(items Items) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.repo.Save(ctx, items); err != nil {
		logger.L().Warn("cart save failed",
			zap.Int("line_items", len(items)),
			zap.Error(err),
		)
	}
}
