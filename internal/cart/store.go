package cart

import (
	"context"
	"sync"

	"technotrove/internal/logger"

	"go.uber.org/zap"
)

// Subscriber receives a snapshot after every store mutation.
type Subscriber func(Items)

// Store is the single live cart: one writer, many readers. It is built
// once at process start and handed to consumers explicitly; there is no
// package-level instance. Mutations are synchronous and immediately
// visible to readers before the persistence write is dispatched.
type Store struct {
	mu     sync.Mutex
	items  Items
	subs   []Subscriber
	writer *Writer
}

// NewStore creates an empty cart store. writer may be nil when
// persistence is not wanted (tests, dry runs).
func NewStore(writer *Writer) *Store {
	return &Store{writer: writer}
}

// AddItem merges a line item into the cart. Adding a brand-new sku with
// quantity below 1 is rejected; every other mutation is total.
func (s *Store) AddItem(item LineItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	s.items = s.items.Merge(item)
	snapshot := s.items.clone()
	s.mu.Unlock()

	s.publish(snapshot)
	return nil
}

// UpdateQuantity sets the quantity for skuID; zero removes the item and a
// missing sku is a no-op.
func (s *Store) UpdateQuantity(skuID int64, quantity int) {
	s.mu.Lock()
	s.items = s.items.SetQuantity(skuID, quantity)
	snapshot := s.items.clone()
	s.mu.Unlock()

	s.publish(snapshot)
}

// Upsert creates or updates the line item atomically. Quantity zero
// removes it.
func (s *Store) Upsert(item LineItem) {
	s.mu.Lock()
	s.items = s.items.Upsert(item)
	snapshot := s.items.clone()
	s.mu.Unlock()

	s.publish(snapshot)
}

// Decrement lowers the quantity for skuID by one, removing the line item
// at zero.
func (s *Store) Decrement(skuID int64) {
	s.mu.Lock()
	s.items = s.items.Decrement(skuID)
	snapshot := s.items.clone()
	s.mu.Unlock()

	s.publish(snapshot)
}

// Clear empties the cart wholesale.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	snapshot := Items{}
	s.mu.Unlock()

	s.publish(snapshot)
}

// ReplaceAll swaps in a previously persisted cart. It is the rehydration
// path only, so no persistence write is scheduled for it.
func (s *Store) ReplaceAll(items Items) {
	s.mu.Lock()
	s.items = items.clone()
	snapshot := s.items.clone()
	s.mu.Unlock()

	s.notify(snapshot)
}

// Snapshot returns a copy of the current line items.
func (s *Store) Snapshot() Items {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.clone()
}

// Total returns the current cart total.
func (s *Store) Total() Cents {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Total()
}

// Subscribe registers fn to be called synchronously after each mutation
// with a snapshot of the new state.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) publish(snapshot Items) {
	s.notify(snapshot)
	if s.writer != nil {
		s.writer.Enqueue(snapshot)
	}
}

func (s *Store) notify(snapshot Items) {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Rehydrate loads the persisted cart into the store. Storage failures and
// unreadable state fall back to an empty cart; they are logged, never
// surfaced.
func Rehydrate(ctx context.Context, repo Repository, store *Store) {
	items, ok, err := repo.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load saved cart, starting empty", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	store.ReplaceAll(items)
	logger.FromCtx(ctx).Info("cart rehydrated", zap.Int("line_items", len(items)))
}
