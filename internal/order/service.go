package order

import (
	"context"
	"sync/atomic"
	"time"

	"technotrove/internal/cart"
	"technotrove/internal/logger"
	"technotrove/internal/utils"

	"go.uber.org/zap"
)

// Service submits the live cart as an order, immediately or at a
// scheduled instant. Submission is at-most-once per call: no automatic
// retries, and overlapping submissions for the same cart are refused.
type Service interface {
	SubmitImmediate(ctx context.Context) (*Order, error)
	SubmitScheduled(ctx context.Context, at time.Time) (*ScheduledOrder, error)
}

type service struct {
	store    *cart.Store
	gateway  Gateway
	inFlight atomic.Bool
}

func NewService(store *cart.Store, gateway Gateway) Service {
	return &service{store: store, gateway: gateway}
}

func (s *service) SubmitImmediate(ctx context.Context) (*Order, error) {
	items, release, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer release()

	req := BuildRequest(items, utils.GenerateOrderNumber(), nil)
	logRequest(ctx, req)

	created, err := s.gateway.PlaceOrder(ctx, req)
	if err != nil {
		// cart stays untouched so the user can retry
		return nil, err
	}

	s.store.Clear()
	return created, nil
}

func (s *service) SubmitScheduled(ctx context.Context, at time.Time) (*ScheduledOrder, error) {
	items, release, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer release()

	req := BuildRequest(items, utils.GenerateOrderNumber(), &at)
	logRequest(ctx, req)

	created, err := s.gateway.ScheduleOrder(ctx, req)
	if err != nil {
		return nil, err
	}

	s.store.Clear()
	return created, nil
}

// begin takes the in-flight slot and snapshots the cart. The returned
// release must be called once the submission settles.
func (s *service) begin() (cart.Items, func(), error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, nil, ErrSubmissionInFlight
	}

	items := s.store.Snapshot()
	if len(items) == 0 {
		s.inFlight.Store(false)
		return nil, nil, ErrEmptyCart
	}

	return items, func() { s.inFlight.Store(false) }, nil
}

func logRequest(ctx context.Context, req Request) {
	logger.FromCtx(ctx).Debug("order request built",
		zap.String("order_number", req.OrderNumber),
		zap.Float64("total_amount", req.TotalAmount),
		zap.Int("item_count", len(req.OrderItems)),
	)
}
