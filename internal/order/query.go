package order

import (
	"context"
	"time"
)

// QueryService reads existing orders and handles cancellation. Orders are
// remote-owned; this service never caches them.
type QueryService interface {
	ListOrders(ctx context.Context) ([]Order, error)
	ListScheduledOrders(ctx context.Context) ([]ScheduledOrder, error)
	CancelOrder(ctx context.Context, orderNumber string) error
	CancelScheduledOrder(ctx context.Context, scheduleID string) error
}

type queryService struct {
	gateway Gateway
}

func NewQueryService(gateway Gateway) QueryService {
	return &queryService{gateway: gateway}
}

func (s *queryService) ListOrders(ctx context.Context) ([]Order, error) {
	return s.gateway.ListOrders(ctx)
}

func (s *queryService) ListScheduledOrders(ctx context.Context) ([]ScheduledOrder, error) {
	return s.gateway.ListScheduledOrders(ctx)
}

// CancelOrder asks the server to cancel; only PENDING orders qualify and
// the server has the final word. After success the caller drops the order
// from its own snapshot or re-fetches.
func (s *queryService) CancelOrder(ctx context.Context, orderNumber string) error {
	return s.gateway.CancelOrder(ctx, orderNumber)
}

func (s *queryService) CancelScheduledOrder(ctx context.Context, scheduleID string) error {
	return s.gateway.CancelScheduledOrder(ctx, scheduleID)
}

// RemainingTime reports how long until a scheduled instant. ok is false
// once the time has passed; the duration is floored at zero. Derived
// presentation data — recompute on every query, never cache.
func RemainingTime(scheduled, now time.Time) (time.Duration, bool) {
	d := scheduled.Sub(now)
	if d <= 0 {
		return 0, false
	}
	return d, true
}
