package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"technotrove/internal/logger"
	"technotrove/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Gateway is the HTTP contract with the remote catalog/order service.
type Gateway interface {
	PlaceOrder(ctx context.Context, req Request) (*Order, error)
	ScheduleOrder(ctx context.Context, req Request) (*ScheduledOrder, error)
	ListOrders(ctx context.Context) ([]Order, error)
	ListScheduledOrders(ctx context.Context) ([]ScheduledOrder, error)
	CancelOrder(ctx context.Context, orderNumber string) error
	CancelScheduledOrder(ctx context.Context, scheduleID string) error
}

type httpGateway struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	stats      metrics.RequestStats
}

// NewHTTPGateway builds the gateway for the given base URL. Outbound
// calls are throttled so a misbehaving caller loop cannot hammer the
// order service.
func NewHTTPGateway(baseURL string) Gateway {
	if baseURL == "" {
		logger.L().Warn("order API base URL is empty")
	}

	return &httpGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (g *httpGateway) PlaceOrder(ctx context.Context, req Request) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_number", req.OrderNumber),
		zap.Float64("total_amount", req.TotalAmount),
		zap.Int("item_count", len(req.OrderItems)),
	)

	log.Info("placing order")

	body, err := g.do(ctx, http.MethodPost, "/api/orders", req)
	if err != nil {
		log.Error("place order failed", zap.Error(err))
		return nil, err
	}

	var created Order
	if err := json.Unmarshal(body, &created); err != nil {
		log.Error("failed decoding order response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode order: %v", ErrTransport, err)
	}

	log.Info("order placed", zap.String("status", string(created.OrderStatus)))
	return &created, nil
}

func (g *httpGateway) ScheduleOrder(ctx context.Context, req Request) (*ScheduledOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_number", req.OrderNumber),
		zap.String("scheduled_time", req.ScheduledTime),
		zap.Float64("total_amount", req.TotalAmount),
	)

	log.Info("scheduling order")

	body, err := g.do(ctx, http.MethodPost, "/api/orders/schedules", req)
	if err != nil {
		log.Error("schedule order failed", zap.Error(err))
		return nil, err
	}

	var created ScheduledOrder
	if err := json.Unmarshal(body, &created); err != nil {
		log.Error("failed decoding scheduled order response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode scheduled order: %v", ErrTransport, err)
	}

	log.Info("order scheduled", zap.String("schedule_id", created.ScheduleID))
	return &created, nil
}

func (g *httpGateway) ListOrders(ctx context.Context) ([]Order, error) {
	body, err := g.do(ctx, http.MethodGet, "/api/orders", nil)
	if err != nil {
		logger.FromCtx(ctx).Error("list orders failed", zap.Error(err))
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", ErrTransport, err)
	}
	return orders, nil
}

func (g *httpGateway) ListScheduledOrders(ctx context.Context) ([]ScheduledOrder, error) {
	body, err := g.do(ctx, http.MethodGet, "/api/orders/schedules", nil)
	if err != nil {
		logger.FromCtx(ctx).Error("list scheduled orders failed", zap.Error(err))
		return nil, err
	}

	var orders []ScheduledOrder
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode scheduled orders: %v", ErrTransport, err)
	}
	return orders, nil
}

func (g *httpGateway) CancelOrder(ctx context.Context, orderNumber string) error {
	log := logger.FromCtx(ctx).With(zap.String("order_number", orderNumber))

	path := fmt.Sprintf("/api/orders/%s/cancel", orderNumber)
	if _, err := g.do(ctx, http.MethodPost, path, nil); err != nil {
		log.Warn("cancel order rejected", zap.Error(err))
		return err
	}

	log.Info("order canceled")
	return nil
}

func (g *httpGateway) CancelScheduledOrder(ctx context.Context, scheduleID string) error {
	log := logger.FromCtx(ctx).With(zap.String("schedule_id", scheduleID))

	path := fmt.Sprintf("/api/orders/schedules/cancel/%s", scheduleID)
	if _, err := g.do(ctx, http.MethodDelete, path, nil); err != nil {
		log.Warn("cancel scheduled order rejected", zap.Error(err))
		return err
	}

	log.Info("scheduled order canceled")
	return nil
}

func (g *httpGateway) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	timer := metrics.StartTimer()
	body, err := g.roundTrip(ctx, method, path, payload)
	g.stats.Observe(err)

	logger.FromCtx(ctx).Debug("order api call finished",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("took", timer.Duration()),
		zap.Bool("ok", err == nil),
	)
	return body, err
}

// roundTrip issues one request and returns the response body. Non-2xx
// responses become ErrNotCancellable for client-rejected cancels and
// ErrTransport for everything else.
func (g *httpGateway) roundTrip(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request: %v", ErrTransport, err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if isCancel(method, path) && resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// the server is authoritative: a cancel on a non-pending
			// order comes back as a client error
			return nil, fmt.Errorf("%w: status %d: %s", ErrNotCancellable, resp.StatusCode, body)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, body)
	}

	return body, nil
}

func isCancel(method, path string) bool {
	return strings.HasSuffix(path, "/cancel") || method == http.MethodDelete
}
