package order

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

// Item is one order line in API wire form. Price is in decimal currency
// units, unlike cart.Cents.
type Item struct {
	ProductID   int64   `json:"productId"`
	SkuID       int64   `json:"skuId"`
	SkuName     string  `json:"skuName"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// Request is the disposable payload built from a cart snapshot at
// submission time. ScheduledTime is empty for immediate orders.
type Request struct {
	OrderNumber   string  `json:"orderNumber"`
	ScheduledTime string  `json:"scheduledTime,omitempty"`
	OrderItems    []Item  `json:"orderItems"`
	TotalAmount   float64 `json:"totalAmount"`
}

// Order is a server-owned projection; the client never mutates it.
type Order struct {
	OrderNumber string  `json:"orderNumber"`
	OrderStatus Status  `json:"orderStatus"`
	TotalAmount float64 `json:"totalAmount"`
	OrderItems  []Item  `json:"orderItems"`
}

// ScheduledOrder is an order whose creation is deferred to ScheduledTime.
// It is cancellable by ScheduleID independently of immediate orders.
type ScheduledOrder struct {
	OrderNumber   string  `json:"orderNumber"`
	ScheduleID    string  `json:"scheduleId"`
	ScheduledTime string  `json:"scheduledTime"`
	TotalAmount   float64 `json:"totalAmount"`
	OrderItems    []Item  `json:"orderItems"`
}
