package order

import (
	"time"

	"technotrove/internal/cart"
	"technotrove/internal/schedule"
)

// BuildRequest snapshots cart line items into wire form. The total is
// recomputed from the line items here, never taken from caller state.
func BuildRequest(items cart.Items, orderNumber string, scheduledAt *time.Time) Request {
	orderItems := make([]Item, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, Item{
			ProductID:   it.ProductID,
			SkuID:       it.SkuID,
			SkuName:     it.SkuName,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice.Units(),
			ImageURL:    it.ImageURL,
		})
	}

	req := Request{
		OrderNumber: orderNumber,
		OrderItems:  orderItems,
		TotalAmount: items.Total().Units(),
	}
	if scheduledAt != nil {
		req.ScheduledTime = schedule.FormatWire(*scheduledAt)
	}
	return req
}
