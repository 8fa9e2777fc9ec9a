package cart

// Cents is a money amount in integer minor units. All cart arithmetic is
// done in cents so totals stay exact; conversion to decimal currency units
// happens only at the order API boundary.
type Cents int64

// Units returns the amount in decimal currency units.
func (c Cents) Units() float64 {
	return float64(c) / 100
}

// LineItem is one sku's entry in the cart. SkuID is the uniqueness key:
// the cart never holds two line items for the same sku.
type LineItem struct {
	ProductID   int64  `json:"productId"`
	SkuID       int64  `json:"skuId"`
	ProductName string `json:"name"`
	SkuName     string `json:"skuName"`
	UnitPrice   Cents  `json:"price"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"image"`
}

// Items is an ordered cart snapshot; insertion order is display order.
// All methods return a new slice and never mutate the receiver.
type Items []LineItem

func (items Items) clone() Items {
	out := make(Items, len(items))
	copy(out, items)
	return out
}

// Find returns the line item for skuID, if present.
func (items Items) Find(skuID int64) (LineItem, bool) {
	for _, it := range items {
		if it.SkuID == skuID {
			return it, true
		}
	}
	return LineItem{}, false
}

// Merge folds an incoming line item into the cart: if the sku is already
// present its quantity grows by incoming.Quantity, otherwise the item is
// appended.
func (items Items) Merge(incoming LineItem) Items {
	out := items.clone()
	for i, it := range out {
		if it.SkuID == incoming.SkuID {
			out[i].Quantity += incoming.Quantity
			return out
		}
	}
	return append(out, incoming)
}

// SetQuantity replaces the quantity of the line item for skuID.
// Quantity 0 removes the item; a missing sku is a no-op.
func (items Items) SetQuantity(skuID int64, quantity int) Items {
	if quantity <= 0 {
		return items.remove(skuID)
	}
	out := items.clone()
	for i, it := range out {
		if it.SkuID == skuID {
			out[i].Quantity = quantity
		}
	}
	return out
}

// Upsert creates or updates the line item for item.SkuID in one step,
// so quantity controls never depend on a separate add happening first.
// Quantity 0 removes the item.
func (items Items) Upsert(item LineItem) Items {
	if item.Quantity <= 0 {
		return items.remove(item.SkuID)
	}
	out := items.clone()
	for i, it := range out {
		if it.SkuID == item.SkuID {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// Decrement lowers the quantity for skuID by one, removing the item when
// it reaches zero.
func (items Items) Decrement(skuID int64) Items {
	it, ok := items.Find(skuID)
	if !ok {
		return items.clone()
	}
	return items.SetQuantity(skuID, it.Quantity-1)
}

func (items Items) remove(skuID int64) Items {
	out := make(Items, 0, len(items))
	for _, it := range items {
		if it.SkuID != skuID {
			out = append(out, it)
		}
	}
	return out
}

// Total sums unit price times quantity over all line items.
func (items Items) Total() Cents {
	var total Cents
	for _, it := range items {
		total += it.UnitPrice * Cents(it.Quantity)
	}
	return total
}
