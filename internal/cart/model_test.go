package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(skuID int64, price Cents, qty int) LineItem {
	return LineItem{
		ProductID:   skuID * 10,
		SkuID:       skuID,
		ProductName: "Product",
		SkuName:     "Sku",
		UnitPrice:   price,
		Quantity:    qty,
	}
}

func TestItems_Merge(t *testing.T) {
	t.Run("Appends new sku", func(t *testing.T) {
		items := Items{}.Merge(item(1, 1000, 2))

		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Sums quantity for same sku", func(t *testing.T) {
		items := Items{}.Merge(item(1, 1000, 2)).Merge(item(1, 1000, 3))

		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("At most one line item per sku across many adds", func(t *testing.T) {
		var items Items
		adds := map[int64]int{}
		for i := 0; i < 50; i++ {
			sku := int64(i % 7)
			items = items.Merge(item(sku, 100, i+1))
			adds[sku] += i + 1
		}

		assert.Len(t, items, 7)
		for _, it := range items {
			assert.Equal(t, adds[it.SkuID], it.Quantity)
		}
	})

	t.Run("Preserves insertion order", func(t *testing.T) {
		items := Items{}.
			Merge(item(3, 100, 1)).
			Merge(item(1, 100, 1)).
			Merge(item(2, 100, 1)).
			Merge(item(1, 100, 1))

		assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].SkuID, items[1].SkuID, items[2].SkuID})
	})

	t.Run("Does not mutate the receiver", func(t *testing.T) {
		original := Items{item(1, 1000, 2)}
		_ = original.Merge(item(1, 1000, 3))

		assert.Equal(t, 2, original[0].Quantity)
	})
}

func TestItems_SetQuantity(t *testing.T) {
	base := Items{item(1, 1000, 2), item(2, 500, 1)}

	t.Run("Replaces quantity", func(t *testing.T) {
		items := base.SetQuantity(1, 7)
		it, ok := items.Find(1)

		assert.True(t, ok)
		assert.Equal(t, 7, it.Quantity)
	})

	t.Run("Zero removes the item", func(t *testing.T) {
		items := base.SetQuantity(1, 0)

		assert.Len(t, items, 1)
		_, ok := items.Find(1)
		assert.False(t, ok)
	})

	t.Run("Zero on absent sku is a no-op", func(t *testing.T) {
		items := base.SetQuantity(99, 0)

		assert.Equal(t, base, items)
	})
}

func TestItems_Upsert(t *testing.T) {
	t.Run("Creates when absent", func(t *testing.T) {
		items := Items{}.Upsert(item(1, 1000, 1))

		assert.Len(t, items, 1)
	})

	t.Run("Replaces when present", func(t *testing.T) {
		items := Items{item(1, 1000, 2)}.Upsert(item(1, 1000, 6))

		assert.Len(t, items, 1)
		assert.Equal(t, 6, items[0].Quantity)
	})

	t.Run("Zero quantity removes", func(t *testing.T) {
		items := Items{item(1, 1000, 2)}.Upsert(item(1, 1000, 0))

		assert.Empty(t, items)
	})
}

func TestItems_Decrement(t *testing.T) {
	t.Run("Lowers quantity by one", func(t *testing.T) {
		items := Items{item(1, 1000, 2)}.Decrement(1)
		it, _ := items.Find(1)

		assert.Equal(t, 1, it.Quantity)
	})

	t.Run("Removes at zero", func(t *testing.T) {
		items := Items{item(1, 1000, 1)}.Decrement(1)

		assert.Empty(t, items)
	})

	t.Run("Absent sku is a no-op", func(t *testing.T) {
		items := Items{item(1, 1000, 1)}.Decrement(99)

		assert.Len(t, items, 1)
	})
}

func TestItems_Total(t *testing.T) {
	t.Run("Sums price times quantity", func(t *testing.T) {
		items := Items{item(1, 1000, 2), item(2, 500, 1)}

		assert.Equal(t, Cents(2500), items.Total())
	})

	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, Cents(0), Items{}.Total())
	})

	t.Run("No drift across a thousand operations", func(t *testing.T) {
		// 10.01 style prices are the classic binary float trap; in cents
		// the running total must track the reference sum exactly.
		var items Items
		var want Cents
		for i := 0; i < 1000; i++ {
			sku := int64(i % 13)
			items = items.Merge(item(sku, 1001, 1))
			want += 1001
			assert.Equal(t, want, items.Total())
		}
	})

	t.Run("Add and remove shift total by exactly the item contribution", func(t *testing.T) {
		items := Items{item(1, 1099, 3)}
		before := items.Total()

		items = items.Merge(item(2, 205, 4))
		assert.Equal(t, before+Cents(205*4), items.Total())

		items = items.SetQuantity(2, 0)
		assert.Equal(t, before, items.Total())
	})
}

func TestCents_Units(t *testing.T) {
	assert.Equal(t, 25.0, Cents(2500).Units())
	assert.Equal(t, 10.99, Cents(1099).Units())
}
