package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddPolicy controls what happens when a product already present in the cart
// is added again.
type AddPolicy int

const (
	// AppendDuplicates adds a fresh line even when the product is already in
	// the cart, which is the behavior the catalog ships with today.
	AppendDuplicates AddPolicy = iota
	// MergeDuplicates increments the quantity of the existing line instead.
	MergeDuplicates
)

// UpdateQuantity returns a new collection with the quantity of line id
// adjusted by delta. A resulting quantity of zero or below removes the line;
// quantities are never stored at zero. An unknown id is a no-op, not an
// error. The input slice is never mutated.
func UpdateQuantity(items []LineItem, id string, delta int) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.ID != id {
			out = append(out, li)
			continue
		}
		q := li.Quantity + delta
		if q <= 0 {
			continue
		}
		li.Quantity = q
		out = append(out, li)
	}
	return out
}

// RemoveItem returns a new collection without line id. No-op when absent.
func RemoveItem(items []LineItem, id string) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.ID != id {
			out = append(out, li)
		}
	}
	return out
}

// AddItem returns a new collection with p added at quantity 1. Under
// MergeDuplicates an existing line for the same product gets its quantity
// incremented instead of a new line being appended. A product without a list
// price is treated as sold at list price, so it carries no savings.
func AddItem(items []LineItem, p Product, policy AddPolicy) []LineItem {
	if policy == MergeDuplicates {
		for i := range items {
			if items[i].ProductID == p.ID {
				out := append([]LineItem(nil), items...)
				out[i].Quantity++
				return out
			}
		}
	}

	original := p.OriginalPrice
	if original <= 0 {
		original = p.Price
	}
	out := append([]LineItem(nil), items...)
	return append(out, LineItem{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		Name:          p.Name,
		Unit:          p.Unit,
		UnitPrice:     decimal.NewFromFloat(p.Price),
		OriginalPrice: decimal.NewFromFloat(original),
		Quantity:      1,
	})
}
