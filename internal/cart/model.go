package cart

import "github.com/shopspring/decimal"

// LineItem is one product entry in the local cart. ID identifies the line
// itself; ProductID identifies the catalog product it came from. Two lines
// may share a ProductID when the append policy is in effect, so line identity
// must not be derived from the product.
type LineItem struct {
	ID            string
	ProductID     string
	Name          string
	Unit          string
	UnitPrice     decimal.Decimal
	OriginalPrice decimal.Decimal
	Quantity      int
}

// SavingsPerUnit is the promotional reduction against the list price.
// Never negative.
func (li LineItem) SavingsPerUnit() decimal.Decimal {
	s := li.OriginalPrice.Sub(li.UnitPrice)
	if s.IsNegative() {
		return decimal.Zero
	}
	return s
}

// Product is a catalog descriptor as the products API delivers it. Prices
// stay float64 on the wire; they are converted to decimals once, when a
// product becomes a cart line.
type Product struct {
	ID            string
	Name          string
	Unit          string
	Price         float64
	OriginalPrice float64
}
