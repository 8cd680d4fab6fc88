package cart

import "github.com/shopspring/decimal"

// CGST and SGST are two independent 9% taxes on the subtotal, not halves of
// a combined 18%.
var gstRate = decimal.RequireFromString("0.09")

// Totals are the derived monetary figures for one cart. Fields carry full
// precision; call Rounded before showing them to a user.
type Totals struct {
	Subtotal     decimal.Decimal
	CGST         decimal.Decimal
	SGST         decimal.Decimal
	TotalSavings decimal.Decimal
	Discount     decimal.Decimal
	Total        decimal.Decimal
}

// ComputeTotals derives totals from the given lines. discount is a separate
// promotional reduction, independent of per-line savings, and is not
// validated against the subtotal: a discount larger than subtotal plus tax
// yields a negative Total. Pure and deterministic.
func ComputeTotals(items []LineItem, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	savings := decimal.Zero
	for _, li := range items {
		qty := decimal.NewFromInt(int64(li.Quantity))
		subtotal = subtotal.Add(li.UnitPrice.Mul(qty))
		savings = savings.Add(li.SavingsPerUnit().Mul(qty))
	}
	cgst := subtotal.Mul(gstRate)
	sgst := subtotal.Mul(gstRate)
	return Totals{
		Subtotal:     subtotal,
		CGST:         cgst,
		SGST:         sgst,
		TotalSavings: savings,
		Discount:     discount,
		Total:        subtotal.Add(cgst).Add(sgst).Sub(discount),
	}
}

// Rounded returns a copy with every field rounded to two decimal places.
// Accumulation keeps full precision; rounding happens once, here, at the
// presentation boundary.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:     t.Subtotal.Round(2),
		CGST:         t.CGST.Round(2),
		SGST:         t.SGST.Round(2),
		TotalSavings: t.TotalSavings.Round(2),
		Discount:     t.Discount.Round(2),
		Total:        t.Total.Round(2),
	}
}
