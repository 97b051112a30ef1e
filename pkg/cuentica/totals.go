package cuentica

import (
	"github.com/shopspring/decimal"
)

// Money math for invoice and expense lines. The wire format carries float64
// (that is what the API emits) but totals are computed with decimals so that
// discount/VAT/retention chains don't accumulate binary rounding error.

var hundred = decimal.NewFromInt(100)

// LineBase returns quantity * amount with the discount percentage applied,
// rounded to cents.
func (l InvoiceLine) LineBase() decimal.Decimal {
	base := decimal.NewFromFloat(l.Amount).Mul(decimal.NewFromFloat(l.Quantity))

	if l.Discount != 0 {
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(l.Discount).Div(hundred))
		base = base.Mul(factor)
	}

	return base.Round(2)
}

// LineTotal returns the line base plus VAT minus IRPF retention, rounded to
// cents.
func (l InvoiceLine) LineTotal() decimal.Decimal {
	base := l.LineBase()
	tax := base.Mul(decimal.NewFromFloat(l.Tax)).Div(hundred).Round(2)
	retention := base.Mul(decimal.NewFromFloat(l.Retention)).Div(hundred).Round(2)

	return base.Add(tax).Sub(retention)
}

// Total sums the invoice's line totals.
func (i *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range i.InvoiceLines {
		total = total.Add(line.LineTotal())
	}

	return total
}

// LineTotal returns base plus VAT minus retention for an expense line,
// rounded to cents.
func (l ExpenseLine) LineTotal() decimal.Decimal {
	base := decimal.NewFromFloat(l.Base)
	tax := base.Mul(decimal.NewFromFloat(l.Tax)).Div(hundred).Round(2)
	retention := base.Mul(decimal.NewFromFloat(l.Retention)).Div(hundred).Round(2)

	return base.Add(tax).Sub(retention).Round(2)
}

// Total sums the expense's line totals.
func (e *Expense) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.ExpenseLines {
		total = total.Add(line.LineTotal())
	}

	return total
}
