package cuentica_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

func TestInvoiceLine_LineBase(t *testing.T) {
	tests := []struct {
		name     string
		line     cuentica.InvoiceLine
		expected string
	}{
		{
			name:     "quantity times amount",
			line:     cuentica.InvoiceLine{Quantity: 10, Amount: 80},
			expected: "800",
		},
		{
			name:     "discount applied",
			line:     cuentica.InvoiceLine{Quantity: 10, Amount: 80, Discount: 25},
			expected: "600",
		},
		{
			name:     "rounds to cents",
			line:     cuentica.InvoiceLine{Quantity: 3, Amount: 33.333},
			expected: "100",
		},
		{
			name:     "fractional cents from discount",
			line:     cuentica.InvoiceLine{Quantity: 1, Amount: 99.99, Discount: 33},
			expected: "66.99",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(testCase.expected)
			assert.NoError(t, err)
			assert.True(t, testCase.line.LineBase().Equal(expected),
				"got %s, want %s", testCase.line.LineBase(), expected)
		})
	}
}

func TestInvoiceLine_LineTotal(t *testing.T) {
	// 800 base + 21% VAT (168) - 15% IRPF (120) = 848
	line := cuentica.InvoiceLine{Quantity: 10, Amount: 80, Tax: 21, Retention: 15}
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("848")),
		"got %s", line.LineTotal())
}

func TestInvoice_Total(t *testing.T) {
	invoice := &cuentica.Invoice{
		InvoiceLines: []cuentica.InvoiceLine{
			{Quantity: 10, Amount: 80, Tax: 21},              // 968
			{Quantity: 1, Amount: 100, Tax: 21, Discount: 0}, // 121
		},
	}

	assert.True(t, invoice.Total().Equal(decimal.RequireFromString("1089")),
		"got %s", invoice.Total())
}

func TestInvoice_Total_NoBinaryDrift(t *testing.T) {
	// 0.1 + 0.2 style float accumulation must not leak into totals.
	invoice := &cuentica.Invoice{
		InvoiceLines: []cuentica.InvoiceLine{
			{Quantity: 1, Amount: 0.1, Tax: 0},
			{Quantity: 1, Amount: 0.2, Tax: 0},
		},
	}

	assert.True(t, invoice.Total().Equal(decimal.RequireFromString("0.3")),
		"got %s", invoice.Total())
}

func TestExpenseLine_LineTotal(t *testing.T) {
	// 100 base + 21 VAT - 15 retention = 106
	line := cuentica.ExpenseLine{Base: 100, Tax: 21, Retention: 15}
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("106")),
		"got %s", line.LineTotal())
}

func TestExpense_Total(t *testing.T) {
	expense := &cuentica.Expense{
		ExpenseLines: []cuentica.ExpenseLine{
			{Base: 100, Tax: 21},
			{Base: 50, Tax: 10},
		},
	}

	assert.True(t, expense.Total().Equal(decimal.RequireFromString("176")),
		"got %s", expense.Total())
}
