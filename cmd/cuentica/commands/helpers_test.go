package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing id")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1210.00", FormatAmount(1210))
	assert.Equal(t, "0.30", FormatAmount(0.3))
	assert.Equal(t, "99.99", FormatAmount(99.99))
}

func TestCustomerDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		customer cuentica.Customer
		expected string
	}{
		{
			name:     "trade name preferred",
			customer: cuentica.Customer{TradeName: "Acme", BusinessName: "Acme S.L."},
			expected: "Acme",
		},
		{
			name:     "business name next",
			customer: cuentica.Customer{BusinessName: "Acme S.L."},
			expected: "Acme S.L.",
		},
		{
			name:     "personal name last",
			customer: cuentica.Customer{Name: "Jordi", Surname1: "Garcia"},
			expected: "Jordi Garcia",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, customerDisplayName(testCase.customer))
		})
	}
}
