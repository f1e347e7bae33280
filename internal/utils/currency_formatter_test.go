package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{name: "whole dollars", amount: decimal.NewFromInt(500), currency: "USD", want: "$500.00"},
		{name: "one decimal", amount: decimal.RequireFromString("12.5"), currency: "USD", want: "$12.50"},
		{name: "lowercase code", amount: decimal.NewFromInt(1), currency: "eur", want: "€1.00"},
		{name: "unknown code", amount: decimal.NewFromInt(3), currency: "CHF", want: "CHF 3.00"},
		{name: "empty code", amount: decimal.NewFromInt(1000), currency: "", want: "$1000.00"},
		{name: "trailing zeros", amount: decimal.RequireFromString("1.5000"), currency: "USD", want: "$1.50"},
		{name: "extra precision kept", amount: decimal.RequireFromString("0.005"), currency: "USD", want: "$0.005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency))
		})
	}
}
