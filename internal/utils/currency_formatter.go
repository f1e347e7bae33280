package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"TWD": "NT$",
}

// CurrencySymbol returns the display prefix for an ISO 4217 code.
// Unknown codes are shown as the code followed by a space.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	if code == "" {
		return "$"
	}
	return code + " "
}

// FormatMoney renders amount with two decimal places, e.g. "$500.00".
// Amounts with finer precision keep all their digits.
func FormatMoney(amount decimal.Decimal, currency string) string {
	text := amount.StringFixed(2)
	if !amount.Equal(amount.Truncate(2)) {
		text = amount.String()
	}
	return CurrencySymbol(currency) + text
}
