package validation

import (
	"strings"

	"github.com/hance08/atm/internal/atm"
	"github.com/hance08/atm/internal/constants"
	"github.com/shopspring/decimal"
)

// Rejections raised while reading customer input, before the account is touched.
var (
	ErrAmountNotNumber   = atm.NewRejection("Invalid amount. Please enter a valid number.")
	ErrAmountNotPositive = atm.NewRejection("Amount must be positive.")
	ErrAmountPrecision   = atm.NewRejection("Amount cannot have more than 2 decimal places.")
	ErrPINNotNumeric     = atm.NewRejection("Invalid PIN. Please enter a numeric value.")
	ErrPINLength         = atm.NewRejection("PIN must be 4 digits.")
)

const maxAmountDecimals = 2

// ParseAmount turns the text typed into an amount prompt into a positive decimal.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, ErrAmountNotNumber
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, ErrAmountNotNumber
	}

	if !amount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}

	// "1.50" and "1.5000" are fine, "1.234" is not
	if !amount.Equal(amount.Truncate(maxAmountDecimals)) {
		return decimal.Zero, ErrAmountPrecision
	}

	return amount.Truncate(maxAmountDecimals), nil
}

// ParsePIN accepts exactly four digits, surrounding whitespace ignored.
func ParsePIN(text string) (string, error) {
	pin := strings.TrimSpace(text)
	if pin == "" {
		return "", ErrPINNotNumeric
	}

	for _, r := range pin {
		if r < '0' || r > '9' {
			return "", ErrPINNotNumeric
		}
	}

	if len(pin) != constants.PINLength {
		return "", ErrPINLength
	}

	return pin, nil
}
