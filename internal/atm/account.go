// Package atm holds the rules of the simulated account: what a valid amount
// and PIN look like, when an operation is rejected, and the texts shown for
// every outcome.
package atm

import (
	"github.com/hance08/atm/internal/constants"
	"github.com/shopspring/decimal"
)

// Account is the state of the single simulated account.
type Account struct {
	Balance decimal.Decimal
	PIN     string
}

// ValidateDeposit checks that amount can be deposited.
func (a *Account) ValidateDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdraw checks amount first, then that the balance covers it.
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidatePINChange requires the current PIN before looking at the new one.
func (a *Account) ValidatePINChange(oldPIN, newPIN string) error {
	if !a.MatchesPIN(oldPIN) {
		return ErrIncorrectOldPIN
	}
	if !IsValidPIN(newPIN) {
		return ErrNewPINLength
	}
	return nil
}

// MatchesPIN compares entry with the stored PIN as plain text.
func (a *Account) MatchesPIN(entry string) bool {
	return entry == a.PIN
}

// IsValidPIN reports whether pin is exactly four ASCII digits.
func IsValidPIN(pin string) bool {
	if len(pin) != constants.PINLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
