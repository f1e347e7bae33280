package atm

import "fmt"

// History entries
const (
	EntryCheckedBalance = "Checked balance"
	EntryChangedPIN     = "Changed PIN"
)

const (
	MsgPINChanged     = "Your PIN has been successfully changed."
	MsgNoTransactions = "No transactions to display."
)

// The money arguments below are already formatted, e.g. "$500.00".

func BalanceMessage(money string) string {
	return fmt.Sprintf("Your current balance is: %s", money)
}

func DepositMessage(money string) string {
	return fmt.Sprintf("%s has been deposited into your account.", money)
}

func WithdrawMessage(money string) string {
	return fmt.Sprintf("%s has been withdrawn from your account.", money)
}

func DepositEntry(money string) string {
	return "Deposited " + money
}

func WithdrawEntry(money string) string {
	return "Withdrew " + money
}
