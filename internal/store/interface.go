package store

import "github.com/shopspring/decimal"

type Repository interface {
	// Account Operations
	CreateAccount(balance decimal.Decimal, pin string) (int64, error)
	GetAccount() (*Account, error)
	UpdateBalance(balance decimal.Decimal) error
	UpdatePIN(pin string) error

	// History Operations
	AppendEntry(description string, timestamp int64) (int64, error)
	GetEntries() ([]*Entry, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}
