package store

import "github.com/shopspring/decimal"

type Account struct {
	ID      int64
	Balance decimal.Decimal
	PIN     string
}

type Entry struct {
	ID          int64
	Timestamp   int64
	Description string
}
