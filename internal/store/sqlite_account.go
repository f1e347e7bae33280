package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// the schema allows exactly one account row
const accountID = 1

func (s *Store) CreateAccount(balance decimal.Decimal, pin string) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO account (id, balance, pin)
        VALUES (?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(accountID, balance.String(), pin).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.ExtendedCode == sqlite.ErrConstraintPrimaryKey || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
				return 0, fmt.Errorf("failed to create account: %w", ErrAccountExists)
			}
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccount() (*Account, error) {
	row := s.db.QueryRow("SELECT id, balance, pin FROM account WHERE id = ?", accountID)

	acc := &Account{}

	err := row.Scan(&acc.ID, &acc.Balance, &acc.PIN)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account doesn't exist: %w", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account : %w", err)
	}

	return acc, nil
}

func (s *Store) UpdateBalance(balance decimal.Decimal) error {
	result, err := s.db.Exec("UPDATE account SET balance = ? WHERE id = ?", balance.String(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	return requireOneRow(result)
}

func (s *Store) UpdatePIN(pin string) error {
	result, err := s.db.Exec("UPDATE account SET pin = ? WHERE id = ?", pin, accountID)
	if err != nil {
		return fmt.Errorf("failed to update pin: %w", err)
	}

	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("account doesn't exist: %w", ErrRecordNotFound)
	}
	return nil
}
