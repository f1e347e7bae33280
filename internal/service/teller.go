package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/atm/internal/atm"
	"github.com/hance08/atm/internal/store"
	"github.com/hance08/atm/internal/utils"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TellerService runs the account operations. Every operation is one store
// transaction, so a rejected call leaves balance, PIN and history untouched.
type TellerService struct {
	repo   store.Repository
	config Config
	log    zerolog.Logger
	now    func() time.Time
}

func NewTellerService(repo store.Repository, cfg Config, log zerolog.Logger) *TellerService {
	return &TellerService{
		repo:   repo,
		config: cfg,
		log:    log.With().Str("component", "teller").Logger(),
		now:    time.Now,
	}
}

// Open creates the account with its starting balance and PIN.
func (ts *TellerService) Open(balance decimal.Decimal, pin string) error {
	if balance.IsNegative() {
		return fmt.Errorf("starting balance can't be negative: %s", balance)
	}
	if !atm.IsValidPIN(pin) {
		return fmt.Errorf("starting PIN must be 4 digits")
	}

	if _, err := ts.repo.CreateAccount(balance, pin); err != nil {
		return fmt.Errorf("failed to open account: %w", err)
	}

	ts.log.Debug().Str("balance", balance.String()).Msg("account opened")
	return nil
}

// VerifyPIN reports whether entry is exactly the current PIN.
func (ts *TellerService) VerifyPIN(entry string) (bool, error) {
	acc, err := ts.account(ts.repo)
	if err != nil {
		return false, err
	}

	ok := acc.MatchesPIN(entry)
	if !ok {
		ts.log.Info().Msg("pin rejected")
	}
	return ok, nil
}

func (ts *TellerService) CheckBalance() (string, error) {
	var msg string

	err := ts.repo.ExecTx(func(r store.Repository) error {
		acc, err := ts.account(r)
		if err != nil {
			return err
		}

		if err := ts.record(r, atm.EntryCheckedBalance); err != nil {
			return err
		}

		msg = atm.BalanceMessage(ts.money(acc.Balance))
		return nil
	})
	if err != nil {
		return "", ts.failed("check_balance", err)
	}

	return msg, nil
}

func (ts *TellerService) Deposit(amount decimal.Decimal) (string, error) {
	var msg string

	err := ts.repo.ExecTx(func(r store.Repository) error {
		acc, err := ts.account(r)
		if err != nil {
			return err
		}

		if err := acc.ValidateDeposit(amount); err != nil {
			return err
		}

		if err := r.UpdateBalance(acc.Balance.Add(amount)); err != nil {
			return err
		}

		money := ts.money(amount)
		if err := ts.record(r, atm.DepositEntry(money)); err != nil {
			return err
		}

		msg = atm.DepositMessage(money)
		return nil
	})
	if err != nil {
		return "", ts.failed("deposit", err)
	}

	ts.log.Debug().Str("amount", amount.String()).Msg("deposit")
	return msg, nil
}

func (ts *TellerService) Withdraw(amount decimal.Decimal) (string, error) {
	var msg string

	err := ts.repo.ExecTx(func(r store.Repository) error {
		acc, err := ts.account(r)
		if err != nil {
			return err
		}

		if err := acc.ValidateWithdraw(amount); err != nil {
			return err
		}

		if err := r.UpdateBalance(acc.Balance.Sub(amount)); err != nil {
			return err
		}

		money := ts.money(amount)
		if err := ts.record(r, atm.WithdrawEntry(money)); err != nil {
			return err
		}

		msg = atm.WithdrawMessage(money)
		return nil
	})
	if err != nil {
		return "", ts.failed("withdraw", err)
	}

	ts.log.Debug().Str("amount", amount.String()).Msg("withdraw")
	return msg, nil
}

func (ts *TellerService) ChangePIN(oldPIN, newPIN string) (string, error) {
	err := ts.repo.ExecTx(func(r store.Repository) error {
		acc, err := ts.account(r)
		if err != nil {
			return err
		}

		if err := acc.ValidatePINChange(oldPIN, newPIN); err != nil {
			return err
		}

		if err := r.UpdatePIN(newPIN); err != nil {
			return err
		}

		return ts.record(r, atm.EntryChangedPIN)
	})
	if err != nil {
		return "", ts.failed("change_pin", err)
	}

	ts.log.Debug().Msg("pin changed")
	return atm.MsgPINChanged, nil
}

// ViewHistory returns every entry, oldest first, one per line.
func (ts *TellerService) ViewHistory() (string, error) {
	entries, err := ts.repo.GetEntries()
	if err != nil {
		return "", ts.failed("view_history", err)
	}

	if len(entries) == 0 {
		return atm.MsgNoTransactions, nil
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Description)
	}

	return strings.Join(lines, "\n"), nil
}

func (ts *TellerService) account(r store.Repository) (*atm.Account, error) {
	acc, err := r.GetAccount()
	if err != nil {
		return nil, err
	}

	return &atm.Account{Balance: acc.Balance, PIN: acc.PIN}, nil
}

func (ts *TellerService) record(r store.Repository, entry string) error {
	_, err := r.AppendEntry(entry, ts.now().Unix())
	return err
}

func (ts *TellerService) money(amount decimal.Decimal) string {
	return utils.FormatMoney(amount, ts.config.DefaultCurrency)
}

// failed logs err and passes rejections through unwrapped so callers can
// show their text directly.
func (ts *TellerService) failed(op string, err error) error {
	var rej *atm.Rejection
	if errors.As(err, &rej) {
		ts.log.Info().Str("op", op).Str("reason", rej.Error()).Msg("operation rejected")
		return err
	}

	ts.log.Error().Err(err).Str("op", op).Msg("operation failed")
	return fmt.Errorf("%s: %w", op, err)
}
