// Package kiosk is the ATM screen: it keeps what was typed into the PIN
// field, checks it before every action, collects amounts and PINs through
// modal dialogs and shows the outcome of each operation in a popup.
package kiosk

import (
	"context"
	"errors"

	"github.com/hance08/atm/internal/atm"
	"github.com/hance08/atm/internal/validation"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Teller is the account backend the screen drives.
type Teller interface {
	VerifyPIN(entry string) (bool, error)
	CheckBalance() (string, error)
	Deposit(amount decimal.Decimal) (string, error)
	Withdraw(amount decimal.Decimal) (string, error)
	ChangePIN(oldPIN, newPIN string) (string, error)
	ViewHistory() (string, error)
}

// Dialogs are blocking request/response calls into the terminal.
// Ask and AskSecret return ok == false when the user dismissed the prompt.
type Dialogs interface {
	MainForm(pinEntry string) (string, Action, error)
	Ask(title, prompt string) (value string, ok bool, err error)
	AskSecret(title, prompt string) (value string, ok bool, err error)
	Popup(title, message string) error
	Continue() (bool, error)
}

type Kiosk struct {
	teller   Teller
	dialogs  Dialogs
	log      zerolog.Logger
	pinEntry string
}

func New(teller Teller, dialogs Dialogs, log zerolog.Logger) *Kiosk {
	return &Kiosk{
		teller:  teller,
		dialogs: dialogs,
		log:     log.With().Str("component", "kiosk").Logger(),
	}
}

// PINEntry is the text currently in the PIN field.
func (k *Kiosk) PINEntry() string {
	return k.pinEntry
}

// Run shows the main form until the user exits, declines another
// transaction or ctx is cancelled.
func (k *Kiosk) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, action, err := k.dialogs.MainForm(k.pinEntry)
		if err != nil {
			return err
		}
		k.pinEntry = entry

		if action == ActionExit {
			return nil
		}

		if err := k.Handle(action); err != nil {
			return err
		}

		more, err := k.dialogs.Continue()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Handle runs one action against the current PIN entry. Only dialog and
// storage failures are returned; customer-facing failures become popups.
func (k *Kiosk) Handle(action Action) error {
	k.log.Debug().Stringer("action", action).Msg("action selected")

	ok, err := k.teller.VerifyPIN(k.pinEntry)
	if err != nil {
		return err
	}
	if !ok {
		return k.dialogs.Popup(TitleError, atm.ErrIncorrectPIN.Error())
	}

	switch action {
	case ActionCheckBalance:
		return k.show(titleBalance)(k.teller.CheckBalance())
	case ActionDeposit:
		return k.moveMoney("Deposit Cash", titleDeposit, k.teller.Deposit)
	case ActionWithdraw:
		return k.moveMoney("Withdraw Cash", titleWithdr, k.teller.Withdraw)
	case ActionChangePIN:
		return k.changePIN()
	case ActionViewHistory:
		return k.show(titleHistory)(k.teller.ViewHistory())
	default:
		return nil
	}
}

func (k *Kiosk) moveMoney(dialogTitle, popupTitle string, op func(decimal.Decimal) (string, error)) error {
	text, ok, err := k.dialogs.Ask(dialogTitle, "Amount ($):")
	if err != nil || !ok {
		return err
	}

	amount, err := validation.ParseAmount(text)
	if err != nil {
		return k.reject(err)
	}

	return k.show(popupTitle)(op(amount))
}

func (k *Kiosk) changePIN() error {
	oldPIN, ok, err := k.askPIN("Enter Old PIN:")
	if err != nil || !ok {
		return err
	}

	newPIN, ok, err := k.askPIN("Enter New PIN:")
	if err != nil || !ok {
		return err
	}

	return k.show(titlePIN)(k.teller.ChangePIN(oldPIN, newPIN))
}

// askPIN returns ok == false both on cancel and after showing a
// validation popup, so the caller just stops.
func (k *Kiosk) askPIN(prompt string) (string, bool, error) {
	text, ok, err := k.dialogs.AskSecret(titlePIN, prompt)
	if err != nil || !ok {
		return "", false, err
	}

	pin, err := validation.ParsePIN(text)
	if err != nil {
		return "", false, k.reject(err)
	}

	return pin, true, nil
}

// show pops up an operation's message, or its rejection under the same title.
func (k *Kiosk) show(title string) func(string, error) error {
	return func(msg string, err error) error {
		if err != nil {
			var rej *atm.Rejection
			if errors.As(err, &rej) {
				return k.dialogs.Popup(title, rej.Error())
			}
			return err
		}
		return k.dialogs.Popup(title, msg)
	}
}

func (k *Kiosk) reject(err error) error {
	var rej *atm.Rejection
	if errors.As(err, &rej) {
		return k.dialogs.Popup(TitleError, rej.Error())
	}
	return err
}
