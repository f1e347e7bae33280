package cmd

import (
	"context"

	"github.com/hance08/atm/internal/app"
	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/kiosk"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/ui/prompts"
	"github.com/pterm/pterm"
)

const screenTitle = "ATM Machine Simulation"

type sessionRunner struct {
	cfg *config.Config
}

func (r *sessionRunner) Run(ctx context.Context) error {
	application, cleanup, err := app.NewApp(r.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ui.PrintL1Title(screenTitle)
	pterm.Info.Println("Enter your PIN and choose a transaction. Press Ctrl+C to leave.")

	k := kiosk.New(application.Service.Teller, prompts.NewTerminal(screenTitle), application.Logger)
	if err := k.Run(ctx); err != nil {
		return err
	}

	ui.Separator()
	pterm.Success.Println("Thank you for using the ATM. Your session has ended.")

	return nil
}
