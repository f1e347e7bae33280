package views

import (
	"github.com/hance08/atm/internal/kiosk"
	"github.com/pterm/pterm"
)

// RenderPopup shows an operation result in a titled box; error results use
// the error printer instead.
func RenderPopup(title, message string) error {
	pterm.Println()

	if title == kiosk.TitleError {
		pterm.Error.Println(message)
		return nil
	}

	pterm.DefaultBox.
		WithTitle(pterm.LightCyan(title)).
		WithTitleTopCenter().
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(message)

	return nil
}
