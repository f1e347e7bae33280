package prompts

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/atm/internal/kiosk"
	"github.com/hance08/atm/internal/ui"
	"github.com/hance08/atm/internal/ui/views"
)

// Terminal implements kiosk.Dialogs on an interactive terminal.
type Terminal struct {
	Title string
}

var _ kiosk.Dialogs = (*Terminal)(nil)

func NewTerminal(title string) *Terminal {
	return &Terminal{Title: title}
}

// MainForm shows the masked PIN field and the action menu. Aborting the
// form is treated as choosing Exit.
func (t *Terminal) MainForm(pinEntry string) (string, kiosk.Action, error) {
	pin := pinEntry
	action := kiosk.ActionCheckBalance

	var opts []huh.Option[kiosk.Action]
	for _, a := range kiosk.Actions {
		opts = append(opts, huh.NewOption(a.String(), a))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter PIN:").
				EchoMode(huh.EchoModePassword).
				Value(&pin),
			huh.NewSelect[kiosk.Action]().
				Title("Choose a transaction:").
				Options(opts...).
				Value(&action),
		).Title(t.Title),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return pin, kiosk.ActionExit, nil
		}
		return pinEntry, kiosk.ActionExit, err
	}

	return pin, action, nil
}

func (t *Terminal) Ask(title, prompt string) (string, bool, error) {
	return PromptInput(title, prompt)
}

func (t *Terminal) AskSecret(title, prompt string) (string, bool, error) {
	return PromptSecret(title, prompt)
}

func (t *Terminal) Popup(title, message string) error {
	return views.RenderPopup(title, message)
}

func (t *Terminal) Continue() (bool, error) {
	more := true

	err := survey.AskOne(&survey.Confirm{
		Message: "Another transaction?",
		Default: true,
	}, &more, ui.IconOption())

	return more, err
}
