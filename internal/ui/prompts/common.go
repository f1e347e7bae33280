package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a text value. ok is false when the user aborted
// the prompt instead of submitting it.
func PromptInput(title string, message string) (string, bool, error) {
	var inputVal string

	err := huh.NewInput().
		Title(title).
		Description(message).
		Value(&inputVal).
		Run()

	return cancelled(inputVal, err)
}

// PromptSecret is PromptInput with the typed characters masked.
func PromptSecret(title string, message string) (string, bool, error) {
	var inputVal string

	err := huh.NewInput().
		Title(title).
		Description(message).
		EchoMode(huh.EchoModePassword).
		Value(&inputVal).
		Run()

	return cancelled(inputVal, err)
}

func cancelled(val string, err error) (string, bool, error) {
	if errors.Is(err, huh.ErrUserAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
