package errhandler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsCancel(t *testing.T) {
	assert.True(t, IsCancel(terminal.InterruptErr))
	assert.True(t, IsCancel(huh.ErrUserAborted))
	assert.True(t, IsCancel(fmt.Errorf("session: %w", context.Canceled)))
	assert.False(t, IsCancel(errors.New("disk full")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Failed to open", capitalize("failed to open"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Éa", capitalize("éa"))
}
