// Package dialog provides the interactive collaborators of appgroup:
// a text prompt, a multi-select application picker and a confirmation.
// It supports AppleScript (macOS), zenity and a plain terminal behind a
// unified interface; the backend is picked from config or detected.
package dialog

import (
	"errors"

	"github.com/lvim-tech/appgroup/pkg/utils"
)

var (
	// ErrCancelled is returned when the user dismisses a dialog
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoDialog is returned when no dialog backend can run here
	ErrNoDialog = errors.New("no dialog backend available")
)

// Dialog is one way of asking the user something
type Dialog interface {
	Name() string      // "osascript", "zenity", "terminal"
	IsAvailable() bool // can it run in this environment

	// PromptText asks for one line of text
	PromptText(title, message string) (string, error)

	// ChooseApps lets the user pick several applications and returns the
	// raw selection: tokens joined by ", ", possibly in alias notation
	ChooseApps(prompt, fileType string) (string, error)

	// Confirm asks a yes/no question; cancelLabel is the default button
	Confirm(message, cancelLabel, okLabel string) (bool, error)
}

// Runner runs a command and returns stdout and stderr
type Runner func(name string, args ...string) (string, string, error)

// IsCancelled checks whether err comes from the user dismissing a dialog
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

func defaultRunner() Runner {
	return utils.RunCommand
}
