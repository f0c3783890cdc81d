package dialog

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/lvim-tech/appgroup/pkg/utils"
)

const osascriptPath = "/usr/bin/osascript"

// AppleScript shows native macOS dialogs through osascript
type AppleScript struct {
	run Runner
}

func NewAppleScript(run Runner) *AppleScript {
	if run == nil {
		run = defaultRunner()
	}
	return &AppleScript{run: run}
}

func (a *AppleScript) Name() string {
	return "osascript"
}

func (a *AppleScript) IsAvailable() bool {
	return utils.IsDarwin() && utils.FileExists(osascriptPath)
}

func (a *AppleScript) PromptText(title, message string) (string, error) {
	script := fmt.Sprintf(
		`tell app "System Events" to display dialog %s default answer "" with title %s buttons {"Cancel", "OK"} default button 2 cancel button 1`,
		utils.AppleScriptString(message), utils.AppleScriptString(title))

	out, err := a.osascript(script)
	if err != nil {
		return "", err
	}

	_, text, found := strings.Cut(out, "text returned:")
	if !found {
		return "", fmt.Errorf("unexpected dialog output %q", out)
	}
	return strings.TrimSpace(text), nil
}

func (a *AppleScript) ChooseApps(prompt, fileType string) (string, error) {
	script := fmt.Sprintf(
		`tell application "Finder" to set selectedItems to choose file of type %s with prompt %s with multiple selections allowed`,
		utils.AppleScriptString(fileType), utils.AppleScriptString(prompt))

	return a.osascript(script)
}

func (a *AppleScript) Confirm(message, cancelLabel, okLabel string) (bool, error) {
	script := fmt.Sprintf(
		`tell app "System Events" to display dialog %s buttons {%s, %s} default button 1 with icon caution`,
		utils.AppleScriptString(message), utils.AppleScriptString(cancelLabel), utils.AppleScriptString(okLabel))

	out, err := a.osascript(script)
	if err != nil {
		return false, err
	}

	_, button, _ := strings.Cut(out, "button returned:")
	button, _, _ = strings.Cut(button, ",")
	return strings.TrimSpace(button) == okLabel, nil
}

// osascript runs one script. A non-zero exit is how AppleScript reports
// "User canceled." and is mapped to ErrCancelled.
func (a *AppleScript) osascript(script string) (string, error) {
	out, stderr, err := a.run(osascriptPath, "-e", script)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", ErrCancelled, strings.TrimSpace(stderr))
		}
		return "", fmt.Errorf("osascript failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}
