package dialog

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/lvim-tech/appgroup/pkg/utils"
)

// Zenity shows GTK dialogs, for running the plugin outside macOS
type Zenity struct {
	run Runner
}

func NewZenity(run Runner) *Zenity {
	if run == nil {
		run = defaultRunner()
	}
	return &Zenity{run: run}
}

func (z *Zenity) Name() string {
	return "zenity"
}

func (z *Zenity) IsAvailable() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	return utils.CommandExists("zenity")
}

func (z *Zenity) PromptText(title, message string) (string, error) {
	out, err := z.zenity("--entry", "--title", title, "--text", message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (z *Zenity) ChooseApps(prompt, fileType string) (string, error) {
	args := []string{"--file-selection", "--multiple", "--separator", ", ", "--title", prompt}
	if fileType != "" {
		// .app bundles are directories
		if fileType == "app" {
			args = append(args, "--directory")
		}
		args = append(args, "--file-filter", fmt.Sprintf("%s | *.%s", fileType, fileType))
	}

	out, err := z.zenity(args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (z *Zenity) Confirm(message, cancelLabel, okLabel string) (bool, error) {
	_, err := z.zenity("--question", "--text", message,
		"--ok-label", okLabel, "--cancel-label", cancelLabel, "--default-cancel")
	if err != nil {
		if IsCancelled(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// zenity exits 1 on Cancel and 5 on timeout
func (z *Zenity) zenity(args ...string) (string, error) {
	out, stderr, err := z.run("zenity", args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s", ErrCancelled, strings.TrimSpace(stderr))
		}
		return "", fmt.Errorf("zenity failed: %w", err)
	}
	return out, nil
}
