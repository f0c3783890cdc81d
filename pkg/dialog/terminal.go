package dialog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lvim-tech/appgroup/pkg/utils"
)

// Terminal asks on the controlling terminal, for running actions by hand
type Terminal struct {
	stdin  io.ReadCloser
	stdout io.Writer
}

// NewTerminal creates a terminal backend; nil streams mean the process's own
func NewTerminal(stdin io.ReadCloser, stdout io.Writer) *Terminal {
	return &Terminal{stdin: stdin, stdout: stdout}
}

func (t *Terminal) Name() string {
	return "terminal"
}

func (t *Terminal) IsAvailable() bool {
	return t.stdin != nil || utils.IsTerminal()
}

func (t *Terminal) PromptText(title, message string) (string, error) {
	rl, err := t.open(fmt.Sprintf("%s: %s ", title, message))
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := readLine(rl)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ChooseApps reads one path per line until an empty line
func (t *Terminal) ChooseApps(prompt, fileType string) (string, error) {
	rl, err := t.open("app> ")
	if err != nil {
		return "", err
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s (one .%s path per line, empty line to finish)\n", prompt, fileType)

	var paths []string
	for {
		line, err := readLine(rl)
		if err != nil {
			if IsCancelled(err) && len(paths) > 0 {
				break
			}
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		paths = append(paths, utils.ExpandHomeDir(line))
	}

	return strings.Join(paths, ", "), nil
}

func (t *Terminal) Confirm(message, cancelLabel, okLabel string) (bool, error) {
	rl, err := t.open(fmt.Sprintf("%s [%s/%s] (default %s): ", message, cancelLabel, okLabel, cancelLabel))
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := readLine(rl)
	if err != nil {
		return false, err
	}
	return confirmed(line, okLabel), nil
}

func (t *Terminal) open(prompt string) (*readline.Instance, error) {
	cfg := &readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	}
	if t.stdin != nil {
		cfg.Stdin = t.stdin
	}
	if t.stdout != nil {
		cfg.Stdout = t.stdout
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return rl, nil
}

// readLine maps Ctrl+C and Ctrl+D to ErrCancelled
func readLine(rl *readline.Instance) (string, error) {
	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrCancelled
	}
	return line, err
}

// confirmed accepts the ok label or a plain yes; anything else keeps the default
func confirmed(answer, okLabel string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	if strings.EqualFold(answer, okLabel) {
		return true
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
