package dialog

import (
	"fmt"
	"sort"
	"strings"
)

// Factory builds a backend around a command runner
type Factory func(run Runner) Dialog

var registry = map[string]Factory{
	"osascript": func(run Runner) Dialog { return NewAppleScript(run) },
	"zenity":    func(run Runner) Dialog { return NewZenity(run) },
	"terminal":  func(Runner) Dialog { return NewTerminal(nil, nil) },
}

// Names returns the registered backend names
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns the backend called name. "auto" or "" detects one.
func New(name string) (Dialog, error) {
	return NewWithRunner(name, defaultRunner())
}

// NewWithRunner is New with an explicit command runner
func NewWithRunner(name string, run Runner) (Dialog, error) {
	if name == "" || name == "auto" {
		if d := DetectAvailable(run); d != nil {
			return d, nil
		}
		return nil, ErrNoDialog
	}

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialog backend %q (available: auto, %s)", name, strings.Join(Names(), ", "))
	}
	return f(run), nil
}

// DetectAvailable finds the first usable backend
func DetectAvailable(run Runner) Dialog {
	// Priority: osascript > zenity > terminal
	priority := []string{"osascript", "zenity", "terminal"}

	for _, name := range priority {
		f, ok := registry[name]
		if !ok {
			continue
		}
		if d := f(run); d.IsAvailable() {
			return d
		}
	}

	return nil
}
