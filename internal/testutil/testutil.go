// Package testutil holds fakes shared by the command tests.
package testutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/appgroup/internal/logger"
	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/config"
	"github.com/lvim-tech/appgroup/pkg/dialog"
	"github.com/lvim-tech/appgroup/pkg/groups"
	"github.com/lvim-tech/appgroup/pkg/launcher"
	"github.com/lvim-tech/appgroup/pkg/menu"
)

// Executable is the program path the rendered menu points at
const Executable = "/usr/local/bin/appgroup"

// FakeDialog answers every dialog with canned values
type FakeDialog struct {
	Text    string
	TextErr error

	Selection    string
	SelectionErr error

	Confirmed  bool
	ConfirmErr error

	Calls []string
}

func (f *FakeDialog) Name() string      { return "fake" }
func (f *FakeDialog) IsAvailable() bool { return true }

func (f *FakeDialog) PromptText(title, message string) (string, error) {
	f.Calls = append(f.Calls, "prompt")
	return f.Text, f.TextErr
}

func (f *FakeDialog) ChooseApps(prompt, fileType string) (string, error) {
	f.Calls = append(f.Calls, "choose:"+fileType)
	return f.Selection, f.SelectionErr
}

func (f *FakeDialog) Confirm(message, cancelLabel, okLabel string) (bool, error) {
	f.Calls = append(f.Calls, "confirm:"+message)
	return f.Confirmed, f.ConfirmErr
}

// Env is a command context wired to temp files and recorders
type Env struct {
	Ctx    *commands.Context
	Store  *groups.Store
	Out    *bytes.Buffer
	Logs   *bytes.Buffer
	Starts [][]string
}

// NewEnv builds a context with default labels, a groups file in a temp
// dir, a launcher that records instead of starting, and d as dialog.
func NewEnv(t *testing.T, d dialog.Dialog) *Env {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "no-config.toml"))
	require.NoError(t, err)
	set, err := cfg.LabelSet()
	require.NoError(t, err)

	env := &Env{
		Store: groups.NewStore(filepath.Join(dir, "groups.json")),
		Out:   &bytes.Buffer{},
		Logs:  &bytes.Buffer{},
	}

	log := logger.New(env.Logs, logger.ParseLevel("debug"))
	l := launcher.New("open", nil, log).WithStarter(func(name string, args ...string) error {
		env.Starts = append(env.Starts, append([]string{name}, args...))
		return nil
	})

	env.Ctx = &commands.Context{
		Config:   cfg,
		Labels:   set,
		Store:    env.Store,
		Launcher: l,
		Menu:     menu.New(set, Executable),
		Out:      env.Out,
		Log:      log,
		OpenDialog: func() (dialog.Dialog, error) {
			if d == nil {
				return nil, dialog.ErrNoDialog
			}
			return d, nil
		},
	}
	return env
}

// Seed writes groups to the store, in the given order
func (e *Env) Seed(t *testing.T, names []string, paths map[string][]string) {
	t.Helper()
	reg := groups.NewRegistry()
	for _, name := range names {
		require.NoError(t, reg.Create(name, paths[name]))
	}
	require.NoError(t, e.Store.Save(reg))
}

// Load reads the store back
func (e *Env) Load(t *testing.T) *groups.Registry {
	t.Helper()
	reg, err := e.Store.Load()
	require.NoError(t, err)
	return reg
}
