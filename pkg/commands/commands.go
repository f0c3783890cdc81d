// Package commands provides the core command system for appgroup.
// It defines the Command type and the Context every action runs with.
package commands

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lvim-tech/appgroup/pkg/config"
	"github.com/lvim-tech/appgroup/pkg/dialog"
	"github.com/lvim-tech/appgroup/pkg/groups"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/launcher"
	"github.com/lvim-tech/appgroup/pkg/menu"
	"github.com/lvim-tech/appgroup/pkg/utils"
)

// Command describes one action of the program
type Command struct {
	Name        string
	Description string
	Args        []string // positional argument names, exactly this many are required
	Hidden      bool
	Run         func(ctx *Context, args []string) error
}

// Context is everything an action needs for one invocation
type Context struct {
	Config   *config.Config
	Labels   *labels.Set
	Store    *groups.Store
	Launcher *launcher.Launcher
	Menu     *menu.Renderer
	Out      io.Writer
	Log      zerolog.Logger

	// OpenDialog is called only by actions that ask the user something,
	// so rendering works where no dialog backend is available
	OpenDialog func() (dialog.Dialog, error)
}

// Result prints the outcome of an action for the menu host and, when
// enabled, shows it as a desktop notification
func (c *Context) Result(text string) {
	menu.Result(c.Out, text)
	utils.NotifyWithConfig(&c.Config.Notifications, c.Labels.Text(labels.Title), text)
}

// Failure is Result for outcomes the user should notice
func (c *Context) Failure(text string) {
	menu.Result(c.Out, text)
	utils.ShowErrorNotificationWithConfig(&c.Config.Notifications, c.Labels.Text(labels.Title), text)
}

// Println writes a plain line to the output
func (c *Context) Println(text string) {
	fmt.Fprintln(c.Out, menu.Sanitize(text))
}
