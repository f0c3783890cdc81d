// Package render provides the default action: printing the menu.
package render

import (
	"github.com/lvim-tech/appgroup/pkg/commands"
)

// Name is the command name; the root command runs it when no action is given
const Name = "render"

func init() {
	commands.Register(commands.Command{
		Name:        Name,
		Description: "Print the menu for the menu bar host",
		Hidden:      true,
		Run:         Run,
	})
}

func Run(ctx *commands.Context, _ []string) error {
	reg, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	ctx.Log.Debug().Int("groups", reg.Len()).Str("file", ctx.Store.Path()).Msg("rendering menu")
	return ctx.Menu.Render(ctx.Out, reg)
}
