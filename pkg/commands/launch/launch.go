// Package launch opens every application of a group.
package launch

import (
	"fmt"

	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/menu"
)

func init() {
	commands.Register(commands.Command{
		Name:        menu.ActionLaunch,
		Description: "Launch all applications of a group",
		Args:        []string{"group"},
		Run:         Run,
	})
}

func Run(ctx *commands.Context, args []string) error {
	name := args[0]

	reg, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	paths, ok := reg.Get(name)
	if !ok {
		ctx.Log.Warn().Str("group", name).Msg("group not found")
		ctx.Println(ctx.Labels.Name(labels.GroupNotFound, name))
		return nil
	}

	failures := ctx.Launcher.Launch(paths)
	ctx.Log.Info().
		Str("group", name).
		Str("command", ctx.Launcher.Command()).
		Int("apps", len(paths)).
		Int("failed", len(failures)).
		Msg("group launched")

	if len(failures) > 0 {
		ctx.Failure(fmt.Sprintf("%s: %d/%d", ctx.Labels.Name(labels.LaunchGroup, name), len(paths)-len(failures), len(paths)))
	}
	return nil
}
