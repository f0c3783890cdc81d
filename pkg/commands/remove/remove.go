// Package remove deletes a group after the user confirms it.
package remove

import (
	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/groups"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/menu"
)

func init() {
	commands.Register(commands.Command{
		Name:        menu.ActionDelete,
		Description: "Delete a group after confirmation",
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

	if !reg.Exists(name) {
		ctx.Result(ctx.Labels.Name(labels.GroupNotFound, name))
		return nil
	}

	d, err := ctx.OpenDialog()
	if err != nil {
		ctx.Log.Error().Err(err).Msg("no dialog available")
		ctx.Result(ctx.Labels.Name(labels.DeleteCancelled, name))
		return nil
	}

	ok, err := d.Confirm(
		ctx.Labels.Name(labels.ConfirmDelete, name),
		ctx.Labels.Text(labels.ConfirmCancel),
		ctx.Labels.Text(labels.ConfirmOK))
	if err != nil || !ok {
		ctx.Log.Info().Err(err).Str("group", name).Msg("delete not confirmed")
		ctx.Result(ctx.Labels.Name(labels.DeleteCancelled, name))
		return nil
	}

	if err := reg.Delete(name); err != nil {
		if groups.IsNotFound(err) {
			ctx.Result(ctx.Labels.Name(labels.GroupNotFound, name))
			return nil
		}
		return err
	}
	if err := ctx.Store.Save(reg); err != nil {
		return err
	}

	ctx.Log.Info().Str("group", name).Msg("group deleted")
	ctx.Result(ctx.Labels.Name(labels.Deleted, name))
	return nil
}
