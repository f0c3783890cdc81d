// Package create asks for a group name and its applications and stores the group.
package create

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lvim-tech/appgroup/pkg/apppath"
	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/menu"
	"github.com/lvim-tech/appgroup/pkg/utils"
)

func init() {
	commands.Register(commands.Command{
		Name:        menu.ActionCreate,
		Description: "Create a group interactively",
		Run:         Run,
	})
}

func Run(ctx *commands.Context, _ []string) error {
	d, err := ctx.OpenDialog()
	if err != nil {
		ctx.Log.Error().Err(err).Msg("no dialog available")
		ctx.Result(ctx.Labels.Text(labels.CreateCancelled))
		return nil
	}

	name, err := d.PromptText(ctx.Labels.Text(labels.PromptNameTitle), ctx.Labels.Text(labels.PromptName))
	if err != nil {
		ctx.Log.Info().Err(err).Str("dialog", d.Name()).Msg("name prompt dismissed")
		ctx.Result(ctx.Labels.Text(labels.CreateCancelled))
		return nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		ctx.Result(ctx.Labels.Text(labels.NameMissing))
		return nil
	}

	raw, err := d.ChooseApps(ctx.Labels.Text(labels.PromptApps), ctx.Config.Picker.FileType)
	if err != nil {
		ctx.Log.Info().Err(err).Str("dialog", d.Name()).Msg("app picker dismissed")
		ctx.Result(ctx.Labels.Text(labels.CreateCancelled))
		return nil
	}

	paths := ResolveSelection(raw, utils.FileExists, ctx.Log)

	reg, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	if err := reg.Create(name, paths); err != nil {
		return err
	}
	if err := ctx.Store.Save(reg); err != nil {
		return err
	}

	ctx.Log.Info().Str("group", name).Strs("paths", paths).Msg("group saved")
	ctx.Result(ctx.Labels.Render(labels.Created, labels.Data{Name: name, Count: len(paths)}))
	return nil
}

// ResolveSelection turns raw picker output into existing paths.
// Tokens that cannot be resolved or do not exist are logged and dropped.
func ResolveSelection(raw string, exists func(string) bool, log zerolog.Logger) []string {
	paths := []string{}

	for _, token := range apppath.SplitSelection(raw) {
		path, err := apppath.Normalize(token)
		if err != nil {
			log.Warn().Err(err).Msg("skipping selection")
			continue
		}
		if !exists(path) {
			log.Warn().Str("path", path).Msg("path does not exist, skipping")
			continue
		}
		paths = append(paths, path)
	}

	return paths
}
