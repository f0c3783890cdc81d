// Package list prints the groups as a table, for use from a terminal.
package list

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lvim-tech/appgroup/pkg/apppath"
	"github.com/lvim-tech/appgroup/pkg/commands"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/utils"
)

func init() {
	commands.Register(commands.Command{
		Name:        "list",
		Description: "Show all groups and their applications",
		Run:         Run,
	})
}

func Run(ctx *commands.Context, _ []string) error {
	reg, err := ctx.Store.Load()
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		ctx.Println(ctx.Labels.Text(labels.NoGroups))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(ctx.Out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"GROUP", "#", "APP", "PATH", "STATUS"})

	for _, name := range reg.Names() {
		paths, _ := reg.Get(name)
		if len(paths) == 0 {
			t.AppendRow(table.Row{name, "", "", "", text.FgHiBlack.Sprint("empty")})
		}
		for i, p := range paths {
			t.AppendRow(table.Row{name, strconv.Itoa(i + 1), appName(ctx, p), p, status(p)})
		}
		t.AppendSeparator()
	}

	t.Render()
	return nil
}

func appName(ctx *commands.Context, path string) string {
	if path == "" {
		return ctx.Labels.Text(labels.NoPath)
	}
	name, err := apppath.DisplayName(path)
	if err != nil {
		return ctx.Labels.Render(labels.NameError, labels.Data{Error: err.Error()})
	}
	return name
}

func status(path string) string {
	if utils.FileExists(path) {
		return text.FgGreen.Sprint("ok")
	}
	return text.FgRed.Sprint("missing")
}
