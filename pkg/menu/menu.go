// Package menu renders the xbar/SwiftBar line protocol for the current groups.
//
// Each stdout line is a menu item; "---" separates, leading "--" pairs nest,
// and everything after " | " is a list of key=value parameters telling the
// host what to run when the item is clicked.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lvim-tech/appgroup/pkg/apppath"
	"github.com/lvim-tech/appgroup/pkg/groups"
	"github.com/lvim-tech/appgroup/pkg/labels"
	"github.com/lvim-tech/appgroup/pkg/utils"
)

// Action verbs the menu re-invokes the program with
const (
	ActionLaunch = "launch_group"
	ActionCreate = "new_group_prompt"
	ActionDelete = "delete_group_direct"
)

const separator = "---"

// hyphen (U+2010) stands in for a leading "-" in display text
const hyphen = "\u2010"

// Renderer turns a registry into menu lines
type Renderer struct {
	labels     *labels.Set
	executable string
	exists     func(string) bool
}

// New creates a renderer whose actions re-run executable
func New(set *labels.Set, executable string) *Renderer {
	return &Renderer{
		labels:     set,
		executable: executable,
		exists:     utils.FileExists,
	}
}

// WithExists replaces the check used to flag missing applications
func (r *Renderer) WithExists(exists func(string) bool) *Renderer {
	r.exists = exists
	return r
}

// Render writes the whole menu
func (r *Renderer) Render(w io.Writer, reg *groups.Registry) error {
	bw := bufio.NewWriter(w)
	names := reg.Names()

	line(bw, 0, r.labels.Text(labels.Title), "")
	fmt.Fprintln(bw, separator)

	if len(names) == 0 {
		line(bw, 0, r.labels.Text(labels.NoGroups), "")
	}
	for _, name := range names {
		line(bw, 0, r.labels.Name(labels.LaunchGroup, name), r.Action(ActionLaunch, name))
	}
	fmt.Fprintln(bw, separator)

	line(bw, 0, r.labels.Text(labels.Manage), "")
	line(bw, 1, r.labels.Text(labels.CreateGroup), r.Action(ActionCreate))

	if len(names) == 0 {
		line(bw, 1, r.labels.Text(labels.ViewAppsEmpty), "")
		line(bw, 1, r.labels.Text(labels.DeleteGroupEmpty), "")
		return bw.Flush()
	}

	line(bw, 1, r.labels.Text(labels.ViewApps), "")
	for _, name := range names {
		line(bw, 2, name, "")
		paths, _ := reg.Get(name)
		for _, p := range paths {
			line(bw, 3, r.appLabel(p), "")
		}
	}

	line(bw, 1, r.labels.Text(labels.DeleteGroup), "")
	for _, name := range names {
		line(bw, 2, name, r.Action(ActionDelete, name))
	}

	return bw.Flush()
}

// appLabel never fails: problems with a path become the label itself
func (r *Renderer) appLabel(path string) string {
	if path == "" {
		return r.labels.Text(labels.NoPath)
	}

	name, err := apppath.DisplayName(path)
	if err != nil {
		return r.labels.Render(labels.NameError, labels.Data{Error: err.Error()})
	}

	if !r.exists(path) {
		return r.labels.Name(labels.MissingPath, name)
	}
	return name
}

// Action returns the parameters that make the host run this program
// with the given action and arguments, without a terminal, refreshing
// afterwards. Arguments follow a "--" so a group name like "-Dev" is
// never parsed as a flag.
func (r *Renderer) Action(action string, args ...string) string {
	params := []string{action}
	if len(args) > 0 {
		params = append(params, "--")
		params = append(params, args...)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "shell=%s", quote(r.executable))
	for i, param := range params {
		fmt.Fprintf(&b, " param%d=%s", i+1, quote(param))
	}
	b.WriteString(" terminal=false refresh=true")
	return b.String()
}

// line writes one item at the given nesting depth
func line(w io.Writer, depth int, text, params string) {
	prefix := strings.Repeat("--", depth)
	if prefix != "" {
		prefix += " "
	}

	text = Sanitize(text)
	if params == "" {
		fmt.Fprintf(w, "%s%s\n", prefix, text)
		return
	}
	fmt.Fprintf(w, "%s%s | %s\n", prefix, text, params)
}

// Sanitize keeps display text from breaking the line protocol.
// Leading dashes would read as nesting or a separator, so they become hyphens.
func Sanitize(text string) string {
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "|", "¦").Replace(text)
	text = strings.TrimSpace(text)

	if rest := strings.TrimLeft(text, "-"); len(rest) < len(text) {
		text = strings.Repeat(hyphen, len(text)-len(rest)) + rest
	}
	return text
}

// quote wraps a parameter value in double quotes
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// Result writes the one-line outcome of an action, asking the host to refresh
func Result(w io.Writer, text string) {
	fmt.Fprintf(w, "%s | refresh=true\n", Sanitize(text))
}
