// Package labels renders the user-visible texts of appgroup.
// Every text is a text/template with the sprig function map, so users can
// write things like {{ .Name | upper }} in their config.
package labels

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Label keys, as used in the [labels] table of the config file
const (
	Title            = "title"
	LaunchGroup      = "launch_group"
	NoGroups         = "no_groups"
	Manage           = "manage"
	CreateGroup      = "create_group"
	ViewApps         = "view_apps"
	ViewAppsEmpty    = "view_apps_empty"
	DeleteGroup      = "delete_group"
	DeleteGroupEmpty = "delete_group_empty"
	NoPath           = "no_path"
	MissingPath      = "missing_path"
	NameError        = "name_error"
	PromptNameTitle  = "prompt_name_title"
	PromptName       = "prompt_name"
	PromptApps       = "prompt_apps"
	ConfirmDelete    = "confirm_delete"
	ConfirmCancel    = "confirm_cancel"
	ConfirmOK        = "confirm_ok"
	Created          = "created"
	Deleted          = "deleted"
	DeleteCancelled  = "delete_cancelled"
	CreateCancelled  = "create_cancelled"
	NameMissing      = "name_missing"
	GroupNotFound    = "group_not_found"
)

// Data is what a label template can refer to
type Data struct {
	Name  string
	Error string
	Count int
}

// Set is a compiled collection of label templates
type Set struct {
	templates map[string]*template.Template
}

// Compile parses every template. The first parse error is returned,
// reported against its key.
func Compile(texts map[string]string) (*Set, error) {
	keys := make([]string, 0, len(texts))
	for key := range texts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	set := &Set{templates: make(map[string]*template.Template, len(texts))}
	for _, key := range keys {
		tmpl, err := template.New(key).
			Option("missingkey=zero").
			Funcs(sprig.TxtFuncMap()).
			Parse(texts[key])
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", key, err)
		}
		set.templates[key] = tmpl
	}
	return set, nil
}

// Render executes the label for key. An unknown key renders as the key
// itself and an execution error as the error text, so a menu is never
// cut short by a bad label.
func (s *Set) Render(key string, data Data) string {
	tmpl, ok := s.templates[key]
	if !ok {
		return key
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err.Error()
	}
	return buf.String()
}

// Text renders a label that takes no data
func (s *Set) Text(key string) string {
	return s.Render(key, Data{})
}

// Name renders a label about one group
func (s *Set) Name(key, name string) string {
	return s.Render(key, Data{Name: name})
}
