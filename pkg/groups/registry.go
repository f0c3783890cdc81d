// Package groups holds the application groups of the launcher:
// an insertion-ordered mapping of group name to application paths,
// and the JSON file it lives in.
package groups

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Registry is the in-memory copy of the groups file for one invocation.
// Group names are unique; paths keep the order they were given in.
type Registry struct {
	order  []string
	groups map[string][]string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{groups: make(map[string][]string)}
}

// Create inserts a group or overwrites an existing one.
// An overwritten group keeps its position.
func (r *Registry) Create(name string, paths []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	r.put(name, paths)
	return nil
}

// put stores a group without checking the name. Files written by older
// versions may hold blank names, and those still have to load.
func (r *Registry) put(name string, paths []string) {
	if _, ok := r.groups[name]; !ok {
		r.order = append(r.order, name)
	}
	r.groups[name] = append([]string{}, paths...)
}

// Delete removes a group. A missing name is rejected and nothing changes.
func (r *Registry) Delete(name string) error {
	if !r.Exists(name) {
		return ErrGroupNotFound
	}

	delete(r.groups, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists reports whether name is a known group
func (r *Registry) Exists(name string) bool {
	_, ok := r.groups[name]
	return ok
}

// Get returns a copy of the paths of a group
func (r *Registry) Get(name string) ([]string, bool) {
	paths, ok := r.groups[name]
	if !ok {
		return nil, false
	}
	return append([]string{}, paths...), true
}

// Names returns group names in insertion order
func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}

// Len returns the number of groups
func (r *Registry) Len() int {
	return len(r.order)
}

// MarshalJSON writes the groups as a JSON object, keys in insertion order
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		paths := r.groups[name]
		if paths == nil {
			paths = []string{}
		}
		value, err := json.Marshal(paths)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
