package groups

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DefaultFileName is the groups file xbar plugins have always used
const DefaultFileName = ".xbar_app_groups.json"

// Store persists a Registry as a JSON object of string arrays.
type Store struct {
	path string
}

// NewStore creates a store for the given file. An empty path means DefaultPath.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns ~/.xbar_app_groups.json
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultFileName)
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Load reads the groups file. A missing file is an empty registry;
// anything unreadable as "name -> list of paths" is a *ParseError.
func (s *Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read groups file: %w", err)
	}

	reg, err := decodeRegistry(data)
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	return reg, nil
}

// Save overwrites the groups file with the whole registry
func (s *Store) Save(reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode groups: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create groups directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write groups file: %w", err)
	}
	return nil
}

// decodeRegistry walks the top-level object token by token so that the
// key order of the file survives into the registry.
func decodeRegistry(data []byte) (*Registry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object at top level")
	}

	reg := NewRegistry()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		paths, err := decodePaths(raw)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		reg.put(name, paths)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the groups object")
	}

	return reg, nil
}

func decodePaths(raw any) ([]string, error) {
	if raw == nil {
		return nil, errors.New("expected a list of paths, got null")
	}

	paths := []string{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: false,
		Result:           &paths,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return paths, nil
}
