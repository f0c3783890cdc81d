package groups

import (
	"errors"
	"fmt"
)

var (
	// ErrGroupNotFound is returned when a group name is not in the registry
	ErrGroupNotFound = errors.New("group not found")

	// ErrEmptyName is returned when a group is created without a name
	ErrEmptyName = errors.New("group name is empty")
)

// ParseError reports a groups file that exists but cannot be understood.
// It is never recovered from: the file is left untouched for the user to fix.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed groups file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is ErrGroupNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGroupNotFound)
}
