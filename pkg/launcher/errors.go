package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned for a group entry without a path
	ErrEmptyPath = errors.New("empty application path")

	// ErrMissingApp is returned when the path does not exist on disk
	ErrMissingApp = errors.New("application not found")
)

// LaunchError reports one application that could not be opened
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
