// Package launcher opens the applications of a group.
// Every path is handed to the platform opener on its own and nobody waits
// for the result, so a bad entry never holds up the rest of the group.
package launcher

import (
	"github.com/rs/zerolog"

	"github.com/lvim-tech/appgroup/pkg/utils"
)

// Starter starts a process without waiting for it
type Starter func(name string, args ...string) error

// Launcher opens application paths with a configured command
type Launcher struct {
	command string
	args    []string
	start   Starter
	exists  func(string) bool
	log     zerolog.Logger
}

// New creates a launcher running "command args... path" for every path
func New(command string, args []string, log zerolog.Logger) *Launcher {
	return &Launcher{
		command: command,
		args:    args,
		start:   utils.StartDetachedProcess,
		exists:  utils.FileExists,
		log:     log,
	}
}

// WithStarter replaces the process starter
func (l *Launcher) WithStarter(start Starter) *Launcher {
	l.start = start
	return l
}

// Command returns the opener command
func (l *Launcher) Command() string {
	return l.command
}

// Launch issues one open request per path and returns once all have been
// issued. Each failure is logged and returned; it never stops the others.
func (l *Launcher) Launch(paths []string) []error {
	var failures []error

	for _, path := range paths {
		if err := l.launchOne(path); err != nil {
			l.log.Error().Err(err).Str("path", path).Msg("launch failed")
			failures = append(failures, err)
			continue
		}
		l.log.Debug().Str("path", path).Str("command", l.command).Msg("launch requested")
	}

	return failures
}

func (l *Launcher) launchOne(path string) error {
	if path == "" {
		return &LaunchError{Path: path, Err: ErrEmptyPath}
	}
	if !l.exists(path) {
		return &LaunchError{Path: path, Err: ErrMissingApp}
	}

	args := append(append([]string{}, l.args...), utils.ExpandHomeDir(path))
	if err := l.start(l.command, args...); err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	return nil
}
