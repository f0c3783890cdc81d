// Package utils provides common utility functions for appgroup.
// It includes helpers for command lookup, detached process start,
// file checks and terminal detection.
package utils

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// RunCommand executes a command and returns its stdout.
// stderr is returned separately so callers can tell a dialog's
// cancel message from its answer.
func RunCommand(name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	return string(output), stderr.String(), err
}

// StartDetachedProcess starts a process without waiting for it.
// The child gets its own process group so it outlives this invocation.
func StartDetachedProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
	return cmd.Start()
}

// IsDarwin reports whether we run on macOS
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ============================================================================
// File System Utilities
// ============================================================================

// ExpandHomeDir expands ~ in paths
func ExpandHomeDir(path string) string {
	if path == "~" || (len(path) > 1 && path[0] == '~' && path[1] == '/') {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}

// FileExists checks if file exists
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(ExpandHomeDir(path))
	return err == nil
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	if stdinInfo.Mode()&os.ModeCharDevice == 0 {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	tty.Close()

	return true
}
