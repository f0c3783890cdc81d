// Package apppath turns what a file picker hands back into filesystem paths,
// and application paths into the names shown in the menu.
package apppath

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// BundleSuffix is stripped from application names
const BundleSuffix = ".app"

// selectionSeparator separates items in AppleScript list output
const selectionSeparator = ", "

var (
	// ErrUnresolvable is returned for a picker token that does not name a path
	ErrUnresolvable = errors.New("cannot resolve path")

	// ErrNoName is returned when no display name can be derived from a path
	ErrNoName = errors.New("cannot derive application name")
)

// SplitSelection splits raw multi-selection output into candidate tokens.
// Blank output means nothing was selected.
func SplitSelection(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var tokens []string
	for _, tok := range strings.Split(raw, selectionSeparator) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Normalize converts one picker token into an absolute POSIX path.
//
//	alias Macintosh HD:Applications:Notes.app:  ->  /Applications/Notes.app
//	"/Applications/Notes.app"                   ->  /Applications/Notes.app
//
// The volume name of an alias is dropped, as Finder reports the boot volume.
func Normalize(token string) (string, error) {
	clean := strings.TrimSpace(token)

	if rest, ok := strings.CutPrefix(clean, "alias "); ok {
		parts := strings.Split(rest, ":")
		clean = "/" + strings.Join(parts[1:], "/")
	} else if rest, ok := strings.CutPrefix(clean, "file "); ok {
		parts := strings.Split(rest, ":")
		clean = "/" + strings.Join(parts[1:], "/")
	}

	clean = strings.Trim(clean, `"`)
	if len(clean) > 1 {
		clean = strings.TrimRight(clean, "/")
	}

	if clean == "" || clean == "/" {
		return "", fmt.Errorf("%w: %q", ErrUnresolvable, token)
	}
	if !strings.HasPrefix(clean, "/") {
		return "", fmt.Errorf("%w: %q is not absolute", ErrUnresolvable, token)
	}

	return path.Clean(clean), nil
}

// DisplayName returns the menu name of an application path:
// the last path element without the bundle suffix.
func DisplayName(p string) (string, error) {
	clean := strings.TrimRight(strings.TrimSpace(p), "/")
	base := path.Base(clean)
	if clean == "" || base == "." || base == "/" {
		return "", fmt.Errorf("%w: %q", ErrNoName, p)
	}

	name := strings.TrimSuffix(base, BundleSuffix)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrNoName, p)
	}
	return name, nil
}
