package apppath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSelection(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"blank", "  \n", nil},
		{"single", "alias Macintosh HD:Applications:Notes.app:\n", []string{"alias Macintosh HD:Applications:Notes.app:"}},
		{
			"multiple",
			"alias Macintosh HD:Applications:Notes.app:, alias Macintosh HD:Applications:Safari.app:",
			[]string{"alias Macintosh HD:Applications:Notes.app:", "alias Macintosh HD:Applications:Safari.app:"},
		},
		{"posix paths", "/Applications/A.app, /Applications/B.app", []string{"/Applications/A.app", "/Applications/B.app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSelection(tt.raw))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"alias Macintosh HD:Applications:Notes.app:", "/Applications/Notes.app"},
		{"alias Macintosh HD:Applications:Utilities:Terminal.app:", "/Applications/Utilities/Terminal.app"},
		{"alias Macintosh HD:Users:me:Applications:My Tool.app:", "/Users/me/Applications/My Tool.app"},
		{"file Macintosh HD:Applications:Notes.app:", "/Applications/Notes.app"},
		{`"/Applications/Notes.app"`, "/Applications/Notes.app"},
		{"/Applications/Notes.app/", "/Applications/Notes.app"},
		{"  /usr/local/bin/foo  ", "/usr/local/bin/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Normalize(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	for _, token := range []string{"", `""`, "/", "alias Macintosh HD:", "Notes.app"} {
		t.Run(token, func(t *testing.T) {
			_, err := Normalize(token)
			assert.ErrorIs(t, err, ErrUnresolvable)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/Applications/Notes.app", "Notes"},
		{"/Applications/Notes.app/", "Notes"},
		{"/usr/local/bin/foo", "foo"},
		{"Safari.app", "Safari"},
		{"/Applications/Visual Studio Code.app", "Visual Studio Code"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DisplayName(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName_Fails(t *testing.T) {
	for _, p := range []string{"", "/", "/Applications/.app"} {
		t.Run(p, func(t *testing.T) {
			_, err := DisplayName(p)
			assert.ErrorIs(t, err, ErrNoName)
		})
	}
}
