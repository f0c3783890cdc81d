package groups

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile_ReturnsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	reg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.json")
	store := NewStore(path)

	reg := NewRegistry()
	require.NoError(t, reg.Create("Work", []string{"/Applications/Slack.app", "", "/Applications/Notes.app"}))
	require.NoError(t, reg.Create("Design", []string{"/Applications/Figma.app"}))
	require.NoError(t, reg.Create("Empty", []string{}))
	require.NoError(t, reg.Create("개발", []string{"/Applications/Xcode.app"}))

	require.NoError(t, store.Save(reg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, reg.Names(), loaded.Names())
	for _, name := range reg.Names() {
		want, _ := reg.Get(name)
		got, ok := loaded.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestStore_SaveIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.json")
	store := NewStore(path)

	reg := NewRegistry()
	require.NoError(t, reg.Create("Work", []string{"/a"}))
	require.NoError(t, store.Save(reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Work\": [\n    \"/a\"\n  ]\n}", string(data))
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "groups.json")
	store := NewStore(path)

	require.NoError(t, store.Save(NewRegistry()))
	assert.FileExists(t, path)
}

func TestStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken json", `{"Work": [`},
		{"empty file", ``},
		{"top level array", `["/a"]`},
		{"string value", `{"Work": "/Applications/Notes.app"}`},
		{"number in list", `{"Work": ["/a", 1]}`},
		{"null value", `{"Work": null}`},
		{"nested object", `{"Work": {"a": "/a"}}`},
		{"trailing data", `{"Work": []} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "groups.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewStore(path).Load()
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
			assert.Equal(t, path, parseErr.Path)

			// the file is never rewritten on failure
			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestStore_LoadKeepsFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.json")
	content := `{"Zeta": ["/z"], "Alpha": ["/a"], "Mid": []}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reg, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, reg.Names())
}

func TestStore_LoadAcceptsBlankNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.json")
	content := `{"": ["/a"], "  ": [], "Work": ["/b"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store := NewStore(path)
	reg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "  ", "Work"}, reg.Names())

	paths, ok := reg.Get("")
	require.True(t, ok)
	assert.Equal(t, []string{"/a"}, paths)

	require.NoError(t, reg.Delete("  "))
	require.NoError(t, store.Save(reg))

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Work"}, reloaded.Names())
}

func TestNewStore_EmptyPathUsesDefault(t *testing.T) {
	store := NewStore("")
	assert.Equal(t, DefaultFileName, filepath.Base(store.Path()))
}
