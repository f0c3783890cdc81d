package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/appgroup/internal/testutil"
)

func TestLaunch_OpensAllAppsOfGroup(t *testing.T) {
	dir := t.TempDir()
	slack := filepath.Join(dir, "Slack.app")
	notes := filepath.Join(dir, "Notes.app")
	require.NoError(t, os.Mkdir(slack, 0755))
	require.NoError(t, os.Mkdir(notes, 0755))

	env := testutil.NewEnv(t, nil)
	env.Seed(t, []string{"Work", "Play"}, map[string][]string{
		"Work": {slack, notes},
		"Play": {"/Applications/Steam.app"},
	})

	require.NoError(t, Run(env.Ctx, []string{"Work"}))

	assert.Equal(t, [][]string{{"open", slack}, {"open", notes}}, env.Starts)
	assert.Empty(t, env.Out.String())
	assert.Contains(t, env.Logs.String(), "command=open")
}

func TestLaunch_MissingAppIsSkipped(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "Notes.app")
	require.NoError(t, os.Mkdir(notes, 0755))
	gone := filepath.Join(dir, "Gone.app")

	env := testutil.NewEnv(t, nil)
	env.Seed(t, []string{"Work"}, map[string][]string{"Work": {gone, notes}})

	require.NoError(t, Run(env.Ctx, []string{"Work"}))

	assert.Equal(t, [][]string{{"open", notes}}, env.Starts)
	assert.Contains(t, env.Logs.String(), "launch failed")
	assert.Contains(t, env.Out.String(), "Launch Work: 1/2")
}

func TestLaunch_UnknownGroup(t *testing.T) {
	env := testutil.NewEnv(t, nil)

	require.NoError(t, Run(env.Ctx, []string{"Nope"}))

	assert.Equal(t, "Error: group 'Nope' not found.\n", env.Out.String())
	assert.Empty(t, env.Starts)
}
