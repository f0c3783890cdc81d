package create

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/appgroup/internal/logger"
	"github.com/lvim-tech/appgroup/internal/testutil"
	"github.com/lvim-tech/appgroup/pkg/commands/render"
	"github.com/lvim-tech/appgroup/pkg/dialog"
)

func makeApps(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.Mkdir(p, 0755))
		paths = append(paths, p)
	}
	return paths
}

func TestCreate_ThenRenderListsGroupEverywhere(t *testing.T) {
	apps := makeApps(t, "Slack.app", "Notes.app")
	fake := &testutil.FakeDialog{
		Text:      "Work",
		Selection: fmt.Sprintf("%s, \"%s\"", apps[0], apps[1]),
	}
	env := testutil.NewEnv(t, fake)

	require.NoError(t, Run(env.Ctx, nil))
	assert.Equal(t, "Group 'Work' created with 2 app(s). | refresh=true\n", env.Out.String())
	assert.Equal(t, []string{"prompt", "choose:app"}, fake.Calls)

	paths, ok := env.Load(t).Get("Work")
	require.True(t, ok)
	assert.Equal(t, apps, paths)

	env.Out.Reset()
	require.NoError(t, render.Run(env.Ctx, nil))
	menu := env.Out.String()

	assert.Contains(t, menu, "Launch Work | shell=\""+testutil.Executable+"\" param1=\"launch_group\" param2=\"--\" param3=\"Work\"")
	assert.Contains(t, menu, "-- View group apps\n---- Work\n------ Slack\n------ Notes\n")
	assert.Contains(t, menu, "---- Work | shell=\""+testutil.Executable+"\" param1=\"delete_group_direct\" param2=\"--\" param3=\"Work\"")
}

func TestCreate_OverwritesExistingGroup(t *testing.T) {
	apps := makeApps(t, "Figma.app")
	env := testutil.NewEnv(t, &testutil.FakeDialog{Text: "Work", Selection: apps[0]})
	env.Seed(t, []string{"Work", "Play"}, map[string][]string{
		"Work": {"/old/Slack.app"},
		"Play": {"/old/Steam.app"},
	})

	require.NoError(t, Run(env.Ctx, nil))

	reg := env.Load(t)
	assert.Equal(t, []string{"Work", "Play"}, reg.Names())
	paths, _ := reg.Get("Work")
	assert.Equal(t, apps, paths)
}

func TestCreate_CancelledNamePromptChangesNothing(t *testing.T) {
	fake := &testutil.FakeDialog{TextErr: dialog.ErrCancelled}
	env := testutil.NewEnv(t, fake)

	require.NoError(t, Run(env.Ctx, nil))

	assert.Equal(t, "Group creation was cancelled. | refresh=true\n", env.Out.String())
	assert.Equal(t, []string{"prompt"}, fake.Calls)
	assert.NoFileExists(t, env.Store.Path())
}

func TestCreate_EmptyNameChangesNothing(t *testing.T) {
	fake := &testutil.FakeDialog{Text: "   "}
	env := testutil.NewEnv(t, fake)

	require.NoError(t, Run(env.Ctx, nil))

	assert.Equal(t, "No group name was entered. | refresh=true\n", env.Out.String())
	assert.Equal(t, []string{"prompt"}, fake.Calls)
	assert.NoFileExists(t, env.Store.Path())
}

func TestCreate_CancelledPickerChangesNothing(t *testing.T) {
	env := testutil.NewEnv(t, &testutil.FakeDialog{Text: "Work", SelectionErr: dialog.ErrCancelled})

	require.NoError(t, Run(env.Ctx, nil))

	assert.Equal(t, "Group creation was cancelled. | refresh=true\n", env.Out.String())
	assert.NoFileExists(t, env.Store.Path())
}

func TestCreate_NoDialogBackend(t *testing.T) {
	env := testutil.NewEnv(t, nil)

	require.NoError(t, Run(env.Ctx, nil))

	assert.Equal(t, "Group creation was cancelled. | refresh=true\n", env.Out.String())
	assert.Contains(t, env.Logs.String(), "no dialog available")
}

func TestCreate_MalformedGroupsFileIsNotOverwritten(t *testing.T) {
	apps := makeApps(t, "Notes.app")
	env := testutil.NewEnv(t, &testutil.FakeDialog{Text: "Work", Selection: apps[0]})
	require.NoError(t, os.WriteFile(env.Store.Path(), []byte("{broken"), 0644))

	err := Run(env.Ctx, nil)
	require.Error(t, err)

	data, readErr := os.ReadFile(env.Store.Path())
	require.NoError(t, readErr)
	assert.Equal(t, "{broken", string(data))
}

func TestResolveSelection_DropsMissingPaths(t *testing.T) {
	apps := makeApps(t, "Notes.app")
	missing := filepath.Join(filepath.Dir(apps[0]), "Gone.app")
	raw := strings.Join([]string{apps[0], missing, `""`}, ", ")

	var logs strings.Builder
	log := logger.New(&logs, logger.ParseLevel("warn"))

	exists := func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	}

	got := ResolveSelection(raw, exists, log)

	assert.Equal(t, apps, got)
	assert.Contains(t, logs.String(), "path does not exist")
	assert.Contains(t, logs.String(), "skipping selection")
}

func TestResolveSelection_EmptyRawIsEmptyList(t *testing.T) {
	got := ResolveSelection("", func(string) bool { return true }, logger.Nop())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
