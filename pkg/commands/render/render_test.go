package render

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/appgroup/internal/testutil"
	"github.com/lvim-tech/appgroup/pkg/groups"
)

func TestRender_EmptyConfig(t *testing.T) {
	env := testutil.NewEnv(t, nil)

	require.NoError(t, Run(env.Ctx, nil))

	out := env.Out.String()
	assert.Contains(t, out, "App Groups\n---\nNo app groups configured\n---\n")
	assert.Contains(t, out, "-- View group apps (no groups)\n-- Delete group (no groups)\n")
}

func TestRender_MalformedConfigPropagates(t *testing.T) {
	env := testutil.NewEnv(t, nil)
	require.NoError(t, os.WriteFile(env.Store.Path(), []byte("not json"), 0644))

	err := Run(env.Ctx, nil)

	var parseErr *groups.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Empty(t, env.Out.String())
}
