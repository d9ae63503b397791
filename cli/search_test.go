package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoanbernabeu/cmdstats/config"
)

func TestSearchGroupsMatches(t *testing.T) {
	t.Setenv(config.EnvDataDir, t.TempDir())
	seedLog(t, "git status", "git add .", "ls")

	out := captureStdout(t, func() {
		require.NoError(t, run(t, "search", "git"))
	})

	assert.Contains(t, out, `Commands matching "git":`)
	assert.Contains(t, out, "(2 occurrences)")
	assert.Contains(t, out, "git status")
	assert.Contains(t, out, "git add .")
	assert.NotContains(t, out, "ls")
}

func TestSearchNoMatches(t *testing.T) {
	t.Setenv(config.EnvDataDir, t.TempDir())
	seedLog(t, "ls")

	out := captureStdout(t, func() {
		require.NoError(t, run(t, "search", "docker"))
	})

	assert.Contains(t, out, `No commands found matching "docker".`)
}

func TestSearchTruncatesLongGroups(t *testing.T) {
	t.Setenv(config.EnvDataDir, t.TempDir())
	seedLog(t,
		"git status", "git add .", "git push", "git pull",
		"git log", "git diff", "git stash",
	)

	out := captureStdout(t, func() {
		require.NoError(t, run(t, "search", "git"))
	})

	assert.Contains(t, out, "... and 2 more")
}

func TestSearchRequiresQuery(t *testing.T) {
	assert.Error(t, run(t, "search"))
}
