package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestResolveMemoDir(t *testing.T) {
	dir, err := resolveMemoDir(env(map[string]string{memoDirEnv: "/tmp/memo/daily"}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/memo/daily", dir)
}

func TestResolveMemoDirUnset(t *testing.T) {
	for _, v := range []string{"", "   "} {
		_, err := resolveMemoDir(env(map[string]string{memoDirEnv: v}))
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, err.Error(), "export MEMO_DIR=")
	}
}

func TestResolveMemoDirExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	dir, err := resolveMemoDir(env(map[string]string{memoDirEnv: "~/memo/daily"}))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "memo", "daily"), dir)

	dir, err = resolveMemoDir(env(map[string]string{memoDirEnv: "~"}))
	require.NoError(t, err)
	assert.Equal(t, home, dir)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "memo", "daily")
	require.NoError(t, ensureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// existing dir is fine
	require.NoError(t, ensureDir(dir))
}

func TestTodayFilename(t *testing.T) {
	now := time.Date(2026, 1, 5, 23, 59, 0, 0, time.Local)
	assert.Equal(t, filepath.Join("/memo", "2026-01-05.md"), todayFilename("/memo", now))
}
