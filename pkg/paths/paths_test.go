package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplicitGameDir(t *testing.T) {
	dir := t.TempDir()

	p, err := paths.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, p.GameDir())
	assert.Equal(t, filepath.Join(dir, "packages", "core", "override"), p.OverrideDir())
	assert.Equal(t, filepath.Join(dir, "Settings", "AddIns.xml"), p.AddinsFilePath())
	assert.NoError(t, p.ValidateGameDir())
}

func TestEnvGameDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvGameDir, dir)

	p, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, dir, p.GameDir())
}

func TestExplicitOverridesEnv(t *testing.T) {
	t.Setenv(paths.EnvGameDir, t.TempDir())
	explicit := t.TempDir()

	p, err := paths.New(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, p.GameDir())
}

func TestValidateGameDirMissing(t *testing.T) {
	p, err := paths.New(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	err = p.ValidateGameDir()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGameDirNotFound))
}

func TestAppDirs(t *testing.T) {
	configDir := t.TempDir()
	stateDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv(paths.EnvStateDir, stateDir)

	p, err := paths.New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, configDir, p.ConfigDir())
	assert.Equal(t, filepath.Join(configDir, "config.toml"), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(configDir, "ignored.toml"), p.IgnoreFilePath())
	assert.Equal(t, filepath.Join(stateDir, "daoscan.log"), p.LogFilePath())
}
