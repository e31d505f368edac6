package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// GameDir builds a throwaway game data tree in a temp directory, with
// the layout the scanner expects (packages/core/override for loose
// files, .erf archives anywhere).
type GameDir struct {
	Root string

	t *testing.T
}

// NewGameDir creates an empty game tree rooted in t.TempDir().
func NewGameDir(t *testing.T) *GameDir {
	t.Helper()
	return &GameDir{Root: t.TempDir(), t: t}
}

// OverrideDir returns the loose-override directory, creating it.
func (g *GameDir) OverrideDir() string {
	g.t.Helper()
	dir := filepath.Join(g.Root, "packages", "core", "override")
	require.NoError(g.t, os.MkdirAll(dir, 0755))
	return dir
}

// WriteFile writes content at rel under the root, creating parents.
// Returns the absolute path.
func (g *GameDir) WriteFile(rel, content string) string {
	g.t.Helper()
	path := filepath.Join(g.Root, filepath.FromSlash(rel))
	require.NoError(g.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(g.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteOverride writes a loose override file at rel inside
// packages/core/override. Returns the absolute path.
func (g *GameDir) WriteOverride(rel, content string) string {
	g.t.Helper()
	return g.WriteFile(filepath.Join("packages", "core", "override", filepath.FromSlash(rel)), content)
}

// WriteArchive builds an ERF archive at rel under the root.
// Returns the absolute path.
func (g *GameDir) WriteArchive(rel string, spec ArchiveSpec) string {
	g.t.Helper()
	path := filepath.Join(g.Root, filepath.FromSlash(rel))
	require.NoError(g.t, os.MkdirAll(filepath.Dir(path), 0755))
	return WriteERF(g.t, path, spec)
}
