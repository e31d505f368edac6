package daoscan

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azlands/daoscan/pkg/paths"
	"github.com/azlands/daoscan/pkg/testutil"
	"github.com/azlands/daoscan/pkg/types"
)

// isolate points the config and state directories at temp dirs so
// tests never touch the real user profile, and clears any ambient
// game-dir override.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv(paths.EnvGameDir, "")
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmdStructure(t *testing.T) {
	cmd := NewRootCmd()

	expected := []string{
		"scan", "archive", "ignore", "unignore", "ignored",
		"addins", "rm", "reveal", "genconfig", "version",
	}
	registered := make(map[string]bool)
	for _, c := range cmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestRootCmdNoSubcommand(t *testing.T) {
	isolate(t)

	out, err := execute(t)
	assert.Error(t, err)
	assert.Contains(t, out, "daoscan", "bare invocation should print help")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "daoscan version")
}

func TestScanCmdJSON(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	game.WriteOverride("armor.uti", "loose")
	game.WriteArchive("addins/mod/core/data/mod.erf", testutil.ArchiveSpec{
		Version:   "V2.0",
		Resources: []testutil.Resource{{Name: "armor.uti", Data: []byte("packed")}},
	})

	out, err := execute(t, "scan", "--game-dir", game.Root, "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Conflicts []types.Group `json:"conflicts"`
		FilesSeen int           `json:"files_seen"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Conflicts, 1)
	assert.Equal(t, "armor.uti", payload.Conflicts[0].Key)
	assert.Len(t, payload.Conflicts[0].Paths, 2)
	assert.Equal(t, 2, payload.FilesSeen)
}

func TestScanCmdNoConflicts(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	game.WriteOverride("solo.uti", "alone")

	out, err := execute(t, "scan", "--game-dir", game.Root, "--format", "json")
	require.NoError(t, err)

	var payload struct {
		Conflicts []types.Group `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Empty(t, payload.Conflicts)
}

func TestScanCmdMissingGameDir(t *testing.T) {
	isolate(t)

	_, err := execute(t, "scan", "--game-dir", filepath.Join(t.TempDir(), "nope"), "--format", "text")
	assert.Error(t, err)
}

func TestIgnoreFlow(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	game.WriteOverride("mod_a/face.mor", "a")
	game.WriteOverride("mod_b/face.mor", "b")

	// Dismiss the group.
	out, err := execute(t, "ignore", "face.mor", "--game-dir", game.Root, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "face.mor")

	// A plain scan hides it.
	out, err = execute(t, "scan", "--game-dir", game.Root, "--format", "json")
	require.NoError(t, err)
	var payload struct {
		Conflicts []types.Group `json:"conflicts"`
		Ignored   []types.Group `json:"ignored"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Empty(t, payload.Conflicts)
	assert.Empty(t, payload.Ignored, "ignored groups stay hidden without --all")

	// --all surfaces it again.
	out, err = execute(t, "scan", "--game-dir", game.Root, "--format", "json", "--all")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Ignored, 1)
	assert.Equal(t, "face.mor", payload.Ignored[0].Key)

	// The registry lists it.
	out, err = execute(t, "ignored", "--game-dir", game.Root)
	require.NoError(t, err)
	assert.Contains(t, out, "face.mor")

	// Undismissing restores it.
	_, err = execute(t, "unignore", "face.mor", "--game-dir", game.Root)
	require.NoError(t, err)

	out, err = execute(t, "scan", "--game-dir", game.Root, "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Conflicts, 1)
	assert.Equal(t, "face.mor", payload.Conflicts[0].Key)
}

func TestIgnoreCmdUnknownKey(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	game.OverrideDir()

	_, err := execute(t, "ignore", "ghost.uti", "--game-dir", game.Root, "--format", "text")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ghost.uti")
}

func TestUnignoreCmdUnknownKey(t *testing.T) {
	isolate(t)

	_, err := execute(t, "unignore", "never-dismissed.uti", "--game-dir", t.TempDir())
	assert.Error(t, err)
}

func TestArchiveInfoCmd(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	archive := game.WriteArchive("mod.erf", testutil.ArchiveSpec{
		Version:  "V2.2",
		Year:     2009,
		Day:      305,
		ModuleID: 7,
		Resources: []testutil.Resource{
			{Name: "a.gda", Data: []byte("one")},
			{Name: "b.gda", Data: []byte("two")},
		},
	})

	out, err := execute(t, "archive", "info", archive, "--format", "json")
	require.NoError(t, err)

	var info struct {
		Version  string `json:"version"`
		Year     uint32 `json:"year"`
		ModuleID uint32 `json:"module_id"`
		Entries  int    `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "V2.2", info.Version)
	assert.Equal(t, uint32(2009), info.Year)
	assert.Equal(t, uint32(7), info.ModuleID)
	assert.Equal(t, 2, info.Entries)
}

func TestArchiveListCmd(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	archive := game.WriteArchive("mod.erf", testutil.ArchiveSpec{
		Version: "V2.0",
		Resources: []testutil.Resource{
			{Name: "first.uti", Data: []byte("1")},
			{Name: "second.uti", Data: []byte("22")},
		},
	})

	out, err := execute(t, "archive", "list", archive, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "first.uti")
	assert.Contains(t, out, "second.uti")
}

func TestArchiveExtractCmdToStdout(t *testing.T) {
	isolate(t)

	game := testutil.NewGameDir(t)
	archive := game.WriteArchive("mod.erf", testutil.ArchiveSpec{
		Version:   "V2.0",
		Resources: []testutil.Resource{{Name: "notes.txt", Data: []byte("payload bytes")}},
	})

	out, err := execute(t, "archive", "extract", archive, "notes.txt", "-o", "-", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "payload bytes")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	out, err := execute(t, "help", "erf-format")
	require.NoError(t, err)
	assert.Contains(t, out, "ERF")
}
