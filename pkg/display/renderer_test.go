package display_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/azlands/daoscan/pkg/display"
	"github.com/azlands/daoscan/pkg/erf"
	"github.com/azlands/daoscan/pkg/testutil"
	"github.com/azlands/daoscan/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() (*types.ScanReport, []types.Group) {
	conflicts := types.Conflicts{
		"x.gda": {"/game/a.erf", "/game/packages/core/override/x.gda"},
	}
	report := &types.ScanReport{
		Conflicts:      conflicts,
		FilesSeen:      10,
		ArchivesParsed: 2,
		Elapsed:        42 * time.Millisecond,
	}
	return report, conflicts.Groups()
}

func TestRenderScanText(t *testing.T) {
	report, groups := sampleReport()
	var buf bytes.Buffer

	r := display.NewRenderer(&buf, display.FormatText)
	require.NoError(t, r.RenderScan(report, groups, nil, false))

	out := buf.String()
	assert.Contains(t, out, "1 conflict(s)")
	assert.Contains(t, out, "x.gda")
	assert.Contains(t, out, "/game/a.erf")
	// The authoritative (last sorted) path carries the star.
	assert.Contains(t, out, "★ /game/packages/core/override/x.gda")
}

func TestRenderScanJSON(t *testing.T) {
	report, groups := sampleReport()
	report.Warnings = []types.Warning{{Path: "/game/bad.erf", Err: assert.AnError}}
	var buf bytes.Buffer

	r := display.NewRenderer(&buf, display.FormatJSON)
	require.NoError(t, r.RenderScan(report, groups, nil, false))

	var payload struct {
		Conflicts []types.Group `json:"conflicts"`
		Warnings  []string      `json:"warnings"`
		FilesSeen int           `json:"files_seen"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Len(t, payload.Conflicts, 1)
	assert.Equal(t, "x.gda", payload.Conflicts[0].Key)
	assert.Equal(t, 10, payload.FilesSeen)
	require.Len(t, payload.Warnings, 1)
	assert.Contains(t, payload.Warnings[0], "/game/bad.erf")
}

func TestRenderScanIgnoredHidden(t *testing.T) {
	report, groups := sampleReport()
	ignored := []types.Group{{Key: "z.gda", Paths: []string{"/a", "/b"}}}
	var buf bytes.Buffer

	r := display.NewRenderer(&buf, display.FormatText)
	require.NoError(t, r.RenderScan(report, groups, ignored, false))
	assert.Contains(t, buf.String(), "1 ignored group(s) hidden")
	assert.NotContains(t, buf.String(), "z.gda")

	buf.Reset()
	require.NoError(t, r.RenderScan(report, groups, ignored, true))
	assert.Contains(t, buf.String(), "z.gda")
}

func openFixture(t *testing.T) *erf.File {
	t.Helper()
	path := testutil.WriteERF(t, filepath.Join(t.TempDir(), "a.erf"), testutil.ArchiveSpec{
		Version:  "V2.2",
		Year:     2010,
		Day:      12,
		ModuleID: 3,
		Resources: []testutil.Resource{
			{Name: "one.gda", Data: []byte("payload one")},
			{Name: "two.gda", Data: []byte("payload two!")},
		},
	})
	a, err := erf.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestRenderArchiveInfoText(t *testing.T) {
	a := openFixture(t)
	var buf bytes.Buffer

	r := display.NewRenderer(&buf, display.FormatText)
	require.NoError(t, r.RenderArchiveInfo(a))

	out := buf.String()
	assert.Contains(t, out, "V2.2")
	assert.Contains(t, out, "year 2010, day 12")
	assert.Contains(t, out, "module id: 3")
	assert.Contains(t, out, "entries:   2")
}

func TestRenderArchiveInfoJSON(t *testing.T) {
	a := openFixture(t)
	var buf bytes.Buffer

	r := display.NewRenderer(&buf, display.FormatJSON)
	require.NoError(t, r.RenderArchiveInfo(a))

	var payload struct {
		Version string `json:"version"`
		Entries int    `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "V2.2", payload.Version)
	assert.Equal(t, 2, payload.Entries)
}

func TestRenderArchiveList(t *testing.T) {
	a := openFixture(t)

	t.Run("short", func(t *testing.T) {
		var buf bytes.Buffer
		r := display.NewRenderer(&buf, display.FormatText)
		require.NoError(t, r.RenderArchiveList(a, false))
		assert.Contains(t, buf.String(), "one.gda")
		assert.Contains(t, buf.String(), "two.gda")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r := display.NewRenderer(&buf, display.FormatJSON)
		require.NoError(t, r.RenderArchiveList(a, true))

		var entries []struct {
			Name   string `json:"name"`
			Length uint32 `json:"length"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "one.gda", entries[0].Name)
		assert.Equal(t, uint32(len("payload one")), entries[0].Length)
	})
}

func TestRenderAddins(t *testing.T) {
	addins := []types.Addin{
		{UID: "dlc_stonep", Name: "The Stone Prisoner", Priority: 50, Enabled: true},
		{UID: "extra_dog_slot", Name: "Extra Dog Slot", Priority: 50, Enabled: false},
	}

	var buf bytes.Buffer
	r := display.NewRenderer(&buf, display.FormatText)
	require.NoError(t, r.RenderAddins(addins))

	out := buf.String()
	assert.Contains(t, out, "dlc_stonep")
	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "disabled")
}
