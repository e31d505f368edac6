package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/azlands/daoscan/pkg/commands/archive"
	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	return testutil.WriteERF(t, filepath.Join(t.TempDir(), "core.erf"), testutil.ArchiveSpec{
		Version: "V2.0",
		Resources: []testutil.Resource{
			{Name: "items.gda", Data: []byte("item table")},
		},
	})
}

func TestExtract(t *testing.T) {
	path := writeFixture(t)

	data, err := archive.Extract(path, "ITEMS.GDA")
	require.NoError(t, err)
	assert.Equal(t, []byte("item table"), data)
}

func TestExtractMissingResource(t *testing.T) {
	path := writeFixture(t)

	_, err := archive.Extract(path, "absent.gda")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrResourceNotFound))
}

func TestExtractToFile(t *testing.T) {
	path := writeFixture(t)

	t.Run("explicit_out", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "dump.gda")
		written, err := archive.ExtractToFile(path, "items.gda", out)
		require.NoError(t, err)
		assert.Equal(t, out, written)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, []byte("item table"), data)
	})

	t.Run("default_out_is_resource_basename", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir("/") })

		written, err := archive.ExtractToFile(path, "items.gda", "")
		require.NoError(t, err)
		assert.Equal(t, "items.gda", written)
		assert.FileExists(t, filepath.Join(dir, "items.gda"))
	})
}
