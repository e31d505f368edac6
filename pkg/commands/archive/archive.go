// Package archive implements the read-only archive inspection
// commands: header info, TOC listing, and single-resource extraction.
package archive

import (
	"os"
	"path/filepath"

	"github.com/azlands/daoscan/pkg/erf"
	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/logging"
)

// Open opens an archive for inspection. Thin wrapper so the CLI layer
// never touches erf directly for command plumbing.
func Open(path string) (*erf.File, error) {
	return erf.Open(path)
}

// Extract reads the named resource from the archive at archivePath.
func Extract(archivePath, name string) ([]byte, error) {
	a, err := erf.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = a.Close() }()

	return a.Resource(name)
}

// ExtractToFile extracts the named resource and writes it to outPath.
// An empty outPath derives the file name from the resource name,
// placed in the current directory. Returns the path written.
func ExtractToFile(archivePath, name, outPath string) (string, error) {
	logger := logging.GetLogger("commands.archive")

	data, err := Extract(archivePath, name)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = filepath.Base(name)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "writing %s", outPath)
	}

	logger.Info().
		Str("archive", archivePath).
		Str("resource", name).
		Str("out", outPath).
		Int("bytes", len(data)).
		Msg("Extracted resource")

	return outPath, nil
}
