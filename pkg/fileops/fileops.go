// Package fileops implements the two resolution actions the scanner's
// consumers need: deleting an explicitly named loose file and revealing
// a path's containing directory. There is no removal policy here;
// every action targets exactly one caller-named path.
package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/logging"
)

// Delete removes the file at path. Archives are refused unless force
// is set: deleting a packed archive throws away every resource in it,
// not just the conflicting one.
func Delete(path string, force bool) error {
	logger := logging.GetLogger("fileops")

	if strings.EqualFold(filepath.Ext(path), ".erf") && !force {
		return errors.Newf(errors.ErrInvalidInput,
			"refusing to delete archive %s (use --force to override)", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "stat %s", path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is a directory", path)
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "deleting %s", path)
	}

	logger.Info().Str("path", path).Msg("Deleted file")
	return nil
}

// Reveal opens the directory containing path in the platform's file
// manager.
func Reveal(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "stat %s", dir)
	}
	if err := browser.OpenFile(dir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "opening %s", dir)
	}
	return nil
}
