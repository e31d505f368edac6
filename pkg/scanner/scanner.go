// Package scanner walks a game data tree and finds file-level
// conflicts: resource names provided by more than one source, whether a
// loose override file or an entry inside a packed ERF archive.
//
// Classification precedence: a file with the .erf extension is always
// treated as an archive, even when it sits inside the override
// subtree. In practice the game's layout avoids that overlap; the
// precedence is a documented assumption of this design.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/azlands/daoscan/pkg/erf"
	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/logging"
	"github.com/azlands/daoscan/pkg/types"
)

// ArchiveExt is the packed-archive extension, matched case-insensitively.
const ArchiveExt = ".erf"

// OverrideSubdir is the loose-override subtree relative to the scan
// root. Files in it conflict by bare file name.
var OverrideSubdir = filepath.Join("packages", "core", "override")

// benignNames are always-duplicated metadata files that never count as
// conflicts, matched against the lower-cased key.
var benignNames = map[string]bool{
	"manifest.xml": true,
	"credits.txt":  true,
	"readme.txt":   true,
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers sets the number of concurrent archive parsers. Values
// below 2 keep the default synchronous scan. Output is identical either
// way; only archive parsing is parallelized.
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// WithIgnoreKeys adds glob patterns (doublestar syntax) matched
// case-insensitively against conflict keys; matching keys are dropped
// like the built-in benign names.
func WithIgnoreKeys(globs []string) Option {
	return func(s *Scanner) { s.ignoreGlobs = append(s.ignoreGlobs, globs...) }
}

// Scanner scans one root directory for conflicts. A Scanner is cheap
// and stateless between Scan calls; each call builds a fresh report.
type Scanner struct {
	root        string
	overrideDir string
	workers     int
	ignoreGlobs []string
	logger      zerolog.Logger
}

// New creates a Scanner for the given root directory.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{
		root:        root,
		overrideDir: filepath.Join(root, OverrideSubdir),
		workers:     1,
		logger:      logging.GetLogger("scanner"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the scan root.
func (s *Scanner) Root() string { return s.root }

// Outcome is the single value delivered by Go.
type Outcome struct {
	Report *types.ScanReport
	Err    error
}

// Go runs the scan on its own goroutine and returns a one-shot channel
// carrying the single result. The channel is buffered and closed after
// the send, so the caller can receive whenever it likes. There is no
// cancellation; a scan runs to completion or failure, and discarding
// stale results when a newer scan starts is the caller's job.
func (s *Scanner) Go() <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		report, err := s.Scan()
		ch <- Outcome{Report: report, Err: err}
		close(ch)
	}()
	return ch
}

// Scan walks the root, classifies every regular file, aggregates
// conflict keys across the loose-file and archive-entry namespaces,
// and returns the finalized report. A corrupt archive is downgraded to
// a warning on the report; only an unusable root fails the scan.
func (s *Scanner) Scan() (*types.ScanReport, error) {
	start := time.Now()

	info, err := os.Stat(s.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootNotFound, "scan root %s", s.root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootNotFound, "scan root %s is not a directory", s.root)
	}

	s.logger.Info().Str("root", s.root).Int("workers", s.workers).Msg("Starting scan")

	acc := make(map[string][]string)
	var archives []string
	filesSeen := 0

	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				// The root itself could not be opened for traversal.
				return err
			}
			s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		filesSeen++

		switch {
		case strings.EqualFold(filepath.Ext(path), ArchiveExt):
			archives = append(archives, path)
		case s.inOverride(path):
			key := d.Name()
			acc[key] = append(acc[key], path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, errors.ErrRootNotFound, "walking scan root %s", s.root)
	}

	parsed, warnings := s.harvestArchives(archives, acc)

	// Completion order is scheduling-dependent in the parallel path;
	// sort warnings so the report reads the same at any worker count.
	sort.Slice(warnings, func(i, j int) bool { return warnings[i].Path < warnings[j].Path })

	report := &types.ScanReport{
		Conflicts:      s.finalize(acc),
		Warnings:       warnings,
		FilesSeen:      filesSeen,
		ArchivesParsed: parsed,
		Elapsed:        time.Since(start),
	}

	s.logger.Info().
		Int("filesSeen", report.FilesSeen).
		Int("archivesParsed", report.ArchivesParsed).
		Int("conflicts", len(report.Conflicts)).
		Int("warnings", len(report.Warnings)).
		Dur("elapsed", report.Elapsed).
		Msg("Scan complete")

	return report, nil
}

// inOverride reports whether path lies under the override subtree.
func (s *Scanner) inOverride(path string) bool {
	return strings.HasPrefix(path, s.overrideDir+string(os.PathSeparator))
}

// harvestArchives parses each archive and merges its TOC entry names
// into acc, every name mapped to the archive's own path. Failures are
// collected as path-tagged warnings, never fatal.
func (s *Scanner) harvestArchives(archives []string, acc map[string][]string) (int, []types.Warning) {
	var warnings []types.Warning
	parsed := 0

	if s.workers < 2 {
		for _, path := range archives {
			names, err := archiveNames(path)
			if err != nil {
				s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable archive")
				warnings = append(warnings, types.Warning{Path: path, Err: err})
				continue
			}
			parsed++
			for _, name := range names {
				acc[name] = append(acc[name], path)
			}
		}
		return parsed, warnings
	}

	// Parallel variant: archive parses are independent and read-only,
	// so only the merge into the shared accumulator needs the lock.
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.workers)

	for _, path := range archives {
		path := path
		g.Go(func() error {
			names, err := archiveNames(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable archive")
				warnings = append(warnings, types.Warning{Path: path, Err: err})
				return nil
			}
			parsed++
			for _, name := range names {
				acc[name] = append(acc[name], path)
			}
			return nil
		})
	}
	_ = g.Wait()

	return parsed, warnings
}

// archiveNames opens one archive and returns its TOC entry names. The
// handle is released before the scan moves on, so descriptor usage
// stays bounded regardless of tree size.
func archiveNames(path string) ([]string, error) {
	a, err := erf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveIO, "parsing archive %s", path)
	}
	defer func() { _ = a.Close() }()

	toc := a.Toc()
	names := make([]string, 0, len(toc))
	for _, entry := range toc {
		names = append(names, entry.Name)
	}
	return names, nil
}

// finalize applies the exclusion rules and ordering contract: keys with
// fewer than two distinct paths are dropped, benign and caller-ignored
// keys are dropped, and every surviving path list is sorted ascending
// so output is reproducible regardless of traversal order.
func (s *Scanner) finalize(acc map[string][]string) types.Conflicts {
	conflicts := make(types.Conflicts)
	for key, paths := range acc {
		if s.excluded(key) {
			continue
		}

		sort.Strings(paths)
		paths = compact(paths)
		if len(paths) < 2 {
			continue
		}
		conflicts[key] = paths
	}
	return conflicts
}

// excluded reports whether a key is filtered out of the final map.
func (s *Scanner) excluded(key string) bool {
	lower := strings.ToLower(key)
	if benignNames[lower] {
		return true
	}
	for _, glob := range s.ignoreGlobs {
		if ok, err := doublestar.Match(strings.ToLower(glob), lower); err == nil && ok {
			return true
		}
	}
	return false
}

// compact removes adjacent duplicates from a sorted slice. An archive
// that declares the same name twice contributes its path twice; a file
// cannot conflict with itself.
func compact(sorted []string) []string {
	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}
