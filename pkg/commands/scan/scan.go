// Package scan orchestrates one full scan invocation: run the conflict
// scanner over the game root, prune stale entries from the
// ignored-groups store, and partition the surviving conflicts into
// active and ignored groups for display.
package scan

import (
	"github.com/azlands/daoscan/pkg/ignore"
	"github.com/azlands/daoscan/pkg/logging"
	"github.com/azlands/daoscan/pkg/scanner"
	"github.com/azlands/daoscan/pkg/types"
)

// Options defines the inputs for one scan run.
type Options struct {
	// GameDir is the root directory to scan.
	GameDir string
	// Workers is the number of concurrent archive parsers (<2 = sequential).
	Workers int
	// IgnoreKeys are extra conflict-key globs to drop from results.
	IgnoreKeys []string
	// IgnorePath is the ignored-groups store location. Empty disables
	// the store entirely.
	IgnorePath string
}

// Result is the outcome of one scan run.
type Result struct {
	// Report is the raw scanner output.
	Report *types.ScanReport
	// Active are the conflict groups not dismissed by the user, sorted by key.
	Active []types.Group
	// Ignored are the conflict groups the store still covers, sorted by key.
	Ignored []types.Group
	// Pruned are store keys dropped because this scan no longer
	// reproduces their exact path set.
	Pruned []string
}

// Run executes a scan with the given options.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.scan")
	logger.Debug().
		Str("gameDir", opts.GameDir).
		Int("workers", opts.Workers).
		Strs("ignoreKeys", opts.IgnoreKeys).
		Msg("Starting scan command")

	s := scanner.New(opts.GameDir,
		scanner.WithWorkers(opts.Workers),
		scanner.WithIgnoreKeys(opts.IgnoreKeys),
	)

	report, err := s.Scan()
	if err != nil {
		return nil, err
	}

	result := &Result{Report: report}

	var store *ignore.Store
	if opts.IgnorePath != "" {
		store = ignore.Load(opts.IgnorePath)

		// An ignored group only survives while the scan reproduces
		// exactly the same key with exactly the same path set.
		result.Pruned = store.Prune(report.Conflicts)
		if len(result.Pruned) > 0 {
			logger.Info().Strs("keys", result.Pruned).Msg("Pruned stale ignored groups")
			if err := store.Save(); err != nil {
				logger.Warn().Err(err).Msg("Failed to save pruned ignore store")
			}
		}
	}

	for _, group := range report.Conflicts.Groups() {
		if store != nil && store.Matches(group.Key, group.Paths) {
			result.Ignored = append(result.Ignored, group)
		} else {
			result.Active = append(result.Active, group)
		}
	}

	logger.Info().
		Int("active", len(result.Active)).
		Int("ignored", len(result.Ignored)).
		Int("pruned", len(result.Pruned)).
		Msg("Scan command completed")

	return result, nil
}
