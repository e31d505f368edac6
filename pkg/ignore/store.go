// Package ignore persists the ignored-groups store: conflict keys the
// user has reviewed and dismissed, each pinned to the exact path set it
// was dismissed with. A group only stays ignored while a scan keeps
// reproducing exactly that key with exactly those paths; anything
// staler is pruned.
package ignore

import (
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/logging"
	"github.com/azlands/daoscan/pkg/types"
)

// Store holds ignored conflict groups keyed by conflict key. Path
// lists are kept sorted so equality checks are order-independent.
type Store struct {
	path   string
	groups map[string][]string
}

// storeFile is the on-disk TOML shape.
type storeFile struct {
	Groups map[string][]string `toml:"groups"`
}

// Load reads the store at path. A missing file yields an empty store;
// an unreadable one degrades to empty with a warning, matching the
// config layer's tolerance.
func Load(path string) *Store {
	s := &Store{path: path, groups: make(map[string][]string)}

	logger := logging.GetLogger("ignore")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable ignore store")
		}
		return s
	}

	var f storeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Ignoring malformed ignore store")
		return s
	}

	for key, paths := range f.Groups {
		sorted := append([]string(nil), paths...)
		sort.Strings(sorted)
		s.groups[key] = sorted
	}
	return s
}

// Save writes the store back to its path, creating parent directories.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "creating directory for %s", s.path)
	}

	data, err := toml.Marshal(storeFile{Groups: s.groups})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "encoding ignore store")
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "writing %s", s.path)
	}
	return nil
}

// Add records key as ignored with the given path set.
func (s *Store) Add(key string, paths []string) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	s.groups[key] = sorted
}

// Remove drops key from the store, reporting whether it was present.
func (s *Store) Remove(key string) bool {
	_, ok := s.groups[key]
	delete(s.groups, key)
	return ok
}

// Matches reports whether key is ignored with exactly the given path
// set. A changed path list means the conflict is new again.
func (s *Store) Matches(key string, paths []string) bool {
	stored, ok := s.groups[key]
	if !ok || len(stored) != len(paths) {
		return false
	}

	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for i := range stored {
		if stored[i] != sorted[i] {
			return false
		}
	}
	return true
}

// Prune drops every group the given conflict map no longer reproduces
// exactly, returning the removed keys.
func (s *Store) Prune(conflicts types.Conflicts) []string {
	var pruned []string
	for key := range s.groups {
		if current, ok := conflicts[key]; !ok || !s.Matches(key, current) {
			delete(s.groups, key)
			pruned = append(pruned, key)
		}
	}
	sort.Strings(pruned)
	return pruned
}

// Keys returns the ignored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.groups))
	for k := range s.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Paths returns the stored path set for key, or nil.
func (s *Store) Paths(key string) []string { return s.groups[key] }

// Len returns the number of ignored groups.
func (s *Store) Len() int { return len(s.groups) }
