package types

import (
	"sort"
	"time"
)

// Conflicts maps a conflict key (a bare file name or an archive resource
// name) to the sorted list of absolute paths that all provide it. Every
// surviving key has at least two paths.
type Conflicts map[string][]string

// Keys returns the conflict keys in sorted order.
func (c Conflicts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Authoritative returns the path most likely to win at game load time
// for the given key: the last element of the sorted path list. This is
// a display hint inferred from load-order behavior, not an engine
// guarantee; scan logic never consults it.
func (c Conflicts) Authoritative(key string) string {
	paths := c[key]
	if len(paths) == 0 {
		return ""
	}
	return paths[len(paths)-1]
}

// Total returns the total number of contending paths across all keys.
func (c Conflicts) Total() int {
	n := 0
	for _, paths := range c {
		n += len(paths)
	}
	return n
}

// Groups returns an ordered view of the map for rendering, sorted by key.
func (c Conflicts) Groups() []Group {
	groups := make([]Group, 0, len(c))
	for _, key := range c.Keys() {
		groups = append(groups, Group{Key: key, Paths: c[key]})
	}
	return groups
}

// Group is one conflict key with its sorted contending paths.
type Group struct {
	Key   string   `json:"key"`
	Paths []string `json:"paths"`
}

// Warning records an archive that had to be skipped during a scan,
// tagged with the offending path.
type Warning struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Message renders the warning for display and logging.
func (w Warning) Message() string {
	if w.Err == nil {
		return w.Path
	}
	return w.Path + ": " + w.Err.Error()
}

// ScanReport is the complete result of one scan invocation. It is built
// fresh per scan and owned by the caller once returned.
type ScanReport struct {
	Conflicts      Conflicts     `json:"conflicts"`
	Warnings       []Warning     `json:"warnings,omitempty"`
	FilesSeen      int           `json:"files_seen"`
	ArchivesParsed int           `json:"archives_parsed"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Addin is one entry from the game's AddIns.xml registry, used to
// correlate conflicting archive paths with installed content.
type Addin struct {
	UID      string `json:"uid"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Enabled  bool   `json:"enabled"`
}
