// Package paths provides centralized path handling for daoscan: the
// game data root and the XDG-compliant application directories for
// config, state, and data.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/azlands/daoscan/pkg/errors"
)

// Environment variable names
const (
	// EnvGameDir overrides the game data root
	EnvGameDir = "DAOSCAN_GAME_DIR"

	// EnvConfigDir overrides the XDG config directory for daoscan
	EnvConfigDir = "DAOSCAN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for daoscan
	EnvStateDir = "DAOSCAN_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for daoscan-specific files
	AppDirName = "daoscan"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// IgnoreFileName is the name of the ignored-groups store
	IgnoreFileName = "ignored.toml"

	// LogFileName is the name of the log file
	LogFileName = "daoscan.log"
)

// gameDirParts is the game data location under the user's Documents
// directory, the layout Dragon Age: Origins uses on every platform the
// game stores user data on.
var gameDirParts = []string{"BioWare", "Dragon Age"}

// Paths resolves the game data root and application directories.
type Paths struct {
	gameDir   string
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance. gameDir takes precedence when
// non-empty; otherwise DAOSCAN_GAME_DIR, then the default location
// under the user's Documents directory.
func New(gameDir string) (*Paths, error) {
	p := &Paths{}

	if gameDir == "" {
		gameDir = os.Getenv(EnvGameDir)
	}
	if gameDir == "" {
		gameDir = filepath.Join(append([]string{documentsDir()}, gameDirParts...)...)
	}

	abs, err := filepath.Abs(expandHome(gameDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "resolving game directory %s", gameDir)
	}
	p.gameDir = abs

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// GameDir returns the resolved game data root. It is not required to
// exist; ValidateGameDir checks that.
func (p *Paths) GameDir() string { return p.gameDir }

// ValidateGameDir verifies the game data root exists and is a directory.
func (p *Paths) ValidateGameDir() error {
	info, err := os.Stat(p.gameDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGameDirNotFound,
			"game directory %s not found (set %s or game_dir in config)", p.gameDir, EnvGameDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrGameDirNotFound, "game directory %s is not a directory", p.gameDir)
	}
	return nil
}

// OverrideDir returns the loose-override subtree of the game root.
func (p *Paths) OverrideDir() string {
	return filepath.Join(p.gameDir, "packages", "core", "override")
}

// AddinsFilePath returns the game's AddIns.xml registry path.
func (p *Paths) AddinsFilePath() string {
	return filepath.Join(p.gameDir, "Settings", "AddIns.xml")
}

// ConfigDir returns the daoscan config directory.
func (p *Paths) ConfigDir() string { return p.xdgConfig }

// ConfigFilePath returns the user configuration file path.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// IgnoreFilePath returns the ignored-groups store path.
func (p *Paths) IgnoreFilePath() string {
	return filepath.Join(p.xdgConfig, IgnoreFileName)
}

// StateDir returns the daoscan state directory.
func (p *Paths) StateDir() string { return p.xdgState }

// LogFilePath returns the log file path under the state directory.
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// documentsDir returns the user's Documents directory, falling back to
// ~/Documents when xdg has no user-dirs configuration.
func documentsDir() string {
	if xdg.UserDirs.Documents != "" {
		return xdg.UserDirs.Documents
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Documents"
	}
	return filepath.Join(home, "Documents")
}

// expandHome expands a leading ~/ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
