// Package config loads daoscan's layered configuration: embedded
// defaults, then the user's config.toml, then DAOSCAN_* environment
// variables. A broken or missing user file degrades to defaults with a
// warning instead of failing the command.
package config

import (
	_ "embed"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperr "github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/logging"
)

//go:embed default.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "DAOSCAN_"

// envKeys maps environment variable suffixes to config keys. Explicit
// mapping because key names themselves contain underscores.
var envKeys = map[string]string{
	"GAME_DIR":     "game_dir",
	"SCAN_WORKERS": "scan.workers",
	"SCAN_IGNORE":  "scan.ignore",
	"UI_FORMAT":    "ui.format",
}

// Settings is the unmarshaled configuration.
type Settings struct {
	GameDir string       `koanf:"game_dir"`
	Scan    ScanSettings `koanf:"scan"`
	UI      UISettings   `koanf:"ui"`
}

// ScanSettings configures the conflict scan.
type ScanSettings struct {
	Workers int      `koanf:"workers"`
	Ignore  []string `koanf:"ignore"`
}

// UISettings configures output rendering.
type UISettings struct {
	Format string `koanf:"format"`
}

// Load builds Settings from defaults, the user config file at
// configPath (skipped when absent), and environment overrides.
func Load(configPath string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(rawBytes(defaultConfig), toml.Parser()); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrConfigLoad, "loading built-in defaults")
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				// Tolerate a broken user file the way the original
				// app does: defaults still apply.
				logger.Warn().Err(err).Str("path", configPath).Msg("Ignoring unreadable config file")
			}
		}
	}

	envProvider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		mapped := envKeys[strings.TrimPrefix(key, EnvPrefix)]
		switch mapped {
		case "":
			return "", nil
		case "scan.workers":
			n, err := strconv.Atoi(value)
			if err != nil {
				return "", nil
			}
			return mapped, n
		case "scan.ignore":
			return mapped, splitList(value)
		default:
			return mapped, value
		}
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrConfigLoad, "loading environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, apperr.Wrap(err, apperr.ErrConfigLoad, "unmarshaling configuration")
	}

	return &settings, nil
}

// DefaultConfigContent returns the embedded default.toml, used by the
// genconfig command to seed a user config file.
func DefaultConfigContent() string {
	return string(defaultConfig)
}

// splitList splits a comma-separated env value into trimmed elements.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// rawBytes adapts a byte slice to koanf's Provider interface.
type rawBytesProvider struct{ bytes []byte }

func rawBytes(b []byte) *rawBytesProvider { return &rawBytesProvider{bytes: b} }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
