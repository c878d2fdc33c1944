// Package config loads dotstrap's layered configuration: embedded defaults,
// then an optional user file, then DOTSTRAP_* environment overrides.
package config

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// rawBytesProvider feeds embedded bytes to koanf
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// EnvPrefix is the prefix for environment variable overrides,
// e.g. DOTSTRAP_LINK_TARGET=/tmp/home
const EnvPrefix = "DOTSTRAP_"

// Config is the fully merged dotstrap configuration
type Config struct {
	Packages Packages `koanf:"packages" toml:"packages"`
	Repos    []Repo   `koanf:"repos" toml:"repos"`
	Fonts    Fonts    `koanf:"fonts" toml:"fonts"`
	Link     Link     `koanf:"link" toml:"link"`
}

// Packages lists what the package installer manages
type Packages struct {
	// Common is installed on every platform
	Common []string `koanf:"common" toml:"common"`

	// Darwin holds macOS-only packages, skipped entirely on Linux
	Darwin DarwinPackages `koanf:"darwin" toml:"darwin"`
}

// DarwinPackages are macOS-only Homebrew packages
type DarwinPackages struct {
	Formulas []string `koanf:"formulas" toml:"formulas"`
	Casks    []string `koanf:"casks" toml:"casks"`
}

// Repo is a Git repository cloned into a fixed destination
type Repo struct {
	Name string `koanf:"name" toml:"name"`
	URL  string `koanf:"url" toml:"url"`
	Dest string `koanf:"dest" toml:"dest"`
}

// Fonts configures font installation. On macOS the font is one of the
// darwin casks; LinuxURL/FileName drive the HTTPS download path on Linux.
type Fonts struct {
	Name     string `koanf:"name" toml:"name"`
	FileName string `koanf:"file_name" toml:"file_name"`
	LinuxURL string `koanf:"linux_url" toml:"linux_url"`
}

// Link configures the stow invocation and its conflict recovery
type Link struct {
	Target        string   `koanf:"target" toml:"target"`
	ConflictFiles []string `koanf:"conflict_files" toml:"conflict_files"`
}

// Load builds the merged configuration. userFile may be empty or point at a
// nonexistent path, in which case only defaults and env overrides apply.
func Load(userFile string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, if present
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userFile)
			}
			logger.Debug().Str("path", userFile).Msg("Loaded user config")
		}
	}

	// 3. Environment overrides: DOTSTRAP_LINK_TARGET -> link.target
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
