// Package paths provides centralized path handling for dotstrap.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotstrap/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvConfigFile overrides the config file location
	EnvConfigFile = "DOTSTRAP_CONFIG"
)

const (
	// DefaultDotfilesDir is the default directory name for dotfiles
	DefaultDotfilesDir = "dotfiles"

	// AppDirName is the directory name for dotstrap-specific files
	AppDirName = "dotstrap"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "dotstrap.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotstrap.log"

	// BackupDirPrefix prefixes the timestamped backup directory in $HOME
	BackupDirPrefix = ".dotfiles-backup-"

	// backupTimestampLayout embeds the run's date and time in the backup dir name
	backupTimestampLayout = "20060102-150405"
)

// Paths provides centralized path management for dotstrap
type Paths struct {
	home         string
	dotfilesRoot string
}

// New creates a Paths instance. If dotfilesRoot is empty it is taken from
// DOTFILES_ROOT, falling back to ~/dotfiles.
func New(dotfilesRoot string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}

	if dotfilesRoot == "" {
		dotfilesRoot = os.Getenv(EnvDotfilesRoot)
	}
	if dotfilesRoot == "" {
		dotfilesRoot = filepath.Join(home, DefaultDotfilesDir)
	}
	dotfilesRoot = expandHome(dotfilesRoot, home)

	absRoot, err := filepath.Abs(dotfilesRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve dotfiles root")
	}

	return &Paths{home: home, dotfilesRoot: absRoot}, nil
}

// HomeDir returns the user's home directory, the link target
func (p *Paths) HomeDir() string {
	return p.home
}

// DotfilesRoot returns the stow source directory
func (p *Paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// ConfigFilePath returns the user config file location, honoring
// DOTSTRAP_CONFIG over the XDG config directory
func (p *Paths) ConfigFilePath() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return expandHome(override, p.home)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StateDir returns the directory for logs and run artifacts
func (p *Paths) StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the log file location inside the state dir
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.StateDir(), LogFileName)
}

// FontsDir returns the user font directory used on Linux
func (p *Paths) FontsDir() string {
	return filepath.Join(xdg.DataHome, "fonts")
}

// BackupDir returns the backup directory for a run started at the given
// time. The directory name embeds the run's date and time so successive
// runs never collide.
func (p *Paths) BackupDir(at time.Time) string {
	return filepath.Join(p.home, BackupDirPrefix+at.Format(backupTimestampLayout))
}

// ExpandHome resolves a leading ~/ against the user's home directory
func (p *Paths) ExpandHome(path string) string {
	return expandHome(path, p.home)
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
