// Package brew is an idempotent wrapper around the Homebrew CLI. It probes
// for prior presence before installing so repeated runs converge without
// duplicate work.
package brew

import (
	"context"
	"strings"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/rs/zerolog"
)

// Package represents a Homebrew package (formula or cask)
type Package struct {
	Name string

	// Cask marks GUI applications and fonts, installed with `brew install --cask`
	Cask bool
}

// Client drives the brew CLI through a Runner
type Client struct {
	runner execx.Runner
	logger zerolog.Logger
}

// NewClient creates a brew client
func NewClient(runner execx.Runner) *Client {
	return &Client{
		runner: runner,
		logger: logging.GetLogger("brew"),
	}
}

// Available reports whether the brew binary is on PATH
func (c *Client) Available() bool {
	return c.runner.LookPath("brew")
}

// IsInstalled probes whether the package is already present
func (c *Client) IsInstalled(ctx context.Context, pkg Package) (bool, error) {
	args := []string{"list", "--versions", pkg.Name}
	if pkg.Cask {
		args = []string{"list", "--cask", pkg.Name}
	}

	result, err := c.runner.Run(ctx, "", "brew", args...)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrProbeFailed, "failed to probe package %s", pkg.Name)
	}

	installed := result.ExitCode == 0
	c.logger.Debug().
		Str("package", pkg.Name).
		Bool("cask", pkg.Cask).
		Bool("installed", installed).
		Msg("Probed package")

	return installed, nil
}

// Install installs the package. A failed install is fatal to the run, so
// the error carries brew's stderr for the console.
func (c *Client) Install(ctx context.Context, pkg Package) error {
	args := []string{"install"}
	if pkg.Cask {
		args = append(args, "--cask")
	}
	args = append(args, pkg.Name)

	c.logger.Info().
		Str("package", pkg.Name).
		Bool("cask", pkg.Cask).
		Msg("Installing package")

	result, err := c.runner.Run(ctx, "", "brew", args...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInstallFailed, "failed to run brew install for %s", pkg.Name)
	}
	if result.ExitCode != 0 {
		return errors.Newf(errors.ErrInstallFailed, "brew install %s failed: %s",
			pkg.Name, strings.TrimSpace(result.Stderr)).
			WithDetail("exitCode", result.ExitCode)
	}

	return nil
}
