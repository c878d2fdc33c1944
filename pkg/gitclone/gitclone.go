// Package gitclone clones plugin-manager repositories into fixed
// destinations, guarded by an existence check. An existing destination is
// treated as already installed; its contents are not verified.
package gitclone

import (
	"context"
	"os"
	"strings"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/rs/zerolog"
)

// Cloner performs idempotent git clones
type Cloner struct {
	runner execx.Runner
	logger zerolog.Logger
}

// NewCloner creates a cloner
func NewCloner(runner execx.Runner) *Cloner {
	return &Cloner{
		runner: runner,
		logger: logging.GetLogger("gitclone"),
	}
}

// Exists reports whether the destination directory is already present
func (c *Cloner) Exists(dest string) bool {
	info, err := os.Stat(dest)
	return err == nil && info.IsDir()
}

// Clone clones url into dest with depth 1. The caller is expected to have
// checked Exists first; cloning over an existing directory fails.
func (c *Cloner) Clone(ctx context.Context, url, dest string) error {
	c.logger.Info().Str("url", url).Str("dest", dest).Msg("Cloning repository")

	result, err := c.runner.Run(ctx, "", "git", "clone", "--depth", "1", url, dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCloneFailed, "failed to run git clone for %s", url)
	}
	if result.ExitCode != 0 {
		return errors.Newf(errors.ErrCloneFailed, "git clone %s failed: %s",
			url, strings.TrimSpace(result.Stderr)).
			WithDetail("dest", dest)
	}

	return nil
}
