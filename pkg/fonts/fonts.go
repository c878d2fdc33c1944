// Package fonts installs the patched terminal font on Linux, where no cask
// exists: download over HTTPS into the user font directory, then refresh
// the font cache. On macOS the font is a cask and never reaches this path.
package fonts

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/rs/zerolog"
)

// Installer downloads font files and refreshes the font cache
type Installer struct {
	runner execx.Runner
	client *http.Client
	logger zerolog.Logger
}

// NewInstaller creates a font installer
func NewInstaller(runner execx.Runner) *Installer {
	return &Installer{
		runner: runner,
		client: &http.Client{Timeout: 2 * time.Minute},
		logger: logging.GetLogger("fonts"),
	}
}

// Installed reports whether the font file is already in place
func (i *Installer) Installed(fontsDir, fileName string) bool {
	_, err := os.Stat(filepath.Join(fontsDir, fileName))
	return err == nil
}

// Install downloads the font into fontsDir and runs fc-cache. The download
// is written to a temp file first so an interrupted run never leaves a
// truncated font behind.
func (i *Installer) Install(ctx context.Context, url, fontsDir, fileName string) error {
	if err := os.MkdirAll(fontsDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create font directory %s", fontsDir)
	}

	i.logger.Info().Str("url", url).Str("dest", fontsDir).Msg("Downloading font")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrDownloadFailed, "invalid font URL")
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDownloadFailed, "failed to download font from %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrDownloadFailed, "font download from %s returned %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(fontsDir, fileName+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to create temp font file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrDownloadFailed, "failed to write font file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to close font file")
	}

	target := filepath.Join(fontsDir, fileName)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to move font into %s", target)
	}

	return i.refreshCache(ctx)
}

// refreshCache runs fc-cache so the new font is visible to applications.
// Missing fc-cache is tolerated; the font still works after a re-login.
func (i *Installer) refreshCache(ctx context.Context) error {
	if !i.runner.LookPath("fc-cache") {
		i.logger.Warn().Msg("fc-cache not found, skipping font cache refresh")
		return nil
	}

	result, err := i.runner.Run(ctx, "", "fc-cache", "-f")
	if err != nil {
		return errors.Wrap(err, errors.ErrFontCache, "failed to run fc-cache")
	}
	if result.ExitCode != 0 {
		return errors.Newf(errors.ErrFontCache, "fc-cache failed with exit code %d", result.ExitCode)
	}
	return nil
}
