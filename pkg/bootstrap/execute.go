package bootstrap

import (
	"context"
	"time"

	"github.com/arthur-debert/dotstrap/pkg/brew"
	"github.com/arthur-debert/dotstrap/pkg/config"
	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/fonts"
	"github.com/arthur-debert/dotstrap/pkg/gitclone"
	"github.com/arthur-debert/dotstrap/pkg/linker"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/arthur-debert/dotstrap/pkg/paths"
)

// Deps bundles everything Execute needs to act on the system
type Deps struct {
	Config *config.Config
	Paths  *paths.Paths
	Brew   *brew.Client
	Cloner *gitclone.Cloner
	Fonts  *fonts.Installer
	Linker *linker.Linker
}

// RunResult is what a completed run reports on
type RunResult struct {
	Ledger Ledger

	// Link is set once the link step has run
	Link *linker.Result
}

// Execute runs the plan in order, fail-fast. Each handled item is recorded
// in the ledger as installed or skipped; the first error aborts the run
// with whatever the ledger holds so far.
func Execute(ctx context.Context, steps []Step, deps Deps) (*RunResult, error) {
	logger := logging.GetLogger("bootstrap")
	result := &RunResult{}

	for _, step := range steps {
		var err error
		switch step.Kind {
		case StepInstallPackage:
			err = executeInstall(ctx, step, deps, &result.Ledger)
		case StepCloneRepo:
			err = executeClone(ctx, step, deps, &result.Ledger)
		case StepInstallFont:
			err = executeFont(ctx, deps, &result.Ledger)
		case StepLinkDotfiles:
			result.Link, err = executeLink(ctx, deps)
		default:
			err = errors.Newf(errors.ErrInternal, "unknown step kind: %s", step.Kind)
		}

		if err != nil {
			logger.Error().Err(err).Str("step", step.Describe()).Msg("Bootstrap step failed")
			return result, err
		}
	}

	logger.Info().
		Int("installed", len(result.Ledger.Installed)).
		Int("skipped", len(result.Ledger.Skipped)).
		Msg("Bootstrap run finished")

	return result, nil
}

func executeInstall(ctx context.Context, step Step, deps Deps, ledger *Ledger) error {
	installed, err := deps.Brew.IsInstalled(ctx, step.Package)
	if err != nil {
		return err
	}
	if installed {
		ledger.RecordSkipped(step.Name)
		return nil
	}
	if err := deps.Brew.Install(ctx, step.Package); err != nil {
		return err
	}
	ledger.RecordInstalled(step.Name)
	return nil
}

func executeClone(ctx context.Context, step Step, deps Deps, ledger *Ledger) error {
	dest := deps.Paths.ExpandHome(step.Repo.Dest)
	if deps.Cloner.Exists(dest) {
		ledger.RecordSkipped(step.Name)
		return nil
	}
	if err := deps.Cloner.Clone(ctx, step.Repo.URL, dest); err != nil {
		return err
	}
	ledger.RecordInstalled(step.Name)
	return nil
}

func executeFont(ctx context.Context, deps Deps, ledger *Ledger) error {
	fc := deps.Config.Fonts
	fontsDir := deps.Paths.FontsDir()

	if deps.Fonts.Installed(fontsDir, fc.FileName) {
		ledger.RecordSkipped(fc.Name)
		return nil
	}
	if err := deps.Fonts.Install(ctx, fc.LinuxURL, fontsDir, fc.FileName); err != nil {
		return err
	}
	ledger.RecordInstalled(fc.Name)
	return nil
}

func executeLink(ctx context.Context, deps Deps) (*linker.Result, error) {
	target := deps.Paths.ExpandHome(deps.Config.Link.Target)
	if target == "" {
		target = deps.Paths.HomeDir()
	}

	opts := linker.Options{
		Source:        deps.Paths.DotfilesRoot(),
		Target:        target,
		ConflictFiles: deps.Config.Link.ConflictFiles,
	}
	backupDir := deps.Paths.BackupDir(time.Now())

	res, err := deps.Linker.Link(ctx, opts, backupDir)
	if err != nil {
		return &res, err
	}
	return &res, nil
}
