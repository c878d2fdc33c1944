// Package linker symlinks the dotfiles tree into the home directory with
// GNU Stow. Conflicts are recovered once: the configured conflict files are
// moved into a timestamped backup directory and the stow invocation is
// retried. The single-retry policy is explicit in the state machine below.
package linker

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/logging"
	"github.com/rs/zerolog"
)

// State is a phase of the link state machine
type State string

const (
	// StateAttempt invokes stow
	StateAttempt State = "attempt"

	// StateRecover backs up conflicting files before the single retry
	StateRecover State = "recover"

	// StateLinked is terminal success
	StateLinked State = "linked"

	// StateFailed is terminal failure after the retry
	StateFailed State = "failed"
)

// Options configures a link run
type Options struct {
	// Source is the stow dir, i.e. the dotfiles root
	Source string

	// Target is the directory the symlinks land in, normally $HOME
	Target string

	// ConflictFiles are the files moved aside when stow reports conflicts.
	// Conflicts outside this set cannot be recovered and fail the run.
	ConflictFiles []string
}

// Result describes a finished link run
type Result struct {
	State    State
	Attempts int

	// BackedUp lists files moved into BackupDir; empty on a clean first pass
	BackedUp []string

	// BackupDir is only set when a recovery happened
	BackupDir string
}

// Linker runs the stow state machine
type Linker struct {
	runner execx.Runner
	logger zerolog.Logger
}

// New creates a linker
func New(runner execx.Runner) *Linker {
	return &Linker{
		runner: runner,
		logger: logging.GetLogger("linker"),
	}
}

// Link drives Attempt -> Linked, or Attempt -> Recover -> Attempt -> Linked
// or Failed. backupDir names the directory used if recovery is needed; it is
// not created on a clean first attempt.
func (l *Linker) Link(ctx context.Context, opts Options, backupDir string) (Result, error) {
	res := Result{State: StateAttempt}

	for {
		switch res.State {
		case StateAttempt:
			res.Attempts++
			stowRes, err := l.stow(ctx, opts)
			if err != nil {
				res.State = StateFailed
				return res, err
			}
			if stowRes.ExitCode == 0 {
				res.State = StateLinked
				l.logger.Info().Int("attempts", res.Attempts).Msg("Dotfiles linked")
				return res, nil
			}
			if res.Attempts >= 2 {
				res.State = StateFailed
				return res, l.conflictError(opts, stowRes.Stderr)
			}
			l.logger.Warn().Msg("Stow reported conflicts, backing up known files and retrying")
			res.State = StateRecover

		case StateRecover:
			moved, err := l.backupConflicts(opts, backupDir)
			if err != nil {
				res.State = StateFailed
				return res, err
			}
			res.BackedUp = moved
			res.BackupDir = backupDir
			res.State = StateAttempt
		}
	}
}

// stow runs stow from inside the source directory so the package is "."
func (l *Linker) stow(ctx context.Context, opts Options) (execx.Result, error) {
	result, err := l.runner.Run(ctx, opts.Source,
		"stow", "--verbose", "--target", opts.Target, ".")
	if err != nil {
		return result, errors.Wrap(err, errors.ErrLinkFailed, "failed to run stow")
	}
	return result, nil
}

// backupConflicts moves the configured conflict files out of the target into
// the backup directory. Symlinks are left alone; they are stow's own and not
// user data worth preserving.
func (l *Linker) backupConflicts(opts Options, backupDir string) ([]string, error) {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupFailed, "failed to create backup directory %s", backupDir)
	}

	var moved []string
	for _, name := range opts.ConflictFiles {
		src := filepath.Join(opts.Target, name)

		info, err := os.Lstat(src)
		if err != nil {
			continue // not present, nothing to back up
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}

		dest := filepath.Join(backupDir, name)
		if err := os.Rename(src, dest); err != nil {
			return moved, errors.Wrapf(err, errors.ErrBackupFailed, "failed to back up %s", src)
		}

		l.logger.Info().Str("file", name).Str("backup", dest).Msg("Backed up conflicting file")
		moved = append(moved, name)
	}

	return moved, nil
}

// conflictError builds the terminal failure, naming any conflicting paths
// stow reported that fall outside the configured conflict set. Those are
// exactly the ones the backup pass cannot fix.
func (l *Linker) conflictError(opts Options, stderr string) error {
	conflicts := parseConflicts(stderr)

	known := make(map[string]bool, len(opts.ConflictFiles))
	for _, f := range opts.ConflictFiles {
		known[f] = true
	}

	var unmanaged []string
	for _, c := range conflicts {
		if !known[c] {
			unmanaged = append(unmanaged, c)
		}
	}

	err := errors.New(errors.ErrLinkConflict, "stow still reports conflicts after backup and retry")
	if len(unmanaged) > 0 {
		err = errors.Newf(errors.ErrLinkConflict,
			"stow reports conflicts outside the configured conflict files: %s",
			strings.Join(unmanaged, ", "))
	}
	return err.WithDetail("conflicts", conflicts)
}

// parseConflicts extracts conflicting target paths from stow's stderr.
// Conflict lines look like:
//
//	* existing target is neither a symlink nor a directory: .zshrc
func parseConflicts(stderr string) []string {
	var paths []string
	for _, line := range strings.Split(stderr, "\n") {
		if !strings.Contains(line, "existing target") {
			continue
		}
		idx := strings.LastIndex(line, ": ")
		if idx < 0 {
			continue
		}
		path := strings.TrimSpace(line[idx+2:])
		if path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}
