package linker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stowConflictStderr = `WARNING! stowing . would cause conflicts:
  * existing target is neither a symlink nor a directory: .zshrc
  * existing target is neither a symlink nor a directory: .tmux.conf
All operations aborted.`

func defaultOptions(target string) Options {
	return Options{
		Source:        "/dotfiles",
		Target:        target,
		ConflictFiles: []string{".zshrc", ".tmux.conf", ".gitconfig"},
	}
}

func TestLinkSucceedsFirstAttempt(t *testing.T) {
	home := t.TempDir()
	backupDir := filepath.Join(home, ".dotfiles-backup-20240309-143005")

	fake := execx.NewFakeRunner()
	l := New(fake)

	res, err := l.Link(context.Background(), defaultOptions(home), backupDir)
	require.NoError(t, err)

	assert.Equal(t, StateLinked, res.State)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, res.BackedUp)
	assert.NoDirExists(t, backupDir)

	require.Len(t, fake.Calls, 1)
	assert.Equal(t, "/dotfiles", fake.Calls[0].WorkDir)
	assert.Equal(t, "stow --verbose --target "+home+" .", fake.Calls[0].String())
}

func TestLinkBacksUpAndRetriesOnConflict(t *testing.T) {
	home := t.TempDir()
	backupDir := filepath.Join(home, ".dotfiles-backup-20240309-143005")

	// Two of the three known conflict files exist as plain files
	require.NoError(t, os.WriteFile(filepath.Join(home, ".zshrc"), []byte("old zshrc"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".tmux.conf"), []byte("old tmux"), 0644))

	fake := execx.NewFakeRunner()
	fake.ResultsSeq["stow"] = []execx.Result{
		{ExitCode: 1, Stderr: stowConflictStderr},
		{ExitCode: 0},
	}

	l := New(fake)
	res, err := l.Link(context.Background(), defaultOptions(home), backupDir)
	require.NoError(t, err)

	assert.Equal(t, StateLinked, res.State)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, []string{".zshrc", ".tmux.conf"}, res.BackedUp)
	assert.Equal(t, backupDir, res.BackupDir)

	// Files moved into the backup dir, originals gone
	data, err := os.ReadFile(filepath.Join(backupDir, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "old zshrc", string(data))
	assert.NoFileExists(t, filepath.Join(home, ".zshrc"))
	assert.FileExists(t, filepath.Join(backupDir, ".tmux.conf"))

	assert.Equal(t, 2, fake.CountCalls("stow"))
}

func TestLinkLeavesSymlinksAlone(t *testing.T) {
	home := t.TempDir()
	backupDir := filepath.Join(home, "backup")

	require.NoError(t, os.WriteFile(filepath.Join(home, ".zshrc"), []byte("plain"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(home, ".zshrc"), filepath.Join(home, ".gitconfig")))

	fake := execx.NewFakeRunner()
	fake.ResultsSeq["stow"] = []execx.Result{
		{ExitCode: 1, Stderr: stowConflictStderr},
		{ExitCode: 0},
	}

	l := New(fake)
	res, err := l.Link(context.Background(), defaultOptions(home), backupDir)
	require.NoError(t, err)

	assert.Equal(t, []string{".zshrc"}, res.BackedUp)
	// The symlink stays in place
	_, err = os.Lstat(filepath.Join(home, ".gitconfig"))
	assert.NoError(t, err)
}

func TestLinkFailsAfterSingleRetry(t *testing.T) {
	home := t.TempDir()
	backupDir := filepath.Join(home, "backup")

	stderr := `WARNING! stowing . would cause conflicts:
  * existing target is neither a symlink nor a directory: .config/kitty/kitty.conf
All operations aborted.`

	fake := execx.NewFakeRunner()
	fake.Results["stow"] = execx.Result{ExitCode: 1, Stderr: stderr}

	l := New(fake)
	res, err := l.Link(context.Background(), defaultOptions(home), backupDir)
	require.Error(t, err)

	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, 2, res.Attempts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkConflict))
	// The conflicting path outside the configured set is named explicitly
	assert.Contains(t, err.Error(), ".config/kitty/kitty.conf")

	// Exactly one retry, never more
	assert.Equal(t, 2, fake.CountCalls("stow"))
}

func TestParseConflicts(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		expected []string
	}{
		{
			name:     "two conflicts",
			stderr:   stowConflictStderr,
			expected: []string{".zshrc", ".tmux.conf"},
		},
		{
			name:     "no conflict lines",
			stderr:   "some unrelated stow failure",
			expected: nil,
		},
		{
			name:     "empty stderr",
			stderr:   "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseConflicts(tt.stderr))
		})
	}
}
