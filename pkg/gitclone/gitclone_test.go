package gitclone

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	cloner := NewCloner(execx.NewFakeRunner())
	assert.True(t, cloner.Exists(dir))
	assert.False(t, cloner.Exists(filepath.Join(dir, "missing")))
}

func TestCloneInvokesGit(t *testing.T) {
	fake := execx.NewFakeRunner()
	cloner := NewCloner(fake)

	err := cloner.Clone(context.Background(), "https://github.com/tmux-plugins/tpm.git", "/home/u/.tmux/plugins/tpm")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"git clone --depth 1 https://github.com/tmux-plugins/tpm.git /home/u/.tmux/plugins/tpm"},
		fake.CallLines())
}

func TestCloneFailure(t *testing.T) {
	fake := execx.NewFakeRunner()
	fake.Results["git clone"] = execx.Result{ExitCode: 128, Stderr: "fatal: repository not found"}

	cloner := NewCloner(fake)
	err := cloner.Clone(context.Background(), "https://example.com/nope.git", "/tmp/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCloneFailed))
	assert.Contains(t, err.Error(), "repository not found")
}
