package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotstrap/pkg/brew"
	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/fonts"
	"github.com/arthur-debert/dotstrap/pkg/gitclone"
	"github.com/arthur-debert/dotstrap/pkg/linker"
	"github.com/arthur-debert/dotstrap/pkg/paths"
	"github.com/arthur-debert/dotstrap/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(t *testing.T, fake *execx.FakeRunner) Deps {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(paths.EnvDotfilesRoot, filepath.Join(home, "dotfiles"))

	p, err := paths.New("")
	require.NoError(t, err)

	return Deps{
		Config: testConfig(),
		Paths:  p,
		Brew:   brew.NewClient(fake),
		Cloner: gitclone.NewCloner(fake),
		Fonts:  fonts.NewInstaller(fake),
		Linker: linker.New(fake),
	}
}

func TestExecuteFreshDarwinRun(t *testing.T) {
	fake := execx.NewFakeRunner()
	// Nothing is installed yet
	fake.Results["brew list"] = execx.Result{ExitCode: 1}

	deps := testDeps(t, fake)
	steps := Plan(deps.Config, platform.Detect("Darwin"))

	result, err := Execute(context.Background(), steps, deps)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"git", "stow", "sketchybar", "kitty", "font-jetbrains-mono-nerd-font", "tpm"},
		result.Ledger.Installed)
	assert.Empty(t, result.Ledger.Skipped)

	// Every absent package triggers exactly one install
	assert.Equal(t, 1, fake.CountCalls("brew install git"))
	assert.Equal(t, 1, fake.CountCalls("brew install stow"))
	assert.Equal(t, 1, fake.CountCalls("brew install --cask kitty"))
	assert.Equal(t, 1, fake.CountCalls("git clone"))

	require.NotNil(t, result.Link)
	assert.Equal(t, linker.StateLinked, result.Link.State)
}

func TestExecuteSecondRunIsAllSkipped(t *testing.T) {
	fake := execx.NewFakeRunner()
	// brew probes succeed: everything already installed

	deps := testDeps(t, fake)

	// Repo destinations already exist from the previous run
	for _, repo := range deps.Config.Repos {
		require.NoError(t, os.MkdirAll(deps.Paths.ExpandHome(repo.Dest), 0755))
	}

	steps := Plan(deps.Config, platform.Detect("Darwin"))
	result, err := Execute(context.Background(), steps, deps)
	require.NoError(t, err)

	assert.Empty(t, result.Ledger.Installed)
	assert.Equal(t,
		[]string{"git", "stow", "sketchybar", "kitty", "font-jetbrains-mono-nerd-font", "tpm"},
		result.Ledger.Skipped)

	assert.Equal(t, 0, fake.CountCalls("brew install"))
	assert.Equal(t, 0, fake.CountCalls("git clone"))
}

func TestExecuteEveryItemLandsInExactlyOneList(t *testing.T) {
	fake := execx.NewFakeRunner()
	// git and stow present, the rest absent
	fake.Results["brew list --versions git"] = execx.Result{ExitCode: 0}
	fake.Results["brew list --versions stow"] = execx.Result{ExitCode: 0}
	fake.Results["brew list --versions sketchybar"] = execx.Result{ExitCode: 1}
	fake.Results["brew list --cask"] = execx.Result{ExitCode: 1}

	deps := testDeps(t, fake)
	steps := Plan(deps.Config, platform.Detect("Darwin"))

	result, err := Execute(context.Background(), steps, deps)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, name := range result.Ledger.Installed {
		seen[name]++
	}
	for _, name := range result.Ledger.Skipped {
		seen[name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "item %s recorded %d times", name, count)
	}
	assert.Len(t, seen, 6)
}

func TestExecuteLinkDefaultsTargetToHome(t *testing.T) {
	fake := execx.NewFakeRunner()

	deps := testDeps(t, fake)
	deps.Config.Link.Target = ""

	steps := Plan(deps.Config, platform.Detect("Darwin"))
	result, err := Execute(context.Background(), steps, deps)
	require.NoError(t, err)
	require.NotNil(t, result.Link)

	assert.Equal(t, 1, fake.CountCalls("stow --verbose --target "+deps.Paths.HomeDir()))
}

func TestExecuteFailFastOnInstallError(t *testing.T) {
	fake := execx.NewFakeRunner()
	fake.Results["brew list"] = execx.Result{ExitCode: 1}
	fake.Results["brew install stow"] = execx.Result{ExitCode: 1, Stderr: "Error: build failed"}

	deps := testDeps(t, fake)
	steps := Plan(deps.Config, platform.Detect("Darwin"))

	result, err := Execute(context.Background(), steps, deps)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallFailed))

	// git made it in before the failure; nothing after stow ran
	assert.Equal(t, []string{"git"}, result.Ledger.Installed)
	assert.Equal(t, 0, fake.CountCalls("git clone"))
	assert.Nil(t, result.Link)
}
