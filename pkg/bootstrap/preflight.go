package bootstrap

import (
	"context"

	"github.com/arthur-debert/dotstrap/pkg/errors"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/platform"
)

// Check is one prerequisite probe, used by preflight and the doctor command
type Check struct {
	Name string
	Hint string
	OK   bool
}

// Checks probes every prerequisite and reports each result. It never fails;
// callers decide whether a missing prerequisite is fatal.
func Checks(ctx context.Context, runner execx.Runner, p platform.Platform) []Check {
	checks := []Check{
		{
			Name: "brew",
			Hint: "install Homebrew first: https://brew.sh",
			OK:   runner.LookPath("brew"),
		},
		{
			Name: "git",
			Hint: "install git through your package manager",
			OK:   runner.LookPath("git"),
		},
	}

	if p.IsDarwin() {
		ok := false
		if result, err := runner.Run(ctx, "", "xcode-select", "-p"); err == nil {
			ok = result.ExitCode == 0
		}
		checks = append(checks, Check{
			Name: "command line tools",
			Hint: "run: xcode-select --install",
			OK:   ok,
		})
	}

	return checks
}

// Preflight fails fast on the first missing prerequisite, with instructions.
// stow is not checked here: it is in the common package list and gets
// installed by the run itself before the link step needs it.
func Preflight(ctx context.Context, runner execx.Runner, p platform.Platform) error {
	if p.Tag == platform.Unknown {
		return errors.Newf(errors.ErrPrereqMissing,
			"unsupported platform %q, dotstrap only knows Darwin and Linux", p.Kernel)
	}

	for _, check := range Checks(ctx, runner, p) {
		if !check.OK {
			return errors.Newf(errors.ErrPrereqMissing,
				"%s is not available: %s", check.Name, check.Hint)
		}
	}
	return nil
}
