// Package bootstrap turns the configuration into an ordered plan of steps
// and executes it. Planning is pure so the plan can be inspected and tested
// without touching the system; all subprocess work happens in Execute.
package bootstrap

import (
	"fmt"

	"github.com/arthur-debert/dotstrap/pkg/brew"
	"github.com/arthur-debert/dotstrap/pkg/config"
	"github.com/arthur-debert/dotstrap/pkg/platform"
)

// StepKind identifies what a step does
type StepKind string

const (
	// StepInstallPackage installs a Homebrew formula or cask
	StepInstallPackage StepKind = "install-package"

	// StepCloneRepo clones a plugin-manager repository
	StepCloneRepo StepKind = "clone-repo"

	// StepInstallFont downloads the patched font (Linux only)
	StepInstallFont StepKind = "install-font"

	// StepLinkDotfiles stows the dotfiles into the home directory
	StepLinkDotfiles StepKind = "link-dotfiles"
)

// Step is one unit of work in a bootstrap run
type Step struct {
	Kind StepKind

	// Name is what the ledger and the summary report show
	Name string

	// Package is set for StepInstallPackage
	Package brew.Package

	// Repo is set for StepCloneRepo
	Repo config.Repo
}

// Describe renders the step for plan previews
func (s Step) Describe() string {
	switch s.Kind {
	case StepInstallPackage:
		if s.Package.Cask {
			return fmt.Sprintf("install cask %s", s.Package.Name)
		}
		return fmt.Sprintf("install %s", s.Package.Name)
	case StepCloneRepo:
		return fmt.Sprintf("clone %s into %s", s.Repo.URL, s.Repo.Dest)
	case StepInstallFont:
		return fmt.Sprintf("install font %s", s.Name)
	case StepLinkDotfiles:
		return "link dotfiles into home"
	default:
		return string(s.Kind)
	}
}

// Plan builds the ordered step list for a platform. Pure: no filesystem or
// subprocess access, so re-planning is free and testable.
//
// macOS gets the darwin-only formulas and casks (terminal emulator, window
// manager, status bar, font); Linux skips them and installs the font by
// download instead.
func Plan(cfg *config.Config, p platform.Platform) []Step {
	var steps []Step

	for _, name := range cfg.Packages.Common {
		steps = append(steps, Step{
			Kind:    StepInstallPackage,
			Name:    name,
			Package: brew.Package{Name: name},
		})
	}

	if p.IsDarwin() {
		for _, name := range cfg.Packages.Darwin.Formulas {
			steps = append(steps, Step{
				Kind:    StepInstallPackage,
				Name:    name,
				Package: brew.Package{Name: name},
			})
		}
		for _, name := range cfg.Packages.Darwin.Casks {
			steps = append(steps, Step{
				Kind:    StepInstallPackage,
				Name:    name,
				Package: brew.Package{Name: name, Cask: true},
			})
		}
	}

	for _, repo := range cfg.Repos {
		steps = append(steps, Step{
			Kind: StepCloneRepo,
			Name: repo.Name,
			Repo: repo,
		})
	}

	if p.IsLinux() && cfg.Fonts.LinuxURL != "" {
		steps = append(steps, Step{
			Kind: StepInstallFont,
			Name: cfg.Fonts.Name,
		})
	}

	steps = append(steps, Step{
		Kind: StepLinkDotfiles,
		Name: "dotfiles",
	})

	return steps
}
