// Package cli wires together the dependencies every dotstrap command needs:
// runner, paths, merged configuration and the detected host platform.
package cli

import (
	"context"

	"github.com/arthur-debert/dotstrap/pkg/bootstrap"
	"github.com/arthur-debert/dotstrap/pkg/brew"
	"github.com/arthur-debert/dotstrap/pkg/config"
	"github.com/arthur-debert/dotstrap/pkg/execx"
	"github.com/arthur-debert/dotstrap/pkg/fonts"
	"github.com/arthur-debert/dotstrap/pkg/gitclone"
	"github.com/arthur-debert/dotstrap/pkg/linker"
	"github.com/arthur-debert/dotstrap/pkg/paths"
	"github.com/arthur-debert/dotstrap/pkg/platform"
)

// App holds the shared state of a command invocation
type App struct {
	Runner   execx.Runner
	Paths    *paths.Paths
	Config   *config.Config
	Platform platform.Platform
}

// NewApp builds the app from the environment: XDG paths, layered config,
// and the host platform via uname.
func NewApp(ctx context.Context) (*App, error) {
	runner := execx.NewOSRunner()

	p, err := paths.New("")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	host, err := platform.DetectHost(ctx, runner)
	if err != nil {
		return nil, err
	}

	return &App{
		Runner:   runner,
		Paths:    p,
		Config:   cfg,
		Platform: host,
	}, nil
}

// Deps builds the executor dependencies from the app
func (a *App) Deps() bootstrap.Deps {
	return bootstrap.Deps{
		Config: a.Config,
		Paths:  a.Paths,
		Brew:   brew.NewClient(a.Runner),
		Cloner: gitclone.NewCloner(a.Runner),
		Fonts:  fonts.NewInstaller(a.Runner),
		Linker: linker.New(a.Runner),
	}
}
