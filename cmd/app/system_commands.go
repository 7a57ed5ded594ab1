package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idsmith/cmd/app/commands"
	"github.com/allisson/idsmith/internal/app"
	"github.com/allisson/idsmith/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
	}
}

// newCLIContainer builds a container for one-shot commands. Metrics are never exported
// from the CLI, so the decorators are left out.
func newCLIContainer() (*app.Container, error) {
	cfg := config.Load()
	cfg.MetricsEnabled = false
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

// withContainer runs fn with a CLI container and shuts it down afterwards.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	container, err := newCLIContainer()
	if err != nil {
		return err
	}
	defer func() { _ = container.Shutdown(ctx) }()
	return fn(container)
}

// useCases collects every use case the inspection commands need.
func useCases(container *app.Container) (commands.UseCases, error) {
	identifiers, err := container.IdentifierUseCase()
	if err != nil {
		return commands.UseCases{}, err
	}
	ibans, err := container.IBANUseCase()
	if err != nil {
		return commands.UseCases{}, err
	}
	cards, err := container.CardUseCase()
	if err != nil {
		return commands.UseCases{}, err
	}
	leis, err := container.LEIUseCase()
	if err != nil {
		return commands.UseCases{}, err
	}
	return commands.UseCases{Identifiers: identifiers, IBANs: ibans, Cards: cards, LEIs: leis}, nil
}
