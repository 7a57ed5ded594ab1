package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idsmith/cmd/app/commands"
	"github.com/allisson/idsmith/internal/app"
)

func valueFlags(withOutput bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "kind",
			Aliases:  []string{"k"},
			Required: true,
			Usage:    "Identifier kind: bank-account, personal-id, tax-id, company-id, vat, passport, driver-license, iban, card or lei",
		},
		&cli.StringFlag{
			Name:    "country",
			Aliases: []string{"c"},
			Usage:   "Country code (not used by iban, card and lei)",
		},
		&cli.StringFlag{
			Name:     "value",
			Required: true,
			Usage:    "Value to inspect",
		},
	}
	if withOutput {
		flags = append(flags, outputFlag())
	}
	return flags
}

func valueParams(cmd *cli.Command) commands.ValueParams {
	return commands.ValueParams{
		Kind:    cmd.String("kind"),
		Country: cmd.String("country"),
		Value:   cmd.String("value"),
		Output:  cmd.String("output"),
	}
}

// inspectAction runs fn with every use case resolved from a CLI container.
func inspectAction(fn func(context.Context, *cli.Command, commands.UseCases, *app.Container) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return withContainer(ctx, func(container *app.Container) error {
			ucs, err := useCases(container)
			if err != nil {
				return err
			}
			return fn(ctx, cmd, ucs, container)
		})
	}
}

func getInspectCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "validate",
			Usage: "Check whether a value is valid",
			Flags: valueFlags(true),
			Action: inspectAction(func(ctx context.Context, cmd *cli.Command, ucs commands.UseCases, c *app.Container) error {
				return commands.RunValidate(ctx, ucs, c.Logger(), os.Stdout, valueParams(cmd))
			}),
		},
		{
			Name:  "format",
			Usage: "Print the display form of a value",
			Flags: valueFlags(false),
			Action: inspectAction(func(ctx context.Context, cmd *cli.Command, ucs commands.UseCases, _ *app.Container) error {
				return commands.RunFormat(ctx, ucs, os.Stdout, valueParams(cmd))
			}),
		},
		{
			Name:  "parse",
			Usage: "Decompose a registry-backed identifier or an IBAN into its fields",
			Flags: valueFlags(true),
			Action: inspectAction(func(ctx context.Context, cmd *cli.Command, ucs commands.UseCases, _ *app.Container) error {
				return commands.RunParse(ctx, ucs, os.Stdout, valueParams(cmd))
			}),
		},
		{
			Name:  "countries",
			Usage: "List the countries supported by a kind",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Identifier kind: bank-account, personal-id, tax-id, company-id, vat, passport, driver-license or iban",
				},
				outputFlag(),
			},
			Action: inspectAction(func(ctx context.Context, cmd *cli.Command, ucs commands.UseCases, _ *app.Container) error {
				return commands.RunCountries(ctx, ucs, os.Stdout, cmd.String("kind"), cmd.String("output"))
			}),
		},
	}
}
