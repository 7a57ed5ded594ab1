package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idsmith/cmd/app/commands"
	"github.com/allisson/idsmith/internal/app"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   1,
			Usage:   "Number of values to generate",
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Aliases: []string{"s"},
			Usage:   "Seed for reproducible output (random when omitted)",
		},
		outputFlag(),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Value:   commands.OutputText,
		Usage:   "Output format: 'text', 'json' or 'csv'",
	}
}

// seedFlag returns the --seed value, or nil when the flag was not given.
func seedFlag(cmd *cli.Command) *uint64 {
	if !cmd.IsSet("seed") {
		return nil
	}
	seed := cmd.Uint64("seed")
	return &seed
}

func getGenerateCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "iban",
			Usage: "Generate IBANs",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "country",
					Aliases: []string{"c"},
					Usage:   "Country code (e.g. DE, GB); random when omitted",
				},
			}, batchFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.IBANUseCase()
					if err != nil {
						return err
					}
					return commands.RunIBAN(ctx, useCase, container.Logger(), os.Stdout,
						cmd.String("country"), int(cmd.Int("count")), seedFlag(cmd), cmd.String("output"))
				})
			},
		},
		{
			Name:  "generate",
			Usage: "Generate bank accounts, personal ids, tax ids, company ids, VAT numbers, passports or driver licenses",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Identifier kind: bank-account, personal-id, tax-id, company-id, vat, passport or driver-license",
				},
				&cli.StringFlag{
					Name:    "country",
					Aliases: []string{"c"},
					Usage:   "Country code; random supported country when omitted",
				},
				&cli.StringFlag{
					Name:    "gender",
					Aliases: []string{"g"},
					Usage:   "Gender for formats that encode it: m or f",
				},
				&cli.IntFlag{
					Name:    "year",
					Aliases: []string{"y"},
					Usage:   "Birth year for formats that encode a date of birth",
				},
				&cli.StringFlag{
					Name:  "bank-code",
					Usage: "Fixed bank code for bank account formats that have one",
				},
				&cli.StringFlag{
					Name:  "holder-type",
					Usage: "Holder type letter for tax id formats that encode one",
				},
				&cli.StringFlag{
					Name:  "region",
					Usage: "State, province or prefecture for driver license formats issued regionally",
				},
			}, batchFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				kind, err := domain.ParseKind(cmd.String("kind"))
				if err != nil {
					return err
				}
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.IdentifierUseCase()
					if err != nil {
						return err
					}
					return commands.RunGenerate(ctx, useCase, container.Logger(), os.Stdout, commands.GenerateParams{
						Kind:       kind,
						Country:    cmd.String("country"),
						Gender:     cmd.String("gender"),
						Year:       int(cmd.Int("year")),
						BankCode:   cmd.String("bank-code"),
						HolderType: cmd.String("holder-type"),
						Region:     cmd.String("region"),
						Count:      int(cmd.Int("count")),
						Seed:       seedFlag(cmd),
						Output:     cmd.String("output"),
					})
				})
			},
		},
		{
			Name:  "card",
			Usage: "Generate payment card numbers",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "brand",
					Aliases: []string{"b"},
					Usage:   "Card brand: visa, mastercard, amex, discover, jcb or diners; random when omitted",
				},
				&cli.StringFlag{
					Name:  "as-of",
					Usage: "Date (YYYY-MM-DD) expiry dates are drawn after; today when omitted",
				},
			}, batchFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.CardUseCase()
					if err != nil {
						return err
					}
					return commands.RunCard(ctx, useCase, container.Logger(), os.Stdout,
						cmd.String("brand"), cmd.String("as-of"), int(cmd.Int("count")), seedFlag(cmd), cmd.String("output"))
				})
			},
		},
		{
			Name:  "lei",
			Usage: "Generate Legal Entity Identifiers",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "country",
					Aliases: []string{"c"},
					Usage:   "Jurisdiction country code; random when omitted",
				},
			}, batchFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LEIUseCase()
					if err != nil {
						return err
					}
					return commands.RunLEI(ctx, useCase, container.Logger(), os.Stdout,
						cmd.String("country"), int(cmd.Int("count")), seedFlag(cmd), cmd.String("output"))
				})
			},
		},
	}
}
