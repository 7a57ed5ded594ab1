package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
)

// CSV headers for registry-backed kinds. Personal and tax ids share one layout.
var (
	idCSVHeader          = []string{"country", "id_name", "code", "gender", "dob", "valid"}
	bankAccountCSVHeader = []string{
		"country", "format", "raw", "formatted", "bank_code", "branch_code", "account_number", "iban", "valid",
	}
)

// GenerateParams carries the flags of the generate command.
type GenerateParams struct {
	Kind       domain.Kind
	Country    string
	Gender     string
	Year       int
	BankCode   string
	HolderType string
	Region     string
	Count      int
	Seed       *uint64
	Output     string
}

// RunGenerate generates identifiers of one registry-backed kind and writes them in the
// requested format.
func RunGenerate(
	ctx context.Context,
	useCase usecase.IdentifierUseCase,
	logger *slog.Logger,
	w io.Writer,
	params GenerateParams,
) error {
	output, err := parseOutput(params.Output)
	if err != nil {
		return err
	}

	req := dto.GenerateRequest{
		Country:    params.Country,
		Gender:     params.Gender,
		Year:       params.Year,
		BankCode:   params.BankCode,
		HolderType: params.HolderType,
		Region:     params.Region,
		Count:      params.Count,
		Seed:       params.Seed,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	opts, batch, err := req.ToOptions()
	if err != nil {
		return err
	}

	logger.Debug("generating identifiers",
		slog.String("kind", params.Kind.String()),
		slog.String("country", opts.Country),
		slog.Int("count", batch.Count),
	)

	results, err := useCase.Generate(ctx, params.Kind, opts, batch)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", params.Kind, err)
	}

	switch output {
	case OutputJSON:
		return writeJSON(w, dto.MapResultsToResponse(results))
	case OutputCSV:
		return writeResultsCSV(w, params.Kind, results)
	default:
		writeResultsText(w, results)
		return nil
	}
}

func writeResultsCSV(w io.Writer, kind domain.Kind, results []domain.Result) error {
	rows := make([][]string, 0, len(results))
	if kind == domain.KindBankAccount {
		for _, r := range results {
			rows = append(rows, []string{
				r.CountryCode, r.FormatName, r.Raw, r.Formatted,
				r.BankCode, r.BranchCode, r.AccountNumber, r.IBAN, boolString(r.Valid),
			})
		}
		return writeCSV(w, bankAccountCSVHeader, rows)
	}
	for _, r := range results {
		rows = append(rows, []string{
			r.CountryCode, r.FormatName, r.Formatted, r.Gender.String(), r.DOB, boolString(r.Valid),
		})
	}
	return writeCSV(w, idCSVHeader, rows)
}

// writeResultsText prints a "CC - Format:" heading whenever the country changes, then
// one indented line per value with its decomposed fields.
func writeResultsText(w io.Writer, results []domain.Result) {
	heading := ""
	for _, r := range results {
		if h := fmt.Sprintf("%s - %s:", r.CountryCode, r.FormatName); h != heading {
			heading = h
			_, _ = fmt.Fprintln(w, heading)
		}
		_, _ = fmt.Fprintf(w, "  %s  (%s)\n", r.Formatted, strings.Join(resultDetails(r), ", "))
	}
}

func resultDetails(r domain.Result) []string {
	var parts []string
	if r.Gender != domain.GenderUnspecified {
		parts = append(parts, r.Gender.String())
	}
	if r.DOB != "" {
		parts = append(parts, r.DOB)
	}
	if r.HolderType != "" {
		parts = append(parts, "holder: "+r.HolderType)
	}
	if r.Region != "" {
		parts = append(parts, "region: "+r.Region)
	}
	if r.IBAN != "" {
		parts = append(parts, "iban: "+r.IBAN)
	}
	return append(parts, fmt.Sprintf("valid: %t", r.Valid))
}
