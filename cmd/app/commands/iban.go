package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
)

var ibanCSVHeader = []string{"country", "iban", "iban_formatted", "valid"}

// RunIBAN generates IBANs for a country, or for random IBAN countries when country is
// empty.
func RunIBAN(
	ctx context.Context,
	useCase usecase.IBANUseCase,
	logger *slog.Logger,
	w io.Writer,
	country string,
	count int,
	seed *uint64,
	output string,
) error {
	output, err := parseOutput(output)
	if err != nil {
		return err
	}

	req := dto.IBANGenerateRequest{Country: country, Count: count, Seed: seed}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger.Debug("generating ibans", slog.String("country", country), slog.Int("count", count))

	ibans, err := useCase.Generate(ctx, req.Country, req.Batch())
	if err != nil {
		return fmt.Errorf("failed to generate IBAN: %w", err)
	}

	switch output {
	case OutputJSON:
		return writeJSON(w, dto.MapIBANsToResponse(ibans))
	case OutputCSV:
		return writeCSV(w, ibanCSVHeader, ibanRows(ibans))
	default:
		for _, i := range ibans {
			_, _ = fmt.Fprintf(w, "%s  (valid: %t)\n", i.Formatted, i.Valid)
		}
		return nil
	}
}

func ibanRows(ibans []domain.IBAN) [][]string {
	rows := make([][]string, 0, len(ibans))
	for _, i := range ibans {
		rows = append(rows, []string{i.CountryCode, i.IBAN, i.Formatted, boolString(i.Valid)})
	}
	return rows
}
