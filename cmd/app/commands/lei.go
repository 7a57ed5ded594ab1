package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
)

var leiCSVHeader = []string{"code", "lou", "country", "check_digits", "valid"}

// RunLEI generates Legal Entity Identifiers, optionally for one jurisdiction.
func RunLEI(
	ctx context.Context,
	useCase usecase.LEIUseCase,
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

	req := dto.LEIGenerateRequest{Country: country, Count: count, Seed: seed}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger.Debug("generating leis", slog.String("country", country), slog.Int("count", count))

	leis, err := useCase.Generate(ctx, req.Country, req.Batch())
	if err != nil {
		return fmt.Errorf("failed to generate LEI: %w", err)
	}

	resp := dto.MapLEIsToResponse(leis)
	switch output {
	case OutputJSON:
		return writeJSON(w, resp)
	case OutputCSV:
		rows := make([][]string, 0, len(resp.Items))
		for _, l := range resp.Items {
			rows = append(rows, []string{l.Code, l.LOU, l.CountryCode, l.CheckDigits, boolString(l.Valid)})
		}
		return writeCSV(w, leiCSVHeader, rows)
	default:
		for _, l := range resp.Items {
			_, _ = fmt.Fprintf(w, "%s  (country: %s, valid: %t)\n", l.Code, l.CountryCode, l.Valid)
		}
		return nil
	}
}
