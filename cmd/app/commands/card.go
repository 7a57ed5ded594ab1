package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/idsmith/internal/identifier/http/dto"
	"github.com/allisson/idsmith/internal/identifier/usecase"
)

var cardCSVHeader = []string{"brand", "number", "formatted", "cvv", "expiry", "valid"}

// RunCard generates payment card numbers of one brand, or of random brands. asOf
// (YYYY-MM-DD, optional) pins the date expiry dates are drawn after.
func RunCard(
	ctx context.Context,
	useCase usecase.CardUseCase,
	logger *slog.Logger,
	w io.Writer,
	brand string,
	asOf string,
	count int,
	seed *uint64,
	output string,
) error {
	output, err := parseOutput(output)
	if err != nil {
		return err
	}

	req := dto.CardGenerateRequest{Brand: brand, Count: count, Seed: seed, AsOf: asOf}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger.Debug("generating cards", slog.String("brand", brand), slog.Int("count", count))

	cards, err := useCase.Generate(ctx, req.Brand, req.Batch())
	if err != nil {
		return fmt.Errorf("failed to generate card: %w", err)
	}

	resp := dto.MapCardsToResponse(cards)
	switch output {
	case OutputJSON:
		return writeJSON(w, resp)
	case OutputCSV:
		rows := make([][]string, 0, len(resp.Items))
		for _, c := range resp.Items {
			rows = append(rows, []string{c.Brand, c.Number, c.Formatted, c.CVV, c.Expiry, boolString(c.Valid)})
		}
		return writeCSV(w, cardCSVHeader, rows)
	default:
		for _, c := range resp.Items {
			_, _ = fmt.Fprintf(w, "%-10s %s  cvv %s  exp %s  (valid: %t)\n", c.Brand, c.Formatted, c.CVV, c.Expiry, c.Valid)
		}
		return nil
	}
}
