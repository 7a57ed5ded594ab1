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

// Kinds handled outside the country registries.
const (
	KindIBAN = "iban"
	KindCard = "card"
	KindLEI  = "lei"
)

// UseCases groups the use cases the inspection commands dispatch to.
type UseCases struct {
	Identifiers usecase.IdentifierUseCase
	IBANs       usecase.IBANUseCase
	Cards       usecase.CardUseCase
	LEIs        usecase.LEIUseCase
}

// ValueParams carries the flags of the validate, format and parse commands.
type ValueParams struct {
	Kind    string
	Country string
	Value   string
	Output  string
}

func (p ValueParams) request(countryRequired bool) (dto.ValueRequest, error) {
	req := dto.ValueRequest{Country: p.Country, Value: p.Value}
	var err error
	if countryRequired {
		err = req.Validate()
	} else {
		err = req.ValidateValueOnly()
	}
	if err != nil {
		return req, fmt.Errorf("invalid flags: %w", err)
	}
	return req, nil
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// RunValidate checks a value of any kind. An invalid value is reported, not returned
// as an error.
func RunValidate(ctx context.Context, useCases UseCases, logger *slog.Logger, w io.Writer, params ValueParams) error {
	output, err := parseOutput(params.Output)
	if err != nil {
		return err
	}

	var resp dto.ValidateResponse
	switch kind := normalizeKind(params.Kind); kind {
	case KindIBAN, KindCard, KindLEI:
		req, err := params.request(false)
		if err != nil {
			return err
		}
		resp, err = validateInstitution(ctx, useCases, kind, req.Value)
		if err != nil {
			return err
		}
	default:
		idKind, err := domain.ParseKind(kind)
		if err != nil {
			return fmt.Errorf("unknown kind %q: %w", params.Kind, err)
		}
		req, err := params.request(true)
		if err != nil {
			return err
		}
		if resp.Valid, err = useCases.Identifiers.Validate(ctx, idKind, req.Country, req.Value); err != nil {
			return fmt.Errorf("failed to validate: %w", err)
		}
		if resp.Valid {
			if resp.Formatted, err = useCases.Identifiers.Format(ctx, idKind, req.Country, req.Value); err != nil {
				return fmt.Errorf("failed to format: %w", err)
			}
		}
	}

	logger.Debug("validated value", slog.String("kind", params.Kind), slog.Bool("valid", resp.Valid))

	switch output {
	case OutputJSON:
		return writeJSON(w, resp)
	case OutputCSV:
		return writeCSV(w, []string{"value", "formatted", "valid"}, [][]string{
			{strings.TrimSpace(params.Value), resp.Formatted, boolString(resp.Valid)},
		})
	default:
		if resp.Valid {
			_, _ = fmt.Fprintf(w, "%s  (valid: true)\n", resp.Formatted)
		} else {
			_, _ = fmt.Fprintf(w, "%s  (valid: false)\n", strings.TrimSpace(params.Value))
		}
		return nil
	}
}

func validateInstitution(ctx context.Context, useCases UseCases, kind, value string) (dto.ValidateResponse, error) {
	var resp dto.ValidateResponse
	switch kind {
	case KindIBAN:
		out, err := useCases.IBANs.Validate(ctx, value)
		if err != nil {
			return resp, fmt.Errorf("failed to validate IBAN: %w", err)
		}
		resp.Valid = out.Valid
		resp.Formatted = out.Formatted
	case KindCard:
		card, err := useCases.Cards.Validate(ctx, value)
		if err != nil {
			return resp, fmt.Errorf("failed to validate card: %w", err)
		}
		resp.Valid = card.Valid
		resp.Formatted = card.Formatted
	default:
		out, err := useCases.LEIs.Validate(ctx, value)
		if err != nil {
			return resp, fmt.Errorf("failed to validate LEI: %w", err)
		}
		resp.Valid = out.Valid
		resp.Formatted = out.Code
	}
	if !resp.Valid {
		resp.Formatted = ""
	}
	return resp, nil
}

// RunFormat prints the display form of a value. Invalid values are printed trimmed.
func RunFormat(ctx context.Context, useCases UseCases, w io.Writer, params ValueParams) error {
	var formatted string
	switch kind := normalizeKind(params.Kind); kind {
	case KindIBAN, KindCard, KindLEI:
		req, err := params.request(false)
		if err != nil {
			return err
		}
		resp, err := validateInstitution(ctx, useCases, kind, req.Value)
		if err != nil {
			return err
		}
		formatted = resp.Formatted
		if !resp.Valid {
			formatted = strings.TrimSpace(req.Value)
		}
	default:
		idKind, err := domain.ParseKind(kind)
		if err != nil {
			return fmt.Errorf("unknown kind %q: %w", params.Kind, err)
		}
		req, err := params.request(true)
		if err != nil {
			return err
		}
		if formatted, err = useCases.Identifiers.Format(ctx, idKind, req.Country, req.Value); err != nil {
			return fmt.Errorf("failed to format: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, formatted)
	return err
}

// RunParse decomposes a value of a registry-backed kind.
func RunParse(ctx context.Context, useCases UseCases, w io.Writer, params ValueParams) error {
	output, err := parseOutput(params.Output)
	if err != nil {
		return err
	}
	kind, err := domain.ParseKind(params.Kind)
	if err != nil {
		return fmt.Errorf("unknown kind %q: %w", params.Kind, err)
	}
	req, err := params.request(true)
	if err != nil {
		return err
	}

	result, err := useCases.Identifiers.Parse(ctx, kind, req.Country, req.Value)
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}

	switch output {
	case OutputJSON:
		return writeJSON(w, dto.MapResultToResponse(result))
	case OutputCSV:
		return writeResultsCSV(w, kind, []domain.Result{result})
	default:
		writeResultsText(w, []domain.Result{result})
		return nil
	}
}
