package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/identifier/http/dto"
)

// RunCountries lists the countries supported by a kind ("iban" or a registry-backed
// kind).
func RunCountries(ctx context.Context, useCases UseCases, w io.Writer, kind, output string) error {
	output, err := parseOutput(output)
	if err != nil {
		return err
	}

	if normalizeKind(kind) == KindIBAN {
		countries, err := useCases.IBANs.ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("failed to list IBAN countries: %w", err)
		}
		return writeIBANCountries(w, countries, output)
	}

	idKind, err := domain.ParseKind(kind)
	if err != nil {
		return fmt.Errorf("unknown kind %q: %w", kind, err)
	}
	infos, err := useCases.Identifiers.ListCountries(ctx, idKind)
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}

	switch output {
	case OutputJSON:
		return writeJSON(w, dto.MapCountriesToResponse(infos, len(infos)))
	case OutputCSV:
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{
				info.Code, info.Name, info.FormatName, string(info.Tier), info.ParentCode, boolString(info.HasIBAN),
			})
		}
		return writeCSV(w, []string{"code", "name", "format", "tier", "parent", "has_iban"}, rows)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CODE\tNAME\tFORMAT\tTIER")
		for _, info := range infos {
			tier := string(info.Tier)
			if info.ParentCode != "" {
				tier += " (" + info.ParentCode + ")"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Code, info.Name, info.FormatName, tier)
		}
		return tw.Flush()
	}
}

func writeIBANCountries(w io.Writer, countries []domain.IBANCountry, output string) error {
	switch output {
	case OutputJSON:
		return writeJSON(w, dto.MapIBANCountriesToResponse(countries, len(countries)))
	case OutputCSV:
		rows := make([][]string, 0, len(countries))
		for _, c := range countries {
			rows = append(rows, []string{c.Code, c.Name, strconv.Itoa(c.BBANLength), c.Layout})
		}
		return writeCSV(w, []string{"code", "name", "bban_length", "layout"}, rows)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "CODE\tNAME\tBBAN\tLAYOUT")
		for _, c := range countries {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Code, c.Name, c.BBANLength, c.Layout)
		}
		return tw.Flush()
	}
}
