package usecase

import (
	"context"
	"time"

	"github.com/allisson/idsmith/internal/creditcard"
	"github.com/allisson/idsmith/internal/identifier/domain"
	"github.com/allisson/idsmith/internal/lei"
	"github.com/allisson/idsmith/internal/metrics"
)

const metricsDomain = "identifier"

func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, metricsDomain, operation, status)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// identifierUseCaseWithMetrics decorates IdentifierUseCase with metrics instrumentation.
// Operations are named after the kind, for example "tax-id_generate".
type identifierUseCaseWithMetrics struct {
	next    IdentifierUseCase
	metrics metrics.BusinessMetrics
}

// NewIdentifierUseCaseWithMetrics wraps an IdentifierUseCase with metrics recording.
func NewIdentifierUseCaseWithMetrics(useCase IdentifierUseCase, m metrics.BusinessMetrics) IdentifierUseCase {
	return &identifierUseCaseWithMetrics{next: useCase, metrics: m}
}

func (d *identifierUseCaseWithMetrics) Generate(
	ctx context.Context,
	kind domain.Kind,
	opts domain.GenOptions,
	batch Batch,
) ([]domain.Result, error) {
	start := time.Now()
	results, err := d.next.Generate(ctx, kind, opts, batch)
	record(ctx, d.metrics, kind.String()+"_generate", start, err)
	d.metrics.RecordGenerated(ctx, kind.String(), len(results))
	return results, err
}

func (d *identifierUseCaseWithMetrics) Validate(
	ctx context.Context,
	kind domain.Kind,
	country, value string,
) (bool, error) {
	start := time.Now()
	valid, err := d.next.Validate(ctx, kind, country, value)
	record(ctx, d.metrics, kind.String()+"_validate", start, err)
	return valid, err
}

func (d *identifierUseCaseWithMetrics) Format(
	ctx context.Context,
	kind domain.Kind,
	country, value string,
) (string, error) {
	start := time.Now()
	formatted, err := d.next.Format(ctx, kind, country, value)
	record(ctx, d.metrics, kind.String()+"_format", start, err)
	return formatted, err
}

func (d *identifierUseCaseWithMetrics) Parse(
	ctx context.Context,
	kind domain.Kind,
	country, value string,
) (domain.Result, error) {
	start := time.Now()
	result, err := d.next.Parse(ctx, kind, country, value)
	record(ctx, d.metrics, kind.String()+"_parse", start, err)
	return result, err
}

func (d *identifierUseCaseWithMetrics) ListCountries(ctx context.Context, kind domain.Kind) ([]domain.CountryInfo, error) {
	start := time.Now()
	infos, err := d.next.ListCountries(ctx, kind)
	record(ctx, d.metrics, kind.String()+"_countries", start, err)
	return infos, err
}

type ibanUseCaseWithMetrics struct {
	next    IBANUseCase
	metrics metrics.BusinessMetrics
}

// NewIBANUseCaseWithMetrics wraps an IBANUseCase with metrics recording.
func NewIBANUseCaseWithMetrics(useCase IBANUseCase, m metrics.BusinessMetrics) IBANUseCase {
	return &ibanUseCaseWithMetrics{next: useCase, metrics: m}
}

func (d *ibanUseCaseWithMetrics) Generate(ctx context.Context, country string, batch Batch) ([]domain.IBAN, error) {
	start := time.Now()
	ibans, err := d.next.Generate(ctx, country, batch)
	record(ctx, d.metrics, "iban_generate", start, err)
	d.metrics.RecordGenerated(ctx, "iban", len(ibans))
	return ibans, err
}

func (d *ibanUseCaseWithMetrics) Validate(ctx context.Context, value string) (domain.IBAN, error) {
	start := time.Now()
	out, err := d.next.Validate(ctx, value)
	record(ctx, d.metrics, "iban_validate", start, err)
	return out, err
}

func (d *ibanUseCaseWithMetrics) ListCountries(ctx context.Context) ([]domain.IBANCountry, error) {
	start := time.Now()
	countries, err := d.next.ListCountries(ctx)
	record(ctx, d.metrics, "iban_countries", start, err)
	return countries, err
}

type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{next: useCase, metrics: m}
}

func (d *cardUseCaseWithMetrics) Generate(ctx context.Context, brand string, batch Batch) ([]creditcard.Card, error) {
	start := time.Now()
	cards, err := d.next.Generate(ctx, brand, batch)
	record(ctx, d.metrics, "card_generate", start, err)
	d.metrics.RecordGenerated(ctx, "card", len(cards))
	return cards, err
}

func (d *cardUseCaseWithMetrics) Validate(ctx context.Context, value string) (creditcard.Card, error) {
	start := time.Now()
	card, err := d.next.Validate(ctx, value)
	record(ctx, d.metrics, "card_validate", start, err)
	return card, err
}

type leiUseCaseWithMetrics struct {
	next    LEIUseCase
	metrics metrics.BusinessMetrics
}

// NewLEIUseCaseWithMetrics wraps a LEIUseCase with metrics recording.
func NewLEIUseCaseWithMetrics(useCase LEIUseCase, m metrics.BusinessMetrics) LEIUseCase {
	return &leiUseCaseWithMetrics{next: useCase, metrics: m}
}

func (d *leiUseCaseWithMetrics) Generate(ctx context.Context, country string, batch Batch) ([]lei.LEI, error) {
	start := time.Now()
	leis, err := d.next.Generate(ctx, country, batch)
	record(ctx, d.metrics, "lei_generate", start, err)
	d.metrics.RecordGenerated(ctx, "lei", len(leis))
	return leis, err
}

func (d *leiUseCaseWithMetrics) Validate(ctx context.Context, value string) (lei.LEI, error) {
	start := time.Now()
	out, err := d.next.Validate(ctx, value)
	record(ctx, d.metrics, "lei_validate", start, err)
	return out, err
}
