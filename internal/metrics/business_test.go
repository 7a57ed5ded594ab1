package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrape returns the Prometheus exposition of provider.
func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

// assertSeries checks for a sample of name whose labels match the partial pattern.
// The exporter injects OTel scope labels, hence the loose match.
func assertSeries(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("idsmith_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "idsmith_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "identifier", "bank-account_generate", "success")
	bm.RecordOperation(ctx, "identifier", "bank-account_generate", "success")
	bm.RecordOperation(ctx, "identifier", "bank-account_generate", "error")
	bm.RecordOperation(ctx, "identifier", "iban_validate", "success")
	bm.RecordDuration(ctx, "identifier", "bank-account_generate", 5*time.Millisecond, "success")
	bm.RecordDuration(ctx, "identifier", "bank-account_generate", 7*time.Millisecond, "success")
	bm.RecordGenerated(ctx, "bank-account", 10)
	bm.RecordGenerated(ctx, "bank-account", 5)
	bm.RecordGenerated(ctx, "lei", 0)

	output := scrape(t, provider)

	assertSeries(t, output, `idsmith_test_operations_total`,
		`domain="identifier".*operation="bank-account_generate".*status="success"`, `2`)
	assertSeries(t, output, `idsmith_test_operations_total`,
		`domain="identifier".*operation="bank-account_generate".*status="error"`, `1`)
	assertSeries(t, output, `idsmith_test_operations_total`,
		`operation="iban_validate"`, `1`)
	assertSeries(t, output, `idsmith_test_operation_duration_seconds_count`,
		`operation="bank-account_generate".*status="success"`, `2`)
	assertSeries(t, output, `idsmith_test_identifiers_generated_total`, `kind="bank-account"`, `15`)
	assert.NotContains(t, output, `kind="lei"`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()
	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "identifier", "lei_generate", "success")
		m.RecordDuration(context.Background(), "identifier", "lei_generate", time.Second, "error")
		m.RecordGenerated(context.Background(), "lei", 3)
	})
}
