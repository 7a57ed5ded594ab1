package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	provider, err := NewProvider("idsmith")
	require.NoError(t, err)

	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())
	assert.NotNil(t, provider.registry)
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ShutdownWithoutMeterProvider(t *testing.T) {
	provider := &Provider{}
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_IsolatedRegistries(t *testing.T) {
	first, err := NewProvider("idsmith")
	require.NoError(t, err)
	second, err := NewProvider("idsmith")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(first.MeterProvider(), "idsmith")
	require.NoError(t, err)
	bm.RecordGenerated(context.Background(), "tax-id", 1)

	assert.Contains(t, scrape(t, first), "idsmith_identifiers_generated_total")
	assert.NotContains(t, scrape(t, second), "idsmith_identifiers_generated_total")
}
