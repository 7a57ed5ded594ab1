package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/allisson/idsmith/internal/bankaccount"
	"github.com/allisson/idsmith/internal/companyid"
	"github.com/allisson/idsmith/internal/config"
	"github.com/allisson/idsmith/internal/country"
	"github.com/allisson/idsmith/internal/driverlicense"
	identifierHTTP "github.com/allisson/idsmith/internal/identifier/http"
	"github.com/allisson/idsmith/internal/identifier/registry"
	"github.com/allisson/idsmith/internal/identifier/usecase"
	"github.com/allisson/idsmith/internal/metrics"
	"github.com/allisson/idsmith/internal/passport"
	"github.com/allisson/idsmith/internal/personalid"
	"github.com/allisson/idsmith/internal/taxid"
	"github.com/allisson/idsmith/internal/vat"
)

// TestMain sets Gin to test mode and checks that no test leaks a goroutine.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestServer() *Server {
	return NewServer("127.0.0.1", 0, discardLogger())
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 1000,
		RateLimitBurst:          1000,
		MetricsNamespace:        "idsmith_test",
		SolverMaxAttempts:       64,
		MaxBatchSize:            100,
		GenerationWorkers:       2,
	}
}

// createFullServer wires real registries and use cases behind the router.
func createFullServer(t *testing.T, cfg *config.Config, provider *metrics.Provider) *Server {
	t.Helper()

	names, err := country.Load()
	require.NoError(t, err)
	bankAccounts, err := bankaccount.New(names, cfg.SolverMaxAttempts)
	require.NoError(t, err)
	registries := []usecase.Registry{bankAccounts}
	for _, build := range []func(registry.Names) (*registry.Registry, error){
		personalid.New, taxid.New, companyid.New, vat.New, passport.New, driverlicense.New,
	} {
		r, err := build(names)
		require.NoError(t, err)
		registries = append(registries, r)
	}

	ucCfg := usecase.Config{MaxBatchSize: cfg.MaxBatchSize, Workers: cfg.GenerationWorkers}
	logger := discardLogger()

	server := createTestServer()
	server.SetupRouter(
		cfg,
		identifierHTTP.NewIdentifierHandler(usecase.NewIdentifierUseCase(ucCfg, registries...), logger),
		identifierHTTP.NewInstitutionHandler(
			usecase.NewIBANUseCase(ucCfg, names),
			usecase.NewCardUseCase(ucCfg),
			usecase.NewLEIUseCase(ucCfg),
			logger,
		),
		provider,
	)
	return server
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	server := createTestServer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	server.healthHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	server := createTestServer()

	call := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/ready", nil)
		server.readinessHandler(c)
		return w
	}

	w := call()
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"not_ready"}`, w.Body.String())

	server.ready.Store(true)
	w = call()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := serve(router, http.MethodGet, "/test?x=1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "/test", entry["path"])
	assert.Equal(t, "x=1", entry["query"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, w.Header().Get("X-Request-Id"), entry["request_id"])
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := serve(router, http.MethodGet, "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRouter(t *testing.T) {
	provider, err := metrics.NewProvider("idsmith_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	handler := createFullServer(t, testConfig(), provider).GetHandler()

	t.Run("Health", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("GenerateTaxIDs", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/tax-ids/generate", `{"country":"br","count":3,"seed":42}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Items []struct {
				CountryCode string `json:"country_code"`
				Raw         string `json:"raw"`
				Valid       bool   `json:"valid"`
			} `json:"items"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.Total)
		for _, item := range response.Items {
			assert.Equal(t, "BR", item.CountryCode)
			assert.True(t, item.Valid)
		}

		again := serve(handler, http.MethodPost, "/v1/tax-ids/generate", `{"country":"br","count":3,"seed":42}`)
		assert.Equal(t, w.Body.String(), again.Body.String())
	})

	t.Run("ValidatePersonalID", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/personal-ids/validate", `{"country":"EE","value":"37601231233"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"valid":true,"formatted":"37601231233"}`, w.Body.String())
	})

	t.Run("ValidateVAT", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/vats/validate", `{"country":"GR","value":"123456783"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"valid":true,"formatted":"EL123456783"}`, w.Body.String())
	})

	t.Run("ParseCompanyID", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/company-ids/parse", `{"country":"BR","value":"11222333000181"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "0001", response["branch_code"])
		assert.Equal(t, "11.222.333/0001-81", response["formatted"])
	})

	t.Run("ListPassportCountries", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/v1/passports/countries", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Reisepass"`)
	})

	t.Run("GenerateDriverLicensesWithRegion", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/driver-licenses/generate", `{"country":"US","region":"ny","count":2}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Items []struct {
				Region string `json:"region"`
				Valid  bool   `json:"valid"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Items, 2)
		for _, item := range response.Items {
			assert.Equal(t, "NY", item.Region)
			assert.True(t, item.Valid)
		}
	})

	t.Run("UnknownRegion", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/driver-licenses/generate", `{"country":"US","region":"ZZ"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/v1/visas/countries", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UnsupportedCountry", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/bank-accounts/validate", `{"country":"ZZ","value":"123"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ValidateIBAN", func(t *testing.T) {
		w := serve(handler, http.MethodPost, "/v1/iban/validate", `{"value":"GB82 WEST 1234 5698 7654 32"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["valid"])
		assert.Equal(t, "GB82WEST12345698765432", response["iban"])
	})

	t.Run("NoMetricsEndpoint", func(t *testing.T) {
		w := serve(handler, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("RequestsAreMeasured", func(t *testing.T) {
		w := serve(provider.Handler(), http.MethodGet, "/metrics", "")
		assert.Contains(t, w.Body.String(), `path="/v1/:kind/generate"`)
	})
}

func TestRouter_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRequestsPerSec = 0.001
	cfg.RateLimitBurst = 1

	handler := createFullServer(t, cfg, nil).GetHandler()

	w := serve(handler, http.MethodPost, "/v1/lei/validate", `{"value":"5493001KJTIIGC8Y1R12"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(handler, http.MethodPost, "/v1/lei/validate", `{"value":"5493001KJTIIGC8Y1R12"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Probes sit outside /v1 and are never limited.
	w = serve(handler, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_StartWithoutRouter(t *testing.T) {
	err := createTestServer().Start(context.Background())
	assert.Error(t, err)
}

func TestServer_ShutdownGracefully(t *testing.T) {
	server := createFullServer(t, testConfig(), nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	require.Eventually(t, server.ready.Load, time.Second, 10*time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, server.Shutdown(shutdownCtx))
	assert.NoError(t, <-errChan)
	assert.False(t, server.ready.Load())
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("idsmith_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	metricsServer := NewMetricsServer("127.0.0.1", 0, discardLogger(), provider)
	require.NotNil(t, metricsServer)

	w := serve(metricsServer.GetHandler(), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
