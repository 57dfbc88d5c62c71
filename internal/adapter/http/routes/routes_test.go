package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"focusquote/internal/adapter/http/handlers"
	"focusquote/internal/config"
	"focusquote/internal/domain/entities"
	"focusquote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Env: "dev", Port: 8080},
		Store:    config.StoreConfig{Backend: config.StoreMemory},
		Lock:     config.LockConfig{Backend: config.LockMemory},
		Link:     config.LinkConfig{PublicBaseURL: "https://app.focusquote.com.br/"},
		Document: config.DocumentConfig{CurrencySymbol: "R$"},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	h, cleanup, err := buildHandlers(context.Background(), cfg, logger.Nop(), reg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return newRouter(logger.Nop(), h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})), reg
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestServer(t, memoryConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRouter_RequestIDIsEchoed(t *testing.T) {
	r, _ := newTestServer(t, memoryConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))
}

func TestRouter_QuoteFlowOverMemoryBackend(t *testing.T) {
	r, _ := newTestServer(t, memoryConfig())

	body := `{"client_id":"c-1","items":[{"name":"Ensaio","unit_price":"450","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handlers.OwnerHeader, "owner-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Quote struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Total  string `json:"total"`
		} `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, string(entities.QuoteStatusDraft), created.Quote.Status)
	assert.Equal(t, "450.00", created.Quote.Total)

	req = httptest.NewRequest(http.MethodGet, "/v1/quotes", nil)
	req.Header.Set(handlers.OwnerHeader, "owner-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Quote.ID)

	// No profile or client stored for this owner: the public page refuses.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=public&q="+created.Quote.ID+"&u=owner-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodPatch, "/v1/quotes/"+created.Quote.ID+"/approve", nil)
	req.Header.Set(handlers.OwnerHeader, "owner-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}

func TestRouter_Metrics(t *testing.T) {
	r, _ := newTestServer(t, memoryConfig())

	req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/missing/approve", nil)
	req.Header.Set(handlers.OwnerHeader, "owner-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `focusquote_quote_approvals_total{channel="owner",outcome="not_found"} 1`), w.Body.String())
}

func TestRouter_RecoversFromPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setMiddlewares(r, logger.Nop())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"An internal error occurred"}`, w.Body.String())
}

func TestRequestLogger_LogsServerErrorCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var out bytes.Buffer
	log := logger.New(logger.Options{ServiceName: "focusquote", Output: &out})

	r := gin.New()
	setMiddlewares(r, log)
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("dynamodb unavailable"))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	line := out.String()
	assert.Contains(t, line, `"level":"error"`)
	assert.Contains(t, line, `"error":"dynamodb unavailable"`)
	assert.Contains(t, line, `"status":500`)
}

func TestBuildHandlers_RejectsUnknownBackends(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Backend = "sqlite"
	_, _, err := buildHandlers(context.Background(), cfg, logger.Nop(), nil)
	assert.Error(t, err)

	cfg = memoryConfig()
	cfg.Lock.Backend = "etcd"
	_, _, err = buildHandlers(context.Background(), cfg, logger.Nop(), nil)
	assert.Error(t, err)
}
