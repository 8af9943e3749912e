package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/bindtime/internal/config"
	"github.com/agbru/bindtime/internal/logging"
	"github.com/agbru/bindtime/internal/service"
	"github.com/agbru/bindtime/internal/suite"
	"github.com/agbru/bindtime/pkg/models"
)

func createTestServer(opts ...Option) *Server {
	cfg := config.Default()
	cfg.Port = "0"
	base := []Option{
		WithLogger(logging.NewLogger(io.Discard, "server")),
		WithService(service.NewEvaluationService(suite.NewDefaultRegistry(), 200, 1000)),
	}
	return NewServer(cfg, append(base, opts...)...)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()
	rec := get(t, createTestServer(), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "healthy", decode[models.HealthResponse](t, rec).Status)
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	s := createTestServer()
	for _, path := range []string{"/health", "/functions", "/evaluate", "/benchmark", "/table", "/metrics"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, path)
	}
}

func TestHandleFunctions(t *testing.T) {
	t.Parallel()
	rec := get(t, createTestServer(), "/functions")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Functions []models.FunctionInfo `json:"functions"`
	}](t, rec)
	require.Len(t, body.Functions, 4)
	assert.Equal(t, "cos", body.Functions[0].Name)
	assert.Equal(t, "cos(45)", body.Functions[0].Title)
}

func TestHandleEvaluate(t *testing.T) {
	t.Parallel()
	s := createTestServer()
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantValue  float64
	}{
		{"power", "fn=pow&x=2&order=10", http.StatusOK, 1024},
		{"factorial without x", "fn=factorial&order=10", http.StatusOK, 3628800},
		{"exp at zero", "fn=exp&x=0&order=5", http.StatusOK, 1},
		{"missing fn", "x=1&order=1", http.StatusBadRequest, 0},
		{"missing order", "fn=pow&x=2", http.StatusBadRequest, 0},
		{"bad x", "fn=pow&x=two&order=2", http.StatusBadRequest, 0},
		{"bad order", "fn=pow&x=2&order=1.5", http.StatusBadRequest, 0},
		{"negative order", "fn=pow&x=2&order=-1", http.StatusBadRequest, 0},
		{"order too large", "fn=pow&x=2&order=201", http.StatusBadRequest, 0},
		{"non-finite x", "fn=cos&x=NaN&order=2", http.StatusBadRequest, 0},
		{"unknown function", "fn=tan&x=1&order=1", http.StatusNotFound, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, s, "/evaluate?"+tt.query)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				errResp := decode[models.ErrorResponse](t, rec)
				assert.Equal(t, http.StatusText(tt.wantStatus), errResp.Error)
				assert.NotEmpty(t, errResp.Message)
				return
			}
			assert.Equal(t, tt.wantValue, float64(decode[models.EvaluateResponse](t, rec).Value))
		})
	}
}

func TestHandleBenchmark(t *testing.T) {
	t.Parallel()
	s := createTestServer()

	rec := get(t, s, "/benchmark?fn=cos&loops=5")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[models.ModuleReport](t, rec)
	assert.Equal(t, "cos", report.Function)
	assert.Equal(t, 5, report.Loops)
	require.Len(t, report.Strategies, 6)
	for _, st := range report.Strategies {
		assert.InDelta(t, 0.7071067811865476, float64(st.Value), 1e-12, st.Name)
	}

	rec = get(t, s, "/benchmark?fn=pow")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, DefaultBenchmarkLoops, decode[models.ModuleReport](t, rec).Loops)

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/benchmark?fn=pow&loops=1001").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/benchmark?fn=pow&loops=x").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/benchmark?fn=sqrt").Code)
}

func TestEvaluateFactorialBeyondFloatRange(t *testing.T) {
	t.Parallel()
	rec := get(t, createTestServer(), "/evaluate?fn=factorial&order=200")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.EvaluateResponse](t, rec)
	assert.Equal(t, 200, resp.Order)
	assert.True(t, math.IsInf(float64(resp.Value), 1))
}

func TestWriteJSONResponseEncodingFailure(t *testing.T) {
	t.Parallel()
	s := createTestServer()
	rec := httptest.NewRecorder()
	s.writeJSONResponse(rec, http.StatusOK, map[string]any{"value": make(chan int)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	errResp := decode[models.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errResp.Error)
	assert.NotEmpty(t, errResp.Message)
}

func TestHandleTable(t *testing.T) {
	t.Parallel()
	s := createTestServer()

	rec := get(t, s, "/table?fn=factorial&i=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120.0, float64(decode[models.TableEntryResponse](t, rec).Value))

	rec = get(t, s, "/table?fn=factorial&i=171")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"+Inf"`)
	assert.True(t, math.IsInf(float64(decode[models.TableEntryResponse](t, rec).Value), 1))

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/table?fn=factorial").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/table?fn=cos&i=181").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/table?fn=nope&i=0").Code)
}

func TestHandleMetrics(t *testing.T) {
	t.Parallel()
	s := createTestServer()
	get(t, s, "/health")

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "bindtime_active_requests")
	assert.Contains(t, body, `bindtime_requests_total{code="200",path="/health"}`)
}

func TestMiddlewareHeaders(t *testing.T) {
	t.Parallel()
	s := createTestServer()

	rec := get(t, s, "/health")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "client-id", rec.Header().Get(RequestIDHeader))
}

// failingService returns err from every call.
type failingService struct {
	err error
}

func (f failingService) Evaluate(string, float64, int) (models.EvaluateResponse, error) {
	return models.EvaluateResponse{}, f.err
}

func (f failingService) Benchmark(context.Context, string, int) (models.ModuleReport, error) {
	return models.ModuleReport{}, f.err
}

func (f failingService) TableEntry(string, int) (models.TableEntryResponse, error) {
	return models.TableEntryResponse{}, f.err
}

func (f failingService) Functions() []models.FunctionInfo { return nil }

func TestServiceErrorMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"canceled", context.Canceled, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := createTestServer(WithService(failingService{err: tt.err}))
			assert.Equal(t, tt.wantStatus, get(t, s, "/benchmark?fn=pow&loops=1").Code)
		})
	}
}

func TestRequestTimeoutFromConfig(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Timeout = 3 * time.Second
	s := NewServer(cfg, WithLogger(logging.NewLogger(io.Discard, "server")))
	assert.Equal(t, 3*time.Second, s.timeouts.RequestTimeout)
}

func TestStartFailsOnBadAddress(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Port = "not-a-port"
	s := NewServer(cfg, WithLogger(logging.NewLogger(io.Discard, "server")))
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed to start")
}

func TestStopShutsDownGracefully(t *testing.T) {
	cfg := config.Default()
	cfg.Port = "0"
	s := NewServer(cfg, WithLogger(logging.NewLogger(io.Discard, "server")))

	done := make(chan error, 1)
	go func() { done <- s.Start() }()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
