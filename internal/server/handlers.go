package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/logging"
	"github.com/agbru/bindtime/internal/service"
	"github.com/agbru/bindtime/pkg/models"
)

// DefaultBenchmarkLoops is used by /benchmark when loops is omitted.
const DefaultBenchmarkLoops = 1000

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
	})
}

func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"functions": s.service.Functions(),
	})
}

// handleEvaluate serves GET /evaluate?fn=&x=&order=. x defaults to 0 for
// functions of a single argument.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	q := r.URL.Query()
	fn, err := requiredParam(q.Get("fn"), "fn")
	if err != nil {
		s.writeValidationError(w, err)
		return
	}
	x, err := parseFloatParam(q.Get("x"), "x", 0)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}
	if _, err := requiredParam(q.Get("order"), "order"); err != nil {
		s.writeValidationError(w, err)
		return
	}
	order, err := parseIntParam(q.Get("order"), "order", 0)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	resp, err := s.service.Evaluate(fn, x, order)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// handleBenchmark serves GET /benchmark?fn=&loops=.
func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	q := r.URL.Query()
	fn, err := requiredParam(q.Get("fn"), "fn")
	if err != nil {
		s.writeValidationError(w, err)
		return
	}
	loops, err := parseIntParam(q.Get("loops"), "loops", DefaultBenchmarkLoops)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	report, err := s.service.Benchmark(ctx, fn, loops)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, report)
}

// handleTable serves GET /table?fn=&i=.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	q := r.URL.Query()
	fn, err := requiredParam(q.Get("fn"), "fn")
	if err != nil {
		s.writeValidationError(w, err)
		return
	}
	if _, err := requiredParam(q.Get("i"), "i"); err != nil {
		s.writeValidationError(w, err)
		return
	}
	i, err := parseIntParam(q.Get("i"), "i", 0)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	resp, err := s.service.TableEntry(fn, i)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

func requiredParam(value, name string) (string, error) {
	if value == "" {
		return "", apperrors.NewValidationError(name, "missing parameter", nil)
	}
	return value, nil
}

func parseIntParam(value, name string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be an integer", value)
	}
	return n, nil
}

func parseFloatParam(value, name string, def float64) (float64, error) {
	if value == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be a number", value)
	}
	return f, nil
}

func (s *Server) writeValidationError(w http.ResponseWriter, err error) {
	s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
}

// writeServiceError maps service errors to HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownFunction):
		s.writeErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNegativeOrder),
		errors.Is(err, service.ErrOrderTooLarge),
		errors.Is(err, service.ErrNegativeLoops),
		errors.Is(err, service.ErrLoopsTooLarge),
		errors.Is(err, service.ErrIndexOutOfRange),
		errors.Is(err, service.ErrNonFiniteArgument):
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeErrorResponse(w, http.StatusGatewayTimeout, "benchmark exceeded the request timeout")
	case errors.Is(err, context.Canceled):
		s.writeErrorResponse(w, http.StatusServiceUnavailable, "request canceled")
	default:
		s.logger.Error("unexpected service error", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("internal error: %v", err))
	}
}

// writeJSONResponse encodes data before writing the header. An encoding
// failure is answered with a 500.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", err, logging.Int("status", statusCode))
		buf.Reset()
		statusCode = http.StatusInternalServerError
		fmt.Fprintf(&buf, "{\"error\":%q,\"message\":\"failed to encode response\"}\n",
			http.StatusText(statusCode))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("writing JSON response", err, logging.Int("status", statusCode))
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
