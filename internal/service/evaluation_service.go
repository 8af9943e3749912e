// Package service exposes the function modules to request-driven callers
// such as the HTTP server. Unlike the core packages, it validates its
// input: every limit violation is reported with a sentinel error.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/orchestration"
	"github.com/agbru/bindtime/internal/suite"
	"github.com/agbru/bindtime/pkg/models"
)

// Sentinel errors returned by Service, checked with errors.Is.
var (
	ErrUnknownFunction   = errors.New("unknown function")
	ErrNegativeOrder     = errors.New("order must be non-negative")
	ErrOrderTooLarge     = errors.New("order exceeds the configured maximum")
	ErrNegativeLoops     = errors.New("loop count must be non-negative")
	ErrLoopsTooLarge     = errors.New("loop count exceeds the configured maximum")
	ErrIndexOutOfRange   = errors.New("table index out of range")
	ErrNonFiniteArgument = errors.New("argument must be finite")
)

// Service evaluates and benchmarks registered functions.
type Service interface {
	Evaluate(function string, x float64, order int) (models.EvaluateResponse, error)
	Benchmark(ctx context.Context, function string, loops int) (models.ModuleReport, error)
	TableEntry(function string, index int) (models.TableEntryResponse, error)
	Functions() []models.FunctionInfo
}

// EvaluationCacheSize is the number of Evaluate results kept in memory.
const EvaluationCacheSize = 4096

type evalKey struct {
	function string
	x        float64
	order    int
}

// EvaluationService is the Service backed by a module registry. Evaluate
// results are memoized in an LRU cache; the functions are pure, so a cached
// value never goes stale.
type EvaluationService struct {
	registry *suite.Registry
	maxOrder int
	maxLoops int
	cache    *lru.Cache[evalKey, float64]
}

// NewEvaluationService returns a service over registry bounded by maxOrder
// and maxLoops.
func NewEvaluationService(registry *suite.Registry, maxOrder, maxLoops int) *EvaluationService {
	cache, err := lru.New[evalKey, float64](EvaluationCacheSize)
	if err != nil {
		panic(fmt.Sprintf("service: creating evaluation cache: %v", err))
	}
	return &EvaluationService{registry: registry, maxOrder: maxOrder, maxLoops: maxLoops, cache: cache}
}

var _ Service = (*EvaluationService)(nil)

func (s *EvaluationService) module(function string) (bench.Module, error) {
	m, err := s.registry.Get(function)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, function)
	}
	return m, nil
}

// Evaluate runs the runtime recursion of function at x truncated to order.
func (s *EvaluationService) Evaluate(function string, x float64, order int) (models.EvaluateResponse, error) {
	m, err := s.module(function)
	if err != nil {
		return models.EvaluateResponse{}, err
	}
	switch {
	case order < 0:
		return models.EvaluateResponse{}, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	case order > s.maxOrder:
		return models.EvaluateResponse{}, fmt.Errorf("%w: %d > %d", ErrOrderTooLarge, order, s.maxOrder)
	case math.IsNaN(x) || math.IsInf(x, 0):
		return models.EvaluateResponse{}, fmt.Errorf("%w: %g", ErrNonFiniteArgument, x)
	}
	key := evalKey{function: m.Name(), x: x, order: order}
	value, ok := s.cache.Get(key)
	if !ok {
		value = m.Evaluate(x, order)
		s.cache.Add(key, value)
	}
	return models.EvaluateResponse{
		Function: m.Name(),
		X:        x,
		Order:    order,
		Value:    models.Float(value),
	}, nil
}

// CachedEvaluations returns the number of memoized Evaluate results.
func (s *EvaluationService) CachedEvaluations() int {
	return s.cache.Len()
}

// Benchmark measures every strategy of function loops times.
func (s *EvaluationService) Benchmark(ctx context.Context, function string, loops int) (models.ModuleReport, error) {
	m, err := s.module(function)
	if err != nil {
		return models.ModuleReport{}, err
	}
	switch {
	case loops < 0:
		return models.ModuleReport{}, fmt.Errorf("%w: %d", ErrNegativeLoops, loops)
	case loops > s.maxLoops:
		return models.ModuleReport{}, fmt.Errorf("%w: %d > %d", ErrLoopsTooLarge, loops, s.maxLoops)
	}
	return orchestration.Benchmark(ctx, m, loops)
}

// TableEntry reads slot index of the lookup table of function.
func (s *EvaluationService) TableEntry(function string, index int) (models.TableEntryResponse, error) {
	m, err := s.module(function)
	if err != nil {
		return models.TableEntryResponse{}, err
	}
	table := m.Table()
	if index < 0 || index >= table.Len() {
		return models.TableEntryResponse{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, table.Len())
	}
	return models.TableEntryResponse{Function: m.Name(), Index: index, Value: models.Float(table.At(index))}, nil
}

// Functions describes every registered function in name order.
func (s *EvaluationService) Functions() []models.FunctionInfo {
	modules := s.registry.All()
	out := make([]models.FunctionInfo, 0, len(modules))
	for _, m := range modules {
		info := models.FunctionInfo{
			Name:      m.Name(),
			Title:     m.Title(),
			Order:     m.Order(),
			TableSize: m.Table().Len(),
		}
		for _, st := range m.Strategies() {
			info.Strategies = append(info.Strategies, st.Name)
		}
		out = append(out, info)
	}
	return out
}
