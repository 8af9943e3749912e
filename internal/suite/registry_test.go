package suite

import (
	"sync"
	"testing"

	"github.com/agbru/bindtime/internal/bench"
	"github.com/agbru/bindtime/internal/power"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renamed struct {
	power.Module
	name string
}

func (r renamed) Name() string { return r.name }

func TestDefaultRegistryListsAllFunctions(t *testing.T) {
	t.Parallel()
	r := NewDefaultRegistry()
	assert.Equal(t, []string{"cos", "exp", "factorial", "pow"}, r.List())
	for _, name := range r.List() {
		assert.True(t, r.Has(name))
		assert.Equal(t, name, r.MustGet(name).Name())
	}
	assert.False(t, r.Has("sin"))
}

func TestGetUnknownFunction(t *testing.T) {
	t.Parallel()
	_, err := NewDefaultRegistry().Get("sin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function: sin")
	assert.Panics(t, func() { NewDefaultRegistry().MustGet("sin") })
}

func TestResolve(t *testing.T) {
	t.Parallel()
	r := NewDefaultRegistry()

	all, err := r.Resolve("all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	one, err := r.Resolve("exp")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "exp", one[0].Name())

	_, err = r.Resolve("tan")
	assert.Error(t, err)
}

func TestRegisterReplacesAndRejectsEmptyName(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	require.NoError(t, r.Register(renamed{name: "twice"}))
	require.NoError(t, r.Register(renamed{name: "twice"}))
	assert.Equal(t, []string{"twice"}, r.List())
	assert.Error(t, r.Register(renamed{name: ""}))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register(power.Module{})
		}()
		go func() {
			defer wg.Done()
			_ = r.All()
			_ = r.Has("pow")
		}()
	}
	wg.Wait()
	assert.True(t, r.Has("pow"))
}

func TestEveryModuleHasSixStrategies(t *testing.T) {
	t.Parallel()
	want := []string{
		bench.NameRuntime, bench.NameInline, bench.NameGeneric,
		bench.NameConstant, bench.NameTable, bench.NameLiteral,
	}
	for _, m := range Global().All() {
		var names []string
		for _, s := range m.Strategies() {
			names = append(names, s.Name)
		}
		assert.Equal(t, want, names, m.Name())
	}
}
