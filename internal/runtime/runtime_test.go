package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxwalk/internal/runtime"
	"loxwalk/internal/value"
)

func TestInsertThenAddressResolvesInSameScope(t *testing.T) {
	rt := runtime.New(nil)
	addr := rt.Insert("x", value.NaturalValue(42))

	got, ok := rt.Address("x")
	require.True(t, ok)
	assert.Equal(t, addr, got)
	assert.Equal(t, uint64(42), rt.Load(got).NaturalVal())
}

func TestAddressWalksOuterScopes(t *testing.T) {
	rt := runtime.New(nil)
	rt.Insert("x", value.NaturalValue(1))

	rt.EnterBlock()
	addr, ok := rt.Address("x")
	require.True(t, ok)
	assert.Equal(t, uint64(1), rt.Load(addr).NaturalVal())
	rt.LeaveBlock()
}

func TestLeaveBlockReclaimsSlotsInnerBindingsDisappear(t *testing.T) {
	rt := runtime.New(nil)
	rt.Insert("outer", value.NaturalValue(1))

	rt.EnterBlock()
	rt.Insert("inner", value.NaturalValue(2))
	_, ok := rt.Address("inner")
	require.True(t, ok)
	rt.LeaveBlock()

	_, ok = rt.Address("inner")
	assert.False(t, ok, "inner binding should not survive its block")

	_, ok = rt.Address("outer")
	assert.True(t, ok, "outer binding survives the inner block")
}

func TestShadowingWithinSameScopeOverwritesBinding(t *testing.T) {
	rt := runtime.New(nil)
	rt.Insert("x", value.NaturalValue(1))
	rt.Insert("x", value.NaturalValue(2))

	addr, ok := rt.Address("x")
	require.True(t, ok)
	assert.Equal(t, uint64(2), rt.Load(addr).NaturalVal())
}

func TestStoreOverwritesAnExistingAddress(t *testing.T) {
	rt := runtime.New(nil)
	addr := rt.Insert("x", value.NaturalValue(1))
	rt.Store(addr, value.NaturalValue(99))
	assert.Equal(t, uint64(99), rt.Load(addr).NaturalVal())
}

func TestMemoryGrowsAcrossManyInsertions(t *testing.T) {
	rt := runtime.New(nil)
	for i := 0; i < 1000; i++ {
		rt.Insert("v", value.NaturalValue(uint64(i)))
	}
	addr, ok := rt.Address("v")
	require.True(t, ok)
	assert.Equal(t, uint64(999), rt.Load(addr).NaturalVal())
}

func TestNativeRegistryRoundTrips(t *testing.T) {
	rt := runtime.New(nil)
	rt.RegisterNative(value.NativeFn{
		Name:  "clock",
		Arity: 0,
		Call: func(args []value.Value) (value.Value, error) {
			return value.NaturalValue(0), nil
		},
	})

	fn, ok := rt.Native("clock")
	require.True(t, ok)
	result, err := fn.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, value.Natural, result.Kind)
}
