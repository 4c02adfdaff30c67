package nativefn_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loxwalk/internal/nativefn"
	"loxwalk/internal/runtime"
	"loxwalk/internal/value"
)

func TestPrintlnJoinsArgumentsWithSpaces(t *testing.T) {
	var out bytes.Buffer
	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{Stdout: &out})

	fn, ok := rt.Native("println")
	require.True(t, ok)

	_, err := fn.Call([]value.Value{value.NaturalValue(1), value.StringValue("x")})
	require.NoError(t, err)
	assert.Equal(t, "1 x\n", out.String())
}

func TestReadFileReturnsContentsOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{})

	fn, ok := rt.Native("read_file")
	require.True(t, ok)

	result, err := fn.Call([]value.Value{value.StringValue(path)})
	require.NoError(t, err)
	assert.Equal(t, value.String, result.Kind)
	assert.Equal(t, "hello", result.Str())
}

func TestReadFileReturnsNilOnMissingFile(t *testing.T) {
	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{})

	fn, ok := rt.Native("read_file")
	require.True(t, ok)

	result, err := fn.Call([]value.Value{value.StringValue("/does/not/exist")})
	require.NoError(t, err)
	assert.Equal(t, value.Nil, result.Kind)
}

func TestReadFileRejectsNonStringArgument(t *testing.T) {
	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{})

	fn, ok := rt.Native("read_file")
	require.True(t, ok)

	_, err := fn.Call([]value.Value{value.NaturalValue(1)})
	assert.Error(t, err)
}

func TestClockReturnsDecimal(t *testing.T) {
	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{})

	fn, ok := rt.Native("clock")
	require.True(t, ok)

	result, err := fn.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, value.Decimal, result.Kind)
}

func TestAllowlistRestrictsRegistration(t *testing.T) {
	rt := runtime.New(nil)
	nativefn.Register(rt, nativefn.Options{Allow: map[string]bool{"clock": true}})

	_, ok := rt.Native("clock")
	assert.True(t, ok)
	_, ok = rt.Native("println")
	assert.False(t, ok)
}
