// Package nativefn implements the interpreter's builtin native functions
// and registers them into an internal/runtime environment. The registry
// shape (a flat list of name/callback pairs installed at startup) follows
// the Builtins convention in akashmaji946-go-mix/std, adapted to this
// language's value.NativeFn contract.
package nativefn

import (
	"fmt"
	"io"
	"os"
	"time"

	"loxwalk/internal/runtime"
	"loxwalk/internal/value"
)

// Options configures which natives Register installs and where their
// output goes.
type Options struct {
	Stdout io.Writer
	// Allow, when non-nil, restricts registration to the named natives
	// (an allowlist read from internal/config). A nil Allow registers
	// everything.
	Allow map[string]bool
}

// Register installs the standard native functions into rt.
func Register(rt *runtime.Runtime, opts Options) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	for _, fn := range []value.NativeFn{
		printlnNative(stdout),
		readFileNative(),
		clockNative(),
	} {
		if opts.Allow != nil && !opts.Allow[fn.Name] {
			continue
		}
		rt.RegisterNative(fn)
	}
}

// printlnNative writes every argument's String() representation
// space-separated, followed by a newline, and returns Nil. Variadic:
// `println()` alone is valid.
func printlnNative(w io.Writer) value.NativeFn {
	return value.NativeFn{
		Name:  "println",
		Arity: -1,
		Call: func(args []value.Value) (value.Value, error) {
			for i, a := range args {
				if i > 0 {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, a.String())
			}
			fmt.Fprintln(w)
			return value.NilValue(), nil
		},
	}
}

// readFileNative reads the file named by its single String argument,
// returning its contents as a String, or Nil on any I/O failure — the
// failure itself is swallowed, per spec: callers distinguish "empty
// file" from "couldn't read it" only by checking for Nil.
func readFileNative() value.NativeFn {
	return value.NativeFn{
		Name:  "read_file",
		Arity: 1,
		Call: func(args []value.Value) (value.Value, error) {
			path := args[0]
			if path.Kind != value.String {
				return value.Value{}, fmt.Errorf("read_file expects a string path, got %s", path.Kind)
			}
			data, err := os.ReadFile(path.Str())
			if err != nil {
				return value.NilValue(), nil
			}
			return value.StringValue(string(data)), nil
		},
	}
}

// clockNative returns the current wall-clock time in fractional seconds,
// a staple Lox-family benchmark/timing native.
func clockNative() value.NativeFn {
	return value.NativeFn{
		Name:  "clock",
		Arity: 0,
		Call: func(args []value.Value) (value.Value, error) {
			return value.DecimalValue(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
