// Package eval implements the tree-walking evaluator: it iterates a
// parsed program's top-level statements against an internal/runtime
// store, dispatching each AST node to the dynamic-semantics rules of the
// value system.
package eval

import (
	"io"
	"os"

	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/runtime"
	"loxwalk/internal/source"
	"loxwalk/internal/trace"
	"loxwalk/internal/value"
)

// RuntimeError wraps the diagnostic an evaluation failure produced, so
// callers that only care about abort-or-not can treat it as a plain
// error while callers that want the full report can type-assert it.
type RuntimeError struct {
	Diag *diag.Diagnostic
}

func (e *RuntimeError) Error() string { return e.Diag.Message }

// Options configures one Eval call.
type Options struct {
	Reporter diag.Reporter
	Tracer   trace.Tracer
	Stdout   io.Writer
}

// Evaluator holds the state threaded through one Eval call: the AST
// arenas it reads from, the runtime store it mutates, and where
// diagnostics/print output go.
type Evaluator struct {
	b        *ast.Builder
	rt       *runtime.Runtime
	reporter diag.Reporter
	tracer   trace.Tracer
	stdout   io.Writer
}

// Eval evaluates stmts in order against rt, aborting and returning the
// first RuntimeError encountered. Callers that want REPL-style recovery
// (one failing line doesn't kill the session) call Eval once per
// statement batch rather than once for an entire program.
func Eval(stmts []ast.StmtID, b *ast.Builder, rt *runtime.Runtime, opts Options) error {
	ev := newEvaluator(b, rt, opts)

	var span *trace.Span
	if ev.tracer.Enabled() {
		span = trace.Begin(ev.tracer, trace.ScopePass, "eval", 0)
	}

	var err error
	for _, id := range stmts {
		if err = ev.execStmt(id); err != nil {
			break
		}
	}

	if span != nil {
		span.End("")
	}
	return err
}

func newEvaluator(b *ast.Builder, rt *runtime.Runtime, opts Options) *Evaluator {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Evaluator{b: b, rt: rt, reporter: opts.Reporter, tracer: tracer, stdout: stdout}
}

// fail reports code/msg at sp to the configured reporter and returns a
// RuntimeError carrying the same diagnostic, aborting the caller's chain.
func (ev *Evaluator) fail(code diag.Code, sp source.Span, msg string) error {
	diag.ReportError(ev.reporter, code, sp, msg)
	d := diag.NewError(code, sp, msg)
	return &RuntimeError{Diag: &d}
}

// invokeNative dispatches to a native function's Go implementation. Arity
// is already checked by the caller; a native returning an error (e.g. a
// type mismatch in its own arguments) surfaces as RtUnexpectedValue, the
// taxonomy's bucket for "type mismatch ... in a native call".
func (ev *Evaluator) invokeNative(fn value.NativeFn, args []value.Value, sp source.Span) (value.Value, error) {
	var span *trace.Span
	if ev.tracer.Enabled() {
		span = trace.Begin(ev.tracer, trace.ScopeNode, "call:"+fn.Name, 0)
	}

	result, callErr := fn.Call(args)

	if span != nil {
		span.End(fn.Name)
	}
	if callErr != nil {
		return value.Value{}, ev.fail(diag.RtUnexpectedValue, sp, callErr.Error())
	}
	return result, nil
}
