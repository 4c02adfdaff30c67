// Package trace provides the tracing subsystem for the interpreter: it
// records parse/eval phase boundaries and block/native-call events, plus
// an optional heartbeat, so a hung native call or a runaway loop shows up as a liveness signal
// even between span boundaries.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	loxwalk run --trace=- --trace-level=phase myfile.lox
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - nopTracer: zero-overhead no-op tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped to the output on Close when
//     running in ring-only mode
//   - MultiTracer: combines multiple tracers (stream + ring)
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: no span events; only heartbeats, when configured
//   - LevelPhase: driver + pass boundaries (parse, eval)
//   - LevelDebug: everything, including block and native-call events
//
// # Scopes
//
//   - ScopeDriver: the heartbeat
//   - ScopePass: the parse and eval phases
//   - ScopeNode: block entry/exit, native function calls
//
// # Context propagation
//
// Tracers are propagated through the command tree via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "eval", 0)
//	defer span.End("")
package trace
