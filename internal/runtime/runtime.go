// Package runtime implements the evaluator's block-scoped, bump-allocated
// storage: a flat memory vector addressed by value.MemAddr, and a stack of
// environments that each remember where to rewind free_address to on
// scope exit.
package runtime

import (
	"fmt"

	"fortio.org/safecast"

	"loxwalk/internal/trace"
	"loxwalk/internal/value"
)

// pageSize is the growth increment for the memory vector.
const pageSize = 256

// environment is one entry on env_stack: the free_address recorded at
// push time, and the names bound directly in this scope.
type environment struct {
	start value.MemAddr
	names map[string]value.MemAddr
}

// Runtime holds the evaluator's mutable state: the memory vector, the
// environment stack, and the native function registry.
type Runtime struct {
	memory  []value.Value
	free    value.MemAddr
	envs    []environment
	natives map[string]value.NativeFn
	tracer  trace.Tracer
}

// New creates a Runtime with one (global) environment pushed.
func New(tracer trace.Tracer) *Runtime {
	if tracer == nil {
		tracer = trace.Nop
	}
	rt := &Runtime{
		natives: make(map[string]value.NativeFn),
		tracer:  tracer,
	}
	rt.envs = []environment{{start: 0, names: make(map[string]value.MemAddr)}}
	return rt
}

// EnterBlock pushes a new environment, recording the current free_address
// so LeaveBlock can rewind to it.
func (rt *Runtime) EnterBlock() {
	rt.envs = append(rt.envs, environment{start: rt.free, names: make(map[string]value.MemAddr)})
}

// LeaveBlock pops the innermost environment and resets free_address to
// the value recorded when it was pushed, reclaiming its slots in O(1).
// Any Addr pointing into the reclaimed range becomes invalid; the
// language never lets one survive past its defining block.
func (rt *Runtime) LeaveBlock() {
	n := len(rt.envs)
	top := rt.envs[n-1]
	rt.envs = rt.envs[:n-1]
	rt.free = top.start
}

// Address resolves name by walking env_stack from innermost to outermost.
func (rt *Runtime) Address(name string) (value.MemAddr, bool) {
	for i := len(rt.envs) - 1; i >= 0; i-- {
		if addr, ok := rt.envs[i].names[name]; ok {
			return addr, true
		}
	}
	return 0, false
}

// Insert allocates a new slot at free_address, grows memory by a page if
// needed, and binds name to it in the current (innermost) environment. A
// later Insert of the same name in the same scope shadows the earlier
// binding by overwriting the map entry; the old slot stays allocated but
// becomes unreachable until the scope exits.
func (rt *Runtime) Insert(name string, v value.Value) value.MemAddr {
	addr := rt.free
	rt.ensureCapacity(addr)
	rt.memory[addr] = v
	rt.free++
	rt.envs[len(rt.envs)-1].names[name] = addr
	return addr
}

func (rt *Runtime) ensureCapacity(addr value.MemAddr) {
	need, err := safecast.Conv[int](addr)
	if err != nil {
		panic(fmt.Errorf("memory address overflow: %w", err))
	}
	if need < len(rt.memory) {
		return
	}
	grown := make([]value.Value, len(rt.memory)+pageSize)
	copy(grown, rt.memory)
	rt.memory = grown
}

// Load dereferences addr to its stored value.
func (rt *Runtime) Load(addr value.MemAddr) value.Value {
	return rt.memory[addr]
}

// Store writes v into memory at addr, used by Assign.
func (rt *Runtime) Store(addr value.MemAddr, v value.Value) {
	rt.memory[addr] = v
}

// RegisterNative adds a native function to the registry under name,
// overwriting any previous registration of the same name.
func (rt *Runtime) RegisterNative(fn value.NativeFn) {
	rt.natives[fn.Name] = fn
}

// Native looks up a registered native function by name.
func (rt *Runtime) Native(name string) (value.NativeFn, bool) {
	fn, ok := rt.natives[name]
	return fn, ok
}

// Tracer returns the runtime's tracer (never nil).
func (rt *Runtime) Tracer() trace.Tracer {
	return rt.tracer
}

// Depth reports the current env_stack depth, mostly useful for tests and
// trace detail.
func (rt *Runtime) Depth() int {
	return len(rt.envs)
}
