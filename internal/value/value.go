// Package value implements the tagged runtime value of the evaluator: the
// numeric coercion ladder, wrapping/truncating/IEEE-754 arithmetic,
// comparison, and short-circuit-free logic and unary operators.
package value

import "fmt"

// Kind tags which field of a Value is meaningful.
type Kind uint8

const (
	Nil Kind = iota
	Boolean
	Natural
	Signed
	Decimal
	String
	Addr
	Fn
)

// MemAddr is an lvalue handle into the runtime's memory vector.
type MemAddr uint32

// NativeFn is a builtin callable, dispatched by the evaluator on Call.
type NativeFn struct {
	Name  string
	Arity int // -1 means variadic
	Call  func(args []Value) (Value, error)
}

// Value is the evaluator's tagged runtime value. Addr is an lvalue
// handle — it denotes a storage cell, not a value, and must be
// dereferenced on read.
type Value struct {
	Kind    Kind
	boolean bool
	natural uint64
	signed  int64
	decimal float64
	str     string
	addr    MemAddr
	fn      NativeFn
}

func NilValue() Value                 { return Value{Kind: Nil} }
func BooleanValue(b bool) Value       { return Value{Kind: Boolean, boolean: b} }
func NaturalValue(n uint64) Value     { return Value{Kind: Natural, natural: n} }
func SignedValue(n int64) Value       { return Value{Kind: Signed, signed: n} }
func DecimalValue(f float64) Value    { return Value{Kind: Decimal, decimal: f} }
func StringValue(s string) Value      { return Value{Kind: String, str: s} }
func AddrValue(a MemAddr) Value       { return Value{Kind: Addr, addr: a} }
func FnValue(fn NativeFn) Value       { return Value{Kind: Fn, fn: fn} }

func (v Value) Bool() bool       { return v.boolean }
func (v Value) NaturalVal() uint64 { return v.natural }
func (v Value) SignedVal() int64 { return v.signed }
func (v Value) DecimalVal() float64 { return v.decimal }
func (v Value) Str() string      { return v.str }
func (v Value) AddrVal() MemAddr { return v.addr }
func (v Value) FnVal() NativeFn  { return v.fn }

// IsTruthyBoolean reports whether v is exactly Boolean(true); the
// language has no implicit truthiness and callers of `if`/`while`/`and`/
// `or` require an explicit Boolean.
func (v Value) IsTruthyBoolean() bool {
	return v.Kind == Boolean && v.boolean
}

func (v Value) String() string {
	switch v.Kind {
	case Nil:
		return "nil"
	case Boolean:
		return fmt.Sprintf("%t", v.boolean)
	case Natural:
		return fmt.Sprintf("%d", v.natural)
	case Signed:
		return fmt.Sprintf("%d", v.signed)
	case Decimal:
		return fmt.Sprintf("%g", v.decimal)
	case String:
		return v.str
	case Addr:
		return fmt.Sprintf("<addr %d>", v.addr)
	case Fn:
		return fmt.Sprintf("<fn %s>", v.fn.Name)
	default:
		return "<unknown>"
	}
}

func (k Kind) String() string {
	switch k {
	case Nil:
		return "Nil"
	case Boolean:
		return "Boolean"
	case Natural:
		return "Natural"
	case Signed:
		return "Signed"
	case Decimal:
		return "Decimal"
	case String:
		return "String"
	case Addr:
		return "Addr"
	case Fn:
		return "Fn"
	default:
		return "?"
	}
}
