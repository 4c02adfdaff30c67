package ast

import "loxwalk/internal/source"

// ExprKind tags which per-variant arena an Expr's Payload indexes into.
type ExprKind uint8

const (
	ExprBinary ExprKind = iota
	ExprUnary
	ExprAssign
	ExprCall
	ExprIdentifier
	ExprLiteral
)

// BinaryOp enumerates the binary operators in spec order: arithmetic,
// equality, comparison, logical.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinEqual
	BinNotEqual
	BinLess
	BinLessEqual
	BinGreater
	BinGreaterEqual
	BinAnd // short-circuit
	BinOr  // short-circuit
)

// UnaryOp enumerates the unary operators.
type UnaryOp uint8

const (
	UnNegate UnaryOp = iota // -
	UnNot                   // !
)

// LiteralKind tags which field of LiteralData holds the literal's value.
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitNatural
	LitDecimal
	LitBoolean
	LitNil
)

// Expr is the pair (kind, payload-index) every expression reduces to; the
// kind says which arena below Payload indexes into.
type Expr struct {
	Kind    ExprKind
	Payload uint32
}

type BinaryData struct {
	Op       BinaryOp
	Lhs, Rhs ExprID
}

type UnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// AssignData's Lhs accepts any expression syntactically; the evaluator
// rejects a non-lvalue Lhs at runtime (RtInvalidAssign).
type AssignData struct {
	Lhs, Rhs ExprID
}

type CallData struct {
	Callee    ExprID
	Arguments []ExprID
}

type IdentData struct {
	Name source.StringID
}

type LiteralData struct {
	Kind    LiteralKind
	Str     source.StringID // LitString
	Natural uint64          // LitNatural
	Decimal float64         // LitDecimal
	Boolean bool            // LitBoolean
}

// Exprs owns the parallel per-variant arenas plus the Expr→Span side
// table. ExprID is the public, monotonic identifier; the kind-specific
// arenas (Binaries, Idents, ...) are addressed indirectly through Expr.
type Exprs struct {
	nodes    *Arena[Expr]
	spans    map[ExprID]source.Span
	Binaries *Arena[BinaryData]
	Unaries  *Arena[UnaryData]
	Assigns  *Arena[AssignData]
	Calls    *Arena[CallData]
	Idents   *Arena[IdentData]
	Literals *Arena[LiteralData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint
// (a default of 256 is used when capHint is 0).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		nodes:    NewArena[Expr](capHint),
		spans:    make(map[ExprID]source.Span, capHint),
		Binaries: NewArena[BinaryData](capHint),
		Unaries:  NewArena[UnaryData](capHint),
		Assigns:  NewArena[AssignData](capHint),
		Calls:    NewArena[CallData](capHint),
		Idents:   NewArena[IdentData](capHint),
		Literals: NewArena[LiteralData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, payload uint32, span source.Span) ExprID {
	id := ExprID(e.nodes.Allocate(Expr{Kind: kind, Payload: payload}))
	e.spans[id] = span
	return id
}

// Get returns the Expr node for id, or nil if id is invalid.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.nodes.Get(uint32(id))
}

// Span returns the source span recorded for id at the moment it was
// added to the arena.
func (e *Exprs) Span(id ExprID) source.Span {
	return e.spans[id]
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, lhs, rhs ExprID) ExprID {
	p := e.Binaries.Allocate(BinaryData{Op: op, Lhs: lhs, Rhs: rhs})
	return e.new(ExprBinary, p, span)
}

func (e *Exprs) Binary(id ExprID) (*BinaryData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(n.Payload), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	p := e.Unaries.Allocate(UnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, p, span)
}

func (e *Exprs) Unary(id ExprID) (*UnaryData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(n.Payload), true
}

func (e *Exprs) NewAssign(span source.Span, lhs, rhs ExprID) ExprID {
	p := e.Assigns.Allocate(AssignData{Lhs: lhs, Rhs: rhs})
	return e.new(ExprAssign, p, span)
}

func (e *Exprs) Assign(id ExprID) (*AssignData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(n.Payload), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	p := e.Calls.Allocate(CallData{Callee: callee, Arguments: append([]ExprID(nil), args...)})
	return e.new(ExprCall, p, span)
}

func (e *Exprs) Call(id ExprID) (*CallData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(n.Payload), true
}

func (e *Exprs) NewIdentifier(span source.Span, name source.StringID) ExprID {
	p := e.Idents.Allocate(IdentData{Name: name})
	return e.new(ExprIdentifier, p, span)
}

func (e *Exprs) Identifier(id ExprID) (*IdentData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprIdentifier {
		return nil, false
	}
	return e.Idents.Get(n.Payload), true
}

func (e *Exprs) NewString(span source.Span, value source.StringID) ExprID {
	p := e.Literals.Allocate(LiteralData{Kind: LitString, Str: value})
	return e.new(ExprLiteral, p, span)
}

func (e *Exprs) NewNatural(span source.Span, value uint64) ExprID {
	p := e.Literals.Allocate(LiteralData{Kind: LitNatural, Natural: value})
	return e.new(ExprLiteral, p, span)
}

func (e *Exprs) NewDecimal(span source.Span, value float64) ExprID {
	p := e.Literals.Allocate(LiteralData{Kind: LitDecimal, Decimal: value})
	return e.new(ExprLiteral, p, span)
}

func (e *Exprs) NewBoolean(span source.Span, value bool) ExprID {
	p := e.Literals.Allocate(LiteralData{Kind: LitBoolean, Boolean: value})
	return e.new(ExprLiteral, p, span)
}

func (e *Exprs) NewNil(span source.Span) ExprID {
	p := e.Literals.Allocate(LiteralData{Kind: LitNil})
	return e.new(ExprLiteral, p, span)
}

func (e *Exprs) Literal(id ExprID) (*LiteralData, bool) {
	n := e.Get(id)
	if n == nil || n.Kind != ExprLiteral {
		return nil, false
	}
	return e.Literals.Get(n.Payload), true
}
