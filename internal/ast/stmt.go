package ast

import "loxwalk/internal/source"

// StmtKind tags which per-variant arena a Stmt's Payload indexes into.
type StmtKind uint8

const (
	StmtExprKind StmtKind = iota
	StmtPrintKind
	StmtDeclarationKind
	StmtBlockKind
	StmtIfElseKind
	StmtWhileKind
)

// Stmt is the pair (kind, payload-index) every statement reduces to.
type Stmt struct {
	Kind    StmtKind
	Payload uint32
}

type ExprStmtData struct {
	Expr ExprID
}

type PrintData struct {
	Expr ExprID
}

type DeclarationData struct {
	Name     source.StringID
	Value    ExprID
	HasValue bool
}

// BlockData names its direct children as the contiguous StmtID range
// [Start, Start+Count), relying on the parser allocating a block's
// statements in strict sequence with no interleaved ids.
type BlockData struct {
	Start StmtID
	Count uint32
}

type IfElseData struct {
	Condition  ExprID
	IfBranch   StmtID
	ElseBranch StmtID
	HasElse    bool
}

type WhileData struct {
	Condition ExprID
	Body      StmtID
}

// Stmts owns the parallel per-variant arenas plus the Stmt→Span side
// table, mirroring Exprs.
type Stmts struct {
	nodes        *Arena[Stmt]
	spans        map[StmtID]source.Span
	ExprStmts    *Arena[ExprStmtData]
	Prints       *Arena[PrintData]
	Declarations *Arena[DeclarationData]
	Blocks       *Arena[BlockData]
	IfElses      *Arena[IfElseData]
	Whiles       *Arena[WhileData]
}

// NewStmts creates a Stmts with per-kind arenas preallocated to capHint
// (a default of 256 is used when capHint is 0).
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		nodes:        NewArena[Stmt](capHint),
		spans:        make(map[StmtID]source.Span, capHint),
		ExprStmts:    NewArena[ExprStmtData](capHint),
		Prints:       NewArena[PrintData](capHint),
		Declarations: NewArena[DeclarationData](capHint),
		Blocks:       NewArena[BlockData](capHint),
		IfElses:      NewArena[IfElseData](capHint),
		Whiles:       NewArena[WhileData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, payload uint32, span source.Span) StmtID {
	id := StmtID(s.nodes.Allocate(Stmt{Kind: kind, Payload: payload}))
	s.spans[id] = span
	return id
}

// Get returns the Stmt node for id, or nil if id is invalid.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.nodes.Get(uint32(id))
}

// Span returns the source span recorded for id.
func (s *Stmts) Span(id StmtID) source.Span {
	return s.spans[id]
}

// NextID previews the StmtID that the next allocation on s will receive,
// used by the parser to record a block's Start before parsing its body.
func (s *Stmts) NextID() StmtID {
	return StmtID(s.nodes.Len() + 1)
}

func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	p := s.ExprStmts.Allocate(ExprStmtData{Expr: expr})
	return s.new(StmtExprKind, p, span)
}

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtExprKind {
		return nil, false
	}
	return s.ExprStmts.Get(n.Payload), true
}

func (s *Stmts) NewPrint(span source.Span, expr ExprID) StmtID {
	p := s.Prints.Allocate(PrintData{Expr: expr})
	return s.new(StmtPrintKind, p, span)
}

func (s *Stmts) Print(id StmtID) (*PrintData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtPrintKind {
		return nil, false
	}
	return s.Prints.Get(n.Payload), true
}

func (s *Stmts) NewDeclaration(span source.Span, name source.StringID, value ExprID, hasValue bool) StmtID {
	p := s.Declarations.Allocate(DeclarationData{Name: name, Value: value, HasValue: hasValue})
	return s.new(StmtDeclarationKind, p, span)
}

func (s *Stmts) Declaration(id StmtID) (*DeclarationData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtDeclarationKind {
		return nil, false
	}
	return s.Declarations.Get(n.Payload), true
}

func (s *Stmts) NewBlock(span source.Span, start StmtID, count uint32) StmtID {
	p := s.Blocks.Allocate(BlockData{Start: start, Count: count})
	return s.new(StmtBlockKind, p, span)
}

func (s *Stmts) Block(id StmtID) (*BlockData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtBlockKind {
		return nil, false
	}
	return s.Blocks.Get(n.Payload), true
}

func (s *Stmts) NewIfElse(span source.Span, cond ExprID, ifBranch, elseBranch StmtID, hasElse bool) StmtID {
	p := s.IfElses.Allocate(IfElseData{Condition: cond, IfBranch: ifBranch, ElseBranch: elseBranch, HasElse: hasElse})
	return s.new(StmtIfElseKind, p, span)
}

func (s *Stmts) IfElse(id StmtID) (*IfElseData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtIfElseKind {
		return nil, false
	}
	return s.IfElses.Get(n.Payload), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	p := s.Whiles.Allocate(WhileData{Condition: cond, Body: body})
	return s.new(StmtWhileKind, p, span)
}

func (s *Stmts) While(id StmtID) (*WhileData, bool) {
	n := s.Get(id)
	if n == nil || n.Kind != StmtWhileKind {
		return nil, false
	}
	return s.Whiles.Get(n.Payload), true
}
