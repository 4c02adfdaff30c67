package ast_test

import (
	"testing"

	"loxwalk/internal/ast"
	"loxwalk/internal/source"
)

func TestBuilderBuildsBinaryExpr(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	sp := source.Span{}

	one := b.Exprs.NewNatural(sp, 1)
	two := b.Exprs.NewNatural(sp, 2)
	sum := b.Exprs.NewBinary(sp, ast.BinAdd, one, two)

	data, ok := b.Exprs.Binary(sum)
	if !ok {
		t.Fatal("expected sum to be a Binary expr")
	}
	if data.Lhs != one || data.Rhs != two || data.Op != ast.BinAdd {
		t.Errorf("unexpected binary data: %+v", data)
	}

	lhsLit, ok := b.Exprs.Literal(one)
	if !ok || lhsLit.Kind != ast.LitNatural || lhsLit.Natural != 1 {
		t.Errorf("unexpected literal data: %+v", lhsLit)
	}
}

func TestBuilderInternsIdentifiersByValue(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	a := b.Intern("count")
	c := b.Intern("count")
	if a != c {
		t.Error("identical identifier text should yield identical StringID")
	}
}

func TestBlockRangeCoversContiguousStatements(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	sp := source.Span{}

	start := b.Stmts.NextID()
	e := b.Exprs.NewNil(sp)
	s1 := b.Stmts.NewExprStmt(sp, e)
	s2 := b.Stmts.NewExprStmt(sp, e)
	if s1 != start {
		t.Fatalf("expected first statement to receive the previewed id %d, got %d", start, s1)
	}

	block := b.Stmts.NewBlock(sp, start, 2)
	data, ok := b.Stmts.Block(block)
	if !ok || data.Start != start || data.Count != 2 {
		t.Errorf("unexpected block data: %+v", data)
	}
	_ = s2
}

func TestSpanSideTableRecordsAtInsertion(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	sp := source.Span{Start: 3, End: 7}
	id := b.Exprs.NewBoolean(sp, true)
	if got := b.Exprs.Span(id); got != sp {
		t.Errorf("expected span %+v, got %+v", sp, got)
	}
}
