package eval

import (
	"fmt"

	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/trace"
	"loxwalk/internal/value"
)

// execStmt evaluates a single statement for effect.
func (ev *Evaluator) execStmt(id ast.StmtID) error {
	node := ev.b.Stmts.Get(id)

	switch node.Kind {
	case ast.StmtExprKind:
		data, _ := ev.b.Stmts.ExprStmt(id)
		_, err := ev.derefExpression(data.Expr)
		return err

	case ast.StmtPrintKind:
		return ev.execPrint(id)

	case ast.StmtDeclarationKind:
		return ev.execDeclaration(id)

	case ast.StmtBlockKind:
		return ev.execBlock(id)

	case ast.StmtIfElseKind:
		return ev.execIfElse(id)

	case ast.StmtWhileKind:
		return ev.execWhile(id)

	default:
		return ev.fail(diag.RtUnexpectedValue, ev.b.Stmts.Span(id), "unhandled statement kind")
	}
}

func (ev *Evaluator) execPrint(id ast.StmtID) error {
	data, _ := ev.b.Stmts.Print(id)
	v, err := ev.derefExpression(data.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(ev.stdout, v.String())
	return nil
}

func (ev *Evaluator) execDeclaration(id ast.StmtID) error {
	data, _ := ev.b.Stmts.Declaration(id)
	v := value.NilValue()
	if data.HasValue {
		vv, err := ev.derefExpression(data.Value)
		if err != nil {
			return err
		}
		v = vv
	}
	name := ev.b.Interner.MustLookup(data.Name)
	ev.rt.Insert(name, v)
	return nil
}

// execBlock enters a new scope, runs every child statement in its
// contiguous [Start, Start+Count) range in order, and leaves the scope
// unconditionally — even when a child aborts with an error — so its
// slots are always reclaimed.
func (ev *Evaluator) execBlock(id ast.StmtID) error {
	data, _ := ev.b.Stmts.Block(id)

	var span *trace.Span
	if ev.tracer.Enabled() {
		span = trace.Begin(ev.tracer, trace.ScopeNode, "block", 0)
	}

	ev.rt.EnterBlock()
	defer func() {
		ev.rt.LeaveBlock()
		if span != nil {
			span.End("")
		}
	}()

	for i := uint32(0); i < data.Count; i++ {
		childID := ast.StmtID(uint32(data.Start) + i)
		if err := ev.execStmt(childID); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execIfElse(id ast.StmtID) error {
	data, _ := ev.b.Stmts.IfElse(id)

	cond, err := ev.derefExpression(data.Condition)
	if err != nil {
		return err
	}
	if cond.Kind != value.Boolean {
		return ev.fail(diag.RtUnexpectedValue, ev.b.Exprs.Span(data.Condition), "if condition must be a boolean")
	}

	if cond.Bool() {
		return ev.execStmt(data.IfBranch)
	}
	if data.HasElse {
		return ev.execStmt(data.ElseBranch)
	}
	return nil
}

func (ev *Evaluator) execWhile(id ast.StmtID) error {
	data, _ := ev.b.Stmts.While(id)

	for {
		cond, err := ev.derefExpression(data.Condition)
		if err != nil {
			return err
		}
		if cond.Kind != value.Boolean {
			return ev.fail(diag.RtUnexpectedValue, ev.b.Exprs.Span(data.Condition), "while condition must be a boolean")
		}
		if !cond.Bool() {
			return nil
		}
		if err := ev.execStmt(data.Body); err != nil {
			return err
		}
	}
}
