package eval

import (
	"fmt"

	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/source"
	"loxwalk/internal/value"
)

// derefExpression evaluates e and, if the result is an Addr, dereferences
// it through the runtime's memory. Every consumer that wants a usable
// value (an operand, a print target, a condition) goes through this.
func (ev *Evaluator) derefExpression(id ast.ExprID) (value.Value, error) {
	v, err := ev.expression(id)
	if err != nil {
		return value.Value{}, err
	}
	if v.Kind == value.Addr {
		return ev.rt.Load(v.AddrVal()), nil
	}
	return v, nil
}

// expression evaluates e without dereferencing: an Identifier yields its
// Addr, not its stored value. Only Assign's Lhs relies on this.
func (ev *Evaluator) expression(id ast.ExprID) (value.Value, error) {
	node := ev.b.Exprs.Get(id)
	sp := ev.b.Exprs.Span(id)

	switch node.Kind {
	case ast.ExprLiteral:
		return ev.literal(id)

	case ast.ExprIdentifier:
		data, _ := ev.b.Exprs.Identifier(id)
		name := ev.b.Interner.MustLookup(data.Name)
		if addr, ok := ev.rt.Address(name); ok {
			return value.AddrValue(addr), nil
		}
		// Natives live in a separate registry, not in the bump-allocated
		// environments: they have no address, only a callable value.
		if fn, ok := ev.rt.Native(name); ok {
			return value.FnValue(fn), nil
		}
		return value.Value{}, ev.fail(diag.RtVarNotFound, sp, "undefined variable \""+name+"\"")

	case ast.ExprAssign:
		return ev.assign(id, sp)

	case ast.ExprBinary:
		return ev.binary(id, sp)

	case ast.ExprUnary:
		return ev.unary(id, sp)

	case ast.ExprCall:
		return ev.call(id, sp)

	default:
		return value.Value{}, ev.fail(diag.RtUnexpectedValue, sp, "unhandled expression kind")
	}
}

func (ev *Evaluator) literal(id ast.ExprID) (value.Value, error) {
	lit, _ := ev.b.Exprs.Literal(id)
	switch lit.Kind {
	case ast.LitNatural:
		return value.NaturalValue(lit.Natural), nil
	case ast.LitDecimal:
		return value.DecimalValue(lit.Decimal), nil
	case ast.LitBoolean:
		return value.BooleanValue(lit.Boolean), nil
	case ast.LitNil:
		return value.NilValue(), nil
	case ast.LitString:
		return value.StringValue(ev.b.Interner.MustLookup(lit.Str)), nil
	default:
		return value.NilValue(), nil
	}
}

// assign evaluates Lhs without deref (it must resolve to an Addr), then
// stores the dereferenced Rhs through that address. Assignment to
// anything but a bare identifier is a runtime error, not a parse error:
// the parser accepts any expression as Lhs, per ast.AssignData's contract.
func (ev *Evaluator) assign(id ast.ExprID, sp source.Span) (value.Value, error) {
	data, _ := ev.b.Exprs.Assign(id)

	lhs, err := ev.expression(data.Lhs)
	if err != nil {
		return value.Value{}, err
	}
	if lhs.Kind != value.Addr {
		return value.Value{}, ev.fail(diag.RtInvalidAssign, sp, "left-hand side of assignment is not a variable")
	}

	rhs, err := ev.derefExpression(data.Rhs)
	if err != nil {
		return value.Value{}, err
	}
	ev.rt.Store(lhs.AddrVal(), rhs)
	return rhs, nil
}

func (ev *Evaluator) unary(id ast.ExprID, sp source.Span) (value.Value, error) {
	data, _ := ev.b.Exprs.Unary(id)
	operand, err := ev.derefExpression(data.Operand)
	if err != nil {
		return value.Value{}, err
	}

	var result value.Value
	var opErr error
	switch data.Op {
	case ast.UnNot:
		result, opErr = value.Not(operand)
	case ast.UnNegate:
		result, opErr = value.Negate(operand)
	}
	if opErr != nil {
		return value.Value{}, ev.fail(diag.RtOperationNotDefined, sp, opErr.Error())
	}
	return result, nil
}

func (ev *Evaluator) binary(id ast.ExprID, sp source.Span) (value.Value, error) {
	data, _ := ev.b.Exprs.Binary(id)

	lhs, err := ev.derefExpression(data.Lhs)
	if err != nil {
		return value.Value{}, err
	}

	// and/or short-circuit: the RHS is only evaluated once the LHS alone
	// cannot decide the result.
	if data.Op == ast.BinAnd {
		if lhs.Kind == value.Boolean && !lhs.Bool() {
			return lhs, nil
		}
		rhs, err := ev.derefExpression(data.Rhs)
		if err != nil {
			return value.Value{}, err
		}
		result, opErr := value.And(lhs, rhs)
		if opErr != nil {
			return value.Value{}, ev.fail(diag.RtOperationNotDefined, sp, opErr.Error())
		}
		return result, nil
	}
	if data.Op == ast.BinOr {
		if lhs.Kind == value.Boolean && lhs.Bool() {
			return lhs, nil
		}
		rhs, err := ev.derefExpression(data.Rhs)
		if err != nil {
			return value.Value{}, err
		}
		result, opErr := value.Or(lhs, rhs)
		if opErr != nil {
			return value.Value{}, ev.fail(diag.RtOperationNotDefined, sp, opErr.Error())
		}
		return result, nil
	}

	rhs, err := ev.derefExpression(data.Rhs)
	if err != nil {
		return value.Value{}, err
	}

	var result value.Value
	var opErr error
	switch data.Op {
	case ast.BinAdd:
		result, opErr = value.Add(lhs, rhs)
	case ast.BinSub:
		result, opErr = value.Sub(lhs, rhs)
	case ast.BinMul:
		result, opErr = value.Mul(lhs, rhs)
	case ast.BinDiv:
		result, opErr = value.Div(lhs, rhs)
	case ast.BinEqual:
		result, opErr = value.Equal(lhs, rhs)
	case ast.BinNotEqual:
		result, opErr = value.NotEqual(lhs, rhs)
	case ast.BinLess:
		result, opErr = value.Less(lhs, rhs)
	case ast.BinLessEqual:
		result, opErr = value.LessEqual(lhs, rhs)
	case ast.BinGreater:
		result, opErr = value.Greater(lhs, rhs)
	case ast.BinGreaterEqual:
		result, opErr = value.GreaterEqual(lhs, rhs)
	}
	if opErr != nil {
		// ErrDivisionByZero and ErrOperationNotDefined both surface under
		// RtOperationNotDefined; the taxonomy has no separate division code.
		return value.Value{}, ev.fail(diag.RtOperationNotDefined, sp, opErr.Error())
	}
	return result, nil
}

func (ev *Evaluator) call(id ast.ExprID, sp source.Span) (value.Value, error) {
	data, _ := ev.b.Exprs.Call(id)

	callee, err := ev.derefExpression(data.Callee)
	if err != nil {
		return value.Value{}, err
	}
	if callee.Kind != value.Fn {
		return value.Value{}, ev.fail(diag.RtUnexpectedValue, sp, "callee is not callable")
	}

	args := make([]value.Value, 0, len(data.Arguments))
	for _, argID := range data.Arguments {
		v, err := ev.derefExpression(argID)
		if err != nil {
			return value.Value{}, err
		}
		args = append(args, v)
	}

	fn := callee.FnVal()
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return value.Value{}, ev.fail(diag.RtWrongNumberOfArgs, sp,
			fmt.Sprintf("%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args)))
	}

	return ev.invokeNative(fn, args, sp)
}
