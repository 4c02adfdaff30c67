package value

import "errors"

// ErrOperationNotDefined is returned for operand-type combinations the
// coercion ladder does not cover.
var ErrOperationNotDefined = errors.New("operation not defined for operand types")

// ErrDivisionByZero is returned for integer division by zero;
// Decimal division follows IEEE-754 and never errors.
var ErrDivisionByZero = errors.New("division by zero")

// common applies the numeric coercion ladder to a pair of operands,
// returning the pair widened to a shared numeric Kind. ok is false when
// no rule in the ladder applies (including when either side isn't
// numeric).
func common(a, b Value) (Value, Value, bool) {
	if a.Kind == b.Kind && (a.Kind == Natural || a.Kind == Signed || a.Kind == Decimal) {
		return a, b, true
	}
	switch {
	case a.Kind == Signed && b.Kind == Natural:
		return a, SignedValue(int64(b.natural)), true
	case a.Kind == Natural && b.Kind == Signed:
		return SignedValue(int64(a.natural)), b, true
	case a.Kind == Decimal && (b.Kind == Natural || b.Kind == Signed):
		return a, DecimalValue(toFloat(b)), true
	case (a.Kind == Natural || a.Kind == Signed) && b.Kind == Decimal:
		return DecimalValue(toFloat(a)), b, true
	default:
		return Value{}, Value{}, false
	}
}

type ok = bool

func toFloat(v Value) float64 {
	switch v.Kind {
	case Natural:
		return float64(v.natural)
	case Signed:
		return float64(v.signed)
	case Decimal:
		return v.decimal
	default:
		return 0
	}
}

// Add, Sub, Mul wrap on integer types; arithmetic with a Nil operand
// yields Nil.
func Add(a, b Value) (Value, error) { return arith(a, b, opAdd) }
func Sub(a, b Value) (Value, error) { return arith(a, b, opSub) }
func Mul(a, b Value) (Value, error) { return arith(a, b, opMul) }

// Div is truncating on Natural, wrapping on Signed, IEEE-754 on Decimal.
func Div(a, b Value) (Value, error) {
	if a.Kind == Nil || b.Kind == Nil {
		return NilValue(), nil
	}
	x, y, okc := common(a, b)
	if !okc {
		return Value{}, ErrOperationNotDefined
	}
	switch x.Kind {
	case Natural:
		if y.natural == 0 {
			return Value{}, ErrDivisionByZero
		}
		return NaturalValue(x.natural / y.natural), nil
	case Signed:
		if y.signed == 0 {
			return Value{}, ErrDivisionByZero
		}
		return SignedValue(x.signed / y.signed), nil
	case Decimal:
		return DecimalValue(x.decimal / y.decimal), nil
	default:
		return Value{}, ErrOperationNotDefined
	}
}

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
)

func arith(a, b Value, op arithOp) (Value, error) {
	if a.Kind == Nil || b.Kind == Nil {
		return NilValue(), nil
	}
	x, y, okc := common(a, b)
	if !okc {
		return Value{}, ErrOperationNotDefined
	}
	switch x.Kind {
	case Natural:
		switch op {
		case opAdd:
			return NaturalValue(x.natural + y.natural), nil
		case opSub:
			return NaturalValue(x.natural - y.natural), nil
		default:
			return NaturalValue(x.natural * y.natural), nil
		}
	case Signed:
		switch op {
		case opAdd:
			return SignedValue(x.signed + y.signed), nil
		case opSub:
			return SignedValue(x.signed - y.signed), nil
		default:
			return SignedValue(x.signed * y.signed), nil
		}
	case Decimal:
		switch op {
		case opAdd:
			return DecimalValue(x.decimal + y.decimal), nil
		case opSub:
			return DecimalValue(x.decimal - y.decimal), nil
		default:
			return DecimalValue(x.decimal * y.decimal), nil
		}
	default:
		return Value{}, ErrOperationNotDefined
	}
}

// Equal implements `==`. Nil compares unequal to everything including
// Nil. Booleans support only equality, not ordering.
func Equal(a, b Value) (Value, error) {
	if a.Kind == Nil || b.Kind == Nil {
		return BooleanValue(false), nil
	}
	if a.Kind == Boolean || b.Kind == Boolean {
		if a.Kind != Boolean || b.Kind != Boolean {
			return Value{}, ErrOperationNotDefined
		}
		return BooleanValue(a.boolean == b.boolean), nil
	}
	if a.Kind == String || b.Kind == String {
		if a.Kind != String || b.Kind != String {
			return Value{}, ErrOperationNotDefined
		}
		return BooleanValue(a.str == b.str), nil
	}
	x, y, okc := common(a, b)
	if !okc {
		return Value{}, ErrOperationNotDefined
	}
	switch x.Kind {
	case Natural:
		return BooleanValue(x.natural == y.natural), nil
	case Signed:
		return BooleanValue(x.signed == y.signed), nil
	case Decimal:
		return BooleanValue(x.decimal == y.decimal), nil
	default:
		return Value{}, ErrOperationNotDefined
	}
}

// NotEqual implements `!=` as the negation of Equal.
func NotEqual(a, b Value) (Value, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return Value{}, err
	}
	return BooleanValue(!eq.boolean), nil
}

type cmpOp uint8

const (
	cmpLess cmpOp = iota
	cmpLessEqual
	cmpGreater
	cmpGreaterEqual
)

func compare(a, b Value, op cmpOp) (Value, error) {
	if a.Kind == Nil || b.Kind == Nil {
		return NilValue(), nil
	}
	x, y, okc := common(a, b)
	if !okc {
		return Value{}, ErrOperationNotDefined
	}
	var less, equal bool
	switch x.Kind {
	case Natural:
		less, equal = x.natural < y.natural, x.natural == y.natural
	case Signed:
		less, equal = x.signed < y.signed, x.signed == y.signed
	case Decimal:
		less, equal = x.decimal < y.decimal, x.decimal == y.decimal
	default:
		return Value{}, ErrOperationNotDefined
	}
	switch op {
	case cmpLess:
		return BooleanValue(less), nil
	case cmpLessEqual:
		return BooleanValue(less || equal), nil
	case cmpGreater:
		return BooleanValue(!less && !equal), nil
	default:
		return BooleanValue(!less), nil
	}
}

func Less(a, b Value) (Value, error)         { return compare(a, b, cmpLess) }
func LessEqual(a, b Value) (Value, error)    { return compare(a, b, cmpLessEqual) }
func Greater(a, b Value) (Value, error)      { return compare(a, b, cmpGreater) }
func GreaterEqual(a, b Value) (Value, error) { return compare(a, b, cmpGreaterEqual) }

// And and Or operate on two booleans, pass Nil through, and error on
// anything else. Short-circuiting is the evaluator's responsibility: it
// only calls these once it has decided the RHS must be evaluated.
func And(a, b Value) (Value, error) { return logic(a, b, false) }
func Or(a, b Value) (Value, error)  { return logic(a, b, true) }

func logic(a, b Value, isOr bool) (Value, error) {
	if a.Kind == Nil || b.Kind == Nil {
		return NilValue(), nil
	}
	if a.Kind != Boolean || b.Kind != Boolean {
		return Value{}, ErrOperationNotDefined
	}
	if isOr {
		return BooleanValue(a.boolean || b.boolean), nil
	}
	return BooleanValue(a.boolean && b.boolean), nil
}

// Not negates a Boolean, passes Nil through, and errors otherwise.
func Not(v Value) (Value, error) {
	switch v.Kind {
	case Boolean:
		return BooleanValue(!v.boolean), nil
	case Nil:
		return NilValue(), nil
	default:
		return Value{}, ErrOperationNotDefined
	}
}

// Negate implements unary `-`. Natural and Signed wrap; Decimal negates;
// Nil passes through.
func Negate(v Value) (Value, error) {
	switch v.Kind {
	case Natural:
		return SignedValue(-int64(v.natural)), nil
	case Signed:
		return SignedValue(-v.signed), nil
	case Decimal:
		return DecimalValue(-v.decimal), nil
	case Nil:
		return NilValue(), nil
	default:
		return Value{}, ErrOperationNotDefined
	}
}
