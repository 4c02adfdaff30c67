package parser

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/token"
)

// Precedence ladder, loosest to tightest binding:
//
//	assignment -> logic_or -> logic_and -> equality -> comparison
//	    -> term -> factor -> unary -> call -> primary
var (
	factorOps     = map[token.Kind]ast.BinaryOp{token.Star: ast.BinMul, token.Slash: ast.BinDiv}
	termOps       = map[token.Kind]ast.BinaryOp{token.Plus: ast.BinAdd, token.Minus: ast.BinSub}
	comparisonOps = map[token.Kind]ast.BinaryOp{
		token.Less: ast.BinLess, token.LessEqual: ast.BinLessEqual,
		token.Greater: ast.BinGreater, token.GreaterEqual: ast.BinGreaterEqual,
	}
	equalityOps = map[token.Kind]ast.BinaryOp{token.EqualEqual: ast.BinEqual, token.BangEqual: ast.BinNotEqual}
	andOps      = map[token.Kind]ast.BinaryOp{token.KwAnd: ast.BinAnd}
	orOps       = map[token.Kind]ast.BinaryOp{token.KwOr: ast.BinOr}
)

func (p *Parser) parseExpr() (ast.ExprID, bool) { return p.parseAssignment() }

func (p *Parser) parseAssignment() (ast.ExprID, bool) {
	left, ok := p.parseLogicOr()
	if !ok {
		return ast.NoExprID, false
	}
	if !p.match(token.Equal) {
		return left, true
	}
	right, ok := p.parseAssignment()
	if !ok {
		return ast.NoExprID, false
	}
	span := p.b.Exprs.Span(left).Cover(p.b.Exprs.Span(right))
	return p.b.Exprs.NewAssign(span, left, right), true
}

func (p *Parser) parseLogicOr() (ast.ExprID, bool)  { return p.parseBinaryLevel(p.parseLogicAnd, orOps) }
func (p *Parser) parseLogicAnd() (ast.ExprID, bool) { return p.parseBinaryLevel(p.parseEquality, andOps) }
func (p *Parser) parseEquality() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseComparison, equalityOps)
}
func (p *Parser) parseComparison() (ast.ExprID, bool) {
	return p.parseBinaryLevel(p.parseTerm, comparisonOps)
}
func (p *Parser) parseTerm() (ast.ExprID, bool)   { return p.parseBinaryLevel(p.parseFactor, termOps) }
func (p *Parser) parseFactor() (ast.ExprID, bool) { return p.parseBinaryLevel(p.parseUnary, factorOps) }

// parseBinaryLevel implements one left-associative precedence level: parse
// a higher-precedence operand via next, then fold in a run of same-level
// binary operators found in ops.
func (p *Parser) parseBinaryLevel(next func() (ast.ExprID, bool), ops map[token.Kind]ast.BinaryOp) (ast.ExprID, bool) {
	left, ok := next()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		op, isOp := ops[p.cur.Kind]
		if !isOp {
			return left, true
		}
		p.advance()
		right, ok := next()
		if !ok {
			return ast.NoExprID, false
		}
		span := p.b.Exprs.Span(left).Cover(p.b.Exprs.Span(right))
		left = p.b.Exprs.NewBinary(span, op, left, right)
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	var op ast.UnaryOp
	switch p.cur.Kind {
	case token.Bang:
		op = ast.UnNot
	case token.Minus:
		op = ast.UnNegate
	default:
		return p.parseCall()
	}
	tok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}
	span := tok.Span.Cover(p.b.Exprs.Span(operand))
	return p.b.Exprs.NewUnary(span, op, operand), true
}

func (p *Parser) parseCall() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.LParen) {
		p.advance()
		var args []ast.ExprID
		if !p.at(token.RParen) {
			for {
				arg, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				args = append(args, arg)
				if !p.match(token.Comma) {
					break
				}
			}
		}
		rparen, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after arguments")
		if !ok {
			return ast.NoExprID, false
		}
		span := p.b.Exprs.Span(expr).Cover(rparen.Span)
		expr = p.b.Exprs.NewCall(span, expr, args)
	}
	return expr, true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.cur
	switch tok.Kind {
	case token.KwFalse:
		p.advance()
		return p.b.Exprs.NewBoolean(tok.Span, false), true

	case token.KwTrue:
		p.advance()
		return p.b.Exprs.NewBoolean(tok.Span, true), true

	case token.KwNil:
		p.advance()
		return p.b.Exprs.NewNil(tok.Span), true

	case token.IntegerLit:
		p.advance()
		n, err := strconv.ParseUint(p.lexeme(tok.Span), 10, 64)
		if err != nil {
			p.reportErr(diag.SynTypeCouldNotBeParsed, tok.Span, "integer literal out of range")
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewNatural(tok.Span, n), true

	case token.DecimalLit:
		p.advance()
		f, err := strconv.ParseFloat(p.lexeme(tok.Span), 64)
		if err != nil {
			p.reportErr(diag.SynTypeCouldNotBeParsed, tok.Span, "decimal literal could not be parsed")
			return ast.NoExprID, false
		}
		return p.b.Exprs.NewDecimal(tok.Span, f), true

	case token.StringLit:
		p.advance()
		raw := p.lexeme(tok.Span)
		inner := raw
		if len(raw) >= 2 {
			inner = raw[1 : len(raw)-1]
		}
		// NFC-normalize so two source files spelling the same text with
		// different combining-character forms intern to one StringID,
		// the same normalization internal/vm/intrinsic_string.go applies
		// to string values.
		inner = norm.NFC.String(inner)
		return p.b.Exprs.NewString(tok.Span, p.b.Intern(inner)), true

	case token.Ident:
		p.advance()
		return p.b.Exprs.NewIdentifier(tok.Span, p.b.Intern(p.lexeme(tok.Span))), true

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after expression"); !ok {
			return ast.NoExprID, false
		}
		return inner, true

	default:
		p.reportErr(diag.SynUnexpectedToken, tok.Span, "expected expression")
		return ast.NoExprID, false
	}
}
