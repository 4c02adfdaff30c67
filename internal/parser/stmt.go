package parser

import (
	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/source"
	"loxwalk/internal/token"
)

// parseDecl parses one statement:
//
//	stmt := var_stmt | print_stmt | block | if_stmt | while_stmt
//	      | for_stmt | expr_stmt
func (p *Parser) parseDecl() (ast.StmtID, bool) {
	switch p.cur.Kind {
	case token.KwVar:
		return p.parseVarStmt()
	case token.KwPrint:
		return p.parsePrintStmt()
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	default:
		return p.parseExprStmt()
	}
}

// varHeader is the parsed (but not yet arena-materialized) data of a
// var_stmt, used directly by parseVarStmt and deferred by parseForStmt's
// init clause.
type varHeader struct {
	Span     source.Span
	Name     source.StringID
	Value    ast.ExprID
	HasValue bool
}

func (p *Parser) parseVarHeader() (varHeader, bool) {
	varTok := p.advance() // 'var'
	name, ok := p.expectIdent()
	if !ok {
		return varHeader{}, false
	}
	value := ast.NoExprID
	hasValue := false
	if p.match(token.Equal) {
		v, ok := p.parseExpr()
		if !ok {
			return varHeader{}, false
		}
		value, hasValue = v, true
	}
	semi, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after variable declaration")
	if !ok {
		return varHeader{}, false
	}
	return varHeader{Span: varTok.Span.Cover(semi.Span), Name: name, Value: value, HasValue: hasValue}, true
}

func (p *Parser) parseVarStmt() (ast.StmtID, bool) {
	h, ok := p.parseVarHeader()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewDeclaration(h.Span, h.Name, h.Value, h.HasValue), true
}

// exprHeader mirrors varHeader for expr_stmt.
type exprHeader struct {
	Span source.Span
	Expr ast.ExprID
}

func (p *Parser) parseExprHeader() (exprHeader, bool) {
	e, ok := p.parseExpr()
	if !ok {
		return exprHeader{}, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after expression")
	if !ok {
		return exprHeader{}, false
	}
	return exprHeader{Span: p.b.Exprs.Span(e).Cover(semi.Span), Expr: e}, true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	h, ok := p.parseExprHeader()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewExprStmt(h.Span, h.Expr), true
}

func (p *Parser) parsePrintStmt() (ast.StmtID, bool) {
	tok := p.advance() // 'print'
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after print statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewPrint(tok.Span.Cover(semi.Span), expr), true
}

// parseBlock parses "{" decl* "}". A block's children are allocated as a
// contiguous StmtID run starting at the id NextID previews, so only
// successfully parsed statements may count toward it.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to start block")
	if !ok {
		return ast.NoStmtID, false
	}
	start := p.b.Stmts.NextID()
	var count uint32
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if _, ok := p.parseDecl(); ok {
			count++
		} else {
			p.synchronize()
		}
	}
	rbrace, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}' to close block")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewBlock(lbrace.Span.Cover(rbrace.Span), start, count), true
}

// parseIfStmt parses "if" expr block ("else" (if_stmt | block))?. Both
// branches must be literal blocks; an else-if chains via recursion.
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	tok := p.advance() // 'if'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	thenID, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := tok.Span.Cover(p.b.Stmts.Span(thenID))

	elseID := ast.NoStmtID
	hasElse := false
	if p.match(token.KwElse) {
		hasElse = true
		var id ast.StmtID
		if p.at(token.KwIf) {
			id, ok = p.parseIfStmt()
		} else {
			id, ok = p.parseBlock()
		}
		if !ok {
			return ast.NoStmtID, false
		}
		elseID = id
		span = span.Cover(p.b.Stmts.Span(elseID))
	}
	return p.b.Stmts.NewIfElse(span, cond, thenID, elseID, hasElse), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	tok := p.advance() // 'while'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	bodyID, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.b.Stmts.NewWhile(tok.Span.Cover(p.b.Stmts.Span(bodyID)), cond, bodyID), true
}

// parseForStmt desugars "for" "(" init ";" cond ";" step ")" block into
// while_stmt form: a missing cond becomes Boolean(true); a present step
// rewrites the body as Block([body, step]); a present init wraps the
// whole construct as Block([init, while_loop]).
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance() // 'for'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'"); !ok {
		return ast.NoStmtID, false
	}

	const (
		initNone = iota
		initVar
		initExpr
	)
	initKind := initNone
	var varH varHeader
	var exprH exprHeader
	switch {
	case p.match(token.Semicolon):
		// no init
	case p.at(token.KwVar):
		h, ok := p.parseVarHeader()
		if !ok {
			return ast.NoStmtID, false
		}
		initKind, varH = initVar, h
	default:
		h, ok := p.parseExprHeader()
		if !ok {
			return ast.NoStmtID, false
		}
		initKind, exprH = initExpr, h
	}

	var cond ast.ExprID
	if p.at(token.Semicolon) {
		cond = p.b.Exprs.NewBoolean(p.cur.Span, true)
	} else {
		c, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		cond = c
	}
	if _, ok := p.expect(token.Semicolon, diag.SynUnexpectedToken, "expected ';' after loop condition"); !ok {
		return ast.NoStmtID, false
	}

	hasStep := false
	var step ast.ExprID
	if !p.at(token.RParen) {
		s, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		step, hasStep = s, true
	}
	if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after for clauses"); !ok {
		return ast.NoStmtID, false
	}

	bodyID, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	loopBody := bodyID
	if hasStep {
		stepStmtID := p.b.Stmts.NewExprStmt(p.b.Exprs.Span(step), step)
		span := p.b.Stmts.Span(bodyID).Cover(p.b.Exprs.Span(step))
		loopBody = p.b.Stmts.NewBlock(span, bodyID, 2)
		_ = stepStmtID // allocated for its contiguous position, not referenced again
	}

	// The init statement is materialized here, immediately before the
	// while loop, so its StmtID lands right before whileID: that is what
	// lets the wrapper Block below address [init, while_loop] as one
	// contiguous range.
	hasInit := initKind != initNone
	var initID ast.StmtID
	var initSpan source.Span
	switch initKind {
	case initVar:
		initID = p.b.Stmts.NewDeclaration(varH.Span, varH.Name, varH.Value, varH.HasValue)
		initSpan = varH.Span
	case initExpr:
		initID = p.b.Stmts.NewExprStmt(exprH.Span, exprH.Expr)
		initSpan = exprH.Span
	}

	whileSpan := forTok.Span.Cover(p.b.Stmts.Span(bodyID))
	whileID := p.b.Stmts.NewWhile(whileSpan, cond, loopBody)

	if hasInit {
		return p.b.Stmts.NewBlock(initSpan.Cover(whileSpan), initID, 2), true
	}
	return whileID, true
}
