// Package parser implements the recursive-descent parser: it turns a
// lexer's token stream into AST nodes inside an ast.Builder, with
// panic-mode recovery so a malformed program still yields the statements
// that did parse for downstream tooling to inspect. The returned Program
// carries no incompleteness flag; parse errors go only to Options.Reporter.
package parser

import (
	"loxwalk/internal/ast"
	"loxwalk/internal/diag"
	"loxwalk/internal/lexer"
	"loxwalk/internal/source"
	"loxwalk/internal/token"
	"loxwalk/internal/trace"
)

// Options configures a parse run.
type Options struct {
	Reporter diag.Reporter
	Tracer   trace.Tracer
}

// Program is the result of parsing one file: the ordered list of
// top-level statement ids, against the shared ast.Builder's arenas.
type Program struct {
	File  source.FileID
	Stmts []ast.StmtID
}

// Parser holds the state for parsing a single file: the token source, the
// arena builder statements/expressions are allocated into, and the
// diagnostic sink errors are reported to.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	b        *ast.Builder
	cur      token.Token
	opts     Options
	tracer   trace.Tracer
}

// ParseFile parses file's contents into b's arenas, reporting errors via
// opts.Reporter. Returns the top-level statement sequence.
func ParseFile(file *source.File, b *ast.Builder, opts Options) *Program {
	p := newParser(file, b, opts)

	var span *trace.Span
	if p.tracer.Enabled() {
		span = trace.Begin(p.tracer, trace.ScopePass, "parse", 0)
	}

	stmts := p.parseProgram()

	if span != nil {
		span.End("")
	}

	return &Program{File: file.ID, Stmts: stmts}
}

func newParser(file *source.File, b *ast.Builder, opts Options) *Parser {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	p := &Parser{
		file:   file,
		lx:     lexer.New(file),
		b:      b,
		opts:   opts,
		tracer: tracer,
	}
	p.cur = p.fetch()
	return p
}

// fetch reads the next token, transparently skipping any run of Comment
// tokens so every other production never has to.
func (p *Parser) fetch() token.Token {
	for {
		tok := p.lx.Next()
		if tok.Kind != token.Comment {
			return tok
		}
	}
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.cur
	p.cur = p.fetch()
	return tok
}

// match consumes the current token and reports true if it has kind k.
func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind k; otherwise reports
// code/msg at the current token's span and returns ok=false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.reportErr(code, p.cur.Span, msg)
	return token.Token{}, false
}

func (p *Parser) reportErr(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(p.opts.Reporter, code, sp, msg)
}

func (p *Parser) lexeme(sp source.Span) string {
	return string(p.file.Content[sp.Start:sp.End])
}

// synchronize implements panic-mode recovery: discard tokens until Eof or
// a consumed ';', then resume parsing statements.
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

// expectIdent consumes an Ident token and interns its text.
func (p *Parser) expectIdent() (source.StringID, bool) {
	if !p.at(token.Ident) {
		p.reportErr(diag.SynUnexpectedToken, p.cur.Span, "expected identifier")
		return source.NoStringID, false
	}
	tok := p.advance()
	return p.b.Intern(p.lexeme(tok.Span)), true
}

// parseProgram parses the whole top-level statement sequence, recovering
// from each failed statement via panic mode so later statements still
// have a chance to parse.
func (p *Parser) parseProgram() []ast.StmtID {
	var stmts []ast.StmtID
	for !p.at(token.EOF) {
		id, ok := p.parseDecl()
		if ok {
			stmts = append(stmts, id)
		} else {
			p.synchronize()
		}
	}
	return stmts
}
