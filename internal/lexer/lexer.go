package lexer

import (
	"loxwalk/internal/source"
	"loxwalk/internal/token"
)

// Lexer converts source bytes into a stream of tokens. It never fails:
// malformed input produces Unknown tokens, which the parser surfaces as
// diagnostics. Next is idempotent once EOF is reached.
type Lexer struct {
	file   *source.File
	cursor Cursor
	line   uint32
	look   *token.Token
}

// New creates a Lexer for the given file.
func New(file *source.File) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), line: 1}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.next()
		lx.look = &tok
	}
	return *lx.look
}

// Push puts tok back as the next token returned by Peek/Next.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// Next returns the next token, consuming it. Returns an EOF token forever
// once the input is exhausted.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.next()
}

func (lx *Lexer) next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return lx.emit(token.EOF, lx.cursor.Mark())
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == '/':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '/' {
			return lx.scanLineComment(start)
		}
		return lx.scanOperatorOrPunct(start)

	case ch == '"':
		return lx.scanString(start)

	case isDec(ch):
		return lx.scanNumber(start)

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword(start)

	case ch == '!' || ch == '=' || ch == '<' || ch == '>':
		return lx.scanOperatorOrPunct(start)

	default:
		if isSinglePunct(ch) {
			return lx.scanOperatorOrPunct(start)
		}
		lx.cursor.Bump()
		return lx.emit(token.Unknown, start)
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			lx.line++
			lx.cursor.Bump()
			continue
		}
		if isSpace(b) {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

func (lx *Lexer) scanLineComment(start Mark) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\n' {
			lx.line++
			break
		}
	}
	return lx.emit(token.Comment, start)
}

func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}
}

func isSinglePunct(b byte) bool {
	switch b {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '/', '*':
		return true
	default:
		return false
	}
}
