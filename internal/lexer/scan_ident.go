package lexer

import "loxwalk/internal/token"

// scanIdentOrKeyword extends over [A-Za-z0-9_] and resolves the resulting
// lexeme against the fixed keyword table; misses become Identifier.
func (lx *Lexer) scanIdentOrKeyword(start Mark) token.Token {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lexeme := lx.file.Content[sp.Start:sp.End]
	if k, ok := token.LookupKeyword(string(lexeme)); ok {
		return token.Token{Kind: k, Span: sp}
	}
	return token.Token{Kind: token.Ident, Span: sp}
}
