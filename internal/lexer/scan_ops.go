package lexer

import "loxwalk/internal/token"

// scanOperatorOrPunct handles single-byte punctuation and the four
// two-byte comparison operators (!=, ==, <=, >=); each of !, =, <, > falls
// back to its one-byte form when not followed by '='.
func (lx *Lexer) scanOperatorOrPunct(start Mark) token.Token {
	ch := lx.cursor.Bump()

	switch ch {
	case '!':
		if lx.cursor.Eat('=') {
			return lx.emit(token.BangEqual, start)
		}
		return lx.emit(token.Bang, start)
	case '=':
		if lx.cursor.Eat('=') {
			return lx.emit(token.EqualEqual, start)
		}
		return lx.emit(token.Equal, start)
	case '<':
		if lx.cursor.Eat('=') {
			return lx.emit(token.LessEqual, start)
		}
		return lx.emit(token.Less, start)
	case '>':
		if lx.cursor.Eat('=') {
			return lx.emit(token.GreaterEqual, start)
		}
		return lx.emit(token.Greater, start)
	case '(':
		return lx.emit(token.LParen, start)
	case ')':
		return lx.emit(token.RParen, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case ',':
		return lx.emit(token.Comma, start)
	case '.':
		return lx.emit(token.Dot, start)
	case '-':
		return lx.emit(token.Minus, start)
	case '+':
		return lx.emit(token.Plus, start)
	case ';':
		return lx.emit(token.Semicolon, start)
	case '/':
		return lx.emit(token.Slash, start)
	case '*':
		return lx.emit(token.Star, start)
	default:
		return lx.emit(token.Unknown, start)
	}
}
