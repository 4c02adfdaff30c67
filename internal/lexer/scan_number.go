package lexer

import "loxwalk/internal/token"

// scanNumber implements the 3-state number automaton: S0 integer digits;
// seeing '.' moves to S1 (dot consumed, no fractional digit yet); a digit
// from S1 moves to S2 (decimal). S0 terminates as Integer. S1 terminates
// by rolling the end back to before the dot, so the dot is re-scanned as
// its own Dot token on the next call. S2 terminates as Decimal.
func (lx *Lexer) scanNumber(start Mark) token.Token {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() != '.' {
		return lx.emit(token.IntegerLit, start)
	}

	dotMark := lx.cursor.Mark()
	lx.cursor.Bump() // consume '.', tentatively entering S1

	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Rewind(dotMark)
		return lx.emit(token.IntegerLit, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.DecimalLit, start)
}
