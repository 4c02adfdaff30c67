package lexer_test

import (
	"loxwalk/internal/lexer"
	"loxwalk/internal/source"
	"loxwalk/internal/token"
	"testing"
)

func makeLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", []byte(input))
	return lexer.New(fs.Get(fileID))
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	return kinds
}

func expectKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	got := collectKinds(makeLexer(input))
	if len(got) > 0 && got[len(got)-1] == token.EOF {
		got = got[:len(got)-1]
	}
	if len(got) != len(want) {
		t.Fatalf("input %q: expected %v, got %v", input, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("input %q: token %d: expected %v, got %v", input, i, want[i], got[i])
		}
	}
}

func TestIdentifiers(t *testing.T) {
	for _, in := range []string{"foo", "_bar", "__test", "x123", "camelCase"} {
		tok := makeLexer(in).Next()
		if tok.Kind != token.Ident {
			t.Errorf("%q: expected Ident, got %v", in, tok.Kind)
		}
	}
}

func TestKeywords(t *testing.T) {
	tests := map[string]token.Kind{
		"and": token.KwAnd, "class": token.KwClass, "else": token.KwElse,
		"false": token.KwFalse, "for": token.KwFor, "fun": token.KwFun,
		"if": token.KwIf, "nil": token.KwNil, "or": token.KwOr,
		"print": token.KwPrint, "return": token.KwReturn, "super": token.KwSuper,
		"this": token.KwThis, "true": token.KwTrue, "var": token.KwVar,
		"while": token.KwWhile,
	}
	for in, want := range tests {
		tok := makeLexer(in).Next()
		if tok.Kind != want {
			t.Errorf("%q: expected %v, got %v", in, want, tok.Kind)
		}
	}
}

func TestKeywordsCaseSensitive(t *testing.T) {
	for _, in := range []string{"And", "AND", "Nil", "While1"} {
		tok := makeLexer(in).Next()
		if tok.Kind != token.Ident {
			t.Errorf("%q: expected Ident, got %v", in, tok.Kind)
		}
	}
}

func TestIntegers(t *testing.T) {
	for _, in := range []string{"0", "7", "123", "456789"} {
		tok := makeLexer(in).Next()
		if tok.Kind != token.IntegerLit {
			t.Errorf("%q: expected IntegerLit, got %v", in, tok.Kind)
		}
	}
}

func TestDecimals(t *testing.T) {
	for _, in := range []string{"1.0", "3.14", "0.5", "123.456"} {
		tok := makeLexer(in).Next()
		if tok.Kind != token.DecimalLit {
			t.Errorf("%q: expected DecimalLit, got %v", in, tok.Kind)
		}
	}
}

// A dot with no following digit rolls back: the number ends before the
// dot, which is re-scanned as its own Dot token.
func TestTrailingDotIsNotFractional(t *testing.T) {
	expectKinds(t, "1.", []token.Kind{token.IntegerLit, token.Dot})
	expectKinds(t, "1..2", []token.Kind{token.IntegerLit, token.Dot, token.Dot, token.IntegerLit})
}

func TestNumberDotMethodCall(t *testing.T) {
	// "1.length" is Integer, Dot, Ident -- not a malformed decimal.
	expectKinds(t, "1.length", []token.Kind{token.IntegerLit, token.Dot, token.Ident})
}

func TestStrings(t *testing.T) {
	tok := makeLexer(`"hello world"`).Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tok.Kind)
	}
}

func TestUnterminatedString(t *testing.T) {
	tok := makeLexer(`"hello`).Next()
	if tok.Kind != token.Unknown {
		t.Errorf("expected Unknown for unterminated string, got %v", tok.Kind)
	}
}

func TestLineComment(t *testing.T) {
	expectKinds(t, "// a comment\nvar", []token.Kind{token.Comment, token.KwVar})
}

func TestLineCommentAtEOF(t *testing.T) {
	expectKinds(t, "var // trailing", []token.Kind{token.KwVar, token.Comment})
}

func TestOperatorsSingle(t *testing.T) {
	tests := map[string]token.Kind{
		"(": token.LParen, ")": token.RParen, "{": token.LBrace, "}": token.RBrace,
		",": token.Comma, ".": token.Dot, "-": token.Minus, "+": token.Plus,
		";": token.Semicolon, "/": token.Slash, "*": token.Star, "!": token.Bang,
		"=": token.Equal, "<": token.Less, ">": token.Greater,
	}
	for in, want := range tests {
		tok := makeLexer(in).Next()
		if tok.Kind != want {
			t.Errorf("%q: expected %v, got %v", in, want, tok.Kind)
		}
	}
}

func TestOperatorsDouble(t *testing.T) {
	tests := map[string]token.Kind{
		"!=": token.BangEqual, "==": token.EqualEqual,
		"<=": token.LessEqual, ">=": token.GreaterEqual,
	}
	for in, want := range tests {
		tok := makeLexer(in).Next()
		if tok.Kind != want {
			t.Errorf("%q: expected %v, got %v", in, want, tok.Kind)
		}
	}
}

func TestUnknownCharacter(t *testing.T) {
	for _, in := range []string{"#", "$", "@"} {
		tok := makeLexer(in).Next()
		if tok.Kind != token.Unknown {
			t.Errorf("%q: expected Unknown, got %v", in, tok.Kind)
		}
	}
}

func TestWhitespaceAndNewlinesSkipped(t *testing.T) {
	expectKinds(t, "  \t\n\n var  ", []token.Kind{token.KwVar})
}

func TestEOFIdempotent(t *testing.T) {
	lx := makeLexer("x")
	if lx.Next().Kind != token.Ident {
		t.Fatal("expected Ident")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("expected EOF")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("expected EOF again")
	}
}

func TestEmptyInput(t *testing.T) {
	if makeLexer("").Next().Kind != token.EOF {
		t.Error("expected EOF for empty input")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := makeLexer("a b")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Fatal("Peek should be idempotent without consuming")
	}
	n1 := lx.Next()
	if n1.Kind != p1.Kind || n1.Span != p1.Span {
		t.Fatal("Next should return the peeked token")
	}
	n2 := lx.Next()
	if n2.Kind != token.Ident {
		t.Errorf("expected second Ident, got %v", n2.Kind)
	}
}

func TestPush(t *testing.T) {
	lx := makeLexer("a b")
	first := lx.Next()
	lx.Push(first)
	again := lx.Next()
	if again.Kind != first.Kind || again.Span != first.Span {
		t.Fatal("Push should replay the pushed token")
	}
}

func TestSimpleDeclaration(t *testing.T) {
	expectKinds(t, "var x = 1 + 2;", []token.Kind{
		token.KwVar, token.Ident, token.Equal, token.IntegerLit,
		token.Plus, token.IntegerLit, token.Semicolon,
	})
}

func TestIfElseStatement(t *testing.T) {
	input := `if (x < 10) { print x; } else { print 0; }`
	expectKinds(t, input, []token.Kind{
		token.KwIf, token.LParen, token.Ident, token.Less, token.IntegerLit, token.RParen,
		token.LBrace, token.KwPrint, token.Ident, token.Semicolon, token.RBrace,
		token.KwElse, token.LBrace, token.KwPrint, token.IntegerLit, token.Semicolon, token.RBrace,
	})
}
