package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates a lexically malformed token (unknown byte,
	// unterminated string).
	Unknown Kind = iota
	// EOF marks the end of the source input. Repeats idempotently once reached.
	EOF
	// Comment is a line comment ("// ..."), transparent to the parser.
	Comment

	// Ident represents an identifier token.
	Ident

	// Keywords.
	KwAnd
	KwClass
	KwElse
	KwFalse
	KwFor
	KwFun
	KwIf
	KwNil
	KwOr
	KwPrint
	KwReturn
	KwSuper
	KwThis
	KwTrue
	KwVar
	KwWhile

	// Literals.
	IntegerLit
	DecimalLit
	StringLit

	// Single-character punctuation.
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Dot       // .
	Minus     // -
	Plus      // +
	Semicolon // ;
	Slash     // /
	Star      // *
	Bang      // !
	Equal     // =
	Less      // <
	Greater   // >

	// Two-character punctuation.
	BangEqual    // !=
	EqualEqual   // ==
	LessEqual    // <=
	GreaterEqual // >=
)

// IsLiteral reports whether the token is a numeric or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntegerLit, DecimalLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (k Kind) IsKeyword() bool {
	_, ok := keywordNames[k]
	return ok
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

var kindNames = map[Kind]string{
	Unknown:      "UNKNOWN",
	EOF:          "EOF",
	Comment:      "COMMENT",
	Ident:        "IDENT",
	KwAnd:        "and",
	KwClass:      "class",
	KwElse:       "else",
	KwFalse:      "false",
	KwFor:        "for",
	KwFun:        "fun",
	KwIf:         "if",
	KwNil:        "nil",
	KwOr:         "or",
	KwPrint:      "print",
	KwReturn:     "return",
	KwSuper:      "super",
	KwThis:       "this",
	KwTrue:       "true",
	KwVar:        "var",
	KwWhile:      "while",
	IntegerLit:   "INTEGER",
	DecimalLit:   "DECIMAL",
	StringLit:    "STRING",
	LParen:       "(",
	RParen:       ")",
	LBrace:       "{",
	RBrace:       "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	Equal:        "=",
	Less:         "<",
	Greater:      ">",
	BangEqual:    "!=",
	EqualEqual:   "==",
	LessEqual:    "<=",
	GreaterEqual: ">=",
}
