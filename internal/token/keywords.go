package token

var keywordNames = map[Kind]string{
	KwAnd:    "and",
	KwClass:  "class",
	KwElse:   "else",
	KwFalse:  "false",
	KwFor:    "for",
	KwFun:    "fun",
	KwIf:     "if",
	KwNil:    "nil",
	KwOr:     "or",
	KwPrint:  "print",
	KwReturn: "return",
	KwSuper:  "super",
	KwThis:   "this",
	KwTrue:   "true",
	KwVar:    "var",
	KwWhile:  "while",
}

var keywords = map[string]Kind{
	"and":    KwAnd,
	"class":  KwClass,
	"else":   KwElse,
	"false":  KwFalse,
	"for":    KwFor,
	"fun":    KwFun,
	"if":     KwIf,
	"nil":    KwNil,
	"or":     KwOr,
	"print":  KwPrint,
	"return": KwReturn,
	"super":  KwSuper,
	"this":   KwThis,
	"true":   KwTrue,
	"var":    KwVar,
	"while":  KwWhile,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive — only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
