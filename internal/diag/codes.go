package diag

import "fmt"

// Code identifies the kind of a diagnostic, grouped by the phase that
// produced it.
type Code uint16

const (
	// UnknownCode is the zero value; no diagnostic should carry it.
	UnknownCode Code = 0

	// Lexical.
	LexUnknownToken Code = 1001

	// Syntactic.
	SynUnexpectedToken      Code = 2001
	SynTypeCouldNotBeParsed Code = 2002

	// Runtime.
	RtVarNotFound         Code = 3001
	RtInvalidAssign       Code = 3002
	RtOperationNotDefined Code = 3003
	RtUnexpectedValue     Code = 3004
	RtWrongNumberOfArgs   Code = 3005
)

var codeDescription = map[Code]string{
	UnknownCode:             "unknown error",
	LexUnknownToken:         "unknown token",
	SynUnexpectedToken:      "unexpected token",
	SynTypeCouldNotBeParsed: "numeric literal could not be parsed",
	RtVarNotFound:           "variable not found",
	RtInvalidAssign:         "invalid assignment target",
	RtOperationNotDefined:   "operation not defined for operand types",
	RtUnexpectedValue:       "unexpected value type",
	RtWrongNumberOfArgs:     "wrong number of arguments",
}

// ID returns the stable machine-readable identifier for the code, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RT%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description registered for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
