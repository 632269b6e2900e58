package compiler

import "fmt"

// Code identifies the category of a compilation failure.
type Code string

const (
	// Structural
	UnmatchedBlockEnd Code = "UnmatchedBlockEnd"
	UnclosedBlock     Code = "UnclosedBlock"

	// Grammar
	EmptyCondition        Code = "EmptyCondition"
	MalformedForLoop      Code = "MalformedForLoop"
	EmptyPrintExpression  Code = "EmptyPrintExpression"
	IncompleteDeclaration Code = "IncompleteDeclaration"
	MissingAssignment     Code = "MissingAssignment"
	MalformedBuiltinCall  Code = "MalformedBuiltinCall"

	// Arity
	ArityError Code = "ArityError"

	// Unknown
	UnknownCommand    Code = "UnknownCommand"
	UnknownFunction   Code = "UnknownFunction"
	UnknownType       Code = "UnknownType"
	UnknownRandomType Code = "UnknownRandomType"

	// Value
	InvalidBooleanLiteral Code = "InvalidBooleanLiteral"
	InvalidIdentifier     Code = "InvalidIdentifier"
)

// Error is the uniform diagnostic for any compilation failure. It carries the
// 1-based line number, the raw source text of the offending line, and a
// human-readable message. Errors propagate unchanged once constructed.
type Error struct {
	Line    int
	Text    string
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("compile error on line %d: '%s' -> %s", e.Line, e.Text, e.Message)
}

// errf builds an Error with no line attribution yet; the per-line boundary in
// the compile loop fills Line and Text in.
func errf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// at returns a copy of err attributed to the given source line, unless the
// error already carries a line number.
func (e *Error) at(line int, text string) *Error {
	if e.Line != 0 {
		return e
	}
	return &Error{Line: line, Text: text, Code: e.Code, Message: e.Message}
}
