package parser

import "fmt"

// EmptyCommandError reports a blank command line.
type EmptyCommandError struct{}

func (e *EmptyCommandError) Error() string {
	return "command cannot be empty"
}

// SyntaxError reports command text that does not match the grammar.
// Line and Column are 1-based and point at the offending token.
type SyntaxError struct {
	Line    int
	Column  int
	Token   string
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d:%d near %q: %s",
		e.Line, e.Column, e.Token, e.Message)
}

// SemanticError reports a well-formed command with locally invalid
// data: non-positive hours, unparseable dates, empty quoted names or
// unknown priorities.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return e.Message
}

func semanticf(format string, args ...any) *SemanticError {
	return &SemanticError{Message: fmt.Sprintf(format, args...)}
}
