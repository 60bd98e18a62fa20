package scan

import (
	"fmt"
)

// ExpectationError reports that a reducer required specific input and found
// something else, for example a missing closing quote. It always carries the
// State at the point of failure so the driver can resume from there.
type ExpectationError struct {
	Message string // what was expected
	Lexeme  string // the text found instead; empty at end of input
	Offset  int    // position of Lexeme
	State   State  // snapshot at the point of failure
}

// expected builds an ExpectationError for the character under the cursor.
func expected(s State, format string, args ...interface{}) *ExpectationError {
	lexeme := ""
	if !s.AtEnd() {
		lexeme = string(s.Peek())
	}
	return &ExpectationError{
		Message: fmt.Sprintf(format, args...),
		Lexeme:  lexeme,
		Offset:  s.Cursor(),
		State:   s,
	}
}

func (e *ExpectationError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("offset %d: %s (at end of input)", e.Offset, e.Message)
	}
	return fmt.Sprintf("offset %d: %s (found %q)", e.Offset, e.Message, e.Lexeme)
}

// describe renders a character for error messages.
func describe(r rune) string {
	if r == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", r)
}

// StructuralError reports invalid arguments to the driver. It is returned
// before any scanning takes place.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "tokenary: " + e.Msg
}

// ProgressError reports a reducer that returned a match without consuming
// any input, which would otherwise stall the driver forever.
type ProgressError struct {
	Reducer int // index of the offending reducer
	Offset  int
}

func (e *ProgressError) Error() string {
	return fmt.Sprintf("tokenary: reducer %d matched at offset %d without consuming input", e.Reducer, e.Offset)
}

// RangeError reports an attempt to move the cursor past the end of the source.
type RangeError struct {
	Cursor int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tokenary: cannot advance cursor %d past end of %d character source", e.Cursor, e.Len)
}
