package lexer

import "fmt"

// LexError reports a lexical rule violation. Pos is the reader position at
// the moment the violation was detected.
type LexError struct {
	Message string
	Pos     Position
}

func (e *LexError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

// Diagnostic renders the error the way the minic driver prints it: a header
// line with the position followed by the message.
func (e *LexError) Diagnostic() string {
	return fmt.Sprintf("Lexical error - line: %d  col: %d\n%s", e.Pos.Line, e.Pos.Column, e.Message)
}

// FileError represents a failure to open a source file for reading.
type FileError struct {
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }

func lexErrorf(pos Position, format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
