package lexer

import (
	"bufio"
	"errors"
	"io"
)

// EOF is the lookahead value once the input is exhausted.
const EOF rune = -1

// Source presents an input stream one character at a time with a single
// character of lookahead. Row and column always describe the lookahead.
//
// Reading is sequential; a Source never seeks or re-reads.
type Source struct {
	r    *bufio.Reader
	ch   rune
	line int
	col  int
	off  int
	err  error
}

// NewSource creates a Source over r and loads the first character.
//
// The cursor starts as if a newline had just been read, so the first
// character of the input sits at line 1, column 1.
func NewSource(r io.Reader) *Source {
	s := &Source{r: bufio.NewReader(r), line: 1, col: 0, off: -1}
	s.Advance()
	return s
}

// Peek returns the lookahead character without consuming it, or EOF.
func (s *Source) Peek() rune {
	return s.ch
}

// Advance reads the next character into the lookahead. A newline belongs
// to the line it ends; the line count moves on when the reader steps past it.
func (s *Source) Advance() {
	if s.ch == EOF {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
	b, err := s.r.ReadByte()
	s.off++
	s.col++
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.ch = EOF
		return
	}
	s.ch = rune(b)
}

// Pos returns the position of the lookahead character.
func (s *Source) Pos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.off}
}

// Err returns the first non-EOF read error, if any.
func (s *Source) Err() error {
	return s.err
}
