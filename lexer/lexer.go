package lexer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Lexer tokenizes minic source read from a Source.
type Lexer struct {
	src    *Source
	closer io.Closer
	peeked *Token
	err    error // sticky: io.EOF or the first *LexError
}

// NewLexer creates a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{src: NewSource(r)}
}

// Open creates a Lexer over the file at path. The caller must Close it.
func Open(path string) (*Lexer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Cause: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &FileError{Path: path, Cause: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &FileError{Path: path, Cause: errors.New("is a directory")}
	}
	l := NewLexer(f)
	l.closer = f
	return l, nil
}

// Close releases the underlying file, if the Lexer owns one.
func (l *Lexer) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Tokenize drains r and returns every token in source order.
func Tokenize(r io.Reader) ([]Token, error) {
	l := NewLexer(r)
	var tokens []Token
	for {
		tok, err := l.Scan()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.Scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Scan returns the next token. At the end of input it returns io.EOF; on a
// lexical violation it returns a *LexError. Both are sticky: every later
// call returns the same error.
func (l *Lexer) Scan() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	if l.err != nil {
		return Token{}, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	return tok, nil
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.src.Peek()) {
		l.src.Advance()
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	pos := l.src.Pos()
	ch := l.src.Peek()

	switch {
	case ch == EOF:
		if err := l.src.Err(); err != nil {
			return Token{}, fmt.Errorf("reading source: %w", err)
		}
		return Token{}, io.EOF
	case isIdentStart(ch):
		return l.scanIdentifier(), nil
	case isDigit(ch):
		return l.scanNumber()
	case ch == '\'':
		return l.scanChar()
	case ch == '"':
		return l.scanString()
	}

	// Single-character tokens
	if kind, ok := singles[ch]; ok {
		l.src.Advance()
		return Token{Kind: kind, Pos: pos}, nil
	}

	// One or two characters, decided by the character after the first.
	l.src.Advance()
	next := l.src.Peek()
	switch ch {
	case '-':
		return l.pick(pos, next == '>', TokenArrow, TokenMinus), nil
	case '/':
		if next == '/' {
			return l.scanComment(pos), nil
		}
		return Token{Kind: TokenDivide, Pos: pos}, nil
	case '=':
		return l.pick(pos, next == '=', TokenEQ, TokenAssign), nil
	case '<':
		return l.pick(pos, next == '=', TokenLE, TokenLT), nil
	case '>':
		return l.pick(pos, next == '=', TokenGE, TokenGT), nil
	case '!':
		return l.pick(pos, next == '=', TokenNEQ, TokenNot), nil
	case '&':
		return l.pick(pos, next == '&', TokenAnd, TokenBitAnd), nil
	case '|':
		return l.pick(pos, next == '|', TokenOr, TokenBitOr), nil
	}

	if ch >= 0x80 {
		return Token{}, lexErrorf(pos, "unexpected byte %#02x", ch)
	}
	return Token{}, lexErrorf(pos, "unexpected character %q", ch)
}

// errorf reports a lexical error at the reader's position, unless the
// lookahead is EOF because a read failed, in which case the read error wins.
func (l *Lexer) errorf(format string, args ...any) error {
	if l.src.Peek() == EOF {
		if err := l.src.Err(); err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
	}
	return lexErrorf(l.src.Pos(), format, args...)
}

// pick returns the two-character kind, consuming its second character, when
// matched is true and the one-character kind otherwise.
func (l *Lexer) pick(pos Position, matched bool, double, single TokenKind) Token {
	if matched {
		l.src.Advance()
		return Token{Kind: double, Pos: pos}
	}
	return Token{Kind: single, Pos: pos}
}

var singles = map[rune]TokenKind{
	'+': TokenAdd,
	'*': TokenAster,
	'%': TokenMod,
	'~': TokenBitNot,
	'.': TokenDot,
	'(': TokenLParen,
	')': TokenRParen,
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	',': TokenComma,
	';': TokenSemicolon,
	'@': TokenAt,
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.src.Pos()

	var sb strings.Builder
	for isIdentPart(l.src.Peek()) {
		sb.WriteRune(l.src.Peek())
		l.src.Advance()
	}

	lexeme := sb.String()
	if kind, ok := keywords[lexeme]; ok {
		return Token{Kind: kind, Pos: pos}
	}
	return Token{Kind: TokenIdentifier, Pos: pos, Text: lexeme}
}

func (l *Lexer) scanNumber() (Token, error) {
	pos := l.src.Pos()

	var sb strings.Builder
	l.digits(&sb)

	if l.src.Peek() != '.' {
		n, err := strconv.ParseInt(sb.String(), 10, 64)
		if err != nil {
			return Token{}, l.errorf("integer literal %s out of range", sb.String())
		}
		return Token{Kind: TokenInt, Pos: pos, Int: n}, nil
	}

	sb.WriteByte('.')
	l.src.Advance() // consume '.'
	if !isDigit(l.src.Peek()) {
		return Token{}, l.errorf("floating point numbers must be of the form x.y")
	}
	l.digits(&sb)

	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return Token{}, l.errorf("float literal %s out of range", sb.String())
	}
	return Token{Kind: TokenFloat, Pos: pos, Float: f}, nil
}

func (l *Lexer) digits(sb *strings.Builder) {
	for isDigit(l.src.Peek()) {
		sb.WriteRune(l.src.Peek())
		l.src.Advance()
	}
}

func (l *Lexer) scanChar() (Token, error) {
	pos := l.src.Pos()
	l.src.Advance() // consume opening '

	var code int64
	switch ch := l.src.Peek(); ch {
	case '\'':
		return Token{}, l.errorf("character literals cannot be empty")
	case EOF:
		return Token{}, l.errorf("unterminated character literal")
	case '\\':
		l.src.Advance()
		esc, ok := escapes[l.src.Peek()]
		if !ok {
			return Token{}, l.errorf(`character following \ is not a recognized escape`)
		}
		code = esc
	default:
		code = int64(ch)
	}

	l.src.Advance()
	if l.src.Peek() != '\'' {
		return Token{}, l.errorf(`character literal must contain exactly one character (e.g. 'a' or '\n')`)
	}
	l.src.Advance() // consume closing '

	return Token{Kind: TokenChar, Pos: pos, Int: code}, nil
}

func (l *Lexer) scanString() (Token, error) {
	pos := l.src.Pos()
	l.src.Advance() // consume opening "

	var sb strings.Builder
	for {
		ch := l.src.Peek()
		switch ch {
		case EOF:
			return Token{}, l.errorf("unterminated string literal")
		case '\n':
			return Token{}, l.errorf("string literals must not span lines")
		case '"':
			l.src.Advance()
			return Token{Kind: TokenString, Pos: pos, Text: sb.String()}, nil
		case '\\':
			// Escapes are kept verbatim; the backslash only stops the next
			// character from closing the literal.
			sb.WriteRune(ch)
			l.src.Advance()
			if next := l.src.Peek(); next != EOF && next != '\n' {
				sb.WriteRune(next)
				l.src.Advance()
			}
		default:
			sb.WriteRune(ch)
			l.src.Advance()
		}
	}
}

// scanComment reads a line comment. The first '/' is already consumed and
// the lookahead is the second one.
func (l *Lexer) scanComment(pos Position) Token {
	l.src.Advance() // consume second /

	var sb strings.Builder
	for ch := l.src.Peek(); ch != '\n' && ch != EOF; ch = l.src.Peek() {
		sb.WriteRune(ch)
		l.src.Advance()
	}
	return Token{Kind: TokenComment, Pos: pos, Text: sb.String()}
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
