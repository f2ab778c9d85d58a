package lexer

import "fmt"

// TokenKind identifies the type of a lexical token.
//
// The numeric values are part of the package contract and must not change:
// downstream tools may persist or compare them. 49 and 50 are unassigned.
type TokenKind int

const (
	// Primitive types
	TokenVoidType  TokenKind = 0 // void
	TokenIntType   TokenKind = 1 // int
	TokenCharType  TokenKind = 2 // char
	TokenFloatType TokenKind = 3 // float
	TokenAutoType  TokenKind = 4 // auto

	// Literals
	TokenInt   TokenKind = 5 // 123
	TokenChar  TokenKind = 6 // 'a'
	TokenFloat TokenKind = 7 // 1.5

	TokenIdentifier TokenKind = 8 // [A-Za-z_][A-Za-z0-9_]*

	// Declarations and statements
	TokenReturn   TokenKind = 9
	TokenSizeof   TokenKind = 10
	TokenStruct   TokenKind = 11
	TokenUnion    TokenKind = 12
	TokenConst    TokenKind = 13
	TokenStatic   TokenKind = 14
	TokenExtern   TokenKind = 15
	TokenIf       TokenKind = 16
	TokenElse     TokenKind = 17
	TokenWhile    TokenKind = 18
	TokenFor      TokenKind = 19
	TokenBreak    TokenKind = 20
	TokenContinue TokenKind = 21
	TokenIn       TokenKind = 22

	// Arithmetic
	TokenAdd    TokenKind = 23 // +
	TokenMinus  TokenKind = 24 // -
	TokenAster  TokenKind = 25 // *
	TokenDivide TokenKind = 26 // /
	TokenMod    TokenKind = 27 // %
	TokenAssign TokenKind = 28 // =

	// Comparison
	TokenLT  TokenKind = 29 // <
	TokenGT  TokenKind = 30 // >
	TokenLE  TokenKind = 31 // <=
	TokenGE  TokenKind = 32 // >=
	TokenEQ  TokenKind = 33 // ==
	TokenNEQ TokenKind = 34 // !=

	// Logical
	TokenAnd TokenKind = 35 // &&
	TokenOr  TokenKind = 36 // ||
	TokenNot TokenKind = 37 // !

	// Bitwise
	TokenBitAnd TokenKind = 38 // &
	TokenBitOr  TokenKind = 39 // |
	TokenBitNot TokenKind = 40 // ~

	// Member access
	TokenDot   TokenKind = 41 // .
	TokenArrow TokenKind = 42 // ->

	// Grouping
	TokenLParen   TokenKind = 43 // (
	TokenRParen   TokenKind = 44 // )
	TokenLBrace   TokenKind = 45 // {
	TokenRBrace   TokenKind = 46 // }
	TokenLBracket TokenKind = 47 // [
	TokenRBracket TokenKind = 48 // ]

	TokenComma     TokenKind = 51 // ,
	TokenSemicolon TokenKind = 52 // ;
	TokenAt        TokenKind = 53 // @
	TokenString    TokenKind = 54 // "..."
	TokenComment   TokenKind = 55 // // ...
)

var tokenNames = map[TokenKind]string{
	TokenVoidType:   "VOID_T",
	TokenIntType:    "INT_T",
	TokenCharType:   "CHAR_T",
	TokenFloatType:  "FLOAT_T",
	TokenAutoType:   "AUTO_T",
	TokenInt:        "INT",
	TokenChar:       "CHAR_LIT",
	TokenFloat:      "FLOAT",
	TokenIdentifier: "ID",
	TokenReturn:     "RET",
	TokenSizeof:     "SIZEOF",
	TokenStruct:     "STRUCT",
	TokenUnion:      "UNION",
	TokenConst:      "CONST",
	TokenStatic:     "STATIC",
	TokenExtern:     "EXTERN",
	TokenIf:         "IF",
	TokenElse:       "ELSE",
	TokenWhile:      "WHILE",
	TokenFor:        "FOR",
	TokenBreak:      "BREAK",
	TokenContinue:   "CONT",
	TokenIn:         "IN",
	TokenAdd:        "ADD",
	TokenMinus:      "MINUS",
	TokenAster:      "ASTER",
	TokenDivide:     "DIVID",
	TokenMod:        "MOD",
	TokenAssign:     "ASSIGN",
	TokenLT:         "LT",
	TokenGT:         "MT",
	TokenLE:         "LE",
	TokenGE:         "ME",
	TokenEQ:         "EQ",
	TokenNEQ:        "NEQ",
	TokenAnd:        "AND",
	TokenOr:         "OR",
	TokenNot:        "NOT",
	TokenBitAnd:     "BIT_AND",
	TokenBitOr:      "BIT_OR",
	TokenBitNot:     "BIT_NOT",
	TokenDot:        "DOT_ACC",
	TokenArrow:      "DASH_ACC",
	TokenLParen:     "LPARAN",
	TokenRParen:     "RPARAN",
	TokenLBrace:     "LCURL",
	TokenRBrace:     "RCURL",
	TokenLBracket:   "LBRACKET",
	TokenRBracket:   "RBRACKET",
	TokenComma:      "COL",
	TokenSemicolon:  "SEM_COL",
	TokenAt:         "AT",
	TokenString:     "STR",
	TokenComment:    "CMNT",
}

var tokenKinds = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(tokenNames))
	for kind, name := range tokenNames {
		m[name] = kind
	}
	return m
}()

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Valid reports whether k is one of the assigned token kinds.
func (k TokenKind) Valid() bool {
	_, ok := tokenNames[k]
	return ok
}

// ParseTokenKind returns the kind whose label is name, e.g. "DASH_ACC".
func ParseTokenKind(name string) (TokenKind, bool) {
	k, ok := tokenKinds[name]
	return k, ok
}

// Position tracks a source location.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit produced by the Lexer. Which value field is
// populated depends on Kind:
//
//	TokenIdentifier, TokenString, TokenComment  Text
//	TokenInt, TokenChar                         Int
//	TokenFloat                                  Float
//
// All other kinds carry no value.
type Token struct {
	Kind  TokenKind
	Pos   Position // position of the first character of the lexeme
	Text  string
	Int   int64
	Float float64
}

// HasValue reports whether tokens of this kind carry a value.
func (t Token) HasValue() bool {
	switch t.Kind {
	case TokenIdentifier, TokenString, TokenComment, TokenInt, TokenChar, TokenFloat:
		return true
	}
	return false
}

// Value returns the token's value as a string, int64 or float64, or nil for
// kinds that carry none.
func (t Token) Value() any {
	switch t.Kind {
	case TokenIdentifier, TokenString, TokenComment:
		return t.Text
	case TokenInt, TokenChar:
		return t.Int
	case TokenFloat:
		return t.Float
	}
	return nil
}

// String formats the token as "LABEL row col[ value]".
func (t Token) String() string {
	head := fmt.Sprintf("%s %d %d", t.Kind, t.Pos.Line, t.Pos.Column)
	switch t.Kind {
	case TokenIdentifier, TokenString, TokenComment:
		return head + " " + t.Text
	case TokenInt, TokenChar:
		return fmt.Sprintf("%s %d", head, t.Int)
	case TokenFloat:
		return fmt.Sprintf("%s %f", head, t.Float)
	}
	return head
}

// keywords maps reserved spellings to their token kinds.
var keywords = map[string]TokenKind{
	"void":     TokenVoidType,
	"int":      TokenIntType,
	"char":     TokenCharType,
	"float":    TokenFloatType,
	"auto":     TokenAutoType,
	"return":   TokenReturn,
	"sizeof":   TokenSizeof,
	"struct":   TokenStruct,
	"union":    TokenUnion,
	"const":    TokenConst,
	"static":   TokenStatic,
	"extern":   TokenExtern,
	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"for":      TokenFor,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"in":       TokenIn,
}

// escapes maps the character after a backslash in a character literal to
// the code it denotes.
var escapes = map[rune]int64{
	'0':  0,
	'a':  7,
	'b':  8,
	't':  9,
	'n':  10,
	'v':  11,
	'f':  12,
	'r':  13,
	'\\': 92,
	'\'': 39,
}

// Keyword returns the kind reserved for word, if any.
func Keyword(word string) (TokenKind, bool) {
	k, ok := keywords[word]
	return k, ok
}
