// Package lexer implements the lexical front end for minic, a small C-like
// language.
//
// The package is layered in two parts:
//
//   - Source: wraps an io.Reader and exposes one character of lookahead with
//     line and column tracking.
//   - Lexer: classifies the lookahead character and runs one scanning routine
//     per token (identifiers and keywords, numbers, character and string
//     literals, line comments, operators and punctuation).
//
// Tokens are pulled one at a time:
//
//	lex, err := lexer.Open("main.c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lex.Close()
//	for {
//	    tok, err := lex.Scan()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err) // *lexer.LexError
//	    }
//	    fmt.Println(tok)
//	}
//
// Scanning stops at the first lexical error. There is no resynchronisation.
package lexer
