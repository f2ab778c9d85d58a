package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/martinemde/minic/lexer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// UsageError reports a bad invocation: wrong argument count, wrong
// extension, or a path that is not a regular file.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func runLex(cmd *cobra.Command, args []string, v *viper.Viper) error {
	path := args[0]
	verbose := v.GetBool("verbose")
	comments := v.GetBool("comments")

	if err := checkSourcePath(path, v.GetString("ext")); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("debug")).With("run", uuid.NewString())

	lex, err := lexer.Open(path)
	if err != nil {
		return err
	}
	defer lex.Close()
	logger.Debug("opened source", "path", path)

	out := cmd.OutOrStdout()
	counts := make(map[lexer.TokenKind]int)
	total := 0
	lastLine := 0

	for {
		tok, err := lex.Scan()
		if errors.Is(err, io.EOF) {
			break
		}
		var lexErr *lexer.LexError
		if errors.As(err, &lexErr) {
			logger.Debug("lexical error", "line", lexErr.Pos.Line, "col", lexErr.Pos.Column, "msg", lexErr.Message)
			fmt.Fprintln(out, lexErr.Diagnostic())
			return err
		}
		if err != nil {
			return fmt.Errorf("tokenizing %s: %w", path, err)
		}

		total++
		counts[tok.Kind]++
		lastLine = tok.Pos.Line
		if tok.Kind == lexer.TokenComment && !comments {
			continue
		}
		fmt.Fprintln(out, tok)
	}

	logger.Debug("end of stream", "tokens", total)
	if verbose {
		printSummary(cmd.ErrOrStderr(), path, total, lastLine, counts)
	}
	return nil
}

// checkSourcePath validates the argument before any scanning starts.
func checkSourcePath(path, ext string) error {
	if filepath.Ext(path) != ext {
		return &UsageError{Message: fmt.Sprintf("you must pass a valid %s file", ext)}
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &UsageError{Message: fmt.Sprintf("%s is not a valid file", path)}
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printSummary prints token counts per kind, most frequent first.
func printSummary(w io.Writer, path string, total, lines int, counts map[lexer.TokenKind]int) {
	fmt.Fprintf(w, "[lex] %s: %d tokens through line %d\n", path, total, lines)

	kinds := make([]lexer.TokenKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	for _, k := range kinds {
		fmt.Fprintf(w, "    %-9s %d\n", k, counts[k])
	}
}
