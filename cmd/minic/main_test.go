package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecutePrintsTokens(t *testing.T) {
	path := writeSource(t, "main.c", "int x = 5 ;\n")

	code, stdout, stderr := run(t, path)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "INT_T 1 1\nID 1 5 x\nASSIGN 1 7\nINT 1 9 5\nSEM_COL 1 11\n", stdout)
	assert.Empty(t, stderr)
}

func TestExecutePrintsLiteralValues(t *testing.T) {
	path := writeSource(t, "lits.c", "'a' 1.5 \"hi\" // note\np->q")

	code, stdout, _ := run(t, path)
	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, []string{
		"CHAR_LIT 1 1 97",
		"FLOAT 1 5 1.500000",
		"STR 1 9 hi",
		"CMNT 1 14  note",
		"ID 2 1 p",
		"DASH_ACC 2 2",
		"ID 2 4 q",
	}, lines)
}

func TestExecuteLexicalError(t *testing.T) {
	path := writeSource(t, "bad.c", "int x = 12.;\n")

	code, stdout, _ := run(t, path)
	assert.Equal(t, exitLexical, code)
	assert.Equal(t, "INT_T 1 1\nID 1 5 x\nASSIGN 1 7\n"+
		"Lexical error - line: 1  col: 12\nfloating point numbers must be of the form x.y\n", stdout)
}

func TestExecuteUsageErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, "ok.c", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pkg.c"), 0o755))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", nil, "accepts 1 arg"},
		{"two arguments", []string{good, good}, "accepts 1 arg"},
		{"wrong extension", []string{writeSource(t, "main.go", "x")}, "valid .c file"},
		{"no extension", []string{writeSource(t, "main", "x")}, "valid .c file"},
		{"missing file", []string{filepath.Join(dir, "missing.c")}, "not a valid file"},
		{"directory", []string{filepath.Join(dir, "pkg.c")}, "not a valid file"},
		{"unknown flag", []string{"--bogus", good}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestExecuteUsageLine(t *testing.T) {
	good := writeSource(t, "ok.c", "x")
	invocations := [][]string{
		nil,
		{good, good},
		{"--bogus", good},
		{"--comments=maybe", good},
		{writeSource(t, "main.go", "x")},
	}
	for _, args := range invocations {
		code, _, stderr := run(t, args...)
		assert.Equal(t, exitUsage, code, "args: %v", args)
		assert.Contains(t, stderr, "Usage: minic <file.c>", "args: %v", args)
	}
}

func TestExecuteHidesComments(t *testing.T) {
	path := writeSource(t, "c.c", "// header\nreturn;\n")

	code, stdout, _ := run(t, "--comments=false", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "RET 2 1\nSEM_COL 2 7\n", stdout)
}

func TestExecuteCustomExtension(t *testing.T) {
	path := writeSource(t, "prog.mc", "x")

	code, _, _ := run(t, path)
	assert.Equal(t, exitUsage, code)

	code, stdout, _ := run(t, "--ext", ".mc", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ID 1 1 x\n", stdout)
}

func TestExecuteExtensionFromEnvironment(t *testing.T) {
	t.Setenv("MINIC_EXT", ".mc")
	path := writeSource(t, "prog.mc", "y")

	code, stdout, _ := run(t, path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ID 1 1 y\n", stdout)
}

func TestExecuteVerboseSummary(t *testing.T) {
	path := writeSource(t, "sum.c", "a = b;\nc = d;\n")

	code, _, stderr := run(t, "-v", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "8 tokens through line 2")
	assert.Contains(t, stderr, "ID        4")
	assert.Contains(t, stderr, "ASSIGN    2")
}

func TestExecuteDebugLogging(t *testing.T) {
	path := writeSource(t, "dbg.c", "x #")

	code, _, stderr := run(t, "--debug", path)
	assert.Equal(t, exitLexical, code)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "run=")
	assert.Contains(t, stderr, `msg="lexical error"`)
}

func TestExecuteQuietWithoutDebug(t *testing.T) {
	path := writeSource(t, "q.c", "x")

	_, _, stderr := run(t, path)
	assert.NotContains(t, stderr, "level=DEBUG")
}
