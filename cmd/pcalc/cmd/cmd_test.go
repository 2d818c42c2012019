package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns whatever it wrote, following the teacher's
// cmd/dwscript/cmd/run_unit_test.go capture pattern.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("os.Pipe: %v", pipeErr)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), fnErr
}

func TestRunEvalInlineExpression(t *testing.T) {
	oldExpr, oldFormat, oldPrelude := evalExpr, evalFormat, evalPrelude
	defer func() { evalExpr, evalFormat, evalPrelude = oldExpr, oldFormat, oldPrelude }()

	evalExpr = "(+ 1/2 1/3)"
	evalFormat = "text"
	evalPrelude = ""

	out, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, out)
	}
	if strings.TrimSpace(out) != "5/6" {
		t.Fatalf("runEval output = %q, want 5/6", out)
	}
}

func TestRunEvalJSONFormat(t *testing.T) {
	oldExpr, oldFormat, oldPrelude := evalExpr, evalFormat, evalPrelude
	defer func() { evalExpr, evalFormat, evalPrelude = oldExpr, oldFormat, oldPrelude }()

	evalExpr = "(list 1 2 3)"
	evalFormat = "json"
	evalPrelude = ""

	out, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, `"1"`) || !strings.Contains(out, `"2"`) || !strings.Contains(out, `"3"`) {
		t.Fatalf("runEval json output = %q", out)
	}
}

func TestRunEvalErrorPropagates(t *testing.T) {
	oldExpr, oldFormat, oldPrelude := evalExpr, evalFormat, evalPrelude
	defer func() { evalExpr, evalFormat, evalPrelude = oldExpr, oldFormat, oldPrelude }()

	evalExpr = "(/ 1 0)"
	evalFormat = "text"
	evalPrelude = ""

	_, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
	if err == nil {
		t.Fatal("runEval should fail on division by zero")
	}
	if !strings.Contains(err.Error(), "DivideByZero") {
		t.Fatalf("runEval error = %v, want it to mention DivideByZero", err)
	}
}

func TestRunEvalWithPrelude(t *testing.T) {
	oldExpr, oldFormat, oldPrelude := evalExpr, evalFormat, evalPrelude
	defer func() { evalExpr, evalFormat, evalPrelude = oldExpr, oldFormat, oldPrelude }()

	dir := t.TempDir()
	preludePath := dir + "/prelude.yaml"
	if err := os.WriteFile(preludePath, []byte("pi: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	evalExpr = "(* 2 pi)"
	evalFormat = "text"
	evalPrelude = preludePath

	out, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, out)
	}
	if strings.TrimSpace(out) != "6" {
		t.Fatalf("runEval with prelude output = %q, want 6", out)
	}
}

func TestRunEvalWithPreludeJSON(t *testing.T) {
	oldExpr, oldFormat, oldPreludeJSON := evalExpr, evalFormat, evalPreludeJSON
	defer func() { evalExpr, evalFormat, evalPreludeJSON = oldExpr, oldFormat, oldPreludeJSON }()

	dir := t.TempDir()
	preludePath := dir + "/prelude.json"
	if err := os.WriteFile(preludePath, []byte(`{"pi": 3}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	evalExpr = "(* 2 pi)"
	evalFormat = "text"
	evalPreludeJSON = preludePath

	out, err := captureStdout(t, func() error { return runEval(evalCmd, nil) })
	if err != nil {
		t.Fatalf("runEval: %v\noutput: %s", err, out)
	}
	if strings.TrimSpace(out) != "6" {
		t.Fatalf("runEval with --prelude-json output = %q, want 6", out)
	}
}

func TestRunLexShowsTokens(t *testing.T) {
	oldExpr, oldPos, oldType, oldOnly := lexExpr, showPos, showType, onlyErrors
	defer func() { lexExpr, showPos, showType, onlyErrors = oldExpr, oldPos, oldType, oldOnly }()

	lexExpr = "(+ 1 2)"
	showPos, showType, onlyErrors = false, false, false

	out, err := captureStdout(t, func() error { return runLex(lexCmd, nil) })
	if err != nil {
		t.Fatalf("runLex: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, `"("`) || !strings.Contains(out, "EOF") {
		t.Fatalf("runLex output = %q", out)
	}
}

func TestRunLexReportsIllegalToken(t *testing.T) {
	oldExpr, oldPos, oldType, oldOnly := lexExpr, showPos, showType, onlyErrors
	defer func() { lexExpr, showPos, showType, onlyErrors = oldExpr, oldPos, oldType, oldOnly }()

	lexExpr = "(+ 1 @)"
	showPos, showType, onlyErrors = false, false, false

	_, err := captureStdout(t, func() error { return runLex(lexCmd, nil) })
	if err == nil {
		t.Fatal("runLex should report an error for an illegal token")
	}
}

func TestRunParsePrintsSurfaceSyntax(t *testing.T) {
	oldExpr, oldDump := parseExpr, parseDumpAST
	defer func() { parseExpr, parseDumpAST = oldExpr, oldDump }()

	parseExpr = "(+ 1 2)"
	parseDumpAST = false

	out, err := captureStdout(t, func() error { return runParse(parseCmd, nil) })
	if err != nil {
		t.Fatalf("runParse: %v\noutput: %s", err, out)
	}
	if strings.TrimSpace(out) != "(+ 1 2)" {
		t.Fatalf("runParse output = %q, want (+ 1 2)", out)
	}
}

func TestReadInputPrefersInline(t *testing.T) {
	input, filename, err := readInput("(+ 1 2)", nil)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if input != "(+ 1 2)" || filename != "<eval>" {
		t.Fatalf("readInput = %q, %q", input, filename)
	}
}

func TestReadInputReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/expr.pcalc"
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	input, filename, err := readInput("", []string{path})
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if input != "(+ 1 2)" || filename != path {
		t.Fatalf("readInput = %q, %q", input, filename)
	}
}

func TestReadInputNoSourceIsError(t *testing.T) {
	if _, _, err := readInput("", nil); err == nil {
		t.Fatal("readInput with no inline expr and no file should fail")
	}
}

func TestRunHelpTopicsWithNoArgs(t *testing.T) {
	out, err := captureStdout(t, func() error { return runHelpTopics(helpTopicsCmd, nil) })
	if err != nil {
		t.Fatalf("runHelpTopics: %v", err)
	}
	if !strings.Contains(out, "Available topics") {
		t.Fatalf("runHelpTopics output = %q", out)
	}
}

func TestRunHelpTopicsWithArg(t *testing.T) {
	out, err := captureStdout(t, func() error { return runHelpTopics(helpTopicsCmd, []string{"+"}) })
	if err != nil {
		t.Fatalf("runHelpTopics: %v", err)
	}
	if !strings.Contains(out, "sums its arguments") {
		t.Fatalf("runHelpTopics output = %q", out)
	}
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	out, _ := captureStdout(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	if !strings.Contains(out, Version) {
		t.Fatalf("version output = %q, want it to contain %q", out, Version)
	}
}
