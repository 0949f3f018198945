package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (equivalent to t.Chdir, which
// requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Chdir: %v", err)
		}
	})
}

// executeCommand runs the root command with fresh flag state and captured
// output streams.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetCompareFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetCompareFlags clears flag values and parse state left over from a
// previous Execute in the same test binary.
func resetCompareFlags() {
	for _, name := range []string{
		"old", "new", "output", "format", "config",
		"ignore-case", "ignore-whitespace", "max-lines", "allow-empty",
	} {
		if f := compareCmd.Flags().Lookup(name); f != nil {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
}

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

func TestCompareCommand_Unified(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "one\ntwo\nthree")
	newPath := writeInputFile(t, dir, "new.txt", "one\ntwo-b\nthree")

	out, errOut, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath, "--format", "unified")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(out, "  one\n- two\n+ two-b\n  three") {
		t.Errorf("Expected unified diff in output, got:\n%s", out)
	}

	if !strings.Contains(errOut, "Comparison complete: 1 added, 1 removed, 2 unchanged (4 lines)") {
		t.Errorf("Expected summary on stderr, got: %s", errOut)
	}
}

func TestCompareCommand_NoChanges(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "same\ncontent")
	newPath := writeInputFile(t, dir, "new.txt", "same\ncontent")

	_, errOut, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(errOut, "No differences found") {
		t.Errorf("Expected no-differences summary on stderr, got: %s", errOut)
	}
}

func TestCompareCommand_EmptyInputRejected(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "")
	newPath := writeInputFile(t, dir, "new.txt", "content")

	_, _, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath)
	if err == nil {
		t.Fatal("Expected error for empty input")
	}
	if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("Expected empty-input error, got: %v", err)
	}
}

func TestCompareCommand_AllowEmpty(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "")
	newPath := writeInputFile(t, dir, "new.txt", "a\nb")

	out, _, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath, "--allow-empty", "--format", "unified")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(out, "+ a\n+ b") {
		t.Errorf("Expected all-added diff, got:\n%s", out)
	}
}

func TestCompareCommand_MaxLines(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "1\n2\n3\n4\n5")
	newPath := writeInputFile(t, dir, "new.txt", "1\n2")

	_, _, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath, "--max-lines", "3")
	if err == nil {
		t.Fatal("Expected error when input exceeds line limit")
	}
	if !strings.Contains(err.Error(), "exceeding the limit of 3") {
		t.Errorf("Expected line limit error, got: %v", err)
	}
}

func TestCompareCommand_OutputFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "a")
	newPath := writeInputFile(t, dir, "new.txt", "b")
	resultPath := filepath.Join(dir, "result.diff")

	out, _, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath,
		"--format", "unified", "--output", resultPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(out, "Results written to") {
		t.Errorf("Expected write confirmation, got: %s", out)
	}

	data, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "- a\n+ b" {
		t.Errorf("Unexpected output file content: %q", string(data))
	}
}

func TestCompareCommand_ConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "Hello")
	newPath := writeInputFile(t, dir, "new.txt", "hello")
	configPath := writeInputFile(t, dir, "config.yml", "differ:\n  ignore_case: true\n")

	_, errOut, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath, "--config", configPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(errOut, "No differences found") {
		t.Errorf("Expected case-insensitive comparison from config, got: %s", errOut)
	}
}

func TestCompareCommand_FlagOverridesConfig(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "Hello")
	newPath := writeInputFile(t, dir, "new.txt", "hello")
	configPath := writeInputFile(t, dir, "config.yml", "differ:\n  ignore_case: true\n")

	_, errOut, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath,
		"--config", configPath, "--ignore-case=false")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(errOut, "Comparison complete") {
		t.Errorf("Expected flag to override config and report changes, got: %s", errOut)
	}
}

func TestCompareCommand_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	newPath := writeInputFile(t, dir, "new.txt", "content")

	_, _, err := executeCommand(t, "compare", "--old", filepath.Join(dir, "missing.txt"), "--new", newPath)
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "reading input file") {
		t.Errorf("Expected read error, got: %v", err)
	}
}

func TestCompareCommand_UnsupportedFormat(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	oldPath := writeInputFile(t, dir, "old.txt", "a")
	newPath := writeInputFile(t, dir, "new.txt", "b")

	_, _, err := executeCommand(t, "compare", "--old", oldPath, "--new", newPath, "--format", "csv")
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("Expected format error, got: %v", err)
	}
}
