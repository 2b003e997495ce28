package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return buf.String()
}

func writeFixture(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "drawing.svg")
	content := `<svg xmlns="http://www.w3.org/2000/svg" id="root">` +
		`<path id="p0" d="M 0,0"/><path id="p1" d="M 1,1"/><path id="p2" d="M 2,2"/></svg>`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, "version")
	if !strings.Contains(out, "pathops "+version) {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestInspectCommand(t *testing.T) {
	file := writeFixture(t)

	out := executeCommand(t, "inspect", file)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 ids, got %d: %q", len(lines), out)
	}
	if lines[0] != "p0" || lines[1] != "p1" {
		t.Errorf("ids out of document order: %v", lines)
	}
	if !strings.Contains(lines[2], "p2") || !strings.Contains(lines[2], "(top)") {
		t.Errorf("last line should mark the top element: %q", lines[2])
	}
}

func TestApplyDryRunCommand(t *testing.T) {
	file := writeFixture(t)
	before, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	out := executeCommand(t, "apply", file, "--dry-run", "--op", "union")
	if !strings.Contains(out, "--verb=SelectionUnion") {
		t.Errorf("dry run should report the planned invocation: %q", out)
	}
	if !strings.Contains(out, "--verb=FileQuit") {
		t.Errorf("planned invocation should end the editor session: %q", out)
	}

	after, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("dry run must not modify the source file")
	}
}
