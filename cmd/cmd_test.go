package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirclip/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeScenario(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.md"), []byte("world"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestRootCommandWritesOutputFile(t *testing.T) {
	dir := writeScenario(t)
	out := filepath.Join(t.TempDir(), "out.md")

	stdout, err := execute(t, dir, "--output-file", out, "--file-types", "txt", "--disable-gitignore")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "```" + filepath.Join(dir, "a.txt") + "\nhello```\n"
	if string(got) != want {
		t.Fatalf("output = %q; want %q", got, want)
	}
	if !strings.Contains(stdout, "Finished copying contents") {
		t.Fatalf("stdout = %q; missing completion line", stdout)
	}
}

func TestRootCommandFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := writeScenario(t)

	first := filepath.Join(t.TempDir(), "first.md")
	if _, err := execute(t, dir, "-o", first, "-f", "txt", "-e", "b.md"); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second := filepath.Join(t.TempDir(), "second.md")
	if _, err := execute(t, dir, "-o", second, "-f", "md"); err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	got, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "```" + filepath.Join(dir, "b.md") + "\nworld```\n"
	if string(got) != want {
		t.Fatalf("second run output = %q; want only b.md", got)
	}
}

func TestRootCommandRequiresDirectory(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Fatalf("expected an error without a directory argument")
	}
}

func TestVersionShort(t *testing.T) {
	stdout, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := version.Get().Short(); strings.TrimSpace(stdout) != want {
		t.Fatalf("version output = %q; want %q", stdout, want)
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(stdout, version.Get().Short()) {
		t.Fatalf("--version output = %q", stdout)
	}
}
