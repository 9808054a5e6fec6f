package sink

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := os.WriteFile(path, []byte("stale content that is long"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if _, err := f.WriteString("new"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("content = %q; want %q", got, "new")
	}
}

func TestCreateFileOnDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateFile(dir)
	if !errors.Is(err, ErrOpenOutput) {
		t.Fatalf("CreateFile(dir) error = %v; want ErrOpenOutput", err)
	}
}

func TestCopy(t *testing.T) {
	var got string
	if err := Copy(Func(func(text string) error { got = text; return nil }), "payload"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got != "payload" {
		t.Fatalf("clipboard = %q; want %q", got, "payload")
	}

	boom := errors.New("boom")
	err := Copy(Func(func(string) error { return boom }), "x")
	if !errors.Is(err, ErrClipboard) || !errors.Is(err, boom) {
		t.Fatalf("Copy error = %v; want ErrClipboard wrapping boom", err)
	}
}
