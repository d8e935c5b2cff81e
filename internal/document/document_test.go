package document

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoad_SplitsLines(t *testing.T) {
	path := writeFile(t, "plain.txt", "alpha\nbeta\ngamma\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.LineCount() != 3 {
		t.Fatalf("LineCount() = %d, want 3", doc.LineCount())
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		got, ok := doc.Line(i)
		if !ok {
			t.Fatalf("Line(%d) reported missing", i)
		}
		if got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestLoad_CRLFEndingsStripped(t *testing.T) {
	path := writeFile(t, "crlf.txt", "one\r\ntwo\r\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", doc.LineCount())
	}
	if line, _ := doc.Line(0); line != "one" {
		t.Errorf("Line(0) = %q, want %q", line, "one")
	}
	if line, _ := doc.Line(1); line != "two" {
		t.Errorf("Line(1) = %q, want %q", line, "two")
	}
}

func TestLoad_NoTrailingNewline(t *testing.T) {
	path := writeFile(t, "notrail.txt", "only line")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", doc.LineCount())
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !doc.IsEmpty() {
		t.Error("expected empty document for empty file")
	}
}

func TestLoad_NewlineOnlyFileIsOneEmptyLine(t *testing.T) {
	path := writeFile(t, "newline.txt", "\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", doc.LineCount())
	}
	if line, _ := doc.Line(0); line != "" {
		t.Errorf("Line(0) = %q, want empty", line)
	}
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLine_OutOfRange(t *testing.T) {
	doc := New([]string{"a", "b"})

	tests := []struct {
		name string
		row  int
	}{
		{"negative", -1},
		{"past end", 2},
		{"far past end", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := doc.Line(tt.row); ok {
				t.Errorf("Line(%d) ok = true, want false", tt.row)
			}
		})
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var doc Document
	if !doc.IsEmpty() {
		t.Error("zero value Document should be empty")
	}
	if doc.LineCount() != 0 {
		t.Errorf("LineCount() = %d, want 0", doc.LineCount())
	}
}
