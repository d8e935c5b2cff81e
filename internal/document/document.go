// Package document holds the loaded text being viewed: an ordered, row
// addressable sequence of lines with the line endings stripped.
package document

import (
	"os"
	"strings"
)

// Document is an immutable snapshot of a text file's lines. The zero value
// is an empty document, which is what a session starts with when no path
// was given or the load failed.
type Document struct {
	lines []string
}

// New returns a document over the given lines. The caller must not pass
// lines containing line-ending characters.
func New(lines []string) Document {
	return Document{lines: lines}
}

// Load reads the file at path and splits it into lines. CRLF and LF endings
// are both accepted; neither is retained in the line content.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	if len(data) == 0 {
		return Document{}, nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return Document{lines: strings.Split(text, "\n")}, nil
}

// IsEmpty reports whether the document has no lines.
func (d Document) IsEmpty() bool {
	return len(d.lines) == 0
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return len(d.lines)
}

// Line returns the line at the given zero-based row index. The second
// return value is false when the index is past the end of the document.
func (d Document) Line(row int) (string, bool) {
	if row < 0 || row >= len(d.lines) {
		return "", false
	}
	return d.lines[row], true
}
