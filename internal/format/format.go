package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SyntaxError reports input the formatter refuses to process.
type SyntaxError struct {
	Line   int // 1-based
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("format: line %d: %s", e.Line, e.Reason)
}

// Text formats plain line-oriented files such as .gitignore.
type Text struct{}

// New returns the house-style text formatter.
func New() *Text {
	return &Text{}
}

// Format returns the canonical form of text. Leading and trailing blank lines
// are dropped and the indentation shared by every non-blank line is removed,
// so raw string literals indented to match surrounding Go code come out flush.
func (t *Text) Format(text string) (string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		if !utf8.ValidString(line) {
			return "", &SyntaxError{Line: i + 1, Reason: "invalid UTF-8"}
		}
		if strings.ContainsRune(line, 0) {
			return "", &SyntaxError{Line: i + 1, Reason: "NUL byte"}
		}
		lines[i] = strings.TrimRight(line, " \t\r")
	}

	lines = trimBlank(lines)
	if len(lines) == 0 {
		return "", nil
	}

	prefix := commonIndent(lines)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return norm.NFC.String(strings.Join(lines, "\n") + "\n"), nil
}

// trimBlank drops blank lines at both ends.
func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}

// commonIndent returns the longest whitespace prefix shared by all non-blank
// lines. Tabs and spaces are compared literally.
func commonIndent(lines []string) string {
	prefix := ""
	first := true
	for _, line := range lines {
		if line == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = indent
			first = false
			continue
		}
		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
