package format

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "dedents indented literal",
			input: `
      node_modules
      .DS_Store
      dist
      `,
			want: "node_modules\n.DS_Store\ndist\n",
		},
		{
			name:  "keeps relative indentation",
			input: "  a\n    b\n  c",
			want:  "a\n  b\nc\n",
		},
		{
			name:  "strips trailing whitespace and CRLF",
			input: "one  \r\ntwo\t\r\n",
			want:  "one\ntwo\n",
		},
		{
			name:  "keeps interior blank lines",
			input: "\n\n  a\n\n  b\n\n\n",
			want:  "a\n\nb\n",
		},
		{
			name:  "empty input",
			input: "   \n\t\n",
			want:  "",
		},
		{
			name:  "normalizes to NFC",
			input: "cafe\u0301",
			want:  "caf\u00e9\n",
		},
	}

	f := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{name: "invalid UTF-8", input: "ok\n\xff\xfe", wantLine: 2},
		{name: "NUL byte", input: "a\x00b", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Format(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *SyntaxError", err)
			}
			if se.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", se.Line, tt.wantLine)
			}
		})
	}
}
