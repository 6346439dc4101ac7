// Package format normalizes generated text files before they are written to
// a workspace. It applies one fixed house style: common indentation removed,
// no trailing whitespace, LF line endings, NFC-normalized Unicode, and exactly
// one trailing newline.
package format
