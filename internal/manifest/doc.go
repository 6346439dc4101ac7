// Package manifest reads, merges, and writes package.json documents. A
// document is handled as a generic JSON object so keys this tool does not know
// about survive a round trip; Merge lays freshly generated fields over an
// existing document, and Validate checks the result against an embedded JSON
// Schema covering the fields workspaces write.
package manifest
