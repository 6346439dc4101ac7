// Package workspace models a web application project that is about to be
// scaffolded. Callers register dependencies with Install, optionally fix the
// project name with SetName, and then call Commit once. Commit initializes a
// git repository, writes .gitignore, and merges the generated scripts,
// dependency groups, and tool config into package.json, keeping any keys an
// existing package.json already had.
//
// All host access goes through the Shell and Formatter interfaces.
package workspace
