// Package shell is the host-facing side of a workspace: file existence checks,
// whole-file reads and writes, and running external programs such as git in a
// given directory. Workspaces depend on it through a small interface so tests
// can swap in an in-memory double.
package shell
