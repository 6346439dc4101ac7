// Package vcs initializes version-control repositories for new workspaces.
// Command shells out to the git executable; Embedded uses go-git and needs no
// git installation. Both treat an already-initialized directory as success,
// as `git init` does.
package vcs
