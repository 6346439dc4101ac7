// Package cli defines the Cobra command tree for the appkit CLI. Each file
// registers one top-level command with the root command. Commands only parse
// flags and print results; the work is done by the workspace, manifest, and
// config packages.
package cli
