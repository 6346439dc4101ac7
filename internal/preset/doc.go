// Package preset holds the built-in dependency sets offered by `appkit new`
// and parses dependency specs given on the command line ("react@^18",
// "@scope/pkg@1.2.3", "vite").
package preset
