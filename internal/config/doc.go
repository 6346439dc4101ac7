// Package config manages user-level settings stored at ~/.appkit/config.yaml.
// Settings provide defaults for `appkit new` (TypeScript, components
// directory, preset, git backend) and can be overridden with APPKIT_*
// environment variables. The npm_execpath variable set by npm and yarn is
// also read here so workspaces can tell which package manager launched them.
package config
