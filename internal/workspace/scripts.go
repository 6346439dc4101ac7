package workspace

import "strings"

// Dependency names that switch on optional scripts and config.
const (
	eslintPackage         = "eslint"
	stylelintPackage      = "stylelint"
	prettierConfigPackage = "@shopify/prettier-config"
)

const latestVersion = "latest"

const (
	eslintCommand    = "eslint --no-error-on-unmatched-pattern --ext .js,.ts,.jsx,.tsx src"
	stylelintCommand = "stylelint ./src/**/*.{css,sass,scss}"
)

func baseScripts() map[string]string {
	return map[string]string{
		"dev":          "vite",
		"build":        "yarn build:client && yarn build:server",
		"build:client": "vite build --outDir dist/client --manifest",
		"build:server": "vite build --outDir dist/server --ssr src/entry-server.jsx",
	}
}

// scripts returns the base scripts plus a lint script when eslint or
// stylelint is registered.
func (w *Workspace) scripts() map[string]string {
	scripts := baseScripts()

	var linters []string
	if w.HasDependency(eslintPackage) {
		linters = append(linters, eslintCommand)
	}
	if w.HasDependency(stylelintPackage) {
		linters = append(linters, stylelintCommand)
	}
	if len(linters) > 0 {
		scripts["lint"] = strings.Join(linters, " && ")
	}

	return scripts
}

// prettierConfig returns the shareable prettier config to reference, if any.
func (w *Workspace) prettierConfig() string {
	if w.HasDependency(prettierConfigPackage) {
		return prettierConfigPackage
	}
	return ""
}

// partition splits registered dependencies into runtime and dev groups.
func (w *Workspace) partition() (deps, devDeps map[string]string) {
	deps = make(map[string]string)
	devDeps = make(map[string]string)

	w.deps.each(func(name string, opts DependencyOptions) {
		version := opts.Version
		if version == "" {
			version = latestVersion
		}
		if opts.Dev {
			devDeps[name] = version
		} else {
			deps[name] = version
		}
	})

	return deps, devDeps
}
