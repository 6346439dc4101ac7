package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/appkit-labs/appkit/internal/config"
	"github.com/appkit-labs/appkit/internal/format"
	"github.com/appkit-labs/appkit/internal/preset"
	"github.com/appkit-labs/appkit/internal/shell"
	"github.com/appkit-labs/appkit/internal/vcs"
	"github.com/appkit-labs/appkit/internal/workspace"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// newOptions collects everything `appkit new` needs after flag parsing.
type newOptions struct {
	Name     string
	Dir      string
	Preset   string
	Deps     []string
	DevDeps  []string
	Settings config.Settings
}

var (
	newDir           string
	newPreset        string
	newNoPreset      bool
	newTypeScript    bool
	newComponentsDir string
	newGitBackend    string
	newDeps          []string
	newDevDeps       []string
)

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", ".", "Parent directory for the new workspace")
	newCmd.Flags().StringVar(&newPreset, "preset", "", "Dependency preset (default from config)")
	newCmd.Flags().BoolVar(&newNoPreset, "no-preset", false, "Install only the dependencies given with --dep/--dev-dep")
	newCmd.Flags().BoolVar(&newTypeScript, "typescript", false, "Treat the project as TypeScript")
	newCmd.Flags().StringVar(&newComponentsDir, "components-dir", "", "Where component sources live")
	newCmd.Flags().StringVar(&newGitBackend, "git-backend", "", "How to initialize git: cli or embedded")
	newCmd.Flags().StringArrayVar(&newDeps, "dep", nil, "Runtime dependency as name[@range] (repeatable)")
	newCmd.Flags().StringArrayVar(&newDevDeps, "dev-dep", nil, "Development dependency as name[@range] (repeatable)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new workspace",
	Long: `Create a new workspace in <dir>/<name>.

The directory is created if needed, a git repository is initialized, and
package.json is written or merged with an existing one. Dependencies given
with --dep and --dev-dep take precedence over the preset's.

Examples:
  appkit new storefront
  appkit new storefront --preset minimal --dep react@^18.2.0 --dev-dep eslint
  appkit new storefront --no-preset --git-backend embedded`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		flags := cmd.Flags()
		if flags.Changed("typescript") {
			settings.TypeScript = newTypeScript
		}
		if flags.Changed("components-dir") {
			settings.ComponentsDirectory = newComponentsDir
		}
		if flags.Changed("git-backend") {
			settings.GitBackend = newGitBackend
		}

		presetName := settings.Preset
		if flags.Changed("preset") {
			presetName = newPreset
		}
		if newNoPreset {
			presetName = ""
		}

		return runNew(cmd.Context(), cmd.OutOrStdout(), newOptions{
			Name:     args[0],
			Dir:      newDir,
			Preset:   presetName,
			Deps:     newDeps,
			DevDeps:  newDevDeps,
			Settings: settings,
		})
	},
}

func runNew(ctx context.Context, out io.Writer, opts newOptions) error {
	if err := validateName(opts.Name); err != nil {
		return err
	}

	deps, err := collectDependencies(opts)
	if err != nil {
		return err
	}

	parent, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", opts.Dir, err)
	}
	if err := os.MkdirAll(filepath.Join(parent, opts.Name), 0755); err != nil {
		return fmt.Errorf("creating workspace directory: %w", err)
	}

	sh := shell.New()
	repo, err := vcs.New(opts.Settings.GitBackend, opts.Settings.GitInitialBranch, sh)
	if err != nil {
		return err
	}

	ws, err := workspace.New(parent, workspace.Options{
		Config: workspace.Config{
			TypeScript:          opts.Settings.TypeScript,
			ComponentsDirectory: opts.Settings.ComponentsDirectory,
		},
		PackageManagerPath: opts.Settings.PackageManagerPath,
		Shell:              sh,
		Formatter:          format.New(),
		Repo:               repo,
		Out:                out,
	})
	if err != nil {
		return err
	}

	for _, d := range deps {
		ws.Install(d.Name, workspace.DependencyOptions{Dev: d.Dev, Version: d.Version})
	}
	if err := ws.SetName(opts.Name); err != nil {
		return err
	}

	if err := ws.Commit(ctx); err != nil {
		return fmt.Errorf("creating workspace %s: %w", opts.Name, err)
	}

	printNextSteps(out, ws)
	return nil
}

// collectDependencies returns flag dependencies followed by preset
// dependencies, so flags win when both name the same package.
func collectDependencies(opts newOptions) ([]preset.Dependency, error) {
	var deps []preset.Dependency

	for _, spec := range opts.Deps {
		d, err := preset.ParseDependency(spec, false)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}
	for _, spec := range opts.DevDeps {
		d, err := preset.ParseDependency(spec, true)
		if err != nil {
			return nil, err
		}
		deps = append(deps, d)
	}

	if opts.Preset != "" {
		p, err := preset.Lookup(opts.Preset)
		if err != nil {
			return nil, err
		}
		deps = append(deps, p.Dependencies...)
	}

	return deps, nil
}

func printNextSteps(out io.Writer, ws *workspace.Workspace) {
	green := color.New(color.FgGreen).SprintFunc()

	language := "JavaScript"
	if ws.IsTypeScript() {
		language = "TypeScript"
	}

	fmt.Fprintf(out, "\n%s %s at %s (%s)\n", green("Created"), ws.Name(), ws.Root(), language)
	fmt.Fprintf(out, "Components go in %s\n", ws.ComponentsDirectory())

	pm := ws.PackageManager()
	run := pm + " run dev"
	if pm == workspace.PackageManagerYarn {
		run = "yarn dev"
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", ws.Name())
	fmt.Fprintf(out, "  2. %s install\n", pm)
	fmt.Fprintf(out, "  3. %s\n", run)
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}
