package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/appkit-labs/appkit/internal/vcs"
)

// DefaultComponentsDirectory is used when Config leaves it empty.
const DefaultComponentsDirectory = "./src/components"

// Package manager identifiers returned by PackageManager.
const (
	PackageManagerNPM  = "npm"
	PackageManagerYarn = "yarn"
)

const typeScriptConfigFile = "tsconfig.json"

var (
	// ErrAlreadyCommitted is returned when a workspace is changed or
	// committed after a successful or failed Commit.
	ErrAlreadyCommitted = errors.New("workspace already committed")

	// ErrNameAlreadySet is returned by SetName when a different name was
	// already set.
	ErrNameAlreadySet = errors.New("workspace name already set")
)

// Shell is the host access a workspace needs.
type Shell interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	RunCommand(ctx context.Context, dir, name string, args ...string) error
}

// Formatter turns raw text into its canonical formatted form.
type Formatter interface {
	Format(text string) (string, error)
}

// RepoInitializer creates a version-control repository in a directory.
type RepoInitializer interface {
	InitRepo(ctx context.Context, dir string) error
}

// Config holds project settings fixed at construction.
type Config struct {
	TypeScript          bool
	ComponentsDirectory string
}

// Options configures New.
type Options struct {
	Config Config

	// PackageManagerPath is the path of the package manager executable that
	// launched the tool, as found in npm_execpath. Empty means unknown.
	PackageManagerPath string

	Shell     Shell
	Formatter Formatter

	// Repo initializes the git repository. Defaults to running `git init`
	// through Shell.
	Repo RepoInitializer

	// Out receives one progress line per completed commit step.
	// Defaults to io.Discard.
	Out io.Writer
}

// DependencyOptions describes how a dependency is recorded in package.json.
type DependencyOptions struct {
	Dev bool
	// Version is a version range. Empty resolves to "latest" on commit.
	Version string
}

// Workspace is a project being scaffolded. It is not safe for concurrent use.
type Workspace struct {
	root           string
	name           string
	config         Config
	packageManager string

	deps      *dependencySet
	shell     Shell
	formatter Formatter
	repo      RepoInitializer
	out       io.Writer

	committed bool
}

// New returns a workspace rooted at root.
func New(root string, opts Options) (*Workspace, error) {
	if root == "" {
		return nil, fmt.Errorf("workspace root is required")
	}
	if opts.Shell == nil {
		return nil, fmt.Errorf("workspace shell is required")
	}
	if opts.Formatter == nil {
		return nil, fmt.Errorf("workspace formatter is required")
	}

	cfg := opts.Config
	if cfg.ComponentsDirectory == "" {
		cfg.ComponentsDirectory = DefaultComponentsDirectory
	}

	repo := opts.Repo
	if repo == nil {
		repo = &vcs.Command{Runner: opts.Shell}
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	return &Workspace{
		root:           root,
		config:         cfg,
		packageManager: opts.PackageManagerPath,
		deps:           newDependencySet(),
		shell:          opts.Shell,
		formatter:      opts.Formatter,
		repo:           repo,
		out:            out,
	}, nil
}

// Install registers a dependency. A name that is already registered keeps
// its first options.
func (w *Workspace) Install(name string, opts DependencyOptions) {
	w.deps.add(name, opts)
}

// Dependency returns the options registered for name.
func (w *Workspace) Dependency(name string) (DependencyOptions, bool) {
	return w.deps.get(name)
}

// HasDependency reports whether name is registered.
func (w *Workspace) HasDependency(name string) bool {
	_, ok := w.deps.get(name)
	return ok
}

// Name returns the project name, or "" if none was set.
func (w *Workspace) Name() string {
	return w.name
}

// SetName sets the project name and moves the root into a subdirectory of
// that name. An empty name is ignored. Setting the current name again is a
// no-op; any other second name is rejected with ErrNameAlreadySet.
func (w *Workspace) SetName(name string) error {
	if w.committed {
		return ErrAlreadyCommitted
	}
	if name == "" || name == w.name {
		return nil
	}
	if w.name != "" {
		return fmt.Errorf("%w: %q, cannot rename to %q", ErrNameAlreadySet, w.name, name)
	}

	w.name = name
	w.root = filepath.Join(w.root, name)
	return nil
}

// Root returns the current workspace root.
func (w *Workspace) Root() string {
	return w.root
}

// ComponentsDirectory returns where component sources live.
func (w *Workspace) ComponentsDirectory() string {
	return w.config.ComponentsDirectory
}

// IsTypeScript reports whether the project uses TypeScript, either because
// it was configured to or because a tsconfig.json exists at the root.
func (w *Workspace) IsTypeScript() bool {
	return w.config.TypeScript || w.shell.Exists(filepath.Join(w.root, typeScriptConfigFile))
}

// PackageManager returns "yarn" when the tool was launched by yarn and
// "npm" otherwise.
func (w *Workspace) PackageManager() string {
	if strings.Contains(w.packageManager, PackageManagerYarn) {
		return PackageManagerYarn
	}
	return PackageManagerNPM
}
