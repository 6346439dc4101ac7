package vcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Supported backend identifiers, as used in configuration.
const (
	BackendCLI      = "cli"
	BackendEmbedded = "embedded"
)

// Runner runs an external program in a directory.
type Runner interface {
	RunCommand(ctx context.Context, dir, name string, args ...string) error
}

// Command initializes repositories by running `git init`.
type Command struct {
	Runner Runner
	// InitialBranch is passed as --initial-branch when set.
	InitialBranch string
}

// InitRepo runs git init in dir.
func (c *Command) InitRepo(ctx context.Context, dir string) error {
	args := []string{"init"}
	if c.InitialBranch != "" {
		args = append(args, "--initial-branch="+c.InitialBranch)
	}
	if err := c.Runner.RunCommand(ctx, dir, "git", args...); err != nil {
		return fmt.Errorf("initializing git repository: %w", err)
	}
	return nil
}

// Embedded initializes repositories in-process with go-git.
type Embedded struct {
	// InitialBranch defaults to go-git's default (master) when empty.
	InitialBranch string
}

// InitRepo creates a non-bare repository in dir.
func (e *Embedded) InitRepo(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opts := &git.PlainInitOptions{}
	if e.InitialBranch != "" {
		opts.InitOptions.DefaultBranch = plumbing.NewBranchReferenceName(e.InitialBranch)
	}

	_, err := git.PlainInitWithOptions(dir, opts)
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("initializing git repository at %s: %w", dir, err)
	}
	return nil
}

// Initializer is implemented by Command and Embedded.
type Initializer interface {
	InitRepo(ctx context.Context, dir string) error
}

// New returns the initializer for backend. Unknown backends are an error.
func New(backend, initialBranch string, runner Runner) (Initializer, error) {
	switch backend {
	case "", BackendCLI:
		return &Command{Runner: runner, InitialBranch: initialBranch}, nil
	case BackendEmbedded:
		return &Embedded{InitialBranch: initialBranch}, nil
	default:
		return nil, fmt.Errorf("unknown git backend %q: supported backends are %q and %q", backend, BackendCLI, BackendEmbedded)
	}
}
