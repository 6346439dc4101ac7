package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// File permissions used for files written into a workspace.
const FilePerm = 0o644

// OS implements the workspace shell on top of the local file system and
// os/exec.
type OS struct {
	// Stdout receives the output of commands run through RunCommand.
	// Defaults to io.Discard.
	Stdout io.Writer
}

// New returns an OS shell that discards command output.
func New() *OS {
	return &OS{}
}

// Exists reports whether path exists. Stat errors other than "not exist"
// are treated as existing, matching what a subsequent read would see.
func (s *OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// ReadFile returns the contents of path.
func (s *OS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes data to it.
func (s *OS) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// RunCommand runs name with args in dir and waits for it to exit.
// A non-zero exit status is returned as an error that includes the
// command's stderr.
func (s *OS) RunCommand(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s is not available: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := s.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		line := strings.TrimSpace(name + " " + strings.Join(args, " "))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("running %q in %s: %w: %s", line, dir, err, msg)
		}
		return fmt.Errorf("running %q in %s: %w", line, dir, err)
	}
	return nil
}
