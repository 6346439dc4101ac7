package workspace

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/appkit-labs/appkit/internal/manifest"
)

const gitignoreFile = ".gitignore"

// gitignoreTemplate is passed through the Formatter before it is written.
const gitignoreTemplate = `
    node_modules
    .DS_Store
    dist
    dist-ssr
    *.local
    `

// Commit writes the workspace to disk: it initializes a git repository,
// writes .gitignore, and merges the generated manifest into package.json.
// Steps run in order and the first failure is returned; nothing already
// written is rolled back. A workspace can be committed only once.
func (w *Workspace) Commit(ctx context.Context) error {
	if w.committed {
		return ErrAlreadyCommitted
	}
	w.committed = true

	if err := w.initRepo(ctx); err != nil {
		return err
	}

	deps, devDeps := w.partition()
	pkg := &manifest.Package{
		Name:            w.Name(),
		Scripts:         w.scripts(),
		Dependencies:    deps,
		DevDependencies: devDeps,
		Prettier:        w.prettierConfig(),
	}

	return w.writeManifest(pkg)
}

func (w *Workspace) initRepo(ctx context.Context) error {
	if err := w.repo.InitRepo(ctx, w.root); err != nil {
		return err
	}
	fmt.Fprintf(w.out, "Initialized git repository in %s\n", w.root)

	content, err := w.formatter.Format(gitignoreTemplate)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", gitignoreFile, err)
	}

	path := filepath.Join(w.root, gitignoreFile)
	if err := w.shell.WriteFile(path, []byte(content)); err != nil {
		return err
	}
	fmt.Fprintf(w.out, "Wrote %s\n", gitignoreFile)
	return nil
}

// writeManifest lays pkg over the existing package.json, if any, and writes
// the result back.
func (w *Workspace) writeManifest(pkg *manifest.Package) error {
	path := filepath.Join(w.root, manifest.FileName)

	existing := manifest.Document{}
	if w.shell.Exists(path) {
		data, err := w.shell.ReadFile(path)
		if err != nil {
			return err
		}
		existing, err = manifest.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	merged := manifest.Merge(existing, pkg.Document())

	data, err := manifest.Marshal(merged)
	if err != nil {
		return err
	}
	if err := w.shell.WriteFile(path, data); err != nil {
		return err
	}
	fmt.Fprintf(w.out, "Wrote %s\n", manifest.FileName)
	return nil
}
