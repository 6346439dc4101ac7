package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appkit-labs/appkit/internal/config"
)

func embeddedSettings() config.Settings {
	return config.Settings{
		Preset:           "react",
		GitBackend:       "embedded",
		GitInitialBranch: "main",
	}
}

func readPackageJSON(t *testing.T, dir string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatalf("reading package.json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing package.json: %v", err)
	}
	return doc
}

func TestRunNewWithPreset(t *testing.T) {
	parent := t.TempDir()
	var out bytes.Buffer

	err := runNew(context.Background(), &out, newOptions{
		Name:     "storefront",
		Dir:      parent,
		Preset:   "react",
		Deps:     []string{"react@^17.0.2"},
		Settings: embeddedSettings(),
	})
	if err != nil {
		t.Fatalf("runNew() error: %v", err)
	}

	root := filepath.Join(parent, "storefront")
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		t.Errorf(".git not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".gitignore")); err != nil {
		t.Errorf(".gitignore not created: %v", err)
	}

	doc := readPackageJSON(t, root)
	if doc["name"] != "storefront" {
		t.Errorf("name = %v, want storefront", doc["name"])
	}
	if doc["prettier"] != "@shopify/prettier-config" {
		t.Errorf("prettier = %v", doc["prettier"])
	}

	deps := doc["dependencies"].(map[string]any)
	if deps["react"] != "^17.0.2" {
		t.Errorf("react = %v, want the --dep version to win over the preset", deps["react"])
	}
	devDeps := doc["devDependencies"].(map[string]any)
	if devDeps["vite"] != "latest" {
		t.Errorf("vite = %v, want latest", devDeps["vite"])
	}

	scripts := doc["scripts"].(map[string]any)
	if !strings.Contains(scripts["lint"].(string), " && stylelint") {
		t.Errorf("lint = %v, want eslint && stylelint", scripts["lint"])
	}

	if !strings.Contains(out.String(), "npm install") {
		t.Errorf("next steps missing npm install:\n%s", out.String())
	}
}

func TestRunNewMergesExistingManifest(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "blog")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	existing := `{"license":"MIT","private":true,"scripts":{"test":"vitest"}}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	settings := embeddedSettings()
	settings.PackageManagerPath = "/usr/local/lib/node_modules/yarn/bin/yarn.js"

	var out bytes.Buffer
	err := runNew(context.Background(), &out, newOptions{
		Name:     "blog",
		Dir:      parent,
		DevDeps:  []string{"vite"},
		Settings: settings,
	})
	if err != nil {
		t.Fatalf("runNew() error: %v", err)
	}

	doc := readPackageJSON(t, root)
	if doc["license"] != "MIT" || doc["private"] != true {
		t.Errorf("existing keys lost: %v", doc)
	}
	scripts := doc["scripts"].(map[string]any)
	if scripts["test"] != "vitest" || scripts["dev"] != "vite" {
		t.Errorf("scripts = %v", scripts)
	}
	if _, ok := scripts["lint"]; ok {
		t.Error("lint script present without linters")
	}
	if !strings.Contains(out.String(), "yarn dev") {
		t.Errorf("next steps should use yarn:\n%s", out.String())
	}
}

func TestRunNewTypeScript(t *testing.T) {
	settings := embeddedSettings()
	settings.TypeScript = true
	settings.ComponentsDirectory = "./app/components"

	var out bytes.Buffer
	err := runNew(context.Background(), &out, newOptions{
		Name:     "dash",
		Dir:      t.TempDir(),
		Settings: settings,
	})
	if err != nil {
		t.Fatalf("runNew() error: %v", err)
	}
	if !strings.Contains(out.String(), "(TypeScript)") {
		t.Errorf("output missing TypeScript marker:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "./app/components") {
		t.Errorf("output missing components directory:\n%s", out.String())
	}
}

func TestRunNewRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts newOptions
	}{
		{name: "bad name", opts: newOptions{Name: "My App"}},
		{name: "bad dep", opts: newOptions{Name: "app", Deps: []string{"react@"}}},
		{name: "unknown preset", opts: newOptions{Name: "app", Preset: "angular"}},
		{name: "unknown backend", opts: newOptions{Name: "app", Settings: config.Settings{GitBackend: "svn"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Dir = t.TempDir()
			if err := runNew(context.Background(), &bytes.Buffer{}, tt.opts); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"app", "my-app", "app2", "a.b_c"} {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) error: %v", name, err)
		}
	}
	for _, name := range []string{"", "-app", "App", "my app", "../x"} {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) expected error", name)
		}
	}
}
