package preset

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed presets.yaml
var rawPresets []byte

// Dependency is one entry of a preset or a parsed command-line spec.
type Dependency struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version,omitempty"`
	Dev     bool   `yaml:"dev,omitempty"`
}

// Preset is a named dependency set.
type Preset struct {
	Name         string       `yaml:"-"`
	Description  string       `yaml:"description"`
	Dependencies []Dependency `yaml:"dependencies"`
}

type presetFile struct {
	Presets map[string]*Preset `yaml:"presets"`
}

var (
	loadOnce sync.Once
	presets  map[string]*Preset
	loadErr  error
)

func load() (map[string]*Preset, error) {
	loadOnce.Do(func() {
		var f presetFile
		if err := yaml.Unmarshal(rawPresets, &f); err != nil {
			loadErr = fmt.Errorf("parsing embedded presets: %w", err)
			return
		}
		for name, p := range f.Presets {
			p.Name = name
			for _, d := range p.Dependencies {
				if err := ValidateVersion(d.Version); err != nil {
					loadErr = fmt.Errorf("preset %s: %s: %w", name, d.Name, err)
					return
				}
			}
		}
		presets = f.Presets
	})
	return presets, loadErr
}

// Lookup returns the preset called name.
func Lookup(name string) (*Preset, error) {
	all, err := load()
	if err != nil {
		return nil, err
	}
	p, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q: available presets are %s", name, strings.Join(names(all), ", "))
	}
	return p, nil
}

// Names returns the available preset names, sorted.
func Names() []string {
	all, err := load()
	if err != nil {
		return nil
	}
	return names(all)
}

func names(all map[string]*Preset) []string {
	out := make([]string, 0, len(all))
	for name := range all {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ParseDependency parses "name", "name@range", "@scope/name", or
// "@scope/name@range". The range must be a valid semver constraint or a
// dist-tag such as "latest" or "next".
func ParseDependency(spec string, dev bool) (Dependency, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Dependency{}, fmt.Errorf("empty dependency spec")
	}

	name, version := spec, ""
	// A leading @ belongs to the scope, not the version separator.
	if i := strings.LastIndex(spec, "@"); i > 0 {
		name, version = spec[:i], spec[i+1:]
		if version == "" {
			return Dependency{}, fmt.Errorf("invalid dependency %q: empty version after @", spec)
		}
	}

	if strings.HasPrefix(name, "@") && !strings.Contains(name, "/") {
		return Dependency{}, fmt.Errorf("invalid dependency %q: scoped name must be @scope/name", spec)
	}

	if err := ValidateVersion(version); err != nil {
		return Dependency{}, fmt.Errorf("invalid dependency %q: %w", spec, err)
	}

	return Dependency{Name: name, Version: version, Dev: dev}, nil
}

// ValidateVersion accepts an empty version, a dist-tag, or a semver range.
func ValidateVersion(version string) error {
	if version == "" || isDistTag(version) {
		return nil
	}
	if _, err := semver.NewConstraint(version); err != nil {
		return fmt.Errorf("version %q is not a valid range: %w", version, err)
	}
	return nil
}

// isDistTag reports whether v looks like an npm dist-tag (letters only).
func isDistTag(v string) bool {
	for _, r := range v {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
