package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appkit-labs/appkit/internal/branding"
	"github.com/appkit-labs/appkit/internal/vcs"
	"github.com/appkit-labs/appkit/internal/workspace"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyTypeScript          = "typescript"
	KeyComponentsDirectory = "components_directory"
	KeyPreset              = "preset"
	KeyGitBackend          = "git.backend"
	KeyGitInitialBranch    = "git.initial_branch"

	// keyExecPath is read from the environment only.
	keyExecPath = "npm_execpath"
)

var defaults = map[string]any{
	KeyTypeScript:          false,
	KeyComponentsDirectory: workspace.DefaultComponentsDirectory,
	KeyPreset:              "react",
	KeyGitBackend:          vcs.BackendCLI,
	KeyGitInitialBranch:    "",
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	TypeScript          bool
	ComponentsDirectory string
	Preset              string
	GitBackend          string
	GitInitialBranch    string
	// PackageManagerPath is the value of npm_execpath, if any.
	PackageManagerPath string
}

// Dir returns the path to the config directory (~/.appkit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.appkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv(keyExecPath, keyExecPath); err != nil {
		return fmt.Errorf("binding %s: %w", keyExecPath, err)
	}

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Current returns the loaded settings.
func Current() Settings {
	return Settings{
		TypeScript:          viper.GetBool(KeyTypeScript),
		ComponentsDirectory: viper.GetString(KeyComponentsDirectory),
		Preset:              viper.GetString(KeyPreset),
		GitBackend:          viper.GetString(KeyGitBackend),
		GitInitialBranch:    viper.GetString(KeyGitInitialBranch),
		PackageManagerPath:  viper.GetString(keyExecPath),
	}
}

// Keys returns the settable keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. Only keys
// listed by Keys are accepted. The file keeps only explicitly set values, so
// defaults and environment overrides are never persisted.
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q: valid keys are %s", key, strings.Join(Keys(), ", "))
	}
	if key == KeyGitBackend {
		if _, err := vcs.New(value, "", nil); err != nil {
			return err
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
