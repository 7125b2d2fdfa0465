// Package config holds application configuration backed by viper.
//
// Precedence: PULSE_* environment variables > config.yaml > defaults.
// The config file is discovered by walking up from the working directory
// to the nearest .pulse/config.yaml, then falling back to the user
// config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppDirName is the per-project directory holding config and database.
const AppDirName = ".pulse"

// DefaultNamespace prefixes every collection key. Overridable so
// multiple namespaces (and tests) can share one storage medium.
const DefaultNamespace = "saibalaji"

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	// Walk up from CWD to find the project .pulse/config.yaml so
	// commands work from subdirectories.
	configFileSet := false
	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			configPath := filepath.Join(dir, AppDirName, "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
				break
			}
		}
	}

	// Fall back to the user config directory (~/.config/pulse/config.yaml).
	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "pulse", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Environment variables take precedence over the config file,
	// e.g. PULSE_NAMESPACE, PULSE_DATABASE, PULSE_NO_DB, PULSE_ACTOR.
	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults()

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

func setDefaults() {
	v.SetDefault("namespace", DefaultNamespace)
	v.SetDefault("database", filepath.Join(AppDirName, "pulse.db"))
	v.SetDefault("no-db", false)
	v.SetDefault("json", false)
	v.SetDefault("actor", "")
}

func ensureInitialized() {
	if v == nil {
		v = viper.New()
		setDefaults()
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	ensureInitialized()
	return v.GetString(key)
}

// GetBool returns a boolean config value.
func GetBool(key string) bool {
	ensureInitialized()
	return v.GetBool(key)
}

// Set overrides a config value for the current process (used by flags).
func Set(key string, value interface{}) {
	ensureInitialized()
	v.Set(key, value)
}

// Namespace returns the configured collection key prefix.
func Namespace() string { return GetString("namespace") }

// DatabasePath returns the configured sqlite database path.
func DatabasePath() string { return GetString("database") }

// Actor returns who is performing changes, for requestedBy/reviewedBy
// fields when the caller does not say otherwise.
func Actor() string { return GetString("actor") }

// fileConfig is the shape written to a fresh config.yaml by WriteDefault.
type fileConfig struct {
	Namespace string `yaml:"namespace"`
	Database  string `yaml:"database"`
	Actor     string `yaml:"actor,omitempty"`
}

// WriteDefault writes a commented default config.yaml into dir,
// refusing to clobber an existing file.
func WriteDefault(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath, fmt.Errorf("config file already exists: %s", configPath)
	}

	data, err := yaml.Marshal(fileConfig{
		Namespace: DefaultNamespace,
		Database:  filepath.Join(dir, "pulse.db"),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	header := "# project pulse configuration\n# Environment variables with a PULSE_ prefix override these values.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return configPath, nil
}
