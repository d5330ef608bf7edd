package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Kubernetes
	Kubectl    string `yaml:"kubectl" validate:"required"`
	Kubeconfig string `yaml:"kubeconfig"`
	Context    string `yaml:"context"`

	// Preferences. An empty Namespace means all namespaces.
	Namespace          string   `yaml:"namespace"`
	Tail               int      `yaml:"tail" validate:"gte=0"`
	ExecCommand        string   `yaml:"exec_command" validate:"required"`
	DebugImage         string   `yaml:"debug_image" validate:"required"`
	DebugNamespace     string   `yaml:"debug_namespace" validate:"required"`
	Shells             []string `yaml:"shells" validate:"min=1,dive,required"`
	ConfirmDestructive bool     `yaml:"confirm_destructive"`

	// Output
	NoColor   bool   `yaml:"no_color"`
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Path of the file the values were read from, empty when none was found
	Path string `yaml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Kubectl:        "kubectl",
		Tail:           100,
		ExecCommand:    "/bin/sh",
		DebugImage:     "busybox",
		DebugNamespace: "default",
		Shells:         []string{"/bin/bash", "/bin/sh"},
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// NewConfig loads configuration from, in increasing precedence: defaults, the
// config file ($KDBG_CONFIG or ~/.kdbg/config.yaml), environment variables.
// Flags are applied by the caller, which then calls Validate.
func NewConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// DefaultPath returns the config file location
func DefaultPath() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".kdbg", "config.yaml"), nil
}

// Load reads path over the defaults and applies the environment. A missing
// file is not an error; the file is never created.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envKubectl); v != "" {
		c.Kubectl = v
	}
	if v := os.Getenv(envContext); v != "" {
		c.Context = v
	}
	if v := os.Getenv(envNamespace); v != "" {
		c.Namespace = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(envLogFormat); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if NoColorFromEnv() {
		c.NoColor = true
	}
}

// NoColorFromEnv reports whether the environment asks for plain output
func NoColorFromEnv() bool {
	return os.Getenv(envNoColor) != "" || os.Getenv(envNoColorFallback) != ""
}
