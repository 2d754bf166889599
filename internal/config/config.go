package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Identity feeds the terminal's whoami/contact output. All fields are plain
// display strings.
type Identity struct {
	Name       string `yaml:"name"`
	Role       string `yaml:"role"`
	Philosophy string `yaml:"philosophy"`
	Email      string `yaml:"email"`
	GitHub     string `yaml:"github"`
	LinkedIn   string `yaml:"linkedin"`
}

type Config struct {
	// VaultPath overrides the default vault location when set.
	VaultPath string   `yaml:"vault_path"`
	Identity  Identity `yaml:"identity"`
}

// Default returns the built-in configuration used when no config file
// exists. The identity strings mirror the site's originals.
func Default() Config {
	return Config{
		Identity: Identity{
			Name:       "Ali Ahmed",
			Role:       "Security Researcher",
			Philosophy: "Do not seek to follow in the footsteps of the wise. Seek what they sought.",
			Email:      "ali@example.com",
			GitHub:     "github.com/yourusername",
			LinkedIn:   "linkedin.com/in/yourusername",
		},
	}
}

// DefaultPath returns ~/.ronin/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".ronin", "config.yaml"), nil
}

// Load reads the YAML config at path over the defaults, so a partial file
// only overrides what it names. A missing file is not an error; a malformed
// one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
