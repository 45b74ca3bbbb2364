// Package config loads CLI-tool settings (not the managed config document).
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vanecli/vane/pkg/crypto"
)

// Settings are the tool's own knobs, resolved from flags, env (VANE_ prefix)
// and the optional settings file.
type Settings struct {
	// HomeDir is the vane home directory (profiles, schemas, vault, config).
	HomeDir string

	// LogLevel is one of debug|info|warn|error.
	LogLevel string

	// LogFormat is text or json.
	LogFormat string
}

// Load resolves settings from viper's current state.
func Load() *Settings {
	s := &Settings{
		HomeDir:   viper.GetString("home"),
		LogLevel:  viper.GetString("log.level"),
		LogFormat: viper.GetString("log.format"),
	}
	if s.HomeDir == "" {
		s.HomeDir = DefaultHomeDir()
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
	return s
}

// DefaultHomeDir returns ~/.vane, falling back to a relative path when the
// home directory cannot be resolved.
func DefaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vane"
	}
	return filepath.Join(home, ".vane")
}

// DocumentPath is the location of the managed config document.
func (s *Settings) DocumentPath() string {
	if envPath, ok := os.LookupEnv("VANE_CLI_CONFIG"); ok && envPath != "" {
		return envPath
	}
	return filepath.Join(s.HomeDir, "config.json")
}

// ProfilesDir is the root of the legacy v1 profile tree.
func (s *Settings) ProfilesDir() string {
	return filepath.Join(s.HomeDir, "profiles")
}

// SchemasDir holds plugin-contributed profile-type schema files.
func (s *Settings) SchemasDir() string {
	return filepath.Join(s.HomeDir, "schemas")
}

// VaultPath is the vault database directory.
func (s *Settings) VaultPath() string {
	return filepath.Join(s.HomeDir, "vault")
}

// VaultKeyPath is the on-disk vault key file, used when VANE_VAULT_KEY is
// unset.
func (s *Settings) VaultKeyPath() string {
	return filepath.Join(s.HomeDir, "vault.key")
}

// VaultKey loads or creates the vault master key.
func (s *Settings) VaultKey() ([]byte, error) {
	return crypto.LoadOrGenerateKey(crypto.DefaultKeyEnvVar, s.VaultKeyPath())
}
