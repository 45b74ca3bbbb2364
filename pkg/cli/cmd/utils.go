package cmd

import (
	"github.com/vanecli/vane/internal/config"
	cfgdoc "github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/log"
	"github.com/vanecli/vane/pkg/vault"
)

// loadSettings resolves tool settings for the current invocation.
func loadSettings() *config.Settings {
	return config.Load()
}

// newLogger builds the command logger from settings and the --verbose flag.
func newLogger(settings *config.Settings) log.Logger {
	level := log.ParseLevel(settings.LogLevel)
	if verbose {
		level = log.DebugLevel
	}

	var formatter log.Formatter = log.NewTextFormatter()
	if settings.LogFormat == "json" {
		formatter = &log.JSONFormatter{}
	}
	return log.NewLogger(log.WithLevel(level), log.WithFormatter(formatter))
}

// documentPath resolves the config document location, honoring the global
// --config flag.
func documentPath(settings *config.Settings) string {
	if cfgFile != "" {
		return cfgFile
	}
	return settings.DocumentPath()
}

// openVault opens the default badger-backed vault.
func openVault(settings *config.Settings, logger log.Logger) (vault.Vault, error) {
	key, err := settings.VaultKey()
	if err != nil {
		return nil, err
	}
	return vault.OpenBadgerVault(settings.VaultPath(), key, logger)
}

// secureDotPath is the document-level reference to a secure profile property.
func secureDotPath(profileKey, property string) string {
	return "profiles." + profileKey + ".properties." + property
}

// loadDocument reads the active config document.
func loadDocument(settings *config.Settings) (*cfgdoc.Document, error) {
	return cfgdoc.Load(documentPath(settings))
}
