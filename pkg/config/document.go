// Package config defines the hierarchical config document and the builder
// that synthesizes one from declared profile schemas.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the on-disk name of the config document.
const DefaultFileName = "config.json"

// Document is the root config entity. It is built fresh per invocation and
// handed to a writer; the builder and converter never read it back.
type Document struct {
	Defaults   map[string]string      `json:"defaults" yaml:"defaults"`
	Profiles   map[string]*Profile    `json:"profiles" yaml:"profiles"`
	Plugins    []string               `json:"plugins" yaml:"plugins"`
	Secure     []string               `json:"secure" yaml:"secure"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	AutoStore  bool                   `json:"autoStore" yaml:"autoStore"`
}

// Profile is one named, typed profile instance. A property name never appears
// both as a key in Properties and as an entry in Secure.
type Profile struct {
	Type       string                 `json:"type" yaml:"type"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Secure     []string               `json:"secure" yaml:"secure"`
}

// NewDocument creates an empty document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		Defaults:   make(map[string]string),
		Profiles:   make(map[string]*Profile),
		Plugins:    []string{},
		Secure:     []string{},
		Properties: make(map[string]interface{}),
	}
}

// NewProfile creates an empty profile of the given type.
func NewProfile(profileType string) *Profile {
	return &Profile{
		Type:       profileType,
		Properties: make(map[string]interface{}),
		Secure:     []string{},
	}
}

// HasSecure reports whether name is listed in the profile's secure list.
func (p *Profile) HasSecure(name string) bool {
	for _, s := range p.Secure {
		if s == name {
			return true
		}
	}
	return false
}

// ProfileKey derives the composite document key for a converted v1 profile.
func ProfileKey(profileType, profileName string) string {
	return fmt.Sprintf("%s_%s", profileType, profileName)
}

// Load reads a config document from path. A missing file yields a fresh
// empty document, matching how the CLI bootstraps a new installation.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, err
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse config document: %w", err)
	}
	return doc, nil
}

// Save writes the document to path atomically (temp file + rename), 0600.
func Save(doc *Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config document: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// DefaultPath returns the conventional document location, honoring
// VANE_CLI_CONFIG when set.
func DefaultPath() string {
	if envPath, ok := os.LookupEnv("VANE_CLI_CONFIG"); ok && envPath != "" {
		return envPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vane", DefaultFileName)
	}
	return filepath.Join(home, ".vane", DefaultFileName)
}
