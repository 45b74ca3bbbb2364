package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProfileExt is the file extension of v1 profile files.
const ProfileExt = ".yaml"

// Meta is the per-type meta file, recording the type's default profile.
type Meta struct {
	DefaultProfile string `yaml:"defaultProfile"`
}

// ProfileSource lists and reads v1 profile files. The OS-backed
// implementation is DirSource; tests substitute fakes.
type ProfileSource interface {
	// ListTypes returns the profile-type subdirectories under root.
	ListTypes(root string) ([]string, error)

	// ListNames returns profile names in typeDir carrying ext, excluding
	// the file with the given basename (the meta file).
	ListNames(typeDir, ext, excludeBasename string) ([]string, error)

	// ReadProfile parses a profile property file.
	ReadProfile(path, profileType string) (map[string]interface{}, error)

	// ReadMeta parses a per-type meta file.
	ReadMeta(path string) (*Meta, error)
}

// MetaBasename returns the basename (without extension) of a type's meta file.
func MetaBasename(profileType string) string {
	return fmt.Sprintf("%s_meta", profileType)
}

// DirSource reads v1 profiles from the local filesystem.
type DirSource struct{}

// ListTypes returns the subdirectory names under root, sorted.
func (DirSource) ListTypes(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var types []string
	for _, entry := range entries {
		if entry.IsDir() {
			types = append(types, entry.Name())
		}
	}
	sort.Strings(types)
	return types, nil
}

// ListNames returns the profile names (basenames without ext) in typeDir,
// sorted, excluding the meta file.
func (DirSource) ListNames(typeDir, ext, excludeBasename string) ([]string, error) {
	entries, err := os.ReadDir(typeDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if name == excludeBasename {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ReadProfile parses a YAML profile file into a property map.
func (DirSource) ReadProfile(path, profileType string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	props := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("failed to parse %s profile %s: %w", profileType, filepath.Base(path), err)
	}
	return props, nil
}

// ReadMeta parses a per-type meta file.
func (DirSource) ReadMeta(path string) (*Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse meta file %s: %w", filepath.Base(path), err)
	}
	return &meta, nil
}
