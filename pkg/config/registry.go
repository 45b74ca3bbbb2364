package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseProfileType is the distinguished profile type whose properties are
// shared by sibling profile types.
const BaseProfileType = "base"

// BaseDeclaration is the built-in declaration of the base profile type.
func BaseDeclaration() TypeDeclaration {
	return TypeDeclaration{
		Type: BaseProfileType,
		Schema: Schema{
			Title: "Base connection profile",
			Properties: map[string]PropertySchema{
				"host": {
					Type:              TypeTag{"string"},
					IncludeInTemplate: true,
				},
				"port": {
					Type:              TypeTag{"number"},
					IncludeInTemplate: true,
				},
				"user": {
					Type:              TypeTag{"string"},
					Secure:            true,
					IncludeInTemplate: true,
				},
				"password": {
					Type:              TypeTag{"string"},
					Secure:            true,
					IncludeInTemplate: true,
				},
				"rejectUnauthorized": {
					Type:              TypeTag{"boolean"},
					Default:           true,
					IncludeInTemplate: true,
				},
				"tokenType": {
					Type: TypeTag{"string"},
				},
				"tokenValue": {
					Type:   TypeTag{"string"},
					Secure: true,
				},
			},
		},
	}
}

// LoadDeclarations reads plugin-contributed profile-type declarations from
// every .yaml file under dir, sorted by file name for a stable build order.
// A missing directory yields no declarations.
func LoadDeclarations(dir string) ([]TypeDeclaration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".yaml") || strings.HasSuffix(entry.Name(), ".yml") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var decls []TypeDeclaration
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var decl TypeDeclaration
		if err := yaml.Unmarshal(data, &decl); err != nil {
			return nil, fmt.Errorf("failed to parse schema file %s: %w", name, err)
		}
		if decl.Type == "" {
			return nil, fmt.Errorf("schema file %s declares no profile type", name)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}
