package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeDeclaration describes one profile type contributed by the host
// application or one of its plugins.
type TypeDeclaration struct {
	Type   string `json:"type" yaml:"type"`
	Schema Schema `json:"schema" yaml:"schema"`
}

// Schema is the property schema of a profile type.
type Schema struct {
	Title      string                    `json:"title,omitempty" yaml:"title,omitempty"`
	Properties map[string]PropertySchema `json:"properties" yaml:"properties"`
	Required   []string                  `json:"required,omitempty" yaml:"required,omitempty"`
}

// PropertySchema describes one declared property of a profile type.
type PropertySchema struct {
	Type              TypeTag     `json:"type,omitempty" yaml:"type,omitempty"`
	Secure            bool        `json:"secure,omitempty" yaml:"secure,omitempty"`
	IncludeInTemplate bool        `json:"includeInTemplate,omitempty" yaml:"includeInTemplate,omitempty"`
	Default           interface{} `json:"default,omitempty" yaml:"default,omitempty"`
}

// TemplateValue is the value a freshly built profile carries for this
// property: the declared default when present, otherwise the canonical empty
// value for the property's type.
func (p PropertySchema) TemplateValue() interface{} {
	if p.Default != nil {
		return p.Default
	}
	return EmptyValue(p.Type.Canonical())
}

// TypeTag is a property type tag: either a single type name or a list of
// them. Only the first element is consulted when resolving defaults;
// multi-type properties are not disambiguated further.
type TypeTag []string

// Canonical returns the first tag, or "" when none was declared.
func (t TypeTag) Canonical() string {
	if len(t) == 0 {
		return ""
	}
	return t[0]
}

// UnmarshalYAML accepts either a scalar type name or a sequence of them.
func (t *TypeTag) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*t = TypeTag{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*t = TypeTag(many)
		return nil
	default:
		return fmt.Errorf("property type must be a string or list of strings")
	}
}

// MarshalYAML emits a scalar for single-type tags.
func (t TypeTag) MarshalYAML() (interface{}, error) {
	if len(t) == 1 {
		return t[0], nil
	}
	return []string(t), nil
}

// UnmarshalJSON accepts either a string or an array of strings.
func (t *TypeTag) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*t = TypeTag{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("property type must be a string or list of strings: %w", err)
	}
	*t = TypeTag(many)
	return nil
}

// MarshalJSON emits a bare string for single-type tags.
func (t TypeTag) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}
