package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTypeTagYAML(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		var prop PropertySchema
		require.NoError(t, yaml.Unmarshal([]byte("type: string\nsecure: true"), &prop))
		assert.Equal(t, TypeTag{"string"}, prop.Type)
		assert.True(t, prop.Secure)
	})

	t.Run("sequence", func(t *testing.T) {
		var prop PropertySchema
		require.NoError(t, yaml.Unmarshal([]byte("type: [array, string]"), &prop))
		assert.Equal(t, TypeTag{"array", "string"}, prop.Type)
		assert.Equal(t, "array", prop.Type.Canonical())
	})

	t.Run("mapping rejected", func(t *testing.T) {
		var prop PropertySchema
		assert.Error(t, yaml.Unmarshal([]byte("type: {bad: shape}"), &prop))
	})

	t.Run("single tag marshals as scalar", func(t *testing.T) {
		out, err := yaml.Marshal(PropertySchema{Type: TypeTag{"string"}})
		require.NoError(t, err)
		assert.Contains(t, string(out), "type: string")
	})
}

func TestTypeTagJSON(t *testing.T) {
	var prop PropertySchema
	require.NoError(t, json.Unmarshal([]byte(`{"type":"number"}`), &prop))
	assert.Equal(t, TypeTag{"number"}, prop.Type)

	require.NoError(t, json.Unmarshal([]byte(`{"type":["boolean","string"]}`), &prop))
	assert.Equal(t, "boolean", prop.Type.Canonical())

	out, err := json.Marshal(PropertySchema{Type: TypeTag{"string"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string"}`, string(out))
}

func TestLoadDeclarations(t *testing.T) {
	t.Run("missing directory yields none", func(t *testing.T) {
		decls, err := LoadDeclarations(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, decls)
	})

	t.Run("reads sorted yaml files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b-veggie.yaml"), []byte(`
type: veggie
schema:
  properties:
    host:
      type: string
      includeInTemplate: true
`), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a-fruit.yaml"), []byte(`
type: fruit
schema:
  properties:
    basket:
      type: string
      secure: true
`), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0600))

		decls, err := LoadDeclarations(dir)
		require.NoError(t, err)
		require.Len(t, decls, 2)
		assert.Equal(t, "fruit", decls[0].Type)
		assert.Equal(t, "veggie", decls[1].Type)
		assert.True(t, decls[0].Schema.Properties["basket"].Secure)
	})

	t.Run("missing type is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("schema: {properties: {}}"), 0600))
		_, err := LoadDeclarations(dir)
		assert.Error(t, err)
	})
}
