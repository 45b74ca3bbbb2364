package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyValue(t *testing.T) {
	assert.Equal(t, "", EmptyValue("string"))
	assert.Equal(t, 0, EmptyValue("number"))
	assert.Equal(t, map[string]interface{}{}, EmptyValue("object"))
	assert.Equal(t, []interface{}{}, EmptyValue("array"))
	assert.Equal(t, false, EmptyValue("boolean"))
	assert.Nil(t, EmptyValue("unknown"))
	assert.Nil(t, EmptyValue(""))
}

func TestTypeTagCanonical(t *testing.T) {
	// Only the first element of a multi-type tag is consulted.
	assert.Equal(t, []interface{}{}, EmptyValue(TypeTag{"array", "string"}.Canonical()))
	assert.Equal(t, "", EmptyValue(TypeTag{"string"}.Canonical()))
	assert.Nil(t, EmptyValue(TypeTag{}.Canonical()))
}

func TestTemplateValue(t *testing.T) {
	t.Run("declared default wins", func(t *testing.T) {
		prop := PropertySchema{Type: TypeTag{"number"}, Default: 8080}
		assert.Equal(t, 8080, prop.TemplateValue())
	})

	t.Run("falls back to type-based empty value", func(t *testing.T) {
		prop := PropertySchema{Type: TypeTag{"boolean"}}
		assert.Equal(t, false, prop.TemplateValue())
	})

	t.Run("no type no default", func(t *testing.T) {
		assert.Nil(t, PropertySchema{}.TemplateValue())
	})
}
