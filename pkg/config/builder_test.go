package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderDecls() []TypeDeclaration {
	return []TypeDeclaration{
		{
			Type: "base",
			Schema: Schema{
				Properties: map[string]PropertySchema{
					"host":     {Type: TypeTag{"string"}, IncludeInTemplate: true},
					"port":     {Type: TypeTag{"number"}, Default: 443, IncludeInTemplate: true},
					"user":     {Type: TypeTag{"string"}, Secure: true, IncludeInTemplate: true},
					"password": {Type: TypeTag{"string"}, Secure: true, IncludeInTemplate: true},
				},
			},
		},
		{
			Type: "fruit",
			Schema: Schema{
				Properties: map[string]PropertySchema{
					"host":   {Type: TypeTag{"string"}, IncludeInTemplate: true},
					"basket": {Type: TypeTag{"string"}, IncludeInTemplate: true},
					"hidden": {Type: TypeTag{"string"}},
				},
			},
		},
		{
			Type: "veggie",
			Schema: Schema{
				Properties: map[string]PropertySchema{
					"host": {Type: TypeTag{"string"}, IncludeInTemplate: true},
				},
			},
		},
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	t.Run("populates template values and defaults", func(t *testing.T) {
		doc, err := Build(ctx, builderDecls(), BuildOptions{PopulateProperties: true})
		require.NoError(t, err)

		assert.True(t, doc.AutoStore)
		require.Contains(t, doc.Profiles, "fruit")
		assert.Equal(t, "", doc.Profiles["fruit"].Properties["basket"])
		assert.Equal(t, 443, doc.Profiles["base"].Properties["port"])
		assert.Equal(t, "fruit", doc.Defaults["fruit"])
		assert.Equal(t, "base", doc.Defaults["base"])
	})

	t.Run("excludes non-template properties", func(t *testing.T) {
		doc, err := Build(ctx, builderDecls(), BuildOptions{PopulateProperties: true})
		require.NoError(t, err)
		assert.NotContains(t, doc.Profiles["fruit"].Properties, "hidden")
	})

	t.Run("secure properties are listed without values", func(t *testing.T) {
		doc, err := Build(ctx, builderDecls(), BuildOptions{PopulateProperties: true})
		require.NoError(t, err)

		base := doc.Profiles["base"]
		assert.ElementsMatch(t, []string{"user", "password"}, base.Secure)
		assert.NotContains(t, base.Properties, "user")
		assert.NotContains(t, base.Properties, "password")
	})

	t.Run("no population leaves properties and defaults empty", func(t *testing.T) {
		doc, err := Build(ctx, builderDecls(), BuildOptions{})
		require.NoError(t, err)

		assert.Empty(t, doc.Profiles["fruit"].Properties)
		assert.Empty(t, doc.Defaults)
		// Secure names are still listed.
		assert.ElementsMatch(t, []string{"user", "password"}, doc.Profiles["base"].Secure)
		assert.True(t, doc.AutoStore)
	})

	t.Run("hoists shared defaults into base", func(t *testing.T) {
		doc, err := Build(ctx, builderDecls(), BuildOptions{
			BaseProfileType:    "base",
			PopulateProperties: true,
		})
		require.NoError(t, err)

		// host is "" in fruit and veggie; it hoists into base.
		assert.Contains(t, doc.Profiles["base"].Properties, "host")
		assert.NotContains(t, doc.Profiles["fruit"].Properties, "host")
		assert.NotContains(t, doc.Profiles["veggie"].Properties, "host")
	})

	t.Run("value-back fills hoisted and secure base properties", func(t *testing.T) {
		var asked []string
		doc, err := Build(ctx, builderDecls(), BuildOptions{
			BaseProfileType:    "base",
			PopulateProperties: true,
			GetValueBack: func(ctx context.Context, name string, prop PropertySchema) (interface{}, error) {
				asked = append(asked, name)
				switch name {
				case "host":
					return "live.example.com", nil
				case "user":
					return "admin", nil
				default:
					return nil, nil
				}
			},
		})
		require.NoError(t, err)

		// host was hoisted; user and password are secure-in-template.
		assert.Equal(t, []string{"host", "password", "user"}, asked)

		base := doc.Profiles["base"]
		assert.Equal(t, "live.example.com", base.Properties["host"])
		// A callback-sourced value lands in plain properties even though the
		// name is also listed secure; a later step re-secures it.
		assert.Equal(t, "admin", base.Properties["user"])
		assert.Contains(t, base.Secure, "user")
		// nil return skips the property.
		assert.NotContains(t, base.Properties, "password")
	})

	t.Run("value-back errors propagate", func(t *testing.T) {
		boom := errors.New("prompt failed")
		_, err := Build(ctx, builderDecls(), BuildOptions{
			BaseProfileType:    "base",
			PopulateProperties: true,
			GetValueBack: func(ctx context.Context, name string, prop PropertySchema) (interface{}, error) {
				return nil, boom
			},
		})
		assert.ErrorIs(t, err, boom)
	})
}
