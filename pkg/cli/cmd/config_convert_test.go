package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgdoc "github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/vault"
)

func TestSecureDotPath(t *testing.T) {
	assert.Equal(t, "profiles.fruit_apple.properties.password", secureDotPath("fruit_apple", "password"))
}

func TestExternalizeSecureValues(t *testing.T) {
	ctx := context.Background()

	t.Run("moves secure values into the vault", func(t *testing.T) {
		doc := cfgdoc.NewDocument()
		profile := cfgdoc.NewProfile("fruit")
		profile.Properties["host"] = "example.com"
		profile.Properties["password"] = "hunter2"
		profile.Secure = []string{"password"}
		doc.Profiles["fruit_apple"] = profile

		v := vault.NewMemoryVault()
		require.NoError(t, externalizeSecureValues(ctx, doc, v))

		stored, found, err := v.Load(ctx, "profiles.fruit_apple.properties.password")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "hunter2", stored)

		assert.NotContains(t, profile.Properties, "password")
		assert.Equal(t, "example.com", profile.Properties["host"])
		assert.Contains(t, doc.Secure, "profiles.fruit_apple.properties.password")
	})

	t.Run("skips secure names with no plaintext value", func(t *testing.T) {
		doc := cfgdoc.NewDocument()
		profile := cfgdoc.NewProfile("fruit")
		profile.Secure = []string{"password"}
		doc.Profiles["fruit_apple"] = profile

		v := vault.NewMemoryVault()
		require.NoError(t, externalizeSecureValues(ctx, doc, v))

		_, found, err := v.Load(ctx, "profiles.fruit_apple.properties.password")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, doc.Secure)
	})
}
