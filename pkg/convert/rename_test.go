package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vanecli/vane/pkg/config"
)

func renameFixture() *Result {
	result := NewResult()
	result.Config.Profiles["fruit_apple"] = &config.Profile{
		Type: "fruit",
		Properties: map[string]interface{}{
			"hostname": "example.com",
			"username": "admin",
			"basket":   "red",
		},
		Secure: []string{"pass"},
	}
	result.Config.Profiles["veggie_carrot"] = &config.Profile{
		Type: "veggie",
		Properties: map[string]interface{}{
			"pass": "hunter2",
		},
		Secure: []string{},
	}
	return result
}

func TestRenameProperties(t *testing.T) {
	t.Run("renames deprecated names across profiles", func(t *testing.T) {
		result := renameFixture()
		RenameProperties(result)

		apple := result.Config.Profiles["fruit_apple"]
		assert.Equal(t, "example.com", apple.Properties["host"])
		assert.Equal(t, "admin", apple.Properties["user"])
		assert.NotContains(t, apple.Properties, "hostname")
		assert.NotContains(t, apple.Properties, "username")
		assert.Equal(t, "red", apple.Properties["basket"])

		carrot := result.Config.Profiles["veggie_carrot"]
		assert.Equal(t, "hunter2", carrot.Properties["password"])
		assert.NotContains(t, carrot.Properties, "pass")
	})

	t.Run("renames secure name lists in place", func(t *testing.T) {
		result := renameFixture()
		RenameProperties(result)
		assert.Equal(t, []string{"password"}, result.Config.Profiles["fruit_apple"].Secure)
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		result := renameFixture()
		RenameProperties(result)
		RenameProperties(result)

		apple := result.Config.Profiles["fruit_apple"]
		assert.Equal(t, "example.com", apple.Properties["host"])
		assert.Equal(t, []string{"password"}, apple.Secure)
	})
}
