package convert

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanecli/vane/pkg/vault"
)

// fakeSource serves v1 profiles from memory.
type fakeSource struct {
	profiles map[string]map[string]map[string]interface{} // type -> name -> props
	readErrs map[string]error                             // "type/name" -> error
	metas    map[string]*Meta                             // type -> meta
	metaErrs map[string]error                             // type -> error
}

func (f *fakeSource) ListTypes(root string) ([]string, error) {
	var types []string
	for profileType := range f.profiles {
		types = append(types, profileType)
	}
	sort.Strings(types)
	return types, nil
}

func (f *fakeSource) ListNames(typeDir, ext, excludeBasename string) ([]string, error) {
	var names []string
	for name := range f.profiles[filepath.Base(typeDir)] {
		if name != excludeBasename {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeSource) ReadProfile(path, profileType string) (map[string]interface{}, error) {
	name := strings.TrimSuffix(filepath.Base(path), ProfileExt)
	if err, ok := f.readErrs[profileType+"/"+name]; ok {
		return nil, err
	}
	props := make(map[string]interface{})
	for k, v := range f.profiles[profileType][name] {
		props[k] = v
	}
	return props, nil
}

func (f *fakeSource) ReadMeta(path string) (*Meta, error) {
	profileType := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(path), ProfileExt), "_meta")
	if err, ok := f.metaErrs[profileType]; ok {
		return nil, err
	}
	if meta, ok := f.metas[profileType]; ok {
		return meta, nil
	}
	return nil, errors.New("no meta file")
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("converts profiles and records defaults", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"apple":  {"hostname": "example.com", "color": "red"},
					"banana": {"color": "yellow"},
				},
			},
			metas: map[string]*Meta{
				"fruit": {DefaultProfile: "apple"},
			},
		}
		converter := NewConverter(source, vault.NewMemoryVault(), nil)

		result, err := converter.Convert(ctx, "/profiles")
		require.NoError(t, err)

		assert.Equal(t, []string{"apple", "banana"}, result.Converted["fruit"])
		assert.Empty(t, result.Failures)
		assert.True(t, result.Config.AutoStore)
		assert.Equal(t, "fruit_apple", result.Config.Defaults["fruit"])

		// Renamer ran over the whole result.
		apple := result.Config.Profiles["fruit_apple"]
		require.NotNil(t, apple)
		assert.Equal(t, "example.com", apple.Properties["host"])
		assert.NotContains(t, apple.Properties, "hostname")
	})

	t.Run("resolves vault sentinels into secure properties", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"apple": {
						"token": vault.SentinelPrefix + " fruit_apple_token",
						"color": "red",
					},
				},
			},
			metas: map[string]*Meta{"fruit": {}},
		}
		v := vault.NewMemoryVault()
		require.NoError(t, v.Store(ctx, vault.Key("fruit", "apple", "token"), `"s3cret"`))

		result, err := NewConverter(source, v, nil).Convert(ctx, "/profiles")
		require.NoError(t, err)

		apple := result.Config.Profiles["fruit_apple"]
		assert.Equal(t, "s3cret", apple.Properties["token"])
		assert.Equal(t, []string{"token"}, apple.Secure)
	})

	t.Run("missing secret drops the property", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"apple": {
						"token": vault.SentinelPrefix + " fruit_apple_token",
						"color": "red",
					},
				},
			},
			metas: map[string]*Meta{"fruit": {}},
		}

		result, err := NewConverter(source, vault.NewMemoryVault(), nil).Convert(ctx, "/profiles")
		require.NoError(t, err)

		apple := result.Config.Profiles["fruit_apple"]
		assert.NotContains(t, apple.Properties, "token")
		assert.NotContains(t, apple.Secure, "token")
		assert.Equal(t, "red", apple.Properties["color"])
		assert.Empty(t, result.Failures)
	})

	t.Run("non-JSON secret kept as raw string", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"apple": {"token": vault.SentinelPrefix},
				},
			},
			metas: map[string]*Meta{"fruit": {}},
		}
		v := vault.NewMemoryVault()
		require.NoError(t, v.Store(ctx, vault.Key("fruit", "apple", "token"), "not json"))

		result, err := NewConverter(source, v, nil).Convert(ctx, "/profiles")
		require.NoError(t, err)
		assert.Equal(t, "not json", result.Config.Profiles["fruit_apple"].Properties["token"])
	})

	t.Run("per-profile failures do not abort the run", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"a": {"color": "red"},
					"b": {},
				},
			},
			readErrs: map[string]error{"fruit/b": errors.New("malformed yaml")},
			metas:    map[string]*Meta{"fruit": {DefaultProfile: "a"}},
		}

		result, err := NewConverter(source, vault.NewMemoryVault(), nil).Convert(ctx, "/profiles")
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, result.Converted["fruit"])
		require.Len(t, result.Failures, 1)
		assert.Equal(t, "b", result.Failures[0].Name)
		assert.Equal(t, "fruit", result.Failures[0].Type)

		// The meta file resolves independently of b's failure.
		assert.Equal(t, "fruit_a", result.Config.Defaults["fruit"])
	})

	t.Run("meta failure recorded without a name", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {"a": {"color": "red"}},
			},
			metaErrs: map[string]error{"fruit": errors.New("corrupt meta")},
		}

		result, err := NewConverter(source, vault.NewMemoryVault(), nil).Convert(ctx, "/profiles")
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, result.Converted["fruit"])
		require.Len(t, result.Failures, 1)
		assert.Empty(t, result.Failures[0].Name)
		assert.Equal(t, "fruit", result.Failures[0].Type)
		assert.NotContains(t, result.Config.Defaults, "fruit")
	})

	t.Run("types without named profiles are skipped entirely", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {},
			},
			metaErrs: map[string]error{"fruit": errors.New("should not be read")},
		}

		result, err := NewConverter(source, vault.NewMemoryVault(), nil).Convert(ctx, "/profiles")
		require.NoError(t, err)
		assert.Empty(t, result.Converted)
		assert.Empty(t, result.Failures)
	})

	t.Run("vault errors fail the affected profile only", func(t *testing.T) {
		source := &fakeSource{
			profiles: map[string]map[string]map[string]interface{}{
				"fruit": {
					"a": {"token": vault.SentinelPrefix},
					"b": {"color": "yellow"},
				},
			},
			metas: map[string]*Meta{"fruit": {}},
		}
		v := vault.NewMemoryVault()
		v.LoadErr = errors.New("vault offline")

		result, err := NewConverter(source, v, nil).Convert(ctx, "/profiles")
		require.NoError(t, err)

		assert.Equal(t, []string{"b"}, result.Converted["fruit"])
		require.Len(t, result.Failures, 1)
		assert.Equal(t, "a", result.Failures[0].Name)
	})
}

func TestMetaBasename(t *testing.T) {
	assert.Equal(t, "fruit_meta", MetaBasename("fruit"))
}
