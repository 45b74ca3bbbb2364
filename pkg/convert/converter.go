package convert

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/vanecli/vane/pkg/config"
	"github.com/vanecli/vane/pkg/log"
	"github.com/vanecli/vane/pkg/vault"
)

// Converter migrates a v1 profiles directory tree into a config document.
// One Convert call builds one Result; instances are not safe for concurrent
// use of a shared Result.
type Converter struct {
	source ProfileSource
	vault  vault.Vault
	logger log.Logger
}

// NewConverter creates a converter over the given profile source and vault.
func NewConverter(source ProfileSource, v vault.Vault, logger log.Logger) *Converter {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &Converter{
		source: source,
		vault:  v,
		logger: logger.WithComponent("convert"),
	}
}

// Convert walks every profile-type directory under root and assembles the
// conversion result. Individual profile or meta-file failures are recorded
// and skipped; only a failure to enumerate root aborts the run.
func (c *Converter) Convert(ctx context.Context, root string) (*Result, error) {
	runID := uuid.NewString()
	logger := c.logger.With(log.Str("run", runID))

	types, err := c.source.ListTypes(root)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for _, profileType := range types {
		c.convertType(ctx, result, root, profileType, logger)
	}

	RenameProperties(result)
	result.Config.AutoStore = true

	logger.Info("profile conversion finished",
		log.Int("types", len(types)),
		log.Int("profiles", len(result.Config.Profiles)),
		log.Int("failures", len(result.Failures)))
	return result, nil
}

func (c *Converter) convertType(ctx context.Context, result *Result, root, profileType string, logger log.Logger) {
	typeDir := filepath.Join(root, profileType)
	metaBase := MetaBasename(profileType)

	names, err := c.source.ListNames(typeDir, ProfileExt, metaBase)
	if err != nil {
		result.Failures = append(result.Failures, Failure{Type: profileType, Err: err})
		return
	}
	if len(names) == 0 {
		// No named profiles; nothing to convert for this type.
		return
	}

	for _, name := range names {
		if err := c.convertProfile(ctx, result, typeDir, profileType, name); err != nil {
			result.Failures = append(result.Failures, Failure{Name: name, Type: profileType, Err: err})
			logger.Warn("skipped profile",
				log.Str("type", profileType),
				log.Str("name", name),
				log.Err(err))
			continue
		}
		result.Converted[profileType] = append(result.Converted[profileType], name)
	}

	// The meta file is read independently of per-profile outcomes.
	meta, err := c.source.ReadMeta(filepath.Join(typeDir, metaBase+ProfileExt))
	if err != nil {
		result.Failures = append(result.Failures, Failure{Type: profileType, Err: err})
		return
	}
	if meta.DefaultProfile != "" {
		result.Config.Defaults[profileType] = config.ProfileKey(profileType, meta.DefaultProfile)
	}
}

func (c *Converter) convertProfile(ctx context.Context, result *Result, typeDir, profileType, name string) error {
	props, err := c.source.ReadProfile(filepath.Join(typeDir, name+ProfileExt), profileType)
	if err != nil {
		return err
	}

	profile := config.NewProfile(profileType)

	// Vault loads happen one property at a time, in name order.
	propNames := make([]string, 0, len(props))
	for propName := range props {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	for _, propName := range propNames {
		raw, isString := props[propName].(string)
		if !isString || !strings.HasPrefix(raw, vault.SentinelPrefix) {
			profile.Properties[propName] = props[propName]
			continue
		}

		secret, found, err := c.vault.Load(ctx, vault.Key(profileType, name, propName))
		if err != nil {
			return err
		}
		if !found {
			// Secret missing from the vault: drop the property entirely.
			continue
		}
		profile.Properties[propName] = parseSecretValue(secret)
		profile.Secure = append(profile.Secure, propName)
	}

	result.Config.Profiles[config.ProfileKey(profileType, name)] = profile
	return nil
}

// parseSecretValue decodes a vault payload. Secrets are stored JSON-encoded;
// anything that does not parse is taken as a raw string.
func parseSecretValue(secret string) interface{} {
	var parsed interface{}
	if err := json.Unmarshal([]byte(secret), &parsed); err != nil {
		return secret
	}
	return parsed
}
