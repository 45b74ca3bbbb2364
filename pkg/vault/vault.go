// Package vault stores secret property values outside the config document.
package vault

import (
	"context"
	"fmt"
)

// SentinelPrefix marks a v1 profile property whose real value lives in the
// vault rather than in the profile file.
const SentinelPrefix = "managed by vane-vault"

// Vault is the credential store consumed by the converter and the profile
// layer. Load reports found=false for absent keys; that is not an error.
type Vault interface {
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Store(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key derives the deterministic vault key for a profile property.
func Key(profileType, profileName, property string) string {
	return fmt.Sprintf("%s_%s_%s", profileType, profileName, property)
}
