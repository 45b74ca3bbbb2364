package vault

import (
	"context"
	"sync"
)

// Validate that MemoryVault implements the Vault interface
var _ Vault = &MemoryVault{}

// MemoryVault is an in-memory vault for tests and ephemeral runs.
type MemoryVault struct {
	mu      sync.RWMutex
	secrets map[string]string

	// LoadErr, when set, is returned by every Load call. Tests use it to
	// exercise collaborator-failure paths.
	LoadErr error
}

// NewMemoryVault creates an empty in-memory vault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{secrets: make(map[string]string)}
}

// Load returns the secret stored under key, if any.
func (v *MemoryVault) Load(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if v.LoadErr != nil {
		return "", false, v.LoadErr
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	value, found := v.secrets[key]
	return value, found, nil
}

// Store saves value under key.
func (v *MemoryVault) Store(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.secrets[key] = value
	return nil
}

// Delete removes the secret stored under key.
func (v *MemoryVault) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.secrets, key)
	return nil
}

// Close is a no-op for the in-memory vault.
func (v *MemoryVault) Close() error { return nil }
