package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultKeyEnvVar is consulted before the on-disk key file.
const DefaultKeyEnvVar = "VANE_VAULT_KEY"

// LoadOrGenerateKey loads a 32-byte vault key. The env var (base64-encoded)
// wins when set; otherwise the key file is read, and created with a fresh
// random key if missing. The key file is written with permissions 0600.
func LoadOrGenerateKey(envVar, filePath string) ([]byte, error) {
	if envVar != "" {
		if val := os.Getenv(envVar); val != "" {
			key, err := decodeKey(val)
			if err != nil {
				return nil, fmt.Errorf("invalid key in %s: %w", envVar, err)
			}
			return key, nil
		}
	}

	if filePath == "" {
		return nil, errors.New("vault key file path is required")
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return generateAndPersistKey(filePath)
		}
		return nil, fmt.Errorf("failed to read vault key file: %w", err)
	}

	key, err := decodeKey(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("invalid vault key file %s: %w", filePath, err)
	}
	return key, nil
}

func generateAndPersistKey(path string) ([]byte, error) {
	key, err := RandomBytes(32)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create dir for vault key: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(key)
	if err := os.WriteFile(path, []byte(b64+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("failed to write vault key file: %w", err)
	}
	return key, nil
}

func decodeKey(b64 string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}
