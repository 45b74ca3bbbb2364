package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/vanecli/vane/pkg/crypto"
	"github.com/vanecli/vane/pkg/log"
)

// Validate that BadgerVault implements the Vault interface
var _ Vault = &BadgerVault{}

// BadgerVault is the default vault backend: secrets in a local BadgerDB,
// values sealed with AES-256-GCM and the vault key as associated data.
type BadgerVault struct {
	db     *badger.DB
	cipher *crypto.Cipher
	logger log.Logger
}

// OpenBadgerVault opens (or creates) the vault database at path.
func OpenBadgerVault(path string, key []byte, logger log.Logger) (*BadgerVault, error) {
	if logger == nil {
		logger = log.GetDefaultLogger().WithComponent("vault")
	} else {
		logger = logger.WithComponent("vault")
	}

	cipher, err := crypto.NewCipher(key)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = &badgerLogAdapter{logger: logger}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault db: %w", err)
	}

	logger.Debug("vault opened", log.Str("path", path))
	return &BadgerVault{db: db, cipher: cipher, logger: logger}, nil
}

// Load fetches and decrypts the secret stored under key.
func (v *BadgerVault) Load(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var sealed []byte
	err := v.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		sealed, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load secret %s: %w", key, err)
	}

	plain, err := v.cipher.Open(sealed, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("failed to unseal secret %s: %w", key, err)
	}
	return string(plain), true, nil
}

// Store encrypts and persists value under key.
func (v *BadgerVault) Store(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sealed, err := v.cipher.Seal([]byte(value), []byte(key))
	if err != nil {
		return err
	}
	return v.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), sealed)
	})
}

// Delete removes the secret stored under key. Deleting an absent key is not
// an error.
func (v *BadgerVault) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close closes the vault database.
func (v *BadgerVault) Close() error {
	if v.db != nil {
		return v.db.Close()
	}
	return nil
}

// badgerLogAdapter routes badger's internal logging through the vane logger.
type badgerLogAdapter struct {
	logger log.Logger
}

func (a *badgerLogAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, args...))
}

func (a *badgerLogAdapter) Warningf(format string, args ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, args...))
}

func (a *badgerLogAdapter) Infof(format string, args ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, args...))
}

func (a *badgerLogAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, args...))
}
