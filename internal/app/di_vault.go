package app

import (
	"fmt"

	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
	vaultService "github.com/allisson/mediavault/internal/vault/service"
)

// DerivedKey returns the credential encryption key derived from MASTER_KEY.
// It is derived once and shared read-only for the lifetime of the process.
func (c *Container) DerivedKey() (*vaultDomain.DerivedKey, error) {
	var err error
	c.derivedKeyInit.Do(func() {
		c.derivedKey, err = c.initDerivedKey()
		if err != nil {
			c.initErrors["derivedKey"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["derivedKey"]; exists {
		return nil, storedErr
	}
	return c.derivedKey, nil
}

// EnvelopeCipher returns the cipher used to seal and open stored credentials.
func (c *Container) EnvelopeCipher() (vaultService.EnvelopeCipher, error) {
	var err error
	c.envelopeCipherInit.Do(func() {
		c.envelopeCipher, err = c.initEnvelopeCipher()
		if err != nil {
			c.initErrors["envelopeCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelopeCipher"]; exists {
		return nil, storedErr
	}
	return c.envelopeCipher, nil
}

// initDerivedKey derives the key from the configured master secret.
func (c *Container) initDerivedKey() (*vaultDomain.DerivedKey, error) {
	key, err := vaultService.DeriveKey(c.config.MasterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to derive master key: %w", err)
	}
	return key, nil
}

// initEnvelopeCipher creates the AES-GCM envelope cipher over the derived key.
func (c *Container) initEnvelopeCipher() (vaultService.EnvelopeCipher, error) {
	key, err := c.DerivedKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get derived key for envelope cipher: %w", err)
	}

	cipher, err := vaultService.NewAESGCMEnvelopeCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope cipher: %w", err)
	}
	return cipher, nil
}
