package service

import (
	"crypto/sha256"
	"encoding/hex"

	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

// DeriveKey produces the 32-byte vault key from the configured master secret.
//
// The secret is first read as hexadecimal. A hex value of at least 32 bytes is used
// directly (truncated to the first 32 bytes); anything else (invalid hex or a shorter
// value) is hashed with SHA-256. The mapping is deterministic, so the same secret always
// yields the same key. Switching the secret between the two forms changes the key and
// makes previously stored envelopes undecryptable; nothing in the envelope detects this.
//
// An empty secret returns ErrMasterSecretNotSet, which callers must treat as fatal.
func DeriveKey(masterSecret string) (*vaultDomain.DerivedKey, error) {
	if masterSecret == "" {
		return nil, vaultDomain.ErrMasterSecretNotSet
	}

	decoded, err := hex.DecodeString(masterSecret)
	if err == nil && len(decoded) >= vaultDomain.KeySize {
		defer vaultDomain.Zero(decoded)
		return vaultDomain.NewDerivedKey(decoded[:vaultDomain.KeySize])
	}
	vaultDomain.Zero(decoded)

	sum := sha256.Sum256([]byte(masterSecret))
	defer vaultDomain.Zero(sum[:])
	return vaultDomain.NewDerivedKey(sum[:])
}
