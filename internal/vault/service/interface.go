// Package service implements the credential vault: master-secret key derivation and the
// AES-256-GCM envelope cipher used to store external account secrets.
package service

import (
	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

// EnvelopeCipher encrypts short strings into self-describing envelopes and back.
type EnvelopeCipher interface {
	// Encrypt seals plaintext under a fresh random IV.
	Encrypt(plaintext string) (vaultDomain.Envelope, error)

	// Decrypt opens an envelope. Tampering, a wrong key or corruption fail the whole call.
	Decrypt(envelope vaultDomain.Envelope) (string, error)
}
