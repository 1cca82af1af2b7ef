package domain

import (
	"github.com/allisson/mediavault/internal/errors"
)

// Vault error definitions.
//
// Malformed and crypto failures are reported to API callers as opaque internal errors;
// the wrapped cause is only ever logged.
var (
	// ErrMasterSecretNotSet indicates MASTER_KEY is missing. This is a fatal startup
	// condition; the process must not run without it.
	ErrMasterSecretNotSet = errors.New("master secret is not set")

	// ErrInvalidKeySize indicates a key that is not exactly 32 bytes was handed to the cipher.
	ErrInvalidKeySize = errors.Wrap(errors.ErrCryptoFailure, "invalid key size")

	// ErrEncryptionFailed indicates the cipher could not be constructed or could not seal.
	ErrEncryptionFailed = errors.Wrap(errors.ErrCryptoFailure, "encryption failed")

	// ErrDecryptionFailed indicates authenticated decryption failed: wrong key,
	// tampered ciphertext/tag or corrupted data. The specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrCryptoFailure, "decryption failed")

	// ErrMalformedEnvelope indicates the stored value is not a well-formed
	// iv:ciphertext:tag envelope.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrMalformed, "malformed envelope")
)
