package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

// AESGCMEnvelopeCipher implements EnvelopeCipher with AES-256-GCM.
//
// GCM is constructed with a 16-byte nonce so the IV matches the stored envelope layout.
// Every Encrypt call draws a fresh IV from crypto/rand; IV reuse under the same key
// breaks GCM confidentiality, so there is no way to supply one.
//
// The cipher holds no per-call state and is safe for concurrent use.
type AESGCMEnvelopeCipher struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewAESGCMEnvelopeCipher creates the envelope cipher bound to the process key.
// Construction failures are reported as ErrEncryptionFailed.
func NewAESGCMEnvelopeCipher(key *vaultDomain.DerivedKey) (*AESGCMEnvelopeCipher, error) {
	raw := key.Bytes()
	defer vaultDomain.Zero(raw)

	if len(raw) != vaultDomain.KeySize {
		return nil, vaultDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create AES cipher: %v", vaultDomain.ErrEncryptionFailed, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, vaultDomain.IVSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %v", vaultDomain.ErrEncryptionFailed, err)
	}

	return &AESGCMEnvelopeCipher{aead: aead, random: rand.Reader}, nil
}

// Encrypt seals the UTF-8 bytes of plaintext and returns hex(iv):hex(ciphertext):hex(tag).
func (c *AESGCMEnvelopeCipher) Encrypt(plaintext string) (vaultDomain.Envelope, error) {
	iv := make([]byte, vaultDomain.IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: failed to generate iv: %v", vaultDomain.ErrEncryptionFailed, err)
	}

	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	tagStart := len(sealed) - c.aead.Overhead()

	parts := &vaultDomain.EnvelopeParts{
		IV:         iv,
		Ciphertext: sealed[:tagStart],
		Tag:        sealed[tagStart:],
	}
	return parts.Envelope(), nil
}

// Decrypt parses and opens an envelope.
//
// Shape errors return ErrMalformedEnvelope; authentication failures return
// ErrDecryptionFailed and no plaintext.
func (c *AESGCMEnvelopeCipher) Decrypt(envelope vaultDomain.Envelope) (string, error) {
	parts, err := vaultDomain.ParseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(parts.Ciphertext)+len(parts.Tag))
	sealed = append(sealed, parts.Ciphertext...)
	sealed = append(sealed, parts.Tag...)

	plaintext, err := c.aead.Open(nil, parts.IV, sealed, nil)
	if err != nil {
		return "", vaultDomain.ErrDecryptionFailed
	}
	defer vaultDomain.Zero(plaintext)

	return string(plaintext), nil
}
