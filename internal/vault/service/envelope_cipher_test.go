package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mediavault/internal/errors"
	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

func newTestCipher(t *testing.T, masterSecret string) *AESGCMEnvelopeCipher {
	t.Helper()

	key, err := DeriveKey(masterSecret)
	require.NoError(t, err)
	t.Cleanup(key.Close)

	c, err := NewAESGCMEnvelopeCipher(key)
	require.NoError(t, err)
	return c
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

// flipHex replaces the hex character at i with a different valid hex character.
func flipHex(s string, i int) string {
	replacement := byte('0')
	if s[i] == '0' {
		replacement = '1'
	}
	return s[:i] + string(replacement) + s[i+1:]
}

func TestAESGCMEnvelopeCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)

	inputs := []string{
		"",
		"sk_live_abc",
		"123456789012345",
		"héllo wörld",
		"日本語のシークレット",
		"emoji 🔑🔒",
		strings.Repeat("x", 4096),
	}

	for _, input := range inputs {
		envelope, err := c.Encrypt(input)
		require.NoError(t, err)

		output, err := c.Decrypt(envelope)
		require.NoError(t, err)
		assert.Equal(t, input, output)
	}
}

func TestAESGCMEnvelopeCipher_EnvelopeLayout(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)

	envelope, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)

	parts := strings.Split(envelope.String(), vaultDomain.EnvelopeSeparator)
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], vaultDomain.IVSize*2)
	assert.Len(t, parts[1], len("sk_live_abc")*2)
	assert.Len(t, parts[2], vaultDomain.TagSize*2)
	assert.Equal(t, strings.ToLower(envelope.String()), envelope.String())
}

func TestAESGCMEnvelopeCipher_NonDeterministic(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)

	first, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)
	second, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstParts, err := vaultDomain.ParseEnvelope(first)
	require.NoError(t, err)
	secondParts, err := vaultDomain.ParseEnvelope(second)
	require.NoError(t, err)
	assert.NotEqual(t, firstParts.IV, secondParts.IV)

	for _, envelope := range []vaultDomain.Envelope{first, second} {
		plaintext, err := c.Decrypt(envelope)
		require.NoError(t, err)
		assert.Equal(t, "sk_live_abc", plaintext)
	}
}

func TestAESGCMEnvelopeCipher_TamperDetection(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)

	envelope, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)

	text := envelope.String()
	ciphertextStart := strings.Index(text, vaultDomain.EnvelopeSeparator) + 1
	tagStart := strings.LastIndex(text, vaultDomain.EnvelopeSeparator) + 1

	t.Run("Ciphertext", func(t *testing.T) {
		for i := ciphertextStart; i < tagStart-1; i++ {
			plaintext, err := c.Decrypt(vaultDomain.Envelope(flipHex(text, i)))
			assert.Empty(t, plaintext)
			assert.ErrorIs(t, err, vaultDomain.ErrDecryptionFailed, "position %d", i)
		}
	})

	t.Run("Tag", func(t *testing.T) {
		for i := tagStart; i < len(text); i++ {
			plaintext, err := c.Decrypt(vaultDomain.Envelope(flipHex(text, i)))
			assert.Empty(t, plaintext)
			assert.ErrorIs(t, err, vaultDomain.ErrDecryptionFailed, "position %d", i)
		}
	})

	t.Run("IV", func(t *testing.T) {
		plaintext, err := c.Decrypt(vaultDomain.Envelope(flipHex(text, 0)))
		assert.Empty(t, plaintext)
		assert.ErrorIs(t, err, vaultDomain.ErrDecryptionFailed)
	})
}

func TestAESGCMEnvelopeCipher_WrongKey(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)
	other := newTestCipher(t, "a different master secret")

	envelope, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)

	plaintext, err := other.Decrypt(envelope)
	assert.Empty(t, plaintext)
	assert.ErrorIs(t, err, vaultDomain.ErrDecryptionFailed)
	assert.ErrorIs(t, err, apperrors.ErrCryptoFailure)
}

func TestAESGCMEnvelopeCipher_Malformed(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)

	envelope, err := c.Encrypt("sk_live_abc")
	require.NoError(t, err)
	text := envelope.String()

	inputs := []string{
		"",
		"no-separators",
		strings.Replace(text, ":", "", 1),
		text + ":00",
		strings.Replace(text, text[:2], "zz", 1),
	}

	for _, input := range inputs {
		plaintext, err := c.Decrypt(vaultDomain.Envelope(input))
		assert.Empty(t, plaintext)
		assert.ErrorIs(t, err, apperrors.ErrMalformed, "input %q", input)
		assert.NotErrorIs(t, err, apperrors.ErrCryptoFailure, "input %q", input)
	}
}

func TestAESGCMEnvelopeCipher_EncryptRandomFailure(t *testing.T) {
	c := newTestCipher(t, testMasterSecret)
	c.random = failingReader{}

	envelope, err := c.Encrypt("sk_live_abc")
	assert.Empty(t, envelope)
	assert.ErrorIs(t, err, vaultDomain.ErrEncryptionFailed)
	assert.ErrorIs(t, err, apperrors.ErrCryptoFailure)
}

func TestNewAESGCMEnvelopeCipher_ClosedKey(t *testing.T) {
	key, err := DeriveKey(testMasterSecret)
	require.NoError(t, err)
	key.Close()

	c, err := NewAESGCMEnvelopeCipher(key)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, vaultDomain.ErrInvalidKeySize)
}
