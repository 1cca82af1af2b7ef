package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	apperrors "github.com/allisson/mediavault/internal/errors"
)

// tokenSize is the number of random bytes in a bearer token.
const tokenSize = 32

type tokenService struct {
	random io.Reader
}

// GenerateToken reads tokenSize random bytes and encodes them as unpadded base64url.
func (t *tokenService) GenerateToken() (string, string, error) {
	raw := make([]byte, tokenSize)
	if _, err := io.ReadFull(t.random, raw); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken := base64.RawURLEncoding.EncodeToString(raw)
	return plainToken, t.HashToken(plainToken), nil
}

func (t *tokenService) HashToken(plainToken string) string {
	sum := sha256.Sum256([]byte(plainToken))
	return hex.EncodeToString(sum[:])
}

// NewTokenService creates a TokenService backed by crypto/rand.
func NewTokenService() TokenService {
	return &tokenService{random: rand.Reader}
}
