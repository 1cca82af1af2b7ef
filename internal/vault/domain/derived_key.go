// Package domain defines the value types of the credential vault: the process-wide
// derived key and the persisted envelope format.
package domain

import (
	"log/slog"
)

// KeySize is the size in bytes of the AES-256 key derived from the master secret.
const KeySize = 32

// DerivedKey is the 32-byte symmetric key derived from MASTER_KEY.
//
// It is computed once at startup and shared read-only by every request. It never
// appears in logs (String and LogValue are redacted) and has no serialized form.
type DerivedKey struct {
	key []byte
}

// NewDerivedKey copies b into a new DerivedKey. b must be exactly KeySize bytes.
func NewDerivedKey(b []byte) (*DerivedKey, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKeySize
	}
	key := make([]byte, KeySize)
	copy(key, b)
	return &DerivedKey{key: key}, nil
}

// Bytes returns a copy of the key material. Callers must Zero the copy after use.
func (k *DerivedKey) Bytes() []byte {
	out := make([]byte, len(k.key))
	copy(out, k.key)
	return out
}

// String implements fmt.Stringer without exposing key material.
func (k *DerivedKey) String() string {
	return "DerivedKey(redacted)"
}

// LogValue implements slog.LogValuer without exposing key material.
func (k *DerivedKey) LogValue() slog.Value {
	return slog.StringValue("redacted")
}

// Close zeroes the key material. The key is unusable afterwards.
func (k *DerivedKey) Close() {
	Zero(k.key)
	k.key = nil
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
