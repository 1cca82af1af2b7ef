package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// EnvelopeSeparator delimits the three hex components of an Envelope.
	EnvelopeSeparator = ":"
	// IVSize is the initialization vector size in bytes.
	IVSize = 16
	// TagSize is the GCM authentication tag size in bytes.
	TagSize = 16
)

// Envelope is the persisted form of an encrypted secret field:
//
//	hex(iv):hex(ciphertext):hex(tag)
//
// The layout is stable; changing it invalidates every stored secret. An Envelope
// carries no key identifier and is only meaningful together with the process DerivedKey.
type Envelope string

// String returns the envelope text.
func (e Envelope) String() string {
	return string(e)
}

// EnvelopeParts holds the decoded components of an Envelope.
type EnvelopeParts struct {
	IV         []byte
	Ciphertext []byte
	Tag        []byte
}

// Envelope serializes the parts into the hex-delimited text form.
func (p *EnvelopeParts) Envelope() Envelope {
	return Envelope(strings.Join([]string{
		hex.EncodeToString(p.IV),
		hex.EncodeToString(p.Ciphertext),
		hex.EncodeToString(p.Tag),
	}, EnvelopeSeparator))
}

// ParseEnvelope decodes an Envelope into its parts.
//
// It returns ErrMalformedEnvelope when the text does not have exactly three components,
// when any component is not valid hexadecimal, or when the IV or tag have the wrong size.
func ParseEnvelope(e Envelope) (*EnvelopeParts, error) {
	parts := strings.Split(string(e), EnvelopeSeparator)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 components, got %d", ErrMalformedEnvelope, len(parts))
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not hex", ErrMalformedEnvelope)
	}
	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not hex", ErrMalformedEnvelope)
	}
	tag, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: tag is not hex", ErrMalformedEnvelope)
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMalformedEnvelope, IVSize, len(iv))
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrMalformedEnvelope, TagSize, len(tag))
	}

	return &EnvelopeParts{IV: iv, Ciphertext: ciphertext, Tag: tag}, nil
}
