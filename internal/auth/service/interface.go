// Package service provides the password hashing and bearer token primitives used for
// user authentication.
package service

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash returns the PHC-encoded Argon2id hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. Malformed hashes never match.
	Compare(password, hash string) bool
}

// TokenService generates bearer tokens and hashes them for storage and lookup.
type TokenService interface {
	// GenerateToken returns a new random token and its hash. Only the hash is stored.
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken returns the hex SHA-256 of plainToken.
	HashToken(plainToken string) string
}
