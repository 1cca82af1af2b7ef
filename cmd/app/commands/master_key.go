package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	vaultDomain "github.com/allisson/mediavault/internal/vault/domain"
)

// RunGenerateMasterKey prints a new random master key as 64 hex characters, the form the
// server uses verbatim as its 32-byte encryption key. Key material is zeroed after encoding.
func RunGenerateMasterKey(out io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	masterKey := make([]byte, vaultDomain.KeySize)
	defer vaultDomain.Zero(masterKey)

	if _, err := rand.Read(masterKey); err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}
	encoded := hex.EncodeToString(masterKey)

	if format == "json" {
		return writeJSON(out, map[string]string{"master_key": encoded})
	}

	_, _ = fmt.Fprintln(out, "# Master Key Configuration")
	_, _ = fmt.Fprintln(out, "# Copy this environment variable to your .env file or secrets manager.")
	_, _ = fmt.Fprintln(out, "# Changing it makes every stored credential unreadable.")
	_, _ = fmt.Fprintln(out)
	_, err := fmt.Fprintf(out, "MASTER_KEY=\"%s\"\n", encoded)
	return err
}
