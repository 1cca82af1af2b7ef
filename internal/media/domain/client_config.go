package domain

import (
	"log/slog"
)

// ClientConfig carries the decrypted credentials for one media service account. A value
// is built for a single operation, passed explicitly to every media call and cleared
// when the operation ends. It is never stored globally or cached.
type ClientConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// String hides the credentials.
func (c ClientConfig) String() string {
	return "ClientConfig{CloudName:" + c.CloudName + " APIKey:redacted APISecret:redacted}"
}

// LogValue implements slog.LogValuer so a logged config never exposes credentials.
func (c ClientConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cloud_name", c.CloudName),
		slog.String("api_key", "redacted"),
		slog.String("api_secret", "redacted"),
	)
}

// Clear drops the references to the decrypted credentials.
func (c *ClientConfig) Clear() {
	if c == nil {
		return
	}
	c.CloudName = ""
	c.APIKey = ""
	c.APISecret = ""
}

// IsZero reports whether the config carries no credentials.
func (c *ClientConfig) IsZero() bool {
	return c == nil || (c.CloudName == "" && c.APIKey == "" && c.APISecret == "")
}
