package models

// Credential is the short-lived access token handed to the voice device.
// Its contents are never inspected.
type Credential string

// IsZero reports whether the credential is empty.
func (c Credential) IsZero() bool {
	return c == ""
}

// String redacts the credential so it never ends up in logs.
func (c Credential) String() string {
	if c.IsZero() {
		return ""
	}
	return "[REDACTED]"
}

// Value returns the raw token.
func (c Credential) Value() string {
	return string(c)
}

// TokenResponse is the JSON body returned by the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}
