package domain

import "time"

type Credential struct {
	Username string
	Password string
}

// Token is a bearer token together with its expiration instant.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Usable reports whether the token is present and strictly before its expiry at now.
func (t Token) Usable(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// TokenGrant is the result of a token issuance attempt.
// Success=false is an expected outcome for bad credentials, not a fault.
type TokenGrant struct {
	Success   bool
	Token     string
	ExpiresAt time.Time
}
