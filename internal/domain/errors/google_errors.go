package errors

import (
	"fmt"

	"adpulse/internal/errors"
)

var (
	// ErrIntegrity is returned when an encrypted token fails authentication
	// or is not in the <iv>:<tag>:<ciphertext> hex format.
	ErrIntegrity = errors.New("token integrity check failed")

	// ErrInvalidVaultKey is returned when the vault key is not exactly 32 bytes.
	ErrInvalidVaultKey = errors.New("encryption key must be exactly 32 characters")
)

// OAuthExchangeError is returned when the token endpoint answers with a non-2xx status.
type OAuthExchangeError struct {
	// Op is either "exchange" or "refresh".
	Op     string
	Status int
	Body   string
}

func (e *OAuthExchangeError) Error() string {
	if e.Op == "refresh" {
		return "Token refresh failed: " + e.Body
	}

	return "Token exchange failed: " + e.Body
}

// IdentityFetchError is returned when the userinfo endpoint answers with a non-2xx status.
type IdentityFetchError struct {
	Status int
	Body   string
}

func (e *IdentityFetchError) Error() string {
	return fmt.Sprintf("Failed to fetch user info: status %d", e.Status)
}

// ReportingQueryError wraps every failure raised while querying the Ads reporting API,
// including the token refresh performed on the way.
type ReportingQueryError struct {
	Op         string
	CustomerID string
	Err        error
}

func (e *ReportingQueryError) Error() string {
	if e.CustomerID == "" {
		return fmt.Sprintf("google ads %s failed: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("google ads %s failed for customer %s: %v", e.Op, e.CustomerID, e.Err)
}

func (e *ReportingQueryError) Unwrap() error {
	return e.Err
}
