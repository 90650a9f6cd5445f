package entity

import (
	"time"

	"github.com/google/uuid"
)

// SyncStatus is the outcome of the most recent sync recorded on a connection.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "SUCCESS"
	SyncStatusFailed  SyncStatus = "FAILED"
)

// GoogleConnection is an authorised Google account able to read Ads data for
// one or more customer accounts.
type GoogleConnection struct {
	ID          uuid.UUID `json:"id"`
	GoogleEmail string    `json:"googleEmail"`
	// RefreshToken is always the vault-encrypted form.
	RefreshToken   string     `json:"-"`
	AccessToken    string     `json:"-"`
	TokenExpiry    *time.Time `json:"-"`
	MCCAccountID   string     `json:"mccAccountId,omitempty"`
	IsActive       bool       `json:"isActive"`
	LastSyncAt     *time.Time `json:"lastSyncAt,omitempty"`
	LastSyncStatus SyncStatus `json:"lastSyncStatus,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// NeedsTokenRefresh reports whether the cached access token is unusable at now.
func (c *GoogleConnection) NeedsTokenRefresh(now time.Time) bool {
	return c.AccessToken == "" || c.TokenExpiry == nil || c.TokenExpiry.Before(now)
}

// ConnectionSummary is a connection listed together with the number of clients using it.
type ConnectionSummary struct {
	GoogleConnection
	ClientCount int `json:"clientCount"`
}
