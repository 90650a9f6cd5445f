package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientStatus is the lifecycle state of an advertising client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusLearning ClientStatus = "LEARNING"
	ClientStatusPaused   ClientStatus = "PAUSED"
)

// Client is an advertiser managed by the agency.
type Client struct {
	ID            uuid.UUID    `json:"id"`
	CompanyName   string       `json:"companyName"`
	MonthlyBudget float64      `json:"monthlyBudget"`
	Currency      string       `json:"currency"`
	Status        ClientStatus `json:"status"`
	Notes         string       `json:"notes,omitempty"`

	// GoogleCustomerID may contain dashes as entered by the operator.
	GoogleCustomerID   string     `json:"googleCustomerId,omitempty"`
	GoogleConnectionID *uuid.UUID `json:"googleConnectionId,omitempty"`
	// GoogleConnection is populated by lookups that preload it.
	GoogleConnection *GoogleConnection `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SyncEligible reports whether the client has a customer id and an active
// connection. GoogleConnection must be loaded.
func (c *Client) SyncEligible() bool {
	return c.GoogleCustomerID != "" &&
		c.GoogleConnectionID != nil &&
		c.GoogleConnection != nil &&
		c.GoogleConnection.IsActive
}
