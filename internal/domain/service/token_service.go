package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by dashboard session tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	// ClientID scopes a CLIENT session to one advertiser.
	ClientID *uuid.UUID `json:"cid,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates the session tokens issued by the dashboard login.
type TokenService interface {
	// GenerateAccessToken signs a short-lived session token.
	GenerateAccessToken(userID uuid.UUID, roles []string, clientID *uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
