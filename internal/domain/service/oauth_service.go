package service

import (
	"context"
)

// TokenResponse is the token endpoint answer. RefreshToken is only present on
// the first consent or when prompt=consent forces reissue.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope,omitempty"`
	IDToken      string `json:"id_token,omitempty"`
}

// GoogleIdentity is the authorising Google account.
type GoogleIdentity struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name,omitempty"`
	Picture       string `json:"picture,omitempty"`
}

// OAuthService performs the Google OAuth2 authorization-code and refresh flows.
// It never persists anything; callers own storage.
type OAuthService interface {
	// BuildAuthorizationURL returns the consent URL requesting offline access.
	// A non-empty state is remembered until it is consumed by ValidateState or expires.
	BuildAuthorizationURL(ctx context.Context, redirectURI, state string) (string, error)

	// ValidateState consumes a state issued by BuildAuthorizationURL.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)

	// RefreshAccessToken obtains a new access token from a plaintext refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error)

	// FetchIdentity returns the account owning accessToken.
	FetchIdentity(ctx context.Context, accessToken string) (*GoogleIdentity, error)
}

// GoogleCredentials is the OAuth client used for every Google call.
type GoogleCredentials struct {
	ClientID     string
	ClientSecret string
}

// CredentialResolver resolves the OAuth client, preferring operator settings
// over static configuration.
type CredentialResolver interface {
	GetGoogleCredentials(ctx context.Context) (*GoogleCredentials, error)
}
