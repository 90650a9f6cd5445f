package google

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"adpulse/config"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/service"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	googleOAuthURL    = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	// Scopes requested on consent. adwords grants read access to reporting.
	consentScopes = "openid email profile https://www.googleapis.com/auth/adwords"

	defaultStateTTL = 10 * time.Minute
	maxErrorBody    = 64 << 10
)

// OAuthService handles Google OAuth infrastructure operations
type OAuthService struct {
	credentials service.CredentialResolver
	httpClient  *http.Client

	authURL     string
	tokenURL    string
	userInfoURL string

	// State storage for CSRF protection
	stateTTL   time.Duration
	stateStore map[string]time.Time
	stateMutex sync.Mutex
	now        func() time.Time
}

// OAuthParams holds dependencies for the OAuth service, injected by Fx
type OAuthParams struct {
	fx.In

	Config      *config.Config
	Credentials service.CredentialResolver
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(params OAuthParams) service.OAuthService {
	cfg := params.Config.GoogleOAuth

	return newOAuthService(params.Credentials, &http.Client{Timeout: params.Config.GoogleAds.RequestTimeout},
		withDefault(cfg.AuthURL, googleOAuthURL),
		withDefault(cfg.TokenURL, googleTokenURL),
		withDefault(cfg.UserInfoURL, googleUserInfoURL),
		cfg.StateTTL,
	)
}

func newOAuthService(
	credentials service.CredentialResolver,
	httpClient *http.Client,
	authURL, tokenURL, userInfoURL string,
	stateTTL time.Duration,
) *OAuthService {
	if stateTTL <= 0 {
		stateTTL = defaultStateTTL
	}

	return &OAuthService{
		credentials: credentials,
		httpClient:  httpClient,
		authURL:     authURL,
		tokenURL:    tokenURL,
		userInfoURL: userInfoURL,
		stateTTL:    stateTTL,
		stateStore:  make(map[string]time.Time),
		now:         time.Now,
	}
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

// storeState stores a state parameter with expiration time
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	now := s.now()
	for st, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, st)
		}
	}

	s.stateStore[state] = now.Add(s.stateTTL)
}

// ValidateState validates and consumes the state parameter.
func (s *OAuthService) ValidateState(state string) bool {
	if state == "" {
		return false
	}

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// single use
	delete(s.stateStore, state)

	return !s.now().After(expiry)
}

// BuildAuthorizationURL constructs the consent URL requesting offline access.
func (s *OAuthService) BuildAuthorizationURL(ctx context.Context, redirectURI, state string) (string, error) {
	creds, err := s.credentials.GetGoogleCredentials(ctx)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("client_id", creds.ClientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", consentScopes)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	if state != "" {
		s.storeState(state)
		params.Set("state", state)
	}

	return s.authURL + "?" + params.Encode(), nil
}

// ExchangeCode exchanges an authorization code for tokens.
func (s *OAuthService) ExchangeCode(ctx context.Context, code, redirectURI string) (*service.TokenResponse, error) {
	creds, err := s.credentials.GetGoogleCredentials(ctx)
	if err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("client_id", creds.ClientID)
	data.Set("client_secret", creds.ClientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", redirectURI)

	return s.postToken(ctx, "exchange", data)
}

// RefreshAccessToken obtains a new access token for a plaintext refresh token.
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*service.TokenResponse, error) {
	creds, err := s.credentials.GetGoogleCredentials(ctx)
	if err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("client_id", creds.ClientID)
	data.Set("client_secret", creds.ClientSecret)
	data.Set("refresh_token", refreshToken)
	data.Set("grant_type", "refresh_token")

	return s.postToken(ctx, "refresh", data)
}

func (s *OAuthService) postToken(ctx context.Context, op string, data url.Values) (*service.TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "token %s request failed", op)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &domainerrors.OAuthExchangeError{Op: op, Status: resp.StatusCode, Body: string(body)}
	}

	var tokens service.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}

	return &tokens, nil
}

// FetchIdentity retrieves the account behind an access token.
func (s *OAuthService) FetchIdentity(ctx context.Context, accessToken string) (*service.GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &domainerrors.IdentityFetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var identity service.GoogleIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &identity, nil
}
