package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"adpulse/config"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/errors"
	mockRepo "adpulse/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCredentialResolverForTest(t *testing.T, settings map[string]string, settingsErr error, clientID, secret string) *credentialResolver {
	t.Helper()

	repo := mockRepo.NewMockSettingRepository(t)
	repo.EXPECT().
		FindSettings(mock.Anything, entity.SettingGoogleClientID, entity.SettingGoogleClientSecret).
		Return(settings, settingsErr)

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: clientID, ClientSecret: secret}}

	return NewCredentialResolver(CredentialParams{
		Config:   cfg,
		Settings: repo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*credentialResolver)
}

func TestCredentialResolver_SettingsOverrideConfig(t *testing.T) {
	resolver := newCredentialResolverForTest(t, map[string]string{
		entity.SettingGoogleClientID:     "db-id",
		entity.SettingGoogleClientSecret: "db-secret",
	}, nil, "cfg-id", "cfg-secret")

	creds, err := resolver.GetGoogleCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "db-id", creds.ClientID)
	assert.Equal(t, "db-secret", creds.ClientSecret)
}

func TestCredentialResolver_FallsBackPerKey(t *testing.T) {
	resolver := newCredentialResolverForTest(t, map[string]string{
		entity.SettingGoogleClientID: "db-id",
	}, nil, "cfg-id", "cfg-secret")

	creds, err := resolver.GetGoogleCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "db-id", creds.ClientID)
	assert.Equal(t, "cfg-secret", creds.ClientSecret)
}

func TestCredentialResolver_NotConfigured(t *testing.T) {
	resolver := newCredentialResolverForTest(t, map[string]string{}, nil, "", "")

	_, err := resolver.GetGoogleCredentials(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}

func TestCredentialResolver_SettingsError(t *testing.T) {
	resolver := newCredentialResolverForTest(t, nil, errors.New("connection refused"), "cfg-id", "cfg-secret")

	_, err := resolver.GetGoogleCredentials(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
