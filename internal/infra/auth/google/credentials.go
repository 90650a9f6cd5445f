package google

import (
	"context"
	"log/slog"

	"adpulse/config"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type credentialResolver struct {
	settings repository.SettingRepository
	fallback service.GoogleCredentials
	logger   *slog.Logger
}

// CredentialParams holds dependencies for the credential resolver, injected by Fx
type CredentialParams struct {
	fx.In

	Config   *config.Config
	Settings repository.SettingRepository
	Logger   *slog.Logger
}

// NewCredentialResolver resolves the OAuth client from the settings table, then configuration.
func NewCredentialResolver(params CredentialParams) service.CredentialResolver {
	return &credentialResolver{
		settings: params.Settings,
		fallback: service.GoogleCredentials{
			ClientID:     params.Config.GoogleOAuth.ClientID,
			ClientSecret: params.Config.GoogleOAuth.ClientSecret,
		},
		logger: params.Logger,
	}
}

func (r *credentialResolver) GetGoogleCredentials(ctx context.Context) (*service.GoogleCredentials, error) {
	values, err := r.settings.FindSettings(ctx, entity.SettingGoogleClientID, entity.SettingGoogleClientSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read google credentials from settings")
	}

	creds := r.fallback
	if v := values[entity.SettingGoogleClientID]; v != "" {
		creds.ClientID = v
	}
	if v := values[entity.SettingGoogleClientSecret]; v != "" {
		creds.ClientSecret = v
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		r.logger.Warn("Google OAuth client is not configured")

		return nil, errors.WithStack(domainerrors.ErrOAuthNotConfigured)
	}

	return &creds, nil
}
