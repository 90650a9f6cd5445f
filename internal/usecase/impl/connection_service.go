package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adpulse/config"
	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const callbackPath = "/api/google/callback"

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	oauth          service.OAuthService
	vault          service.TokenVault
	reporting      service.AdsReportingClient
	redirectURI    string
	logger         *slog.Logger
	now            func() time.Time
	newState       func() string
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	OAuth          service.OAuthService
	Vault          service.TokenVault
	Reporting      service.AdsReportingClient
	Config         *config.Config
	Logger         *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		oauth:          params.OAuth,
		vault:          params.Vault,
		reporting:      params.Reporting,
		redirectURI:    callbackURI(params.Config),
		logger:         params.Logger,
		now:            time.Now,
		newState:       uuid.NewString,
	}
}

func callbackURI(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	if cfg.GoogleOAuth != nil && cfg.GoogleOAuth.RedirectURI != "" {
		return cfg.GoogleOAuth.RedirectURI
	}

	return strings.TrimRight(cfg.HTTP.PublicURL, "/") + callbackPath
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginConnect issues a fresh state and returns the consent URL.
func (srv *connectionService) BeginConnect(ctx context.Context) (string, error) {
	authURL, err := srv.oauth.BuildAuthorizationURL(ctx, srv.redirectURI, srv.newState())
	if err != nil {
		return "", errors.Wrap(err, "failed to build authorization URL")
	}

	return authURL, nil
}

// CompleteConnect exchanges the code and stores the encrypted refresh token
// against the Google account's email.
func (srv *connectionService) CompleteConnect(ctx context.Context, input *usecase.CallbackInput) (*entity.GoogleConnection, error) {
	if input.Code == "" {
		return nil, domainerrors.ErrOAuthCodeMissing
	}
	if !srv.oauth.ValidateState(input.State) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	tokens, err := srv.oauth.ExchangeCode(ctx, input.Code, srv.redirectURI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}
	if tokens.RefreshToken == "" {
		return nil, domainerrors.ErrNoRefreshToken
	}

	identity, err := srv.oauth.FetchIdentity(ctx, tokens.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch google identity")
	}

	encrypted, err := srv.vault.Encrypt(tokens.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt refresh token")
	}

	expiry := srv.now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
	conn, err := srv.connectionRepo.UpsertConnectionByEmail(ctx, &entity.GoogleConnection{
		GoogleEmail:  identity.Email,
		RefreshToken: encrypted,
		AccessToken:  tokens.AccessToken,
		TokenExpiry:  &expiry,
		IsActive:     true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store google connection")
	}

	srv.log(ctx).Info("Google account connected",
		slog.String("connection_id", conn.ID.String()),
		slog.String("google_email", conn.GoogleEmail),
	)

	return conn, nil
}

// ListConnections lists connections newest first.
func (srv *connectionService) ListConnections(ctx context.Context) ([]*entity.ConnectionSummary, error) {
	summaries, err := srv.connectionRepo.ListConnectionSummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return summaries, nil
}

// Disconnect deletes the connection when no client uses it. Count and delete
// share one transaction.
func (srv *connectionService) Disconnect(ctx context.Context, connectionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		count, err := factory.NewClientRepository().CountClientsByConnection(ctx, connectionID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerrors.NewConnectionInUseError(count)
		}

		return factory.NewConnectionRepository().DeleteConnection(ctx, connectionID)
	})

	switch {
	case err == nil:
		srv.log(ctx).Info("Google connection removed", slog.String("connection_id", connectionID.String()))

		return nil
	case errors.Is(err, repository.ErrConnectionNotFound):
		return domainerrors.ErrConnectionNotFound
	case errors.Is(err, domainerrors.ErrConnectionInUse):
		return err
	default:
		return errors.Wrap(err, "failed to disconnect google connection")
	}
}

// SetManagerAccount stores the manager account id without dashes.
func (srv *connectionService) SetManagerAccount(ctx context.Context, connectionID uuid.UUID, mccAccountID string) error {
	mcc := strings.ReplaceAll(strings.TrimSpace(mccAccountID), "-", "")

	err := srv.connectionRepo.UpdateMCCAccountID(ctx, connectionID, mcc)
	if errors.Is(err, repository.ErrConnectionNotFound) {
		return domainerrors.ErrConnectionNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update manager account")
	}

	return nil
}

// ListAccessibleAccounts lists accounts under the connection's manager account.
func (srv *connectionService) ListAccessibleAccounts(ctx context.Context, connectionID uuid.UUID) ([]service.AdsAccount, error) {
	accounts, err := srv.reporting.ListAccessibleAccounts(ctx, connectionID)
	switch {
	case err == nil:
		return accounts, nil
	case errors.Is(err, repository.ErrConnectionNotFound):
		return nil, domainerrors.ErrConnectionNotFound
	case errors.Is(err, domainerrors.ErrManagerAccountRequired):
		return nil, domainerrors.ErrManagerAccountRequired
	default:
		return nil, err
	}
}
