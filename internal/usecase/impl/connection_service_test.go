package impl

import (
	"context"
	"testing"
	"time"

	"adpulse/config"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"
	mockRepo "adpulse/internal/mocks/repository"
	mockSvc "adpulse/internal/mocks/service"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var connectNow = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	t              *testing.T
	service        *connectionService
	txManager      *mockRepo.MockTransactionManager
	connectionRepo *mockRepo.MockConnectionRepository
	oauth          *mockSvc.MockOAuthService
	vault          *mockSvc.MockTokenVault
	reporting      *mockSvc.MockAdsReportingClient
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	oauth := mockSvc.NewMockOAuthService(t)
	vault := mockSvc.NewMockTokenVault(t)
	reporting := mockSvc.NewMockAdsReportingClient(t)

	cfg := &config.Config{}
	cfg.HTTP.PublicURL = "https://ads.example.com/"

	svc := NewConnectionService(ConnectionServiceParams{
		TxManager:      txManager,
		ConnectionRepo: connectionRepo,
		OAuth:          oauth,
		Vault:          vault,
		Reporting:      reporting,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	}).(*connectionService)
	svc.now = func() time.Time { return connectNow }
	svc.newState = func() string { return "state-1" }

	return connectionServiceFixtures{
		t:              t,
		service:        svc,
		txManager:      txManager,
		connectionRepo: connectionRepo,
		oauth:          oauth,
		vault:          vault,
		reporting:      reporting,
	}
}

// onExecute runs the transaction body against a mocked factory prepared by setup.
func (fx connectionServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	factory := mockRepo.NewMockRepositoryFactory(fx.t)
	setup(factory)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
}

func TestConnectionService_BeginConnect(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().
		BuildAuthorizationURL(ctx, "https://ads.example.com/api/google/callback", "state-1").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=state-1", nil)

	authURL, err := fx.service.BeginConnect(ctx)
	require.NoError(t, err)
	assert.Contains(t, authURL, "state=state-1")
}

func TestConnectionService_BeginConnect_NotConfigured(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().BuildAuthorizationURL(ctx, mock.Anything, mock.Anything).Return("", domainerrors.ErrOAuthNotConfigured)

	_, err := fx.service.BeginConnect(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthNotConfigured))
}

func TestConnectionService_CallbackURIPrefersConfiguredRedirect(t *testing.T) {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{RedirectURI: "https://proxy.example.com/cb"},
	}
	cfg.HTTP.PublicURL = "https://ads.example.com"
	assert.Equal(t, "https://proxy.example.com/cb", callbackURI(cfg))

	cfg.GoogleOAuth.RedirectURI = ""
	assert.Equal(t, "https://ads.example.com/api/google/callback", callbackURI(cfg))
}

func TestConnectionService_CompleteConnect_Success(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	redirect := "https://ads.example.com/api/google/callback"

	fx.oauth.EXPECT().ValidateState("state-1").Return(true)
	fx.oauth.EXPECT().ExchangeCode(ctx, "auth-code", redirect).Return(&service.TokenResponse{
		AccessToken:  "ya29.access",
		RefreshToken: "1//refresh",
		ExpiresIn:    3599,
	}, nil)
	fx.oauth.EXPECT().FetchIdentity(ctx, "ya29.access").Return(&service.GoogleIdentity{Email: "ops@agency.com"}, nil)
	fx.vault.EXPECT().Encrypt("1//refresh").Return("iv:tag:cipher", nil)

	stored := &entity.GoogleConnection{ID: uuid.New(), GoogleEmail: "ops@agency.com", IsActive: true}
	fx.connectionRepo.EXPECT().
		UpsertConnectionByEmail(ctx, mock.MatchedBy(func(c *entity.GoogleConnection) bool {
			return c.GoogleEmail == "ops@agency.com" &&
				c.RefreshToken == "iv:tag:cipher" &&
				c.AccessToken == "ya29.access" &&
				c.IsActive &&
				c.TokenExpiry != nil && c.TokenExpiry.Equal(connectNow.Add(3599*time.Second))
		})).
		Return(stored, nil)

	conn, err := fx.service.CompleteConnect(ctx, &usecase.CallbackInput{Code: "auth-code", State: "state-1"})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, conn.ID)
}

func TestConnectionService_CompleteConnect_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CallbackInput
		setup   func(fx connectionServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing code",
			input:   &usecase.CallbackInput{State: "state-1"},
			wantErr: domainerrors.ErrOAuthCodeMissing,
		},
		{
			name:  "unknown state",
			input: &usecase.CallbackInput{Code: "auth-code", State: "forged"},
			setup: func(fx connectionServiceFixtures) {
				fx.oauth.EXPECT().ValidateState("forged").Return(false)
			},
			wantErr: domainerrors.ErrOAuthStateInvalid,
		},
		{
			name:  "no refresh token",
			input: &usecase.CallbackInput{Code: "auth-code", State: "state-1"},
			setup: func(fx connectionServiceFixtures) {
				fx.oauth.EXPECT().ValidateState("state-1").Return(true)
				fx.oauth.EXPECT().ExchangeCode(mock.Anything, "auth-code", mock.Anything).
					Return(&service.TokenResponse{AccessToken: "ya29.access", ExpiresIn: 3599}, nil)
			},
			wantErr: domainerrors.ErrNoRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			conn, err := fx.service.CompleteConnect(context.Background(), tt.input)
			assert.Nil(t, conn)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestConnectionService_CompleteConnect_ExchangeFailure(t *testing.T) {
	fx := createTestConnectionService(t)
	exchangeErr := &domainerrors.OAuthExchangeError{Op: "exchange", Status: 400, Body: `{"error":"invalid_grant"}`}

	fx.oauth.EXPECT().ValidateState("state-1").Return(true)
	fx.oauth.EXPECT().ExchangeCode(mock.Anything, "auth-code", mock.Anything).Return(nil, exchangeErr)

	_, err := fx.service.CompleteConnect(context.Background(), &usecase.CallbackInput{Code: "auth-code", State: "state-1"})

	var target *domainerrors.OAuthExchangeError
	require.True(t, errors.As(err, &target))
	assert.Contains(t, target.Body, "invalid_grant")
}

func TestConnectionService_Disconnect(t *testing.T) {
	ctx := context.Background()
	connectionID := uuid.New()

	t.Run("unused connection is deleted", func(t *testing.T) {
		fx := createTestConnectionService(t)
		fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
			clientRepo := mockRepo.NewMockClientRepository(t)
			connRepo := mockRepo.NewMockConnectionRepository(t)
			factory.EXPECT().NewClientRepository().Return(clientRepo)
			factory.EXPECT().NewConnectionRepository().Return(connRepo)
			clientRepo.EXPECT().CountClientsByConnection(ctx, connectionID).Return(0, nil)
			connRepo.EXPECT().DeleteConnection(ctx, connectionID).Return(nil)
		})

		require.NoError(t, fx.service.Disconnect(ctx, connectionID))
	})

	t.Run("connection in use", func(t *testing.T) {
		fx := createTestConnectionService(t)
		fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
			clientRepo := mockRepo.NewMockClientRepository(t)
			factory.EXPECT().NewClientRepository().Return(clientRepo)
			clientRepo.EXPECT().CountClientsByConnection(ctx, connectionID).Return(2, nil)
		})

		err := fx.service.Disconnect(ctx, connectionID)
		require.True(t, errors.Is(err, domainerrors.ErrConnectionInUse))

		var appErr *domainerrors.BaseError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Cannot disconnect: 2 client(s) are using this connection", appErr.Message())
	})

	t.Run("unknown connection", func(t *testing.T) {
		fx := createTestConnectionService(t)
		fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
			clientRepo := mockRepo.NewMockClientRepository(t)
			connRepo := mockRepo.NewMockConnectionRepository(t)
			factory.EXPECT().NewClientRepository().Return(clientRepo)
			factory.EXPECT().NewConnectionRepository().Return(connRepo)
			clientRepo.EXPECT().CountClientsByConnection(ctx, connectionID).Return(0, nil)
			connRepo.EXPECT().DeleteConnection(ctx, connectionID).Return(repository.ErrConnectionNotFound)
		})

		err := fx.service.Disconnect(ctx, connectionID)
		assert.True(t, errors.Is(err, domainerrors.ErrConnectionNotFound))
	})
}

func TestConnectionService_SetManagerAccount(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	connectionID := uuid.New()

	fx.connectionRepo.EXPECT().UpdateMCCAccountID(ctx, connectionID, "1234567890").Return(nil).Once()
	require.NoError(t, fx.service.SetManagerAccount(ctx, connectionID, " 123-456-7890 "))

	fx.connectionRepo.EXPECT().UpdateMCCAccountID(ctx, connectionID, "1").Return(repository.ErrConnectionNotFound).Once()
	err := fx.service.SetManagerAccount(ctx, connectionID, "1")
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionNotFound))
}

func TestConnectionService_ListAccessibleAccounts(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()
	connectionID := uuid.New()

	fx.reporting.EXPECT().ListAccessibleAccounts(ctx, connectionID).Return([]service.AdsAccount{
		{CustomerID: "1112223333", Name: "Acme", CurrencyCode: "MYR"},
	}, nil).Once()

	accounts, err := fx.service.ListAccessibleAccounts(ctx, connectionID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Acme", accounts[0].Name)

	fx.reporting.EXPECT().ListAccessibleAccounts(ctx, connectionID).Return(nil, domainerrors.ErrManagerAccountRequired).Once()
	_, err = fx.service.ListAccessibleAccounts(ctx, connectionID)
	assert.True(t, errors.Is(err, domainerrors.ErrManagerAccountRequired))
}
