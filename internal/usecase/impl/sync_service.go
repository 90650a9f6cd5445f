package impl

import (
	"context"
	"log/slog"
	"time"

	"adpulse/config"
	deliverycontext "adpulse/internal/delivery/context"
	"adpulse/internal/domain/constants"
	"adpulse/internal/domain/entity"
	domainerrors "adpulse/internal/domain/errors"
	"adpulse/internal/domain/repository"
	"adpulse/internal/domain/service"
	"adpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultLookbackDays = 30
	defaultSyncLogLimit = 10
	defaultSweepLockTTL = time.Hour
	gaqlDateLayout      = "2006-01-02"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	clientRepo     repository.ClientRepository
	campaignRepo   repository.CampaignRepository
	metricsRepo    repository.MetricsRepository
	syncLogRepo    repository.SyncLogRepository
	connectionRepo repository.ConnectionRepository
	reporting      service.AdsReportingClient
	alerts         usecase.AlertUsecase
	syncMetrics    service.SyncMetrics
	locker         service.Locker
	lookbackDays   int
	sweepLockTTL   time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	ClientRepo     repository.ClientRepository
	CampaignRepo   repository.CampaignRepository
	MetricsRepo    repository.MetricsRepository
	SyncLogRepo    repository.SyncLogRepository
	ConnectionRepo repository.ConnectionRepository
	Reporting      service.AdsReportingClient
	Alerts         usecase.AlertUsecase
	SyncMetrics    service.SyncMetrics
	Locker         service.Locker
	Config         *config.Config
	Logger         *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	lookback := defaultLookbackDays
	if params.Config != nil && params.Config.Sync != nil && params.Config.Sync.LookbackDays > 0 {
		lookback = params.Config.Sync.LookbackDays
	}
	sweepLockTTL := defaultSweepLockTTL
	if params.Config != nil && params.Config.Sync != nil && params.Config.Sync.Schedule.LockTTL > 0 {
		sweepLockTTL = params.Config.Sync.Schedule.LockTTL
	}

	return &syncService{
		clientRepo:     params.ClientRepo,
		campaignRepo:   params.CampaignRepo,
		metricsRepo:    params.MetricsRepo,
		syncLogRepo:    params.SyncLogRepo,
		connectionRepo: params.ConnectionRepo,
		reporting:      params.Reporting,
		alerts:         params.Alerts,
		syncMetrics:    params.SyncMetrics,
		locker:         params.Locker,
		lookbackDays:   lookback,
		sweepLockTTL:   sweepLockTTL,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncClientData runs one full sync. Every failure after the log is opened
// finalises the log as FAILED and is reported through the result.
func (srv *syncService) SyncClientData(ctx context.Context, clientID uuid.UUID, lookbackDays int) *usecase.SyncResult {
	started := srv.now()
	logger := srv.log(ctx).With(slog.String("client_id", clientID.String()))

	client, err := srv.clientRepo.FindClientByID(ctx, clientID)
	if err != nil && !errors.Is(err, repository.ErrClientNotFound) {
		logger.Error("Failed to load client for sync", slog.Any("error", err))

		return &usecase.SyncResult{Error: err.Error()}
	}
	if client == nil || !client.SyncEligible() {
		logger.Warn("Client not eligible for sync")

		return &usecase.SyncResult{Error: domainerrors.ErrClientNotConfigured.Message()}
	}

	if lookbackDays <= 0 {
		lookbackDays = srv.lookbackDays
	}
	connectionID := client.GoogleConnection.ID

	syncLog := &entity.SyncLog{
		ConnectionID: connectionID,
		Type:         entity.SyncTypeFull,
		Status:       entity.SyncLogRunning,
		StartedAt:    started,
	}
	if err := srv.syncLogRepo.CreateSyncLog(ctx, syncLog); err != nil {
		logger.Error("Failed to open sync log", slog.Any("error", err))

		return &usecase.SyncResult{Error: err.Error()}
	}

	records, runErr := srv.run(ctx, client, lookbackDays)

	// The log must leave RUNNING even when the caller has gone away.
	finalizeCtx := context.WithoutCancel(ctx)
	completedAt := srv.now()
	result := &usecase.SyncResult{
		Success:      runErr == nil,
		SyncLogID:    syncLog.ID.String(),
		RecordsCount: records,
	}

	status, connStatus, errMsg := entity.SyncLogSuccess, entity.SyncStatusSuccess, ""
	if runErr != nil {
		status, connStatus, errMsg = entity.SyncLogFailed, entity.SyncStatusFailed, runErr.Error()
		result.Error = errMsg
	}

	if err := srv.syncLogRepo.CompleteSyncLog(finalizeCtx, syncLog.ID, status, records, errMsg, completedAt); err != nil {
		logger.Error("Failed to finalise sync log", slog.String("sync_log_id", result.SyncLogID), slog.Any("error", err))
	}
	if err := srv.connectionRepo.UpdateSyncStatus(finalizeCtx, connectionID, connStatus, completedAt); err != nil {
		logger.Error("Failed to record connection sync status", slog.Any("error", err))
	}

	srv.syncMetrics.ObserveSync(result.Success, records, completedAt.Sub(started))

	if runErr != nil {
		logger.Warn("Client sync failed",
			slog.String("sync_log_id", result.SyncLogID),
			slog.Int("records", records),
			slog.Any("error", runErr),
		)
	} else {
		logger.Info("Client sync completed",
			slog.String("sync_log_id", result.SyncLogID),
			slog.Int("records", records),
			slog.Duration("elapsed", completedAt.Sub(started)),
		)
	}

	return result
}

// run executes the three reconcile steps in order and returns how many rows it touched.
func (srv *syncService) run(ctx context.Context, client *entity.Client, lookbackDays int) (int, error) {
	connectionID := client.GoogleConnection.ID
	customerID := client.GoogleCustomerID

	end := srv.now().UTC()
	startDate := end.AddDate(0, 0, -lookbackDays).Format(gaqlDateLayout)
	endDate := end.Format(gaqlDateLayout)

	records := 0

	campaigns, err := srv.reporting.ListCampaigns(ctx, connectionID, customerID)
	if err != nil {
		return records, err
	}
	for _, c := range campaigns {
		campaign, err := toCampaignEntity(client.ID, c)
		if err != nil {
			return records, err
		}
		if err := srv.campaignRepo.UpsertCampaign(ctx, campaign); err != nil {
			return records, err
		}
		records++
	}

	daily, err := srv.reporting.GetDailyMetrics(ctx, connectionID, customerID, startDate, endDate)
	if err != nil {
		return records, err
	}
	for _, m := range daily {
		date, err := parseReportDate(m.Date)
		if err != nil {
			return records, err
		}
		if err := srv.metricsRepo.UpsertDailyMetrics(ctx, &entity.DailyMetrics{
			ClientID:    client.ID,
			Date:        date,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Cost:        m.Cost,
			Conversions: m.Conversions,
			CTR:         m.CTR,
			CPC:         m.CPC,
			ROAS:        m.ROAS,
			Source:      entity.MetricsSourceAPI,
		}); err != nil {
			return records, err
		}
		records++
	}

	campaignMetrics, err := srv.reporting.GetCampaignMetrics(ctx, connectionID, customerID, startDate, endDate)
	if err != nil {
		return records, err
	}

	order, groups := groupByCampaign(campaignMetrics)
	for _, googleCampaignID := range order {
		campaign, err := srv.campaignRepo.FindCampaignByGoogleID(ctx, client.ID, googleCampaignID)
		if errors.Is(err, repository.ErrCampaignNotFound) {
			srv.log(ctx).Debug("Skipping metrics for unknown campaign",
				slog.String("client_id", client.ID.String()),
				slog.String("google_campaign_id", googleCampaignID),
			)

			continue
		}
		if err != nil {
			return records, err
		}

		for _, m := range groups[googleCampaignID] {
			date, err := parseReportDate(m.Date)
			if err != nil {
				return records, err
			}
			if err := srv.metricsRepo.UpsertCampaignMetrics(ctx, &entity.CampaignMetrics{
				CampaignID:      campaign.ID,
				Date:            date,
				Impressions:     m.Impressions,
				Clicks:          m.Clicks,
				Cost:            m.Cost,
				Conversions:     m.Conversions,
				CTR:             m.CTR,
				CPC:             m.CPC,
				ImpressionShare: m.ImpressionShare,
			}); err != nil {
				return records, err
			}
			records++
		}
	}

	return records, nil
}

// SyncAllClients syncs every eligible client sequentially. One client failing
// never stops the sweep.
func (srv *syncService) SyncAllClients(ctx context.Context) *usecase.SweepResult {
	result, err := srv.sweep(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list syncable clients", slog.Any("error", err))
	}

	return result
}

// sweep returns an error only when the client list cannot be loaded.
func (srv *syncService) sweep(ctx context.Context) (*usecase.SweepResult, error) {
	logger := srv.log(ctx)
	result := &usecase.SweepResult{}

	clients, err := srv.clientRepo.FindSyncableClients(ctx)
	if err != nil {
		return result, errors.Wrap(err, "failed to list syncable clients")
	}

	result.Total = len(clients)
	for _, client := range clients {
		outcome := srv.SyncClientData(ctx, client.ID, 0)
		if !outcome.Success {
			result.Failed++

			continue
		}
		result.Success++

		if err := srv.alerts.CheckAndCreateAlerts(ctx, client.ID); err != nil {
			logger.Warn("Budget alert evaluation failed",
				slog.String("client_id", client.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	srv.syncMetrics.ObserveSweep(result.Total, result.Success, result.Failed)
	logger.Info("Sync sweep completed",
		slog.Int("total", result.Total),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// RunSweep runs SyncAllClients while holding the fleet-wide sweep lock, so
// the scheduler, the worker and the HTTP trigger never overlap.
func (srv *syncService) RunSweep(ctx context.Context) (*usecase.SweepResult, error) {
	lock, err := srv.locker.Obtain(ctx, constants.LockKeySyncSweep, srv.sweepLockTTL, false)
	if errors.Is(err, service.ErrLockNotObtained) {
		return nil, domainerrors.ErrSweepInProgress
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to obtain sweep lock")
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			srv.log(ctx).Warn("Failed to release sweep lock", slog.Any("error", err))
		}
	}()

	result, err := srv.sweep(ctx)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ListSyncLogs lists recent sync logs, newest first.
func (srv *syncService) ListSyncLogs(ctx context.Context, connectionID *uuid.UUID, limit int) ([]*entity.SyncLog, error) {
	if limit <= 0 {
		limit = defaultSyncLogLimit
	}

	logs, err := srv.syncLogRepo.ListRecentSyncLogs(ctx, connectionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sync logs")
	}

	return logs, nil
}

func toCampaignEntity(clientID uuid.UUID, c service.AdsCampaign) (*entity.Campaign, error) {
	startDate, err := parseOptionalDate(c.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(c.EndDate)
	if err != nil {
		return nil, err
	}

	return &entity.Campaign{
		ClientID:         clientID,
		GoogleCampaignID: c.ID,
		Name:             c.Name,
		Status:           c.Status,
		ChannelType:      c.ChannelType,
		DailyBudget:      c.DailyBudget,
		StartDate:        startDate,
		EndDate:          endDate,
	}, nil
}

// parseReportDate reads a report day as midnight UTC.
func parseReportDate(value string) (time.Time, error) {
	date, err := time.Parse(gaqlDateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid report date %q", value)
	}

	return date, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := parseReportDate(value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// groupByCampaign groups rows by campaign id, keeping first-seen order.
func groupByCampaign(rows []service.AdsCampaignMetrics) ([]string, map[string][]service.AdsCampaignMetrics) {
	var order []string
	groups := make(map[string][]service.AdsCampaignMetrics)

	for _, row := range rows {
		if _, seen := groups[row.CampaignID]; !seen {
			order = append(order, row.CampaignID)
		}
		groups[row.CampaignID] = append(groups[row.CampaignID], row)
	}

	return order, groups
}
