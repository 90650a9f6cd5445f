package usecase

import (
	"context"

	"adpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncResult is the outcome of one client sync. SyncLogID is empty when the
// client was not eligible and no log was written.
type SyncResult struct {
	Success      bool   `json:"success"`
	SyncLogID    string `json:"syncLogId"`
	RecordsCount int    `json:"recordsCount"`
	Error        string `json:"error,omitempty"`
}

// SweepResult tallies a sync over every eligible client.
type SweepResult struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// SyncUsecase pulls Google Ads data into local storage.
type SyncUsecase interface {
	// SyncClientData syncs campaigns and metrics for one client over the trailing
	// lookbackDays. Failures are reported in the result, never returned.
	SyncClientData(ctx context.Context, clientID uuid.UUID, lookbackDays int) *SyncResult

	// SyncAllClients syncs every eligible client one after another and
	// evaluates budget alerts after each success.
	SyncAllClients(ctx context.Context) *SweepResult

	// RunSweep is SyncAllClients guarded by the fleet-wide sweep lock. It
	// returns ErrSweepInProgress when another sweep holds the lock and an
	// error when the eligible clients cannot be listed.
	RunSweep(ctx context.Context) (*SweepResult, error)

	// ListSyncLogs lists recent sync logs, newest first.
	ListSyncLogs(ctx context.Context, connectionID *uuid.UUID, limit int) ([]*entity.SyncLog, error)
}
