package service

import "time"

// SyncMetrics records sync engine activity.
type SyncMetrics interface {
	ObserveSync(success bool, records int, elapsed time.Duration)
	ObserveSweep(total, succeeded, failed int)
	IncAlert(alertType string)
}
