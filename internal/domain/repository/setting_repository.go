package repository

import "context"

// SettingRepository reads operator settings.
type SettingRepository interface {
	// FindSettings returns the values of the requested keys. Missing keys are absent from the map.
	FindSettings(ctx context.Context, keys ...string) (map[string]string, error)
}
