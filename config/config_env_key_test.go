package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googleAds": map[string]any{
			"developerToken": "",
			"breaker": map[string]any{
				"failureThreshold": 5,
			},
		},
		"tokenVault": map[string]any{
			"encryptionKey": "",
		},
		"sync": map[string]any{
			"lookbackDays": 30,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEADS_DEVELOPERTOKEN", want: "googleAds.developerToken"},
		{envKey: "GOOGLEADS_BREAKER_FAILURETHRESHOLD", want: "googleAds.breaker.failureThreshold"},
		{envKey: "TOKENVAULT_ENCRYPTIONKEY", want: "tokenVault.encryptionKey"},
		{envKey: "SYNC_LOOKBACKDAYS", want: "sync.lookbackDays"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 30, cfg.Sync.LookbackDays)
	assert.Equal(t, 30*time.Second, cfg.GoogleAds.RequestTimeout)
	assert.Equal(t, "https://googleads.googleapis.com", cfg.GoogleAds.BaseURL)
	assert.Equal(t, uint32(5), cfg.GoogleAds.Breaker.FailureThreshold)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.Redis)
	assert.NotNil(t, cfg.TokenVault)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Sync:      &SyncConfig{LookbackDays: 7},
		GoogleAds: &GoogleAdsConfig{RequestTimeout: 5 * time.Second, APIVersion: "v19"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 7, cfg.Sync.LookbackDays)
	assert.Equal(t, 5*time.Second, cfg.GoogleAds.RequestTimeout)
	assert.Equal(t, "v19", cfg.GoogleAds.APIVersion)
}
