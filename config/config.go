package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultLookbackDays       = 30
	defaultRequestTimeout     = 30 * time.Second
	defaultRefreshLockTTL     = 30 * time.Second
	defaultAdsAPIVersion      = "v18"
	defaultAdsBaseURL         = "https://googleads.googleapis.com"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// PublicURL is where the dashboard is served; OAuth callbacks redirect back to it.
		PublicURL string `json:"publicUrl" yaml:"publicUrl"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey signs the admin session tokens checked by the auth middleware.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	GoogleAds *GoogleAdsConfig `json:"googleAds" yaml:"googleAds"`

	TokenVault *TokenVaultConfig `json:"tokenVault" yaml:"tokenVault"`

	Sync *SyncConfig `json:"sync" yaml:"sync"`

	// Redis is optional. When Addr is empty, locks are process-local.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase push for new alerts; disabled when nil
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// GoogleOAuthConfig holds the default OAuth client. Values stored in the
// settings table take precedence at runtime.
type GoogleOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	AuthURL      string `json:"authUrl" yaml:"authUrl"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
	UserInfoURL  string `json:"userInfoUrl" yaml:"userInfoUrl"`
	// StateTTL bounds how long a consent redirect stays valid.
	StateTTL time.Duration `json:"stateTtl" yaml:"stateTtl"`
}

// GoogleAdsConfig defines the reporting API client configuration
type GoogleAdsConfig struct {
	DeveloperToken string        `json:"developerToken" yaml:"developerToken"`
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	APIVersion     string        `json:"apiVersion" yaml:"apiVersion"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Client-side throttle shared by every query of the process
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`

	Breaker BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig controls the circuit breaker in front of the reporting API
type BreakerConfig struct {
	FailureThreshold uint32        `json:"failureThreshold" yaml:"failureThreshold"`
	OpenTimeout      time.Duration `json:"openTimeout" yaml:"openTimeout"`
	MaxHalfOpen      uint32        `json:"maxHalfOpen" yaml:"maxHalfOpen"`
}

// TokenVaultConfig holds the symmetric key used for refresh tokens at rest.
type TokenVaultConfig struct {
	// EncryptionKey must be exactly 32 bytes.
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`
}

// SyncConfig defines the sync engine behaviour
type SyncConfig struct {
	LookbackDays int `json:"lookbackDays" yaml:"lookbackDays"`
	// RefreshLockTTL bounds the per-connection token refresh critical section.
	RefreshLockTTL time.Duration `json:"refreshLockTtl" yaml:"refreshLockTtl"`

	Schedule struct {
		Enabled  bool          `json:"enabled" yaml:"enabled"`
		Interval time.Duration `json:"interval" yaml:"interval"`
		// LockTTL should exceed the longest expected sweep.
		LockTTL time.Duration `json:"lockTtl" yaml:"lockTtl"`
	} `json:"schedule" yaml:"schedule"`
}

// RedisConfig defines the Redis connection used for distributed locks
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Service account key file; application default credentials when empty
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig configures FCM topic pushes for budget alerts
type FirebaseConfig struct {
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// TopicPrefix is prepended to the client id to form the FCM topic
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// MetricsConfig toggles the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills the optional sections so consumers never see nil.
func applyDefaults(cfg *Config) {
	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.GoogleOAuth.StateTTL <= 0 {
		cfg.GoogleOAuth.StateTTL = 10 * time.Minute
	}

	if cfg.GoogleAds == nil {
		cfg.GoogleAds = &GoogleAdsConfig{}
	}
	if cfg.GoogleAds.BaseURL == "" {
		cfg.GoogleAds.BaseURL = defaultAdsBaseURL
	}
	if cfg.GoogleAds.APIVersion == "" {
		cfg.GoogleAds.APIVersion = defaultAdsAPIVersion
	}
	if cfg.GoogleAds.RequestTimeout <= 0 {
		cfg.GoogleAds.RequestTimeout = defaultRequestTimeout
	}
	if cfg.GoogleAds.Breaker.FailureThreshold == 0 {
		cfg.GoogleAds.Breaker.FailureThreshold = 5
	}
	if cfg.GoogleAds.Breaker.OpenTimeout <= 0 {
		cfg.GoogleAds.Breaker.OpenTimeout = time.Minute
	}

	if cfg.TokenVault == nil {
		cfg.TokenVault = &TokenVaultConfig{}
	}

	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if cfg.Sync.LookbackDays <= 0 {
		cfg.Sync.LookbackDays = defaultLookbackDays
	}
	if cfg.Sync.RefreshLockTTL <= 0 {
		cfg.Sync.RefreshLockTTL = defaultRefreshLockTTL
	}
	if cfg.Sync.Schedule.Interval <= 0 {
		cfg.Sync.Schedule.Interval = 6 * time.Hour
	}
	if cfg.Sync.Schedule.LockTTL <= 0 {
		cfg.Sync.Schedule.LockTTL = time.Hour
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: "noop"}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
