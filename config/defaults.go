package config

import (
	"strings"
	"time"

	"gtfstrigger/internal/domain/constants"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	defaultMatcherInterval    = time.Minute
	defaultPassTimeout        = 300 * time.Second
	defaultCooldown           = time.Hour
	defaultMatcherConcurrency = 4
	defaultFetchTimeout       = 30 * time.Second
	defaultStopLookupTimeout  = 10 * time.Second
	defaultStopCacheTTL       = 10 * time.Minute
	defaultStopCacheSize      = 64
	defaultWebhookTimeout     = 10 * time.Second
	defaultNotifierTimeout    = 10 * time.Second
	defaultNotifierLabel      = "PoiCle"
	defaultNotifierDescribe   = "Notification from PoiCle."
	defaultSlowQueryThreshold = 200 * time.Millisecond
)

// applyDefaults fills every optional section so callers never see a nil sub-config.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Provider == "" {
		cfg.Store.Provider = constants.StoreProviderPostgres
	}
	if cfg.Store.SlowQueryThreshold <= 0 {
		cfg.Store.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Feeds == nil {
		cfg.Feeds = &FeedsConfig{}
	}
	if cfg.Feeds.FetchTimeout <= 0 {
		cfg.Feeds.FetchTimeout = defaultFetchTimeout
	}

	if cfg.StopLookup == nil {
		cfg.StopLookup = &StopLookupConfig{}
	}
	if cfg.StopLookup.BaseURL == "" {
		cfg.StopLookup.BaseURL = cfg.Feeds.APIBaseURL
	}
	if cfg.StopLookup.Timeout <= 0 {
		cfg.StopLookup.Timeout = defaultStopLookupTimeout
	}
	if cfg.StopLookup.CacheTTL <= 0 {
		cfg.StopLookup.CacheTTL = defaultStopCacheTTL
	}
	if cfg.StopLookup.CacheSize <= 0 {
		cfg.StopLookup.CacheSize = defaultStopCacheSize
	}

	if cfg.Matcher == nil {
		cfg.Matcher = &MatcherConfig{}
	}
	if cfg.Matcher.Interval <= 0 {
		cfg.Matcher.Interval = defaultMatcherInterval
	}
	if cfg.Matcher.PassTimeout <= 0 {
		cfg.Matcher.PassTimeout = defaultPassTimeout
	}
	if cfg.Matcher.Cooldown <= 0 {
		cfg.Matcher.Cooldown = defaultCooldown
	}
	if cfg.Matcher.Concurrency <= 0 {
		cfg.Matcher.Concurrency = defaultMatcherConcurrency
	}

	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if cfg.Webhook.Timeout <= 0 {
		cfg.Webhook.Timeout = defaultWebhookTimeout
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = defaultNotifierTimeout
	}
	if cfg.Notifier.DefaultLabel == "" {
		cfg.Notifier.DefaultLabel = defaultNotifierLabel
	}
	if cfg.Notifier.DefaultDescription == "" {
		cfg.Notifier.DefaultDescription = defaultNotifierDescribe
	}
}

// Validate checks the struct tags of the configuration.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	// The memory store lives inside one process, so the api and the matcher
	// would each see their own subscriptions.
	if cfg.Store != nil && cfg.Store.Provider == constants.StoreProviderMemory && deployedEnv(cfg.Env.Env) {
		return errors.Errorf("invalid configuration: store provider %q is only supported in %s", constants.StoreProviderMemory, constants.EnvDevelop)
	}

	return nil
}

func deployedEnv(env string) bool {
	return env == constants.EnvStaging || env == constants.EnvProduction
}
