package config

import (
	"testing"
	"time"

	"gtfstrigger/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	t.Setenv("MATCHER_CONCURRENCY", "8")
	t.Setenv("STORE_PROVIDER", "memory")

	cfg, err := LoadWithEnv[Config]("test", "testdata")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, "gtfstrigger-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Minute, cfg.Matcher.Interval)
	assert.Equal(t, 8, cfg.Matcher.Concurrency)
	assert.Equal(t, constants.StoreProviderMemory, cfg.Store.Provider)
	require.Len(t, cfg.Feeds.Entries, 2)
	assert.Equal(t, "data", cfg.Feeds.Entries[0].Key)
	assert.Equal(t, "/odpt-yokohama-city-bus-vehicle-position", cfg.Feeds.Entries[0].Path)
	assert.Equal(t, "https://api.example.com", cfg.StopLookup.BaseURL)

	require.NoError(t, Validate(cfg))
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", "testdata")
	require.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StoreProviderPostgres, cfg.Store.Provider)
	assert.Equal(t, 200*time.Millisecond, cfg.Store.SlowQueryThreshold)
	assert.Equal(t, time.Minute, cfg.Matcher.Interval)
	assert.Equal(t, 300*time.Second, cfg.Matcher.PassTimeout)
	assert.Equal(t, time.Hour, cfg.Matcher.Cooldown)
	assert.Equal(t, defaultMatcherConcurrency, cfg.Matcher.Concurrency)
	assert.Equal(t, "PoiCle", cfg.Notifier.DefaultLabel)
	assert.NotNil(t, cfg.PubSub)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := &Config{Feeds: &FeedsConfig{Entries: []FeedEntry{{Key: "data", Path: "/vehicles"}}}}
		applyDefaults(cfg)

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no feeds", mutate: func(c *Config) { c.Feeds.Entries = nil }, wantErr: true},
		{name: "feed without key", mutate: func(c *Config) { c.Feeds.Entries[0].Key = "" }, wantErr: true},
		{name: "feed without url or path", mutate: func(c *Config) { c.Feeds.Entries[0].Path = "" }, wantErr: true},
		{name: "feed with bad url", mutate: func(c *Config) { c.Feeds.Entries[0] = FeedEntry{Key: "x", URL: "not a url"} }, wantErr: true},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Provider = "dynamodb" }, wantErr: true},
		{name: "unknown pubsub", mutate: func(c *Config) { c.PubSub.Provider = "kafka" }, wantErr: true},
		{name: "memory store in develop", mutate: func(c *Config) {
			c.Env.Env = constants.EnvDevelop
			c.Store.Provider = constants.StoreProviderMemory
		}},
		{name: "memory store in production", mutate: func(c *Config) {
			c.Env.Env = constants.EnvProduction
			c.Store.Provider = constants.StoreProviderMemory
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
