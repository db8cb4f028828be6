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
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		H2C                bool   `json:"h2c" yaml:"h2c"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the subscription store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Feeds is the registry of known GTFS-RT vehicle position feeds
	Feeds *FeedsConfig `json:"feeds" yaml:"feeds" validate:"required"`

	// StopLookup configures the stop lookup API used by stop_id filters
	StopLookup *StopLookupConfig `json:"stopLookup" yaml:"stopLookup"`

	// Matcher configures the scheduled matching pass
	Matcher *MatcherConfig `json:"matcher" yaml:"matcher"`

	// Webhook configures outbound webhook delivery
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Notifier configures the notification relay
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which subscription store is used
type StoreConfig struct {
	// Provider type: "postgres" or "memory"
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=postgres memory"`

	// File the memory provider loads from on start and saves to on shutdown
	Filename string `json:"filename" yaml:"filename"`

	// Create or update the subscription table on start (postgres provider)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Statements slower than this are logged as warnings (postgres provider)
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// FeedsConfig defines the known feeds
type FeedsConfig struct {
	// Base URL of the vehicle position and stop lookup API
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl" validate:"omitempty,url"`

	// FetchTimeout bounds a single feed download
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout"`

	Entries []FeedEntry `json:"entries" yaml:"entries" validate:"required,min=1,dive"`
}

// FeedEntry is one known feed. Either URL or Path must be set; Path is joined to APIBaseURL.
type FeedEntry struct {
	Key         string `json:"key" yaml:"key" validate:"required"`
	URL         string `json:"url" yaml:"url" validate:"required_without=Path,omitempty,url"`
	Path        string `json:"path" yaml:"path" validate:"required_without=URL"`
	StopsGTFSID string `json:"stopsGtfsId" yaml:"stopsGtfsId"`

	// ReadOnly feeds are matched but new subscriptions cannot name them
	ReadOnly bool `json:"readOnly" yaml:"readOnly"`
}

// StopLookupConfig defines the stop lookup client
type StopLookupConfig struct {
	// Base URL of the getBusStops API, defaults to feeds.apiBaseUrl
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl" validate:"omitempty,url"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL  time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
	CacheSize int           `json:"cacheSize" yaml:"cacheSize"`
}

// MatcherConfig defines the matching pass schedule and limits
type MatcherConfig struct {
	Interval    time.Duration `json:"interval" yaml:"interval"`
	PassTimeout time.Duration `json:"passTimeout" yaml:"passTimeout"`
	Cooldown    time.Duration `json:"cooldown" yaml:"cooldown"`

	// Number of feed groups evaluated concurrently
	Concurrency int `json:"concurrency" yaml:"concurrency" validate:"gte=0"`

	// Run a pass as soon as the worker starts
	RunOnStart bool `json:"runOnStart" yaml:"runOnStart"`

	// Disable the interval ticker and rely on /run or /push triggers only
	DisableTicker bool `json:"disableTicker" yaml:"disableTicker"`
}

// WebhookConfig defines outbound webhook delivery
type WebhookConfig struct {
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=noop local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// NotifierConfig defines the notification relay
type NotifierConfig struct {
	// Mattermost incoming webhook every relayed notification is posted to
	MattermostWebhookURL string `json:"mattermostWebhookUrl" yaml:"mattermostWebhookUrl" validate:"omitempty,url"`
	MattermostUsername   string `json:"mattermostUsername" yaml:"mattermostUsername"`

	// Link placed in emails to remove the subscription, "?userEmail=" is appended
	UnsubscribeURL string `json:"unsubscribeUrl" yaml:"unsubscribeUrl"`

	DefaultLabel       string `json:"defaultLabel" yaml:"defaultLabel"`
	DefaultDescription string `json:"defaultDescription" yaml:"defaultDescription"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`
}

// SMTPConfig defines the mail relay
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
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
