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

	defaultThresholdKm       = 8.0
	defaultGeocodeTimeout    = 10 * time.Second
	defaultRequestsPerSecond = 10.0
	defaultSessionIdle       = 30 * time.Minute
	defaultSweepInterval     = time.Minute
	defaultMetricsPath       = "/metrics"
	defaultWorkerPort        = 8081
	defaultAuditPageSize     = 100
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Geocoding configuration for the address resolution provider
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Delivery configuration for the service radius and restaurant locations
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	// Session configuration for checkout sessions
	Session *SessionConfig `json:"session" yaml:"session"`

	// PubSub configuration for eligibility event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Postgres stores the eligibility audit trail written by the worker
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Worker configuration for the eligibility event consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodingConfig defines the geocoding provider settings
type GeocodingConfig struct {
	// Provider type: "google", "ors" or "static"
	Provider string `json:"provider" yaml:"provider"`

	// Base URL of the provider API; empty uses the provider default
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Region biasing (ccTLD for google, ISO country for ors)
	Region string `json:"region" yaml:"region"`

	// Timeout for a single outbound geocoding request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Outbound request budget shared by all sessions
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`

	// Fixed address -> coordinate table used by the static provider
	StaticLocations map[string]StaticLocation `json:"staticLocations" yaml:"staticLocations"`
}

// StaticLocation is a preconfigured geocoding answer
type StaticLocation struct {
	Address   string  `json:"address" yaml:"address"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// DeliveryConfig defines the service radius and restaurant locations
type DeliveryConfig struct {
	// Maximum straight-line distance in kilometers, inclusive
	ThresholdKm float64 `json:"thresholdKm" yaml:"thresholdKm"`

	// Restaurant identifier -> canonical postal address
	Restaurants map[string]string `json:"restaurants" yaml:"restaurants"`

	// Map center used when no coordinate is known yet
	DefaultCenter struct {
		Latitude  float64 `json:"latitude" yaml:"latitude"`
		Longitude float64 `json:"longitude" yaml:"longitude"`
	} `json:"defaultCenter" yaml:"defaultCenter"`
}

// SessionConfig defines checkout session housekeeping
type SessionConfig struct {
	IdleTimeout   time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	MaxSessions   int           `json:"maxSessions" yaml:"maxSessions"`
}

// PubSubConfig defines Pub/Sub configuration for eligibility events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the eligibility event worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Expected audience of Pub/Sub push OIDC tokens; empty skips the audience check
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Maximum number of audit records returned per query
	AuditPageSize int `json:"auditPageSize" yaml:"auditPageSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GEOCODING_APIKEY -> geocoding.apiKey (not geocoding.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section that was left empty.
func (c *Config) ApplyDefaults() {
	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.Provider == "" {
		c.Geocoding.Provider = "static"
	}
	if c.Geocoding.Timeout <= 0 {
		c.Geocoding.Timeout = defaultGeocodeTimeout
	}
	if c.Geocoding.RequestsPerSecond <= 0 {
		c.Geocoding.RequestsPerSecond = defaultRequestsPerSecond
	}
	if c.Geocoding.Burst <= 0 {
		c.Geocoding.Burst = int(c.Geocoding.RequestsPerSecond)
	}

	if c.Delivery == nil {
		c.Delivery = &DeliveryConfig{}
	}
	if c.Delivery.ThresholdKm <= 0 {
		c.Delivery.ThresholdKm = defaultThresholdKm
	}
	if len(c.Delivery.Restaurants) == 0 {
		c.Delivery.Restaurants = DefaultRestaurants()
	}
	if c.Delivery.DefaultCenter.Latitude == 0 && c.Delivery.DefaultCenter.Longitude == 0 {
		c.Delivery.DefaultCenter.Latitude = 59.2317
		c.Delivery.DefaultCenter.Longitude = 10.4014
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.IdleTimeout <= 0 {
		c.Session.IdleTimeout = defaultSessionIdle
	}
	if c.Session.SweepInterval <= 0 {
		c.Session.SweepInterval = defaultSweepInterval
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if c.Worker.AuditPageSize <= 0 {
		c.Worker.AuditPageSize = defaultAuditPageSize
	}
}

// DefaultRestaurants returns the canonical addresses of the three restaurants.
func DefaultRestaurants() map[string]string {
	return map[string]string{
		"tolvsrød": "Valløveien 58, 3152 Tolvsrød",
		"teie":     "Smidsrødveien 14, 3120 Nøtterøy",
		"sentrum":  "Stoltenbergs gate 31b, 3110 Tønsberg",
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
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
