package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"apiKey":            "",
			"requestsPerSecond": 10,
		},
		"delivery": map[string]any{
			"thresholdKm": 8,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"session": map[string]any{
			"idleTimeout": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODING_APIKEY", want: "geocoding.apiKey"},
		{envKey: "GEOCODING_REQUESTSPERSECOND", want: "geocoding.requestsPerSecond"},
		{envKey: "DELIVERY_THRESHOLDKM", want: "delivery.thresholdKm"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SESSION_IDLETIMEOUT", want: "session.idleTimeout"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Delivery.ThresholdKm != defaultThresholdKm {
		t.Fatalf("ThresholdKm = %v, want %v", cfg.Delivery.ThresholdKm, defaultThresholdKm)
	}
	if got := cfg.Delivery.Restaurants["teie"]; got != "Smidsrødveien 14, 3120 Nøtterøy" {
		t.Fatalf("teie address = %q", got)
	}
	if cfg.Geocoding.Provider != "static" {
		t.Fatalf("Provider = %q, want static", cfg.Geocoding.Provider)
	}
	if cfg.Geocoding.Timeout != 10*time.Second {
		t.Fatalf("Timeout = %s", cfg.Geocoding.Timeout)
	}
	if cfg.Session.IdleTimeout != defaultSessionIdle {
		t.Fatalf("IdleTimeout = %s", cfg.Session.IdleTimeout)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("Metrics.Path = %q", cfg.Metrics.Path)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Delivery: &DeliveryConfig{
			ThresholdKm: 5,
			Restaurants: map[string]string{"north": "Storgata 1, 0155 Oslo"},
		},
		Geocoding: &GeocodingConfig{Provider: "google", RequestsPerSecond: 4},
	}
	cfg.ApplyDefaults()

	if cfg.Delivery.ThresholdKm != 5 {
		t.Fatalf("ThresholdKm = %v, want 5", cfg.Delivery.ThresholdKm)
	}
	if len(cfg.Delivery.Restaurants) != 1 {
		t.Fatalf("Restaurants = %v", cfg.Delivery.Restaurants)
	}
	if cfg.Geocoding.Provider != "google" {
		t.Fatalf("Provider = %q", cfg.Geocoding.Provider)
	}
	if cfg.Geocoding.Burst != 4 {
		t.Fatalf("Burst = %d, want 4", cfg.Geocoding.Burst)
	}
}
