package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"databaseUrl":     "",
			"credentialsPath": "",
		},
		"cache": map[string]any{
			"storesStaleTime": "15m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"reconciler": map[string]any{
			"guardTtl": "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_DATABASEURL", want: "firebase.databaseUrl"},
		{envKey: "CACHE_STORESSTALETIME", want: "cache.storesStaleTime"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "RECONCILER_GUARDTTL", want: "reconciler.guardTtl"},
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
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreBackendFirebase, cfg.Store.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.StaleTime)
	assert.Equal(t, 15*time.Minute, cfg.Cache.StoresStaleTime)
	assert.Equal(t, 10*time.Minute, cfg.Reconciler.GuardTTL)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store:   &StoreConfig{Backend: StoreBackendMemory},
		Cache:   &CacheConfig{StaleTime: time.Minute},
		Metrics: &MetricsConfig{Enabled: true},
	}
	applyDefaults(cfg)

	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, time.Minute, cfg.Cache.StaleTime)
	assert.Equal(t, 15*time.Minute, cfg.Cache.StoresStaleTime)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Store: &StoreConfig{Backend: StoreBackendMemory}}
		applyDefaults(cfg)

		return cfg
	}

	assert.NoError(t, validate(valid()))

	cfg := valid()
	cfg.Store.Backend = StoreBackendFirebase
	assert.ErrorContains(t, validate(cfg), "databaseUrl")

	cfg.Firebase = &FirebaseConfig{DatabaseURL: "https://market.firebaseio.com"}
	assert.NoError(t, validate(cfg))

	cfg = valid()
	cfg.Store.Backend = "postgres"
	assert.ErrorContains(t, validate(cfg), `unknown store backend "postgres"`)

	cfg = valid()
	cfg.Metrics = &MetricsConfig{Path: "metrics"}
	assert.ErrorContains(t, validate(cfg), "must start with /")
}
