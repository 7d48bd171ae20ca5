package client

import (
	"testing"
	"time"

	"github.com/paxlock/paxlock/testutil"
)

func TestDefaultClientConfig(t *testing.T) {
	cfg := DefaultClientConfig()

	testutil.AssertEqual(t, defaultRPCTimeout, cfg.RPCTimeout)
	testutil.AssertEqual(t, defaultMaxRetries, cfg.RetryPolicy.MaxRetries)
	testutil.AssertEqual(t, defaultInitialBackoff, cfg.RetryPolicy.InitialBackoff)
	testutil.AssertEqual(t, defaultMaxBackoff, cfg.RetryPolicy.MaxBackoff)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty cluster", func(c *Config) { c.Cluster = nil }, true},
		{"negative timeout", func(c *Config) { c.RPCTimeout = -time.Second }, true},
		{"negative retries", func(c *Config) { c.RetryPolicy.MaxRetries = -1 }, true},
		{"negative backoff", func(c *Config) { c.RetryPolicy.InitialBackoff = -time.Second }, true},
		{"multiplier below one", func(c *Config) { c.RetryPolicy.BackoffMultiplier = 0.5 }, true},
		{"jitter above one", func(c *Config) { c.RetryPolicy.JitterFactor = 1.5 }, true},
		{"zero multiplier allowed", func(c *Config) { c.RetryPolicy.BackoffMultiplier = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrConfigValidation)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}
