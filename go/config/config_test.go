package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("MT5_HOST", "terminal.internal")
	t.Setenv("MT5_GRPC_PORT", "9999")
	t.Setenv("MT5_CALL_TIMEOUT", "5s")
	t.Setenv("MT5_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("MT5_ENABLE_CIRCUIT_BREAKER", "false")

	var cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "terminal.internal", cfg.Host)
	require.Equal(t, 9999, cfg.GRPCPort)
	require.Equal(t, 5*time.Second, cfg.CallTimeout)
	require.Equal(t, 7, cfg.RetryMaxAttempts)
	require.False(t, cfg.EnableCircuitBreaker)
	require.Equal(t, "terminal.internal:9999", cfg.Endpoint())
}

func TestLoadDefaults(t *testing.T) {
	var cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Host)
	require.Equal(t, 50051, cfg.GRPCPort)
	require.Equal(t, 3, cfg.RetryMaxAttempts)
	require.Equal(t, 5, cfg.CriticalRetryMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.RecoveryWindow)
	require.True(t, cfg.EnableCircuitBreaker)
}

func TestValidateRejectsBadTunables(t *testing.T) {
	var cases = []func(*Config){
		func(c *Config) { c.RetryMaxAttempts = 0 },
		func(c *Config) { c.CriticalRetryMaxAttempts = 0 },
		func(c *Config) { c.RetryExponentialBase = 1.0 },
		func(c *Config) { c.CBThreshold = 0 },
		func(c *Config) { c.CBHalfOpenMax = 0 },
		func(c *Config) { c.QueueMaxDepth = 0 },
		func(c *Config) { c.QueueMaxConcurrent = 0 },
		func(c *Config) { c.WALPath = "" },
	}
	for i, mutate := range cases {
		var cfg = New()
		mutate(cfg)
		require.Error(t, cfg.Validate(), "case %d", i)
	}
	require.NoError(t, New().Validate())
}

func TestDelayForGrowsAndSaturates(t *testing.T) {
	var cfg = New()
	cfg.RetryJitter = false
	cfg.RetryInitialDelay = time.Second
	cfg.RetryExponentialBase = 2.0
	cfg.RetryMaxDelay = 30 * time.Second

	require.Equal(t, time.Second, cfg.DelayFor(0))
	require.Equal(t, 2*time.Second, cfg.DelayFor(1))
	require.Equal(t, 4*time.Second, cfg.DelayFor(2))
	// Saturates at the ceiling.
	require.Equal(t, 30*time.Second, cfg.DelayFor(10))
	require.Equal(t, 30*time.Second, cfg.DelayFor(50))
}

func TestDelayForJitterStaysBounded(t *testing.T) {
	var cfg = New()
	cfg.RetryInitialDelay = time.Second
	cfg.RetryMaxDelay = 30 * time.Second

	for attempt := 0; attempt < 12; attempt++ {
		for i := 0; i < 100; i++ {
			var d = cfg.DelayFor(attempt)
			require.GreaterOrEqual(t, d, time.Duration(0))
			require.Less(t, d, time.Duration(float64(cfg.RetryMaxDelay)*1.5))
		}
	}
}

func TestCriticalDelayForDefaultsCeiling(t *testing.T) {
	var cfg = New()
	cfg.RetryJitter = false
	cfg.CriticalRetryInitialDelay = 100 * time.Millisecond
	cfg.CriticalRetryMaxDelay = 0
	cfg.RetryMaxDelay = 30 * time.Second

	require.Equal(t, 100*time.Millisecond, cfg.CriticalDelayFor(0))
	// Unset critical ceiling means half the generic maximum.
	require.Equal(t, 15*time.Second, cfg.CriticalDelayFor(20))

	cfg.CriticalRetryMaxDelay = 2 * time.Second
	require.Equal(t, 2*time.Second, cfg.CriticalDelayFor(20))
}

func TestChannelOptionsPresent(t *testing.T) {
	var cfg = New()
	require.Len(t, cfg.ChannelOptions(), 2)
}
