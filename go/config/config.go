// Package config defines the immutable tunables of the bridge client,
// parsed from MT5_-prefixed environment variables.
package config

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// Channel limits required by the terminal bridge: rate and tick payloads
// may reach tens of megabytes, and idle channels must be kept alive
// across the Windows emulation boundary.
const (
	maxMessageSize   = 50 * 1024 * 1024
	keepaliveTime    = 30 * time.Second
	keepaliveTimeout = 10 * time.Second
)

// Config holds every tunable of the client. It is parsed once and never
// mutated afterwards; all components hold a shared reference.
type Config struct {
	Host       string `env:"HOST" envDefault:"127.0.0.1"`
	GRPCPort   int    `env:"GRPC_PORT" envDefault:"50051"`
	HealthPort int    `env:"HEALTH_PORT" envDefault:"50052"`
	// DockerPort and TestPort are the host-mapped and isolated-test ports of
	// the same server. Only GRPCPort matters to the client core.
	DockerPort int `env:"DOCKER_PORT" envDefault:"50061"`
	TestPort   int `env:"TEST_PORT" envDefault:"50071"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	CallTimeout    time.Duration `env:"CALL_TIMEOUT" envDefault:"30s"`

	RetryMaxAttempts     int           `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryInitialDelay    time.Duration `env:"RETRY_INITIAL_DELAY" envDefault:"1s"`
	RetryMaxDelay        time.Duration `env:"RETRY_MAX_DELAY" envDefault:"30s"`
	RetryExponentialBase float64       `env:"RETRY_EXPONENTIAL_BASE" envDefault:"2.0"`
	RetryJitter          bool          `env:"RETRY_JITTER" envDefault:"true"`

	// Critical overrides apply to order submission only: faster first retry,
	// lower ceiling, more attempts. A zero CriticalRetryMaxDelay means
	// half of RetryMaxDelay.
	CriticalRetryMaxAttempts  int           `env:"CRITICAL_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	CriticalRetryInitialDelay time.Duration `env:"CRITICAL_RETRY_INITIAL_DELAY" envDefault:"100ms"`
	CriticalRetryMaxDelay     time.Duration `env:"CRITICAL_RETRY_MAX_DELAY" envDefault:"0"`

	CBThreshold   int           `env:"CB_THRESHOLD" envDefault:"5"`
	CBRecovery    time.Duration `env:"CB_RECOVERY" envDefault:"30s"`
	CBHalfOpenMax int           `env:"CB_HALF_OPEN_MAX" envDefault:"3"`

	QueueMaxConcurrent int `env:"QUEUE_MAX_CONCURRENT" envDefault:"10"`
	QueueMaxDepth      int `env:"QUEUE_MAX_DEPTH" envDefault:"100"`

	WALPath          string `env:"WAL_PATH" envDefault:"mt5-orders.db"`
	WALRetentionDays int    `env:"WAL_RETENTION_DAYS" envDefault:"7"`

	// RecoveryWindow bounds the history search that matches WAL entries
	// against executed deals during crash recovery.
	RecoveryWindow time.Duration `env:"RECOVERY_WINDOW" envDefault:"15m"`

	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"30s"`

	EnableAutoReconnect  bool `env:"ENABLE_AUTO_RECONNECT" envDefault:"true"`
	EnableHealthMonitor  bool `env:"ENABLE_HEALTH_MONITOR" envDefault:"true"`
	EnableCircuitBreaker bool `env:"ENABLE_CIRCUIT_BREAKER" envDefault:"true"`
}

// Load parses a Config from MT5_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg = New()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MT5_"}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New returns a Config carrying every default, without consulting the
// environment. Tests start from here.
func New() *Config {
	return &Config{
		Host:                      "127.0.0.1",
		GRPCPort:                  50051,
		HealthPort:                50052,
		DockerPort:                50061,
		TestPort:                  50071,
		ConnectTimeout:            10 * time.Second,
		CallTimeout:               30 * time.Second,
		RetryMaxAttempts:          3,
		RetryInitialDelay:         time.Second,
		RetryMaxDelay:             30 * time.Second,
		RetryExponentialBase:      2.0,
		RetryJitter:               true,
		CriticalRetryMaxAttempts:  5,
		CriticalRetryInitialDelay: 100 * time.Millisecond,
		CBThreshold:               5,
		CBRecovery:                30 * time.Second,
		CBHalfOpenMax:             3,
		QueueMaxConcurrent:        10,
		QueueMaxDepth:             100,
		WALPath:                   "mt5-orders.db",
		WALRetentionDays:          7,
		RecoveryWindow:            15 * time.Minute,
		HealthInterval:            30 * time.Second,
		EnableAutoReconnect:       true,
		EnableHealthMonitor:       true,
		EnableCircuitBreaker:      true,
	}
}

// Validate checks invariants which the retry and queue machinery rely on.
func (c *Config) Validate() error {
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be >= 1, got %d", c.RetryMaxAttempts)
	}
	if c.CriticalRetryMaxAttempts < 1 {
		return fmt.Errorf("critical retry max attempts must be >= 1, got %d", c.CriticalRetryMaxAttempts)
	}
	if c.RetryExponentialBase <= 1.0 {
		return fmt.Errorf("retry exponential base must be > 1.0, got %v", c.RetryExponentialBase)
	}
	if c.CBThreshold < 1 || c.CBHalfOpenMax < 1 {
		return fmt.Errorf("circuit breaker threshold and half-open max must be >= 1")
	}
	if c.QueueMaxConcurrent < 1 || c.QueueMaxDepth < 1 {
		return fmt.Errorf("queue concurrency and depth must be >= 1")
	}
	if c.WALPath == "" {
		return fmt.Errorf("WAL path must not be empty")
	}
	return nil
}

// Endpoint is the host:port address of the terminal bridge.
func (c *Config) Endpoint() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort)
}

// DelayFor returns the backoff delay preceding retry |attempt| (zero-based):
// min(initial * base^attempt, max), scaled by a random factor in [0.5, 1.5)
// when jitter is enabled.
func (c *Config) DelayFor(attempt int) time.Duration {
	return c.backoff(attempt, c.RetryInitialDelay, c.RetryMaxDelay)
}

// CriticalDelayFor is DelayFor with the critical-path overrides: a faster
// initial delay and a ceiling of half the generic maximum by default.
func (c *Config) CriticalDelayFor(attempt int) time.Duration {
	var ceiling = c.CriticalRetryMaxDelay
	if ceiling <= 0 {
		ceiling = c.RetryMaxDelay / 2
	}
	return c.backoff(attempt, c.CriticalRetryInitialDelay, ceiling)
}

func (c *Config) backoff(attempt int, initial, ceiling time.Duration) time.Duration {
	var delay = float64(initial) * math.Pow(c.RetryExponentialBase, float64(attempt))
	if delay > float64(ceiling) {
		delay = float64(ceiling)
	}
	if c.RetryJitter {
		delay *= 0.5 + rand.Float64()
	}
	return time.Duration(delay)
}

// ChannelOptions returns the dial options every channel to the terminal
// bridge must carry: raised message-size limits for bulk rate and tick
// transfers, and keepalive probing across the emulation boundary.
func (c *Config) ChannelOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                keepaliveTime,
			Timeout:             keepaliveTimeout,
			PermitWithoutStream: true,
		}),
	}
}
