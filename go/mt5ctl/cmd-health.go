package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tradewire/mt5bridge/go/client"
	"github.com/tradewire/mt5bridge/go/config"
)

// connection carries the flags shared by every command that dials the
// bridge. Flags override the MT5_-prefixed environment.
type connection struct {
	Host    string        `long:"host" description:"Bridge host (overrides MT5_HOST)"`
	Port    int           `long:"port" description:"Bridge gRPC port (overrides MT5_GRPC_PORT)"`
	Timeout time.Duration `long:"timeout" default:"10s" description:"Connection timeout"`
}

// connect loads configuration, applies flag overrides, and dials.
func (cc *connection) connect(ctx context.Context) (*client.Client, error) {
	var cfg, err = config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if cc.Host != "" {
		cfg.Host = cc.Host
	}
	if cc.Port != 0 {
		cfg.GRPCPort = cc.Port
	}
	if cc.Timeout > 0 {
		cfg.ConnectTimeout = cc.Timeout
	}
	// Operational probes want a direct answer, not a background reconnect
	// loop fighting the probe.
	cfg.EnableHealthMonitor = false
	cfg.EnableAutoReconnect = false

	var c = client.New(cfg)
	if err = c.Connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

type cmdHealth struct {
	Connection connection `group:"Connection"`
}

func (cmd cmdHealth) Execute(_ []string) error {
	var ctx = context.Background()
	var c, err = cmd.Connection.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	var health, herr = c.HealthCheck(ctx)
	if herr != nil {
		return fmt.Errorf("health probe failed: %w", herr)
	}
	fmt.Printf("healthy:       %v\n", health.Healthy)
	fmt.Printf("mt5 available: %v\n", health.MT5Available)
	fmt.Printf("connected:     %v\n", health.Connected)
	fmt.Printf("trade allowed: %v\n", health.TradeAllowed)
	fmt.Printf("build:         %s\n", health.Build)
	if health.Reason != "" {
		fmt.Printf("reason:        %s\n", health.Reason)
	}
	if !health.Healthy {
		log.Warn("terminal reported unhealthy")
	}
	return nil
}

type cmdVersion struct {
	Connection connection `group:"Connection"`
}

func (cmd cmdVersion) Execute(_ []string) error {
	var ctx = context.Background()
	var c, err = cmd.Connection.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	var version, verr = c.Version(ctx)
	if verr != nil {
		return verr
	}
	fmt.Printf("%d.%d build %s\n", version.Major, version.Minor, version.Build)
	return nil
}
