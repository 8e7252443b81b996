package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tradewire/mt5bridge/go/config"
	"github.com/tradewire/mt5bridge/go/wal"
)

// walOptions locate the order WAL for offline commands.
type walOptions struct {
	Path string `long:"wal" description:"Order WAL path (overrides MT5_WAL_PATH)"`
}

func (wo *walOptions) open() (*wal.Log, error) {
	var cfg, err = config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if wo.Path != "" {
		cfg.WALPath = wo.Path
	}
	return wal.Open(cfg.WALPath, cfg.WALRetentionDays)
}

type cmdWALList struct {
	WAL walOptions `group:"WAL"`
}

func (cmd cmdWALList) Execute(_ []string) error {
	var journal, err = cmd.WAL.open()
	if err != nil {
		return err
	}
	defer journal.Close()

	var entries, lerr = journal.GetIncomplete()
	if lerr != nil {
		return lerr
	}
	if len(entries) == 0 {
		fmt.Println("no incomplete entries")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-8s  %s\n",
			e.RequestID, e.Status, e.Timestamp.Format(time.RFC3339))
	}
	return nil
}

type cmdWALStats struct {
	WAL walOptions `group:"WAL"`
}

func (cmd cmdWALStats) Execute(_ []string) error {
	var journal, err = cmd.WAL.open()
	if err != nil {
		return err
	}
	defer journal.Close()

	var stats, serr = journal.Stats()
	if serr != nil {
		return serr
	}
	for _, status := range []wal.Status{wal.Pending, wal.Sent, wal.Verified, wal.Failed, wal.Recovered} {
		fmt.Printf("%-9s  %d\n", status, stats[status])
	}
	return nil
}

type cmdWALCleanup struct {
	WAL  walOptions `group:"WAL"`
	Days int        `long:"days" description:"Retention override in days (default: configured retention)"`
}

func (cmd cmdWALCleanup) Execute(_ []string) error {
	var journal, err = cmd.WAL.open()
	if err != nil {
		return err
	}
	defer journal.Close()

	var removed, cerr = journal.CleanupOld(cmd.Days)
	if cerr != nil {
		return cerr
	}
	fmt.Printf("removed %d expired entries\n", removed)
	return nil
}

type cmdWALRecover struct {
	Connection connection `group:"Connection"`
}

func (cmd cmdWALRecover) Execute(_ []string) error {
	var ctx = context.Background()

	// Connect runs recovery as part of startup; surface its outcome by
	// listing what remains incomplete afterwards.
	var c, err = cmd.Connection.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	var recovered, failed, rerr = c.RecoverOrders(ctx)
	if rerr != nil {
		return rerr
	}
	fmt.Printf("recovered %d, failed %d\n", recovered, failed)
	return nil
}
