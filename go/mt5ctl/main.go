// mt5ctl is the operational command line for the terminal bridge: health
// probes, constants inspection, and order-WAL maintenance.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

func main() {
	var parser = flags.NewParser(nil, flags.HelpFlag|flags.PassDoubleDash)

	addCmd(parser, "health", "Probe bridge and terminal health", `
Connect to the bridge, run a health probe against the terminal, and print
the result.
`, &cmdHealth{})

	addCmd(parser, "version", "Print the remote terminal version", `
Connect to the bridge and print the terminal's version triple.
`, &cmdVersion{})

	addCmd(parser, "constants", "Dump the terminal constants table", `
Connect to the bridge and print every terminal constant loaded at
connection time.
`, &cmdConstants{})

	wal, err := parser.Command.AddCommand("wal", "Inspect and maintain the order WAL", "", &struct{}{})
	must(err, "failed to add wal command")

	addCmd(wal, "list", "List incomplete WAL entries", `
Print every Pending or Sent entry of the order write-ahead log.
`, &cmdWALList{})

	addCmd(wal, "stats", "Print WAL entry counts by status", `
Print the number of WAL entries in each lifecycle status.
`, &cmdWALStats{})

	addCmd(wal, "cleanup", "Remove expired terminal WAL entries", `
Delete Verified, Failed, and Recovered entries older than the retention
window. In-flight entries are never removed.
`, &cmdWALCleanup{})

	addCmd(wal, "recover", "Reconcile incomplete entries against terminal history", `
Connect to the bridge and resolve every Pending or Sent WAL entry by
searching terminal history for its idempotency key.
`, &cmdWALRecover{})

	if _, err = parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		log.WithField("err", err).Fatal("command failed")
	}
}

func addCmd(to interface {
	AddCommand(string, string, string, interface{}) (*flags.Command, error)
}, a, b, c string, iface interface{}) *flags.Command {
	var cmd, err = to.AddCommand(a, b, c, iface)
	must(err, "failed to add flags parser command")
	return cmd
}

func must(err error, msg string) {
	if err != nil {
		log.WithField("err", err).Fatal(msg)
	}
}
