package txn

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tradewire/mt5bridge/go/wal"
)

// HistoryRecord is one executed deal or order from terminal history,
// carrying the comment field that may hold an idempotency key.
type HistoryRecord struct {
	Comment string
	Payload string // Serialized record, stored into the WAL on recovery.
}

// HistorySearch returns executed deals and orders in [from, to].
type HistorySearch func(ctx context.Context, from, to time.Time) ([]HistoryRecord, error)

// RecoverIncomplete reconciles every Pending or Sent WAL entry against
// terminal history. Entries whose request id appears in a deal or order
// comment within the search window are marked Recovered with that payload;
// the rest are marked Failed with cause "recovered-not-found", leaving the
// resend decision to the caller's business logic.
func RecoverIncomplete(ctx context.Context, journal *wal.Log, window time.Duration, search HistorySearch) (recovered, failed int, err error) {
	var entries, loadErr = journal.GetIncomplete()
	if loadErr != nil {
		return 0, 0, loadErr
	}

	for _, entry := range entries {
		var records, searchErr = search(ctx, entry.Timestamp.Add(-window), entry.Timestamp.Add(window))
		if searchErr != nil {
			log.WithFields(log.Fields{"requestID": entry.RequestID, "err": searchErr}).
				Warn("recovery: history search failed, entry left incomplete")
			continue
		}

		var match *HistoryRecord
		for i := range records {
			if id, ok := ExtractRequestID(records[i].Comment); ok && id == entry.RequestID {
				match = &records[i]
				break
			}
		}

		if match != nil {
			if err := journal.MarkRecovered(entry.RequestID, &match.Payload); err != nil {
				return recovered, failed, err
			}
			recovered++
			log.WithField("requestID", entry.RequestID).
				Info("recovery: matched executed order in terminal history")
		} else {
			if err := journal.MarkFailed(entry.RequestID, "recovered-not-found"); err != nil {
				return recovered, failed, err
			}
			failed++
			log.WithField("requestID", entry.RequestID).
				Warn("recovery: no matching execution found, entry marked failed")
		}
	}
	return recovered, failed, nil
}
