// Package wal persists order lifecycle records ahead of transmission, so a
// crash between send and acknowledgement can be reconciled against terminal
// history instead of guessed at.
package wal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import for registration side-effect.
	log "github.com/sirupsen/logrus"
)

// Status of a logged order request. Pending and Sent are in-flight;
// Verified, Failed, and Recovered are terminal.
type Status int

const (
	Pending Status = iota
	Sent
	Verified
	Failed
	Recovered
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Sent:
		return "sent"
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	case Recovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Terminal reports whether a status admits no further transitions.
func (s Status) Terminal() bool {
	return s == Verified || s == Failed || s == Recovered
}

// Entry is one persisted order record, keyed by request id.
type Entry struct {
	RequestID   string
	Timestamp   time.Time
	RequestJSON string
	Status      Status
	ResultJSON  string
	Error       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS order_wal (
	request_id   TEXT PRIMARY KEY,
	timestamp    TEXT NOT NULL,
	request_json TEXT NOT NULL,
	status       INTEGER NOT NULL,
	result_json  TEXT,
	error        TEXT,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_wal_status ON order_wal (status);
CREATE INDEX IF NOT EXISTS idx_order_wal_timestamp ON order_wal (timestamp);
`

// Log is the write-ahead order log. A single mutex serializes all access;
// every method is a no-op on a nil or closed Log so callers need not guard
// the disabled-WAL case.
type Log struct {
	mu            sync.Mutex
	db            *sql.DB
	retentionDays int
}

// Open creates or opens the WAL file. The sqlite WAL journal mode with
// NORMAL synchronous persists committed transactions across a process
// crash, which is the durability contract LogIntent relies on.
func Open(path string, retentionDays int) (*Log, error) {
	var dsn = fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)
	var db, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening WAL db: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing WAL schema: %w", err)
	}
	log.WithField("path", path).Debug("order WAL opened")
	return &Log{db: db, retentionDays: retentionDays}, nil
}

// Close releases the underlying database. Idempotent.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	var err = l.db.Close()
	l.db = nil
	return err
}

// LogIntent inserts or replaces an entry with status Pending. Once it
// returns, the intent survives a process crash.
func (l *Log) LogIntent(requestID, requestJSON string) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}

	var now = utcNow()
	var _, err = l.db.Exec(
		`INSERT OR REPLACE INTO order_wal
			(request_id, timestamp, request_json, status, result_json, error, created_at, updated_at)
			VALUES (?, ?, ?, ?, NULL, NULL, ?, ?)`,
		requestID, now, requestJSON, int(Pending), now, now)
	if err != nil {
		return fmt.Errorf("logging intent %s: %w", requestID, err)
	}
	log.WithField("requestID", requestID).Debug("WAL: intent logged")
	return nil
}

// MarkSent records that the order left for the terminal.
func (l *Log) MarkSent(requestID string) error {
	return l.update(requestID, Sent, nil, nil)
}

// MarkVerified records the confirmed terminal result.
func (l *Log) MarkVerified(requestID, resultJSON string) error {
	return l.update(requestID, Verified, &resultJSON, nil)
}

// MarkFailed records a definitive failure.
func (l *Log) MarkFailed(requestID, cause string) error {
	return l.update(requestID, Failed, nil, &cause)
}

// MarkRecovered records an entry reconciled from terminal history after a
// crash. The result is optional.
func (l *Log) MarkRecovered(requestID string, resultJSON *string) error {
	return l.update(requestID, Recovered, resultJSON, nil)
}

func (l *Log) update(requestID string, status Status, resultJSON, cause *string) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}

	var _, err = l.db.Exec(
		`UPDATE order_wal
			SET status = ?,
				result_json = COALESCE(?, result_json),
				error = COALESCE(?, error),
				updated_at = ?
			WHERE request_id = ?`,
		int(status), resultJSON, cause, utcNow(), requestID)
	if err != nil {
		return fmt.Errorf("updating WAL entry %s to %s: %w", requestID, status, err)
	}
	log.WithFields(log.Fields{"requestID": requestID, "status": status}).
		Debug("WAL: entry updated")
	return nil
}

// GetEntry returns the entry for |requestID|, or nil when absent.
func (l *Log) GetEntry(requestID string) (*Entry, error) {
	if l == nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil, nil
	}

	var row = l.db.QueryRow(
		`SELECT request_id, timestamp, request_json, status, result_json, error, created_at, updated_at
			FROM order_wal WHERE request_id = ?`, requestID)
	var e, err = scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("loading WAL entry %s: %w", requestID, err)
	}
	return e, nil
}

// GetIncomplete returns Pending and Sent entries, oldest first. These are
// the candidates for crash recovery.
func (l *Log) GetIncomplete() ([]*Entry, error) {
	if l == nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil, nil
	}

	var rows, err = l.db.Query(
		`SELECT request_id, timestamp, request_json, status, result_json, error, created_at, updated_at
			FROM order_wal WHERE status IN (?, ?) ORDER BY timestamp ASC`,
		int(Pending), int(Sent))
	if err != nil {
		return nil, fmt.Errorf("loading incomplete WAL entries: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		var e *Entry
		if e, err = scanEntry(rows.Scan); err != nil {
			return nil, fmt.Errorf("scanning WAL entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CleanupOld removes terminal entries older than |days| (the configured
// retention when days <= 0). In-flight entries are never removed.
func (l *Log) CleanupOld(days int) (int64, error) {
	if l == nil {
		return 0, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return 0, nil
	}

	if days <= 0 {
		days = l.retentionDays
	}
	var cutoff = time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339Nano)

	var res, err = l.db.Exec(
		`DELETE FROM order_wal WHERE status IN (?, ?, ?) AND timestamp < ?`,
		int(Verified), int(Failed), int(Recovered), cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up WAL: %w", err)
	}
	var removed, _ = res.RowsAffected()
	if removed > 0 {
		log.WithFields(log.Fields{"removed": removed, "days": days}).
			Debug("WAL: removed expired terminal entries")
	}
	return removed, nil
}

// Stats returns entry counts by status.
func (l *Log) Stats() (map[Status]int, error) {
	if l == nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil, nil
	}

	var rows, err = l.db.Query(`SELECT status, COUNT(*) FROM order_wal GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("loading WAL stats: %w", err)
	}
	defer rows.Close()

	var out = make(map[Status]int)
	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[Status(status)] = count
	}
	return out, rows.Err()
}

func scanEntry(scan func(...interface{}) error) (*Entry, error) {
	var (
		e                    Entry
		ts, created, updated string
		result, cause        sql.NullString
		status               int
	)
	if err := scan(&e.RequestID, &ts, &e.RequestJSON, &status, &result, &cause, &created, &updated); err != nil {
		return nil, err
	}
	e.Status = Status(status)
	e.ResultJSON = result.String
	e.Error = cause.String
	e.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
	e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return &e, nil
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
