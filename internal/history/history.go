package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Log records encode runs to a SQLite database.
type Log struct {
	db *sql.DB
}

// Run is one recorded encode invocation. SecretState is "created",
// "enlarged" or "reused".
type Run struct {
	Time        time.Time
	Message     string
	Secret      string
	Ciphered    string
	Width       int
	Height      int
	SecretState string
}

// Open opens (or creates) the SQLite database at dbPath and ensures the
// encode_runs table exists.
func Open(dbPath string) (*Log, error) {
	dsn := "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS encode_runs (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		ts           TEXT    NOT NULL,
		message      TEXT    NOT NULL,
		secret       TEXT    NOT NULL,
		ciphered     TEXT    NOT NULL,
		width        INTEGER NOT NULL,
		height       INTEGER NOT NULL,
		secret_state TEXT    NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}
	return &Log{db: db}, nil
}

// Record inserts one run. It is safe to call concurrently.
func (l *Log) Record(r Run) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := l.db.Exec(
		`INSERT INTO encode_runs (ts, message, secret, ciphered, width, height, secret_state)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339), r.Message, r.Secret, r.Ciphered, r.Width, r.Height, r.SecretState,
	)
	return err
}

// Recent returns up to n runs, newest first.
func (l *Log) Recent(n int) ([]Run, error) {
	rows, err := l.db.Query(
		`SELECT ts, message, secret, ciphered, width, height, secret_state
		 FROM encode_runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&ts, &r.Message, &r.Secret, &r.Ciphered, &r.Width, &r.Height, &r.SecretState); err != nil {
			return nil, err
		}
		r.Time, _ = time.Parse(time.RFC3339, ts)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.db.Close()
}
