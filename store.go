package folio

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/eringen/folio/contact"
)

// ErrNotFound is returned when a requested delivery does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding the contact delivery log. Page and
// view state never reach it.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the admin page read while a submission writes; busy_timeout
	// makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS deliveries (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    status TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS deliveries_created_at ON deliveries(created_at);
`)
	return err
}

// RecordDelivery appends one delivery attempt to the log.
func (s *Store) RecordDelivery(d contact.Delivery) error {
	_, err := s.db.Exec(
		`INSERT INTO deliveries (id, name, email, message, status, detail, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Fields.Name, d.Fields.Email, d.Fields.Message, string(d.Outcome), d.Detail,
		d.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// ListDeliveries returns the most recent deliveries first. A non-positive
// limit returns all of them.
func (s *Store) ListDeliveries(limit int) ([]contact.Delivery, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(`SELECT id, name, email, message, status, detail, created_at FROM deliveries ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contact.Delivery
	for rows.Next() {
		var d contact.Delivery
		var status, created string
		if err := rows.Scan(&d.ID, &d.Fields.Name, &d.Fields.Email, &d.Fields.Message, &status, &d.Detail, &created); err != nil {
			return nil, err
		}
		d.Outcome = contact.DeliveryOutcome(status)
		d.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDelivery removes one delivery. It returns ErrNotFound for unknown ids.
func (s *Store) DeleteDelivery(id string) error {
	res, err := s.db.Exec(`DELETE FROM deliveries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountDeliveries counts deliveries with the given outcome, or all of them
// when outcome is empty.
func (s *Store) CountDeliveries(outcome contact.DeliveryOutcome) (int, error) {
	var n int
	var err error
	if outcome == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM deliveries`).Scan(&n)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM deliveries WHERE status = ?`, string(outcome)).Scan(&n)
	}
	return n, err
}
