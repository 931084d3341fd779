package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// DBFileName is the store's database file inside the data directory.
const DBFileName = "rolodex.db"

// Store implements types.Store on a SQLite database file. Reads may run
// concurrently; mutation batches serialize behind the write lock and each
// apply runs inside one transaction.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the data directory if needed, opens (or creates) the
// database file, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, types.ErrDataDirEmpty
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dsn := "file:" + filepath.Join(dataDir, DBFileName) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// newUUID generates a UUID v7 string, falling back to v4 if the clock
// source misbehaves.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// rowSelect is the joined projection behind Query. Account and display
// columns come from raw_contacts and appear on every row; kind-specific
// columns are coalesced to their zero values so rows scan into plain Go
// types.
const rowSelect = `SELECT d.contact_id, d.kind,
       rc.display_name, COALESCE(rc.account_type, ''), COALESCE(rc.account_name, ''),
       COALESCE(d.given_name, ''), COALESCE(d.middle_name, ''), COALESCE(d.family_name, ''),
       COALESCE(d.prefix, ''), COALESCE(d.suffix, ''),
       COALESCE(d.note, ''),
       COALESCE(d.phone_number, ''), COALESCE(d.phone_type, 0), COALESCE(d.phone_label, ''),
       COALESCE(d.email_address, ''), COALESCE(d.email_type, 0), COALESCE(d.email_label, ''),
       COALESCE(d.company, ''), COALESCE(d.job_title, ''),
       COALESCE(d.street, ''), COALESCE(d.city, ''), COALESCE(d.region, ''),
       COALESCE(d.postcode, ''), COALESCE(d.country, ''),
       COALESCE(d.postal_type, 0), COALESCE(d.postal_label, ''),
       COALESCE(d.event_type, 0), COALESCE(d.event_start_date, '')
FROM data d JOIN raw_contacts rc USING (contact_id)`

// Query returns the rows matching q. With no OrderBy, rows come back in
// physical insertion order (d.rowid), which is what gives the aggregator
// its first-seen contact ordering.
func (s *Store) Query(ctx context.Context, q types.RowQuery) ([]types.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, types.ErrStoreFailure
	}

	stmt := rowSelect
	if q.Selection != "" {
		stmt += " WHERE " + q.Selection
	}
	if q.OrderBy != "" {
		stmt += " ORDER BY " + q.OrderBy + ", d.rowid"
	} else {
		stmt += " ORDER BY d.rowid"
	}

	rows, err := s.db.QueryContext(ctx, stmt, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []types.Row
	for rows.Next() {
		var r types.Row
		var kind string
		err := rows.Scan(
			&r.ContactID, &kind,
			&r.DisplayName, &r.AccountType, &r.AccountName,
			&r.GivenName, &r.MiddleName, &r.FamilyName,
			&r.Prefix, &r.Suffix,
			&r.Note,
			&r.PhoneNumber, &r.PhoneType, &r.PhoneLabel,
			&r.EmailAddress, &r.EmailType, &r.EmailLabel,
			&r.Company, &r.JobTitle,
			&r.Street, &r.City, &r.Region,
			&r.Postcode, &r.Country,
			&r.PostalType, &r.PostalLabel,
			&r.EventType, &r.EventStartDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r.Kind = types.RowKind(kind)
		out = append(out, r)
	}
	return out, rows.Err()
}

// OpenPhoto opens the photo blob for the contact, preferring the
// super-primary row and then the most recently written one. Returns
// ErrNotFound when no non-empty photo row exists.
func (s *Store) OpenPhoto(ctx context.Context, identifier string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, types.ErrStoreFailure
	}

	var blob []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT photo FROM data
		WHERE contact_id = ? AND kind = ? AND photo IS NOT NULL AND length(photo) > 0
		ORDER BY is_super_primary DESC, rowid DESC
		LIMIT 1`,
		identifier, string(types.KindPhoto)).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query photo: %w", err)
	}
	return io.NopCloser(bytes.NewReader(blob)), nil
}
