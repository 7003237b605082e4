// Package catalog persists audit history in SQLite so reconciliation runs
// can be compared over time. The content set itself stays on the
// filesystem; the database only records what the auditor concluded.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mvault/internal/match"
	"mvault/internal/reconcile"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases must be deleted rather than migrated in place.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages audit history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete the database to reset)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Run summarizes one stored reconciliation run.
type Run struct {
	ID          string
	CreatedAt   time.Time
	SourceTable string
	Total       int
	OK          int
	Missing     int
	Suspicious  int
	Mismatch    int
	Skip        int
}

// SaveRun stores one reconciliation run and its entries, returning the new
// run ID. Entries keep their input positions so a stored run reads back in
// the same order the source table was processed.
func (s *Store) SaveRun(ctx context.Context, sourceTable string, entries []reconcile.Entry) (string, error) {
	counts := reconcile.Summary(entries)
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO audit_runs (
            id, created_at, source_table, total, ok, missing, suspicious, mismatch, skip
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		timestamp,
		sourceTable,
		len(entries),
		counts[reconcile.StatusOK],
		counts[reconcile.StatusMissing],
		counts[reconcile.StatusSuspicious],
		counts[reconcile.StatusMismatch],
		counts[reconcile.StatusSkip],
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for position, entry := range entries {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO audit_entries (
                run_id, position, status, reason, artist, title, year,
                source_line, matched_slug, match_strategy
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID,
			position,
			string(entry.Status),
			entry.Reason,
			entry.Source.Artist,
			entry.Source.Title,
			entry.Year,
			entry.Source.Line,
			nullableString(entry.MatchedSlug),
			nullableString(string(entry.MatchStrategy)),
		)
		if err != nil {
			return "", fmt.Errorf("insert entry %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source_table, total, ok, missing, suspicious, mismatch, skip
         FROM audit_runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(&run.ID, &created, &run.SourceTable, &run.Total,
			&run.OK, &run.Missing, &run.Suspicious, &run.Mismatch, &run.Skip); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunEntries reads back the stored entries of a run in input order.
func (s *Store) RunEntries(ctx context.Context, runID string) ([]reconcile.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, reason, artist, title, year, source_line, matched_slug, match_strategy
         FROM audit_entries WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("read run entries: %w", err)
	}
	defer rows.Close()

	var entries []reconcile.Entry
	for rows.Next() {
		var entry reconcile.Entry
		var status string
		var slug, strategy sql.NullString
		if err := rows.Scan(&status, &entry.Reason, &entry.Source.Artist,
			&entry.Source.Title, &entry.Year, &entry.Source.Line, &slug, &strategy); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Status = reconcile.Status(status)
		entry.MatchedSlug = slug.String
		entry.MatchStrategy = match.StrategyNone
		if strategy.Valid {
			entry.MatchStrategy = match.Strategy(strategy.String)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
