package runlog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// maxRetainedRuns bounds the history; older runs are pruned on insert.
const maxRetainedRuns = 50

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run-history database at the given
// path and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure run log directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
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

	// The schema is idempotent, so bootstrap runs on every open.
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Run is one recorded organization run.
type Run struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Mode      string
	RunFolder string
	Clients   int
	Copied    int
	Skipped   int
	Failed    int
}

// ClientResult is one client's recorded outcome within a run.
type ClientResult struct {
	RunID        string
	Key          string
	Client       string
	Jurisdiction string
	Code         string
	FileCount    int
	TotalSize    int64
	Completeness float64
	Status       string
}

// RecordRun inserts a run with its client outcomes and prunes history beyond
// the retention bound. It returns the generated run identifier.
func (s *Store) RecordRun(ctx context.Context, run Run, clients []ClientResult) (string, error) {
	id := run.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin run tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, mode, run_folder,
            client_count, files_copied, files_skipped, files_failed
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.EndedAt.UTC().Format(time.RFC3339Nano),
		run.Mode,
		run.RunFolder,
		len(clients),
		run.Copied,
		run.Skipped,
		run.Failed,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, client := range clients {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO run_clients (
                run_id, client_key, client, jurisdiction, code,
                file_count, total_size, completeness, status
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			client.Key,
			client.Client,
			client.Jurisdiction,
			client.Code,
			client.FileCount,
			client.TotalSize,
			client.Completeness,
			client.Status,
		)
		if err != nil {
			return "", fmt.Errorf("insert run client %s: %w", client.Key, err)
		}
	}

	_, err = tx.ExecContext(
		ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY started_at DESC LIMIT ?
        )`,
		maxRetainedRuns,
	)
	if err != nil {
		return "", fmt.Errorf("prune runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns recorded runs newest first, up to limit (or all when
// limit <= 0).
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = maxRetainedRuns
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, started_at, finished_at, mode, run_folder,
                client_count, files_copied, files_skipped, files_failed
         FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run               Run
			started, finished string
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.Mode, &run.RunFolder,
			&run.Clients, &run.Copied, &run.Skipped, &run.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		run.EndedAt, _ = time.Parse(time.RFC3339Nano, finished)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunClients returns the client outcomes recorded for one run, ordered by
// client key.
func (s *Store) RunClients(ctx context.Context, runID string) ([]ClientResult, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run_id, client_key, client, jurisdiction, code,
                file_count, total_size, completeness, status
         FROM run_clients WHERE run_id = ? ORDER BY client_key`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query run clients: %w", err)
	}
	defer rows.Close()

	var clients []ClientResult
	for rows.Next() {
		var client ClientResult
		if err := rows.Scan(&client.RunID, &client.Key, &client.Client, &client.Jurisdiction,
			&client.Code, &client.FileCount, &client.TotalSize, &client.Completeness,
			&client.Status); err != nil {
			return nil, fmt.Errorf("scan run client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}
