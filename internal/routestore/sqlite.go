package routestore

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	ferrors "git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/manifest"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a route history database.
// Use ":memory:" for an in-memory database, or a file path for persistent storage.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, storageError(err, "open sqlite database").WithContext("path", dbPath).Build()
	}
	// Each connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, storageError(err, "initialize schema").WithContext("path", dbPath).Build()
	}
	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		hash TEXT NOT NULL,
		config_hash TEXT,
		timestamp INTEGER NOT NULL,
		routes INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS routes (
		run_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		path TEXT NOT NULL,
		view TEXT NOT NULL,
		lang TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores the run summary and every route path in one transaction.
func (s *SQLiteStore) Record(ctx context.Context, m *manifest.RouteManifest) (*Run, error) {
	hash, err := m.Hash()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "hash manifest").Build()
	}
	run := &Run{
		ID:         m.ID,
		Hash:       hash,
		ConfigHash: m.ConfigHash,
		Timestamp:  m.Timestamp,
		Routes:     len(m.Routes),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError(err, "begin transaction").Build()
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, hash, config_hash, timestamp, routes) VALUES (?, ?, ?, ?, ?)",
		run.ID, run.Hash, run.ConfigHash, run.Timestamp.UnixNano(), run.Routes,
	); err != nil {
		return nil, storageError(err, "insert run").WithContext("run_id", run.ID).Build()
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO routes (run_id, position, path, view, lang) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, storageError(err, "prepare route insert").Build()
	}
	defer stmt.Close()

	for i, r := range m.Routes {
		if _, err := stmt.ExecContext(ctx, run.ID, i, r.Path, string(r.View), r.Lang); err != nil {
			return nil, storageError(err, "insert route").WithContext("path", r.Path).Build()
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, storageError(err, "commit run").Build()
	}
	return run, nil
}

// Latest returns the most recently recorded run.
func (s *SQLiteStore) Latest(ctx context.Context) (*Run, error) {
	runs, err := s.History(ctx, 1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

// History returns up to limit runs, newest first.
func (s *SQLiteStore) History(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, hash, config_hash, timestamp, routes FROM runs ORDER BY seq DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, storageError(err, "query runs").Build()
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var configHash sql.NullString
		var ts int64
		if err := rows.Scan(&r.ID, &r.Hash, &configHash, &ts, &r.Routes); err != nil {
			return nil, storageError(err, "scan run").Build()
		}
		r.ConfigHash = configHash.String
		r.Timestamp = time.Unix(0, ts).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "iterate runs").Build()
	}
	return runs, nil
}

// Paths returns the route paths recorded for a run.
func (s *SQLiteStore) Paths(ctx context.Context, runID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ferrors.StorageError("run not found").WithContext("run_id", runID).Build()
	}
	if err != nil {
		return nil, storageError(err, "query run").WithContext("run_id", runID).Build()
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT path FROM routes WHERE run_id = ? ORDER BY position",
		runID,
	)
	if err != nil {
		return nil, storageError(err, "query routes").WithContext("run_id", runID).Build()
	}
	defer rows.Close()

	paths := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, storageError(err, "scan route").Build()
		}
		paths = append(paths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "iterate routes").Build()
	}
	return paths, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func storageError(err error, msg string) *ferrors.ErrorBuilder {
	return ferrors.WrapError(err, ferrors.CategoryStorage, msg)
}
