package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docstyle/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
)

// Store owns the history database connection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the history database in dataDir.
// If dataDir is empty, defaults to ~/.docstyle/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docstyle", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL lets concurrent workers record runs without blocking readers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReportStore returns a ReportStore interface backed by this store.
func (s *Store) ReportStore() driven.ReportStore {
	return &reportStore{store: s}
}

// migrate applies every embedded NNN_name.up.sql newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

const runColumns = "id, path, digest, style, checked_at, status, annotated_path, report"

// Save stores or replaces a run.
func (s *reportStore) Save(ctx context.Context, run *domain.CheckRun) error {
	report, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	counts := run.Report.Counts()

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO check_runs (id, path, digest, style, checked_at, status, error_count, warn_count, annotated_path, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			path = excluded.path,
			digest = excluded.digest,
			style = excluded.style,
			checked_at = excluded.checked_at,
			status = excluded.status,
			error_count = excluded.error_count,
			warn_count = excluded.warn_count,
			annotated_path = excluded.annotated_path,
			report = excluded.report
	`, run.ID, run.Path, run.Digest, run.StyleName, run.CheckedAt.UnixNano(), string(run.Status),
		counts.Error, counts.Warn, run.AnnotatedPath, string(report))
	if err != nil {
		return fmt.Errorf("saving run %s: %w", run.ID, err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *reportStore) Get(ctx context.Context, id string) (*domain.CheckRun, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+runColumns+" FROM check_runs WHERE id = ?", id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return run, err
}

// List returns runs newest first.
func (s *reportStore) List(ctx context.Context, limit int) ([]domain.CheckRun, error) {
	query := "SELECT " + runColumns + " FROM check_runs ORDER BY checked_at DESC, id"
	return s.query(ctx, query, limit)
}

// ListByPath returns runs of one file newest first.
func (s *reportStore) ListByPath(ctx context.Context, path string, limit int) ([]domain.CheckRun, error) {
	query := "SELECT " + runColumns + " FROM check_runs WHERE path = ? ORDER BY checked_at DESC, id"
	return s.query(ctx, query, limit, path)
}

// Delete removes a run.
func (s *reportStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM check_runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *reportStore) query(ctx context.Context, query string, limit int, args ...any) ([]domain.CheckRun, error) {
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.CheckRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.CheckRun, error) {
	var (
		run       domain.CheckRun
		checkedAt int64
		status    string
		report    string
	)
	if err := sc.Scan(&run.ID, &run.Path, &run.Digest, &run.StyleName, &checkedAt, &status, &run.AnnotatedPath, &report); err != nil {
		return nil, err
	}
	run.CheckedAt = time.Unix(0, checkedAt).UTC()
	run.Status = domain.Severity(status)
	run.Report = &domain.Report{}
	if err := json.Unmarshal([]byte(report), run.Report); err != nil {
		return nil, fmt.Errorf("decoding report of run %s: %w", run.ID, err)
	}
	return &run, nil
}
