package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Record describes one processed ebook. The path is the file's current
// location: its genre-folder destination after a move, or its original spot
// when the file was left in place.
type Record struct {
	Path        string
	Filename    string
	Genre       string
	ProcessedAt time.Time
}

// Store manages progress persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Exists reports whether a progress database is already present at path.
// Absence means the next run must reconcile progress from the library layout.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Open initializes or connects to the progress database and applies
// migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
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

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
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

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// MarkProcessed records a file as processed together with its manifest row.
// Marking the same path twice keeps the latest record.
func (s *Store) MarkProcessed(ctx context.Context, rec Record) error {
	if rec.Path == "" {
		return errors.New("record path required")
	}
	if rec.Filename == "" {
		rec.Filename = filepath.Base(rec.Path)
	}
	if rec.ProcessedAt.IsZero() {
		rec.ProcessedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO processed_files (path, filename, genre, processed_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET filename = excluded.filename,
             genre = excluded.genre, processed_at = excluded.processed_at`,
		rec.Path,
		rec.Filename,
		rec.Genre,
		rec.ProcessedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	return nil
}

// IsProcessed reports whether a path has already been handled.
func (s *Store) IsProcessed(ctx context.Context, path string) (bool, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM processed_files WHERE path = ?`, path)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("query processed: %w", err)
	}
	return count > 0, nil
}

// ProcessedSet returns all processed paths as a set.
func (s *Store) ProcessedSet(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM processed_files`)
	if err != nil {
		return nil, fmt.Errorf("query processed set: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		set[path] = struct{}{}
	}
	return set, rows.Err()
}

// Records returns all manifest rows in insertion order.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path, filename, genre, processed_at FROM processed_files ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var processedRaw string
		if err := rows.Scan(&rec.Path, &rec.Filename, &rec.Genre, &processedRaw); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339Nano, processedRaw); err == nil {
			rec.ProcessedAt = parsed
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GenreCounts returns a count of processed files grouped by genre.
func (s *Store) GenreCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT genre, COUNT(1) FROM processed_files GROUP BY genre`)
	if err != nil {
		return nil, fmt.Errorf("query genre counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var genre string
		var count int
		if err := rows.Scan(&genre, &count); err != nil {
			return nil, err
		}
		counts[genre] = count
	}
	return counts, rows.Err()
}

// Count returns the number of processed files.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM processed_files`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count processed: %w", err)
	}
	return count, nil
}
