package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Run statuses stored in comparison_history
const (
	StatusStarted   = "STARTED"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ErrRunNotFound is returned when no history row matches a run
var ErrRunNotFound = errors.New("comparison run not found")

// DB wraps the SQL database connection and provides methods for interacting with comparison history.
type DB struct {
	db     *sql.DB
	logger zerolog.Logger
}

// RunEntry represents a record in the comparison_history table.
type RunEntry struct {
	ID           int64
	RunID        string
	FileA        string
	FileB        string
	StartTime    time.Time
	EndTime      sql.NullTime
	Status       string
	ImageDiffs   int
	Replaced     int
	Inserted     int
	Deleted      int
	ReportPath   sql.NullString
	ErrorMessage sql.NullString
}

// RunCompletion holds the outcome recorded when a run ends
type RunCompletion struct {
	EndTime      time.Time
	Status       string
	ImageDiffs   int
	Replaced     int
	Inserted     int
	Deleted      int
	ReportPath   string
	ErrorMessage string
}

// NewDB opens (creating if needed) the SQLite database at dataSourceName and ensures the schema.
func NewDB(dataSourceName string, logger zerolog.Logger) (*DB, error) {
	logger = logger.With().Str("component", "HistoryDB").Logger()
	logger.Debug().Str("db_path", dataSourceName).Msg("Initializing history database connection")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}

	db := &DB{
		db:     dbInstance,
		logger: logger,
	}

	if err := db.InitSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// InitSchema creates the comparison_history table if it doesn't already exist.
// Times are stored as Unix milliseconds.
func (d *DB) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS comparison_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT UNIQUE NOT NULL,
		file_a TEXT NOT NULL,
		file_b TEXT NOT NULL,
		start_time INTEGER NOT NULL,
		end_time INTEGER,
		status TEXT NOT NULL,
		image_diffs INTEGER DEFAULT 0,
		replaced INTEGER DEFAULT 0,
		inserted INTEGER DEFAULT 0,
		deleted INTEGER DEFAULT 0,
		report_path TEXT,
		error_message TEXT
	);
	`
	if _, err := d.db.ExecContext(ctx, query); err != nil {
		d.logger.Error().Err(err).Msg("Failed to initialize schema")
		return err
	}
	return nil
}

// RecordRunStart inserts a new row with status STARTED and returns its ID.
func (d *DB) RecordRunStart(ctx context.Context, runID, fileA, fileB string, startTime time.Time) (int64, error) {
	query := `INSERT INTO comparison_history (run_id, file_a, file_b, start_time, status) VALUES (?, ?, ?, ?, ?)`
	result, err := d.db.ExecContext(ctx, query, runID, fileA, fileB, startTime.UnixMilli(), StatusStarted)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run start record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	d.logger.Debug().Int64("db_id", id).Str("run_id", runID).Msg("Recorded run start")
	return id, nil
}

// UpdateRunCompletion stores the outcome of the run with row ID id.
func (d *DB) UpdateRunCompletion(ctx context.Context, id int64, c RunCompletion) error {
	query := `UPDATE comparison_history SET end_time = ?, status = ?, image_diffs = ?, replaced = ?, inserted = ?, deleted = ?, report_path = ?, error_message = ? WHERE id = ?`
	result, err := d.db.ExecContext(ctx, query,
		c.EndTime.UnixMilli(), c.Status, c.ImageDiffs, c.Replaced, c.Inserted, c.Deleted,
		sql.NullString{String: c.ReportPath, Valid: c.ReportPath != ""},
		sql.NullString{String: c.ErrorMessage, Valid: c.ErrorMessage != ""},
		id)
	if err != nil {
		return fmt.Errorf("failed to update run completion for ID %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update run completion for ID %d: %w", id, ErrRunNotFound)
	}
	d.logger.Debug().Int64("db_id", id).Str("status", c.Status).Msg("Updated run completion")
	return nil
}

// ListRecentRuns returns up to limit runs, newest first. limit <= 0 returns all.
func (d *DB) ListRecentRuns(ctx context.Context, limit int) ([]RunEntry, error) {
	query := `SELECT id, run_id, file_a, file_b, start_time, end_time, status, image_diffs, replaced, inserted, deleted, report_path, error_message
		FROM comparison_history ORDER BY start_time DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent runs: %w", err)
	}
	defer rows.Close()

	entries := make([]RunEntry, 0)
	for rows.Next() {
		var (
			e       RunEntry
			startMs int64
			endMs   sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.FileA, &e.FileB, &startMs, &endMs, &e.Status,
			&e.ImageDiffs, &e.Replaced, &e.Inserted, &e.Deleted, &e.ReportPath, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		e.StartTime = time.UnixMilli(startMs)
		if endMs.Valid {
			e.EndTime = sql.NullTime{Time: time.UnixMilli(endMs.Int64), Valid: true}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}
	return entries, nil
}
