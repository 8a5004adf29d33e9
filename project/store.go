package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/creatorkit/canvas"
)

// ErrNotFound indicates a requested project record is missing.
var ErrNotFound = errors.New("project not found")

// ErrBudgetExceeded indicates a save was skipped because the serialized
// project would blow the local storage budget. In-memory work is kept;
// the save simply did not happen.
var ErrBudgetExceeded = errors.New("storage budget exceeded")

// ConflictError reports that the stored project changed behind the
// caller's back: its update timestamp is newer than the one the caller
// last saw. The stored snapshot rides along so the caller can offer it
// instead of silently overwriting.
type ConflictError struct {
	Stored Project
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("project %s changed at %s since last seen", e.Stored.ID, e.Stored.UpdatedAt.Format(time.RFC3339))
}

// DefaultBudget caps the serialized element payload per save. Roughly
// the quota a browser grants a single local-storage origin.
const DefaultBudget = 4 << 20

// Store provides SQLite-backed persistence for project records, one row
// per project keyed by id with a JSON element payload.
type Store struct {
	sqlDB *sql.DB

	// Budget is the maximum serialized payload size accepted per save.
	Budget int
}

// Open opens (and migrates) a project store at the given path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB, Budget: DefaultBudget}
	if err := store.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate project store: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{`
CREATE TABLE IF NOT EXISTS projects (
    id             TEXT PRIMARY KEY,
    title          TEXT NOT NULL,
    campaign_title TEXT NOT NULL DEFAULT '',
    elements_json  BLOB NOT NULL,
    canvas_width   INTEGER NOT NULL,
    canvas_height  INTEGER NOT NULL,
    version        TEXT NOT NULL,
    created_at     INTEGER NOT NULL,
    updated_at     INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_updated_at ON projects(updated_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.sqlDB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save upserts a project record, stamping UpdatedAt. Before writing it
// checks the serialized payload against the storage budget and skips
// the save — logged, not fatal — when the budget is blown.
func (s *Store) Save(ctx context.Context, p *Project) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("project id is required")
	}

	payload, err := json.Marshal(p.Elements)
	if err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}
	if s.Budget > 0 && len(payload) > s.Budget {
		canvas.Logger().Warn("save skipped, storage budget exceeded",
			"project", p.ID, "bytes", len(payload), "budget", s.Budget)
		return ErrBudgetExceeded
	}

	p.UpdatedAt = time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = p.UpdatedAt
	}
	if p.Version == "" {
		p.Version = SchemaVersion
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO projects (id, title, campaign_title, elements_json, canvas_width, canvas_height, version, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    campaign_title = excluded.campaign_title,
    elements_json = excluded.elements_json,
    canvas_width = excluded.canvas_width,
    canvas_height = excluded.canvas_height,
    version = excluded.version,
    updated_at = excluded.updated_at`,
		p.ID, p.Title, p.CampaignTitle, payload,
		p.CanvasSize.Width, p.CanvasSize.Height, p.Version,
		p.CreatedAt.UnixMilli(), p.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

// Get fetches a project record by id.
func (s *Store) Get(ctx context.Context, id string) (Project, error) {
	if s == nil || s.sqlDB == nil {
		return Project{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, title, campaign_title, elements_json, canvas_width, canvas_height, version, created_at, updated_at
FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

// Load fetches a project and performs conflict detection: when the
// stored update timestamp is newer than lastSeen, it returns a
// *ConflictError carrying the stored snapshot instead of the project.
// A zero lastSeen skips the check (first open).
func (s *Store) Load(ctx context.Context, id string, lastSeen time.Time) (Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return Project{}, err
	}
	if !lastSeen.IsZero() && p.UpdatedAt.After(lastSeen) {
		return Project{}, &ConflictError{Stored: p}
	}
	return p, nil
}

// List returns the most recently updated projects, newest first.
// Element payloads are included; callers listing for a picker can
// ignore them.
func (s *Store) List(ctx context.Context, limit int) ([]Project, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, title, campaign_title, elements_json, canvas_width, canvas_height, version, created_at, updated_at
FROM projects ORDER BY updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a project record. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	var payload []byte
	var createdAt, updatedAt int64
	err := row.Scan(
		&p.ID, &p.Title, &p.CampaignTitle, &payload,
		&p.CanvasSize.Width, &p.CanvasSize.Height, &p.Version,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, fmt.Errorf("scan project: %w", err)
	}
	if err := json.Unmarshal(payload, &p.Elements); err != nil {
		return Project{}, fmt.Errorf("decode elements: %w", err)
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return p, nil
}
