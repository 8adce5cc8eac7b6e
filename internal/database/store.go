// Package database provides the storage layer for Flare.
//
// It implements the Store interface using SQLite with WAL mode. Two things
// live here: the panel UI preference (a single boolean flag) and the prompt
// archive, an append-only log of the prompts the user copied. The archive
// stores emitted text only — edits are never restored from it.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// PrefPanelExpanded is the key of the single persisted UI-state flag:
// whether the panel was expanded when Flare last ran.
const PrefPanelExpanded = "panel_expanded"

// Store defines the interface for Flare's persistence. The abstraction
// allows mocking in tests and keeps the TUI independent of SQLite.
type Store interface {
	// GetPref returns the stored value for key, or "" when unset.
	GetPref(key string) (string, error)
	// SetPref stores value under key, replacing any previous value.
	SetPref(key, value string) error

	// PanelExpanded reports the persisted panel state. Storage failures
	// degrade silently to false: the panel starts collapsed.
	PanelExpanded() bool
	// SetPanelExpanded persists the panel state. Failures are ignored.
	SetPanelExpanded(expanded bool)

	// ArchivePrompt appends a copied prompt to the archive and returns
	// its entry ID.
	ArchivePrompt(entry *ArchiveEntry) (int64, error)
	// QueryArchive returns archive entries, most recent first.
	QueryArchive(limit int) ([]*ArchiveEntry, error)
	// GetArchiveEntry returns a single entry by ID.
	GetArchiveEntry(id int64) (*ArchiveEntry, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// ArchiveEntry is one copied prompt: where it came from, how many changes it
// described, and the full text that went to the clipboard.
type ArchiveEntry struct {
	EntryID     int64  `json:"entry_id"`
	PageURL     string `json:"page_url"`
	ChangeCount int    `json:"change_count"`
	Summary     string `json:"summary"`
	Prompt      string `json:"prompt"`
	CreatedAt   int64  `json:"created_at"` // Unix nanoseconds
}

// DBService implements the Store interface using SQLite. It manages the
// connection, prepared statements, and thread-safe access through a
// read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtGetPref       *sql.Stmt
	stmtSetPref       *sql.Stmt
	stmtInsertArchive *sql.Stmt
}

// NewDBService opens (or creates) the database at path, initializes the
// schema, and prepares frequently-used statements.
//
// Use ":memory:" for in-memory databases (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite supports one writer at a time; WAL handles the rest.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{db: db, path: path}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtGetPref, err = s.db.Prepare(`SELECT value FROM prefs WHERE key = ?`)
	if err != nil {
		return fmt.Errorf("preparing GetPref: %w", err)
	}

	s.stmtSetPref, err = s.db.Prepare(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`)
	if err != nil {
		return fmt.Errorf("preparing SetPref: %w", err)
	}

	s.stmtInsertArchive, err = s.db.Prepare(`
		INSERT INTO archive (page_url, change_count, summary, prompt, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertArchive: %w", err)
	}

	return nil
}

// GetPref returns the stored value for key, or "" when the key is unset.
func (s *DBService) GetPref(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.stmtGetPref.QueryRow(key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading pref %s: %w", key, err)
	}
	return value, nil
}

// SetPref stores value under key, replacing any previous value.
func (s *DBService) SetPref(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtSetPref.Exec(key, value); err != nil {
		return fmt.Errorf("writing pref %s: %w", key, err)
	}
	return nil
}

// PanelExpanded reports whether the panel was expanded when Flare last ran.
// Any storage failure means "collapsed".
func (s *DBService) PanelExpanded() bool {
	v, err := s.GetPref(PrefPanelExpanded)
	if err != nil {
		return false
	}
	return v == "true"
}

// SetPanelExpanded persists the panel state; failures are ignored.
func (s *DBService) SetPanelExpanded(expanded bool) {
	v := "false"
	if expanded {
		v = "true"
	}
	_ = s.SetPref(PrefPanelExpanded, v)
}

// ArchivePrompt appends a copied prompt to the archive. A zero CreatedAt is
// filled in with the current time.
func (s *DBService) ArchivePrompt(entry *ArchiveEntry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().UnixNano()
	}

	result, err := s.stmtInsertArchive.Exec(
		entry.PageURL, entry.ChangeCount, entry.Summary, entry.Prompt, entry.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("archiving prompt for %s: %w", entry.PageURL, err)
	}
	return result.LastInsertId()
}

// QueryArchive returns archive entries ordered most recent first.
func (s *DBService) QueryArchive(limit int) ([]*ArchiveEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT entry_id, page_url, change_count, summary, prompt, created_at
		FROM archive
		ORDER BY created_at DESC, entry_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var entries []*ArchiveEntry
	for rows.Next() {
		e := &ArchiveEntry{}
		if err := rows.Scan(&e.EntryID, &e.PageURL, &e.ChangeCount,
			&e.Summary, &e.Prompt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning archive row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetArchiveEntry returns a single archive entry by ID.
func (s *DBService) GetArchiveEntry(id int64) (*ArchiveEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := &ArchiveEntry{}
	err := s.db.QueryRow(`
		SELECT entry_id, page_url, change_count, summary, prompt, created_at
		FROM archive
		WHERE entry_id = ?
	`, id).Scan(&e.EntryID, &e.PageURL, &e.ChangeCount, &e.Summary, &e.Prompt, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading archive entry %d: %w", id, err)
	}
	return e, nil
}

// Close gracefully shuts down the database, closing all prepared statements
// and the underlying connection.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtGetPref, s.stmtSetPref, s.stmtInsertArchive} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
