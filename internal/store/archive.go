// Package store persists conversation transcripts and session events to
// SQLite so past sessions can be reviewed from the CLI.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

type Archive struct {
	db *sql.DB
	mu sync.Mutex
}

// TranscriptLine is one archived message, user or advisor.
type TranscriptLine struct {
	ID        string
	Session   string
	Role      string
	Content   string
	Sentiment string
	CreatedAt time.Time
}

// Event is an archived session event (quiz finished, reminder fired).
type Event struct {
	ID        string
	Session   string
	Category  string
	Summary   string
	CreatedAt time.Time
}

func NewArchive(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	a := &Archive{db: db}
	if err := a.configure(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := a.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := a.db.Exec(p); err != nil {
			return fmt.Errorf("sqlite pragma %q: %w", p, err)
		}
	}
	return nil
}

func (a *Archive) initSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS transcript (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			sentiment TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transcript_session ON transcript(session, created_at)`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			session TEXT NOT NULL,
			category TEXT NOT NULL,
			summary TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_session ON events(session, created_at)`,
	}

	for _, stmt := range stmts {
		if _, err := a.db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *Archive) AppendTranscript(session, role, content, sentimentTag string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(
		`INSERT INTO transcript (id, session, role, content, sentiment) VALUES (?, ?, ?, ?, ?)`,
		ulid.Make().String(), session, role, content, sentimentTag,
	)
	if err != nil {
		return fmt.Errorf("append transcript: %w", err)
	}
	return nil
}

func (a *Archive) AppendEvent(session, category, summary string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(
		`INSERT INTO events (id, session, category, summary) VALUES (?, ?, ?, ?)`,
		ulid.Make().String(), session, category, summary,
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// RecentTranscript returns up to limit lines for a session, oldest first.
func (a *Archive) RecentTranscript(session string, limit int) ([]TranscriptLine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := a.db.Query(
		`SELECT id, session, role, content, sentiment, created_at FROM (
			SELECT id, session, role, content, sentiment, created_at
			FROM transcript WHERE session = ?
			ORDER BY created_at DESC, id DESC LIMIT ?
		) ORDER BY created_at ASC, id ASC`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	var lines []TranscriptLine
	for rows.Next() {
		var line TranscriptLine
		var created string
		if err := rows.Scan(&line.ID, &line.Session, &line.Role, &line.Content, &line.Sentiment, &created); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		line.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Sessions lists distinct session keys, most recently active first.
func (a *Archive) Sessions(limit int) ([]string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	rows, err := a.db.Query(
		`SELECT session FROM transcript GROUP BY session ORDER BY MAX(created_at) DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CountTranscript reports the number of archived lines for a session, or all
// sessions when session is empty.
func (a *Archive) CountTranscript(session string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var n int
	var err error
	if session == "" {
		err = a.db.QueryRow(`SELECT COUNT(*) FROM transcript`).Scan(&n)
	} else {
		err = a.db.QueryRow(`SELECT COUNT(*) FROM transcript WHERE session = ?`, session).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count transcript: %w", err)
	}
	return n, nil
}
