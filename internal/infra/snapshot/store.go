// Package snapshot persists the last known task set to a local SQLite
// database so the app can show something useful before the first remote
// fetch completes, and when offline.
package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/AlaxSwum/focus-cli/internal/domain"
)

const currentVersion = 1

type Store struct {
	db *sql.DB
}

var _ domain.SnapshotStore = (*Store)(nil)

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS tasks (
		user_id        TEXT NOT NULL,
		id             TEXT NOT NULL,
		original_id    TEXT NOT NULL,
		original_kind  TEXT NOT NULL,
		kind           TEXT NOT NULL,
		subtype        TEXT NOT NULL DEFAULT '',
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		notes          TEXT NOT NULL DEFAULT '',
		date           TEXT NOT NULL DEFAULT '',
		start_hour     INTEGER NOT NULL DEFAULT 0,
		start_minute   INTEGER NOT NULL DEFAULT 0,
		end_hour       INTEGER NOT NULL DEFAULT 0,
		end_minute     INTEGER NOT NULL DEFAULT 0,
		priority       TEXT NOT NULL DEFAULT 'normal',
		is_completed   INTEGER NOT NULL DEFAULT 0,
		is_skipped     INTEGER NOT NULL DEFAULT 0,
		skip_reason    TEXT NOT NULL DEFAULT '',
		meeting_link   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks(user_id, date);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// Save replaces the cached task set for userID with tasks.
func (s *Store) Save(userID string, tasks []domain.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM tasks WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	const insert = `
	INSERT INTO tasks (
		user_id, id, original_id, original_kind, kind, subtype,
		title, description, notes, date,
		start_hour, start_minute, end_hour, end_minute,
		priority, is_completed, is_skipped, skip_reason, meeting_link
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.Prepare(insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.String()
		}
		_, err := stmt.Exec(
			userID, t.ID, t.OriginalID, string(t.OriginalKind), string(t.Kind), t.Subtype,
			t.Title, t.Description, t.Notes, date,
			t.StartHour, t.StartMinute, t.EndHour, t.EndMinute,
			string(t.Priority), boolInt(t.IsCompleted), boolInt(t.IsSkipped), t.SkipReason, t.MeetingLink,
		)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// Load returns the cached task set for userID, ordered by date then start time.
func (s *Store) Load(userID string) ([]domain.Task, error) {
	const query = `
	SELECT id, original_id, original_kind, kind, subtype,
		title, description, notes, date,
		start_hour, start_minute, end_hour, end_minute,
		priority, is_completed, is_skipped, skip_reason, meeting_link
	FROM tasks
	WHERE user_id = ?
	ORDER BY date, start_hour, start_minute, id`

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			t                                  domain.Task
			originalKind, kind, priority, date string
			completed, skipped                 int
		)
		err := rows.Scan(
			&t.ID, &t.OriginalID, &originalKind, &kind, &t.Subtype,
			&t.Title, &t.Description, &t.Notes, &date,
			&t.StartHour, &t.StartMinute, &t.EndHour, &t.EndMinute,
			&priority, &completed, &skipped, &t.SkipReason, &t.MeetingLink,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.OriginalKind = domain.OriginalKind(originalKind)
		t.Kind = domain.Kind(kind)
		t.Priority = domain.Priority(priority)
		t.IsCompleted = completed != 0
		t.IsSkipped = skipped != 0
		if date != "" {
			d, err := domain.ParseDate(date)
			if err != nil {
				return nil, fmt.Errorf("task %s: %w", t.ID, err)
			}
			t.Date = d
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot: %w", err)
	}
	return tasks, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
