package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps access to the SQLite database and exposes the member and
// request repositories.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open initializes the SQLite store, runs the schema migration and seeds the
// initial team when the members table is empty.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	// Foreign keys stay declared but unenforced: a request may outlive the
	// member rows it points at, and reads render the gap as an empty name.
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := s.seedMembers(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return s, nil
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// migrate is idempotent and runs on every start.
func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS members (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            role TEXT NOT NULL,
            joined_on TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS requests (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            description TEXT,
            requester_id INTEGER,
            assignee_id INTEGER,
            priority TEXT NOT NULL DEFAULT 'Média',
            status TEXT NOT NULL DEFAULT 'Novo',
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            due_date TEXT,
            FOREIGN KEY(requester_id) REFERENCES members(id),
            FOREIGN KEY(assignee_id) REFERENCES members(id)
        );`,
		`CREATE INDEX IF NOT EXISTS idx_requests_status ON requests(status);`,
		`CREATE INDEX IF NOT EXISTS idx_requests_created ON requests(created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// seedMembers inserts the initial team exactly once, on the first start
// against an empty database.
func (s *Store) seedMembers() error {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM members`).Scan(&count); err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, email, role, joinedOn string
	}{
		{"Ana Silva", "ana@empresa.com", "Líder de Equipe", "2024-01-15"},
		{"João Santos", "joao@empresa.com", "Desenvolvedor", "2024-02-01"},
		{"Maria Costa", "maria@empresa.com", "Designer", "2024-02-15"},
		{"Pedro Lima", "pedro@empresa.com", "Analista", "2024-03-01"},
	}

	for _, m := range seed {
		if _, err := s.db.Exec(`INSERT INTO members(name, email, role, joined_on) VALUES(?, ?, ?, ?)`,
			m.name, m.email, m.role, m.joinedOn); err != nil {
			return fmt.Errorf("seed members: %w", err)
		}
	}

	s.logger.Info("seeded initial team", slog.Int("members", len(seed)))
	return nil
}
