// Package snapshot records what each build produced so content drift between
// runs is visible: one row per run, one content-hashed row per generated
// page. When a page's content differs from the previous build the store
// reports a character-level add/remove summary.
package snapshot

import (
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/petalgen/petal/internal/logging"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store keeps build snapshots in a SQLite file under the site root.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// PageChange summarizes how a page differs from its previous build.
type PageChange struct {
	Changed      bool
	AddedChars   int
	RemovedChars int
}

// Open creates (or reuses) <root>/.petal/petal.db and applies the schema.
func Open(root string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		return nil, errors.New("snapshot: nil logger provided")
	}

	dir := filepath.Join(root, ".petal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "petal.db"))
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply snapshot schema: %w", err)
	}

	logger.Info("snapshot store opened", logging.Field{Key: "path", Value: dir})
	return &Store{db: db, logger: logger}, nil
}

// OpenDB wraps an existing database handle. Used by tests with an in-memory
// database.
func OpenDB(db *sql.DB, logger logging.Logger) (*Store, error) {
	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("apply snapshot schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// StartRun opens a new run row and returns its id.
func (s *Store) StartRun(campaignSlug string, now time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO runs (id, campaign, started_at) VALUES (?, ?, ?)`,
		id, campaignSlug, now.Unix())
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// FinishRun marks a run complete with its page count.
func (s *Store) FinishRun(runID string, pages int) error {
	_, err := s.db.Exec(`UPDATE runs SET finished_at = ?, pages = ? WHERE id = ?`,
		time.Now().Unix(), pages, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RecordPage stores a page snapshot and compares it against the most recent
// snapshot of the same path from any earlier run.
func (s *Store) RecordPage(runID, relPath, content string) (*PageChange, error) {
	sum := sha256.Sum256([]byte(content))
	hash := hex.EncodeToString(sum[:])

	var prevHash string
	var prevContent []byte
	err := s.db.QueryRow(
		`SELECT content_hash, content FROM pages WHERE path = ? AND run_id != ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		relPath, runID).Scan(&prevHash, &prevContent)
	first := errors.Is(err, sql.ErrNoRows)
	if err != nil && !first {
		return nil, fmt.Errorf("load previous snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO pages (run_id, path, content_hash, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, relPath, hash, []byte(content), time.Now().UnixNano())
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	if first || prevHash == hash {
		return &PageChange{}, nil
	}

	added, removed := diffSummary(string(prevContent), content)
	return &PageChange{Changed: true, AddedChars: added, RemovedChars: removed}, nil
}

// diffSummary counts inserted and deleted characters between two builds of
// the same page. Character-level diffing is precise enough here; pages are
// small.
func diffSummary(base, head string) (added, removed int) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(base, head, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += len(d.Text)
		}
	}
	return added, removed
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
