package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tliron/commonlog"

	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.LinkIndex using SQLite: a docs table tracking
// modification times and a links table holding resolved (source, target,
// count) rows.
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
	store     ports.FileStore
	log       commonlog.Logger
}

// Ensure Index implements LinkIndex
var _ ports.LinkIndex = (*Index)(nil)

// NewIndex creates a SQLite link index. Link targets are resolved through the
// store the same way the host resolves them at click time.
func NewIndex(store ports.FileStore) *Index {
	return &Index{
		store: store,
		log:   commonlog.GetLogger("sqlite.index"),
	}
}

// Open initializes the index for the given vault path
func (idx *Index) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS docs (
			path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS links (
			source_path TEXT NOT NULL,
			target_path TEXT NOT NULL,
			cnt INTEGER NOT NULL,
			PRIMARY KEY (source_path, target_path)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_path);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if idx.needsRebuild() {
		if _, err := db.Exec(`DELETE FROM docs; DELETE FROM links;`); err != nil {
			db.Close()
			return fmt.Errorf("failed to reset stale index: %w", err)
		}
	}
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// needsRebuild reports whether the stored schema or vault no longer match.
func (idx *Index) needsRebuild() bool {
	var version, vaultHash string
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'vault_path_hash'`).Scan(&vaultHash)
	return version != schemaVersion || vaultHash != hashVaultPath(idx.vaultPath)
}

func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?);
	`, schemaVersion, hashVaultPath(idx.vaultPath))
	return err
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "attachsweep", hashVaultPath(vaultPath)+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8])
}

// LinksTo returns per-source occurrence counts for links resolving to target.
func (idx *Index) LinksTo(targetPath string) ([]domain.Backlink, error) {
	rows, err := idx.db.Query(`
		SELECT source_path, cnt
		FROM links WHERE target_path = ?
	`, targetPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var backlinks []domain.Backlink
	for rows.Next() {
		var b domain.Backlink
		if err := rows.Scan(&b.SourcePath, &b.Count); err != nil {
			return nil, err
		}
		backlinks = append(backlinks, b)
	}
	return backlinks, rows.Err()
}
