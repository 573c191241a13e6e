package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"attachsweep/internal/domain"
)

// Sync brings the index in line with the vault. Documents whose mtime moved
// past the last sync (or that the index has never seen) are re-parsed and
// their links re-resolved; vanished documents are dropped. Callers run this
// before every reference query, so counts always reflect the current corpus.
func (idx *Index) Sync() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	known := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM docs`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var p string
		var mtime int64
		if err := rows.Scan(&p, &mtime); err != nil {
			rows.Close()
			return nil, err
		}
		known[p] = mtime
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	err = filepath.Walk(idx.vaultPath, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() && strings.HasPrefix(info.Name(), ".") && p != idx.vaultPath {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
			return nil
		}

		rel, _ := filepath.Rel(idx.vaultPath, p)
		rel = filepath.ToSlash(rel)
		seen[rel] = true
		stats.FilesScanned++

		mtime := info.ModTime().Unix()
		if old, ok := known[rel]; ok && old == mtime {
			return nil
		}

		added, err := idx.reindexDoc(rel, p, mtime)
		if err != nil {
			idx.log.Errorf("reindex %s: %s", rel, err.Error())
			return nil // Continue on error
		}
		stats.DocsUpdated++
		stats.LinksIndexed += added
		return nil
	})
	if err != nil {
		return stats, err
	}

	for p := range known {
		if !seen[p] {
			if err := idx.dropDoc(p); err != nil {
				idx.log.Errorf("drop %s: %s", p, err.Error())
				continue
			}
			stats.DocsRemoved++
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// reindexDoc replaces the stored links of one document with a fresh parse.
// Every parsed target is resolved against the document's own path context;
// unresolvable targets are not indexed.
func (idx *Index) reindexDoc(rel, abs string, mtime int64) (int, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		return 0, err
	}

	counts := make(map[string]int)
	for _, occ := range domain.ParseLinks(string(data)) {
		handle, err := idx.store.ResolveLink(occ.Target, rel)
		if err != nil || handle == nil {
			continue
		}
		counts[handle.Path]++
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links WHERE source_path = ?`, rel); err != nil {
		return 0, err
	}
	for target, cnt := range counts {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO links (source_path, target_path, cnt)
			VALUES (?, ?, ?)
		`, rel, target, cnt); err != nil {
			return 0, err
		}
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO docs (path, mtime) VALUES (?, ?)
	`, rel, mtime); err != nil {
		return 0, err
	}
	return len(counts), tx.Commit()
}

// dropDoc removes a vanished document and its links.
func (idx *Index) dropDoc(rel string) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links WHERE source_path = ?`, rel); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM docs WHERE path = ?`, rel); err != nil {
		return err
	}
	return tx.Commit()
}
