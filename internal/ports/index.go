package ports

import "attachsweep/internal/domain"

// LinkIndex is the corpus-wide resolved-link index: for every source document,
// the targets it references and how many times.
type LinkIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Sync brings the index up to date with the vault contents. Callers run
	// it before every query; reference counts must never be served from a
	// stale corpus.
	Sync() (*domain.SyncStats, error)

	// LinksTo returns per-source occurrence counts for links resolving to
	// the target path.
	LinksTo(targetPath string) ([]domain.Backlink, error)
}
