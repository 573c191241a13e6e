package ports

import "attachsweep/internal/domain"

// FileStore is the host file-tree collaborator. The folder hierarchy is owned
// and mutated by the store; the core reads snapshots of it and issues deletion
// commands by path.
type FileStore interface {
	// ResolveLink resolves raw link text against the path of the document
	// containing it. Returns (nil, nil) when no file matches.
	ResolveLink(linkText, contextPath string) (*domain.FileHandle, error)

	// Snapshot returns a read-only tree of the vault folders and files.
	Snapshot() (*domain.FolderNode, error)

	// StatFolder re-resolves a folder by path against the live filesystem.
	// Returns (nil, nil) when the folder no longer exists.
	StatFolder(path string) (*domain.FileHandle, error)

	// TrashOrDelete removes the file or folder at path using the strategy.
	TrashOrDelete(path string, strategy domain.TrashStrategy) error
}
