package filesystem

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// Store implements ports.FileStore over a vault directory on disk. All paths
// crossing the port boundary are vault-relative with forward slashes.
type Store struct {
	vaultPath string
}

// Ensure Store implements FileStore
var _ ports.FileStore = (*Store)(nil)

// NewStore creates a filesystem store rooted at vaultPath.
func NewStore(vaultPath string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Store{vaultPath: vaultPath}
}

// VaultPath returns the absolute vault root.
func (s *Store) VaultPath() string {
	return s.vaultPath
}

func (s *Store) abs(rel string) string {
	return filepath.Join(s.vaultPath, filepath.FromSlash(rel))
}

// ResolveLink resolves raw link text the way the host application does: first
// relative to the folder of the containing document, then against the vault
// root, and finally by unique basename lookup anywhere in the vault (shortest
// path wins). Returns (nil, nil) when nothing matches.
func (s *Store) ResolveLink(linkText, contextPath string) (*domain.FileHandle, error) {
	linkText = strings.TrimSpace(linkText)
	if linkText == "" {
		return nil, nil
	}
	// Drop a #fragment; it addresses a location inside the target.
	if idx := strings.Index(linkText, "#"); idx > 0 {
		linkText = linkText[:idx]
	}

	candidates := []string{
		path.Clean(path.Join(path.Dir(contextPath), linkText)),
		path.Clean(linkText),
	}
	for _, rel := range candidates {
		if strings.HasPrefix(rel, "..") {
			continue
		}
		if h := s.statFile(rel); h != nil {
			return h, nil
		}
	}
	return s.findByBasename(path.Base(linkText))
}

func (s *Store) statFile(rel string) *domain.FileHandle {
	info, err := os.Stat(s.abs(rel))
	if err != nil || info.IsDir() {
		return nil
	}
	return &domain.FileHandle{Path: rel, Name: info.Name()}
}

func (s *Store) findByBasename(name string) (*domain.FileHandle, error) {
	var matches []string
	err := filepath.WalkDir(s.vaultPath, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && p != s.vaultPath {
			return filepath.SkipDir
		}
		if !d.IsDir() && d.Name() == name {
			rel, _ := filepath.Rel(s.vaultPath, p)
			matches = append(matches, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search vault: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool {
		if len(matches[i]) != len(matches[j]) {
			return len(matches[i]) < len(matches[j])
		}
		return matches[i] < matches[j]
	})
	return &domain.FileHandle{Path: matches[0], Name: name}, nil
}

// Snapshot builds a read-only folder tree of the vault. Hidden folders
// (.obsidian, .trash, .git and the like) are not part of the tree; regular
// files are recorded by name on their parent node.
func (s *Store) Snapshot() (*domain.FolderNode, error) {
	root := &domain.FolderNode{Path: "", Name: filepath.Base(s.vaultPath)}
	if err := s.fill(root); err != nil {
		return nil, err
	}
	return root, nil
}

func (s *Store) fill(node *domain.FolderNode) error {
	entries, err := os.ReadDir(s.abs(node.Path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", node.Path, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			child := &domain.FolderNode{
				Path:   path.Join(node.Path, entry.Name()),
				Name:   entry.Name(),
				Parent: node,
			}
			if err := s.fill(child); err != nil {
				return err
			}
			node.Children = append(node.Children, child)
		} else {
			node.Files = append(node.Files, entry.Name())
		}
	}
	return nil
}

// StatFolder re-resolves a folder against the live filesystem.
func (s *Store) StatFolder(rel string) (*domain.FileHandle, error) {
	info, err := os.Stat(s.abs(rel))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}
	return &domain.FileHandle{Path: rel, Name: info.Name(), IsDir: true}, nil
}

// TrashOrDelete removes the file or folder at rel using the given strategy.
func (s *Store) TrashOrDelete(rel string, strategy domain.TrashStrategy) error {
	target := s.abs(rel)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("not found: %w", err)
	}

	switch strategy {
	case domain.TrashPermanent:
		return os.RemoveAll(target)
	case domain.TrashLocal:
		return s.moveToLocalTrash(target)
	case domain.TrashSystem:
		return moveToSystemTrash(target)
	}
	return fmt.Errorf("unknown trash strategy %q", strategy)
}
