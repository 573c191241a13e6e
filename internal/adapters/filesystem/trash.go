package filesystem

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// moveToLocalTrash moves the target into the vault's .trash folder, suffixing
// the name on collision.
func (s *Store) moveToLocalTrash(target string) error {
	trashDir := filepath.Join(s.vaultPath, ".trash")
	if err := os.MkdirAll(trashDir, 0755); err != nil {
		return fmt.Errorf("failed to create local trash: %w", err)
	}
	dst, err := uniqueName(trashDir, filepath.Base(target))
	if err != nil {
		return err
	}
	if err := os.Rename(target, dst); err != nil {
		return fmt.Errorf("failed to move to local trash: %w", err)
	}
	return nil
}

// moveToSystemTrash moves the target into the XDG trash: files/ holds the
// entry, info/ the .trashinfo record describing its origin.
func moveToSystemTrash(target string) error {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	filesDir := filepath.Join(dataHome, "Trash", "files")
	infoDir := filepath.Join(dataHome, "Trash", "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create trash directory: %w", err)
		}
	}

	dst, err := uniqueName(filesDir, filepath.Base(target))
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		url.PathEscape(abs), time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, filepath.Base(dst)+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return fmt.Errorf("failed to write trashinfo: %w", err)
	}

	if err := os.Rename(target, dst); err != nil {
		os.Remove(infoPath)
		return fmt.Errorf("failed to move to system trash: %w", err)
	}
	return nil
}

// uniqueName picks a collision-free destination for base inside dir, appending
// a numeric suffix before the extension when needed.
func uniqueName(dir, base string) (string, error) {
	dst := filepath.Join(dir, base)
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst, nil
	}

	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	for i := 1; i < 1000; i++ {
		dst = filepath.Join(dir, fmt.Sprintf("%s.%d%s", stem, i, ext))
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			return dst, nil
		}
	}
	return "", fmt.Errorf("no free name for %s in %s", base, dir)
}
