package settings

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// Store persists settings as JSON under the user config directory, one file
// per vault. A partially-written file is merged over the defaults on load, so
// newly introduced settings pick up their default value.
type Store struct {
	path string
}

// Ensure Store implements SettingsStore
var _ ports.SettingsStore = (*Store)(nil)

// NewStore creates a settings store for the given vault.
func NewStore(vaultPath string) *Store {
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}

	h := sha256.Sum256([]byte(vaultPath))
	name := hex.EncodeToString(h[:8]) + ".json"
	return &Store{path: filepath.Join(configHome, "attachsweep", name)}
}

// Load reads the persisted settings, merged over defaults. A missing file is
// not an error: the defaults are returned as-is.
func (s *Store) Load() (domain.Settings, error) {
	loaded := domain.DefaultSettings()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return loaded, nil
	}
	if err != nil {
		return loaded, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &loaded); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return loaded.Normalize(), nil
}

// Save persists the settings, creating the config directory on first use.
func (s *Store) Save(settings domain.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(settings.Normalize(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
