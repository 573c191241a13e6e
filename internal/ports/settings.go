package ports

import "attachsweep/internal/domain"

// SettingsStore loads and persists user settings. Load merges whatever subset
// was persisted over the defaults.
type SettingsStore interface {
	Load() (domain.Settings, error)
	Save(domain.Settings) error
}
