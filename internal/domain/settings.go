package domain

import (
	"fmt"
	"strings"
)

// TrashStrategy selects where deleted files and folders end up.
type TrashStrategy string

const (
	TrashSystem    TrashStrategy = "system-trash"
	TrashLocal     TrashStrategy = "local-trash"
	TrashPermanent TrashStrategy = "permanent"
)

// ParseTrashStrategy validates a strategy string.
func ParseTrashStrategy(s string) (TrashStrategy, error) {
	switch TrashStrategy(s) {
	case TrashSystem, TrashLocal, TrashPermanent:
		return TrashStrategy(s), nil
	}
	return "", fmt.Errorf("invalid trash strategy %q (want system-trash, local-trash, or permanent)", s)
}

// Settings is the persisted configuration. Loaded at startup, merged over
// defaults, persisted on every change.
type Settings struct {
	EnableCascade    bool          `json:"enableCascade"`
	StopFolders      string        `json:"stopFolders"`
	EnableWarning    bool          `json:"enableWarning"`
	WarningThreshold int           `json:"warningThreshold"`
	TrashStrategy    TrashStrategy `json:"trashStrategy"`
}

// DefaultSettings returns the configuration used before anything is persisted.
func DefaultSettings() Settings {
	return Settings{
		EnableCascade:    true,
		StopFolders:      "",
		EnableWarning:    true,
		WarningThreshold: 3,
		TrashStrategy:    TrashSystem,
	}
}

// BarrierNames splits StopFolders on commas, trims each entry, and discards
// empty ones.
func (s Settings) BarrierNames() []string {
	var names []string
	for _, part := range strings.Split(s.StopFolders, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Normalize clamps out-of-range values back to usable ones: the warning
// threshold is at least 1 and an unknown trash strategy falls back to the
// system trash.
func (s Settings) Normalize() Settings {
	if s.WarningThreshold < 1 {
		s.WarningThreshold = 1
	}
	if _, err := ParseTrashStrategy(string(s.TrashStrategy)); err != nil {
		s.TrashStrategy = TrashSystem
	}
	return s
}
