package ports

import "attachsweep/internal/domain"

// Notifier shows a transient user-facing message.
type Notifier interface {
	Notify(message string)
}

// Confirmer presents the cascade plan and blocks until the user picks one of
// cancel, file-only, or all. Paths arrive in display order, outermost last.
type Confirmer interface {
	Confirm(attachment string, folderPaths []string) (domain.Choice, error)
}
