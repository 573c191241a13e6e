package domain

import "time"

// SyncStats holds statistics from a resolved-link index sync.
type SyncStats struct {
	FilesScanned int
	DocsUpdated  int
	DocsRemoved  int
	LinksIndexed int
	Duration     time.Duration
}
