package commands

import (
	"context"
	"fmt"

	"attachsweep/internal/application"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// RefsResult contains the reference summary for a target file.
type RefsResult struct {
	TargetPath string
	Summary    domain.ReferenceSummary
}

// RefsCommand counts corpus-wide references to a target file. The index is
// re-synced on every execution so counts reflect the current documents.
type RefsCommand struct {
	Store  ports.FileStore
	Index  ports.LinkIndex
	Target string
}

// Validate checks if the refs query is valid
func (c *RefsCommand) Validate() error {
	if c.Target == "" {
		return &application.ValidationError{Field: "target", Message: "target is required"}
	}
	return nil
}

// Execute runs the refs command
func (c *RefsCommand) Execute(ctx context.Context) (*RefsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	handle, err := c.Store.ResolveLink(c.Target, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", c.Target, err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%q: %w", c.Target, application.ErrTargetNotFound)
	}

	if _, err := c.Index.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync index: %w", err)
	}
	backlinks, err := c.Index.LinksTo(handle.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to query backlinks: %w", err)
	}

	return &RefsResult{
		TargetPath: handle.Path,
		Summary:    domain.Summarize(backlinks),
	}, nil
}
