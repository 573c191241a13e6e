package commands

import (
	"context"
	"fmt"
	"path"

	"attachsweep/internal/application"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// PlanResult contains the dry-run cascade plan for a target file.
type PlanResult struct {
	TargetPath string
	Decision   domain.Decision
	Folders    []string // deletion order, innermost first
}

// PlanCommand computes the cascade plan for a target without deleting
// anything.
type PlanCommand struct {
	Store    ports.FileStore
	Settings domain.Settings
	Target   string
}

// Validate checks if the plan query is valid
func (c *PlanCommand) Validate() error {
	if c.Target == "" {
		return &application.ValidationError{Field: "target", Message: "target is required"}
	}
	return nil
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) (*PlanResult, error) {
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

	root, err := c.Store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot vault: %w", err)
	}
	parent := domain.FindFolder(root, path.Dir(handle.Path))
	if parent == nil {
		return nil, fmt.Errorf("parent folder of %s not found", handle.Path)
	}

	settings := c.Settings.Normalize()
	plan := domain.PlanCascade(parent, handle.Path, settings)

	return &PlanResult{
		TargetPath: handle.Path,
		Decision:   domain.Decide(plan.Len(), settings),
		Folders:    plan.Paths(),
	}, nil
}
