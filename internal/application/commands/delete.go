package commands

import (
	"context"
	"fmt"
	"path"
	"sync/atomic"

	"github.com/tliron/commonlog"

	"attachsweep/internal/application"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// DeleteOutcome identifies which branch the deletion flow finished on.
type DeleteOutcome int

const (
	// OutcomeSkipped means the request was dropped by the single-flight guard.
	OutcomeSkipped DeleteOutcome = iota
	// OutcomeNoLink means no link spans the cursor.
	OutcomeNoLink
	// OutcomeCancelled means the user dismissed the confirmation.
	OutcomeCancelled
	// OutcomeLinkRemoved means only the link text was stripped: the target was
	// either missing or still referenced elsewhere.
	OutcomeLinkRemoved
	// OutcomeBusy means the physical deletion failed because the file is in use.
	OutcomeBusy
	// OutcomeFailed covers every other failure.
	OutcomeFailed
	// OutcomeDeleted means the attachment was deleted with no cascade.
	OutcomeDeleted
	// OutcomeDeletedWithFolders means the attachment and one or more empty
	// folders were deleted.
	OutcomeDeletedWithFolders
)

// DeleteResult reports how a deletion request ended.
type DeleteResult struct {
	Outcome        DeleteOutcome
	FoldersDeleted int
	Message        string
	Refs           domain.ReferenceSummary
}

// DeleteRequest identifies the clicked link: the source document plus the
// cursor position inside it.
type DeleteRequest struct {
	DocPath string
	Cursor  domain.Pos
}

// Deleter orchestrates the delete-attachment flow: locate the link, count
// references, plan the cascade, gate on the confirmation policy, then execute
// physical deletion, text-span removal, and the folder cascade in that order.
// Collaborator failures never propagate to the caller as errors; they are
// converted to notifications and reported in the result.
type Deleter struct {
	store     ports.FileStore
	index     ports.LinkIndex
	editor    ports.Editor
	notifier  ports.Notifier
	confirmer ports.Confirmer
	settings  domain.Settings
	log       commonlog.Logger

	// Single-flight lock: at most one execution runs at a time. Acquired when
	// an execution branch actually starts, not while a confirmation modal is
	// open, so a second request during the modal is only dropped once it
	// reaches execution.
	running atomic.Bool
}

// NewDeleter creates a Deleter. Settings are captured once, at startup.
func NewDeleter(
	store ports.FileStore,
	index ports.LinkIndex,
	editor ports.Editor,
	notifier ports.Notifier,
	confirmer ports.Confirmer,
	settings domain.Settings,
) *Deleter {
	return &Deleter{
		store:     store,
		index:     index,
		editor:    editor,
		notifier:  notifier,
		confirmer: confirmer,
		settings:  settings.Normalize(),
		log:       commonlog.GetLogger("commands.delete"),
	}
}

// Validate checks the request before any work starts.
func (d *Deleter) Validate(req DeleteRequest) error {
	if req.DocPath == "" {
		return &application.ValidationError{Field: "doc", Message: "document path is required"}
	}
	if req.Cursor.Line < 0 || req.Cursor.Ch < 0 {
		return &application.ValidationError{Field: "cursor", Message: "cursor position must not be negative"}
	}
	return nil
}

// Execute runs the full flow for one request.
func (d *Deleter) Execute(ctx context.Context, req DeleteRequest) (*DeleteResult, error) {
	if err := d.Validate(req); err != nil {
		return nil, err
	}

	lineText, err := d.editor.Line(req.DocPath, req.Cursor.Line)
	if err != nil {
		return nil, fmt.Errorf("failed to read line %d of %s: %w", req.Cursor.Line, req.DocPath, err)
	}

	ref := domain.Locate(lineText, req.Cursor.Line, req.Cursor.Ch)
	if ref == nil {
		return &DeleteResult{Outcome: OutcomeNoLink}, nil
	}

	handle, err := d.store.ResolveLink(ref.LinkText, req.DocPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", ref.LinkText, err)
	}
	if handle == nil {
		// Dangling link: strip the span, nothing to delete.
		msg := fmt.Sprintf("Removed the link. No file found for %q.", ref.LinkText)
		return d.stripOnly(req, ref, msg, domain.ReferenceSummary{}), nil
	}

	refs, failed := d.countReferences(handle.Path)
	if failed != nil {
		return failed, nil
	}
	if refs.TotalCount > 1 || refs.FileCount > 1 {
		var msg string
		if refs.OnlyReferencedFrom(req.DocPath) {
			msg = fmt.Sprintf("Removed the link. %s is still referenced %d more time(s) in this note, so the file was kept.",
				handle.Name, refs.TotalCount-1)
		} else {
			msg = fmt.Sprintf("Removed the link. %s is referenced %d time(s) from %d note(s), so the file was kept.",
				handle.Name, refs.TotalCount, refs.FileCount)
		}
		return d.stripOnly(req, ref, msg, refs), nil
	}

	plan, failed := d.planCascade(handle)
	if failed != nil {
		return failed, nil
	}

	cascade := false
	switch domain.Decide(plan.Len(), d.settings) {
	case domain.DecisionFileOnly:
		// Nothing cascadable; delete the attachment alone.
	case domain.DecisionSilent:
		cascade = true
	case domain.DecisionConfirm:
		// The lock is deliberately not held while the modal is open; the plan
		// is not recomputed after the user answers.
		choice, err := d.confirmer.Confirm(handle.Name, plan.DisplayPaths())
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		switch choice {
		case domain.ChoiceCancel:
			return &DeleteResult{Outcome: OutcomeCancelled}, nil
		case domain.ChoiceAll:
			cascade = true
		}
	}

	return d.perform(req, ref, handle, plan, cascade), nil
}

func (d *Deleter) countReferences(targetPath string) (domain.ReferenceSummary, *DeleteResult) {
	if _, err := d.index.Sync(); err != nil {
		d.log.Errorf("index sync: %s", err.Error())
		return domain.ReferenceSummary{}, d.fail("Could not check references to the attachment.")
	}
	backlinks, err := d.index.LinksTo(targetPath)
	if err != nil {
		d.log.Errorf("backlink query for %s: %s", targetPath, err.Error())
		return domain.ReferenceSummary{}, d.fail("Could not check references to the attachment.")
	}
	return domain.Summarize(backlinks), nil
}

func (d *Deleter) planCascade(handle *domain.FileHandle) (domain.CascadePlan, *DeleteResult) {
	root, err := d.store.Snapshot()
	if err != nil {
		d.log.Errorf("vault snapshot: %s", err.Error())
		return domain.CascadePlan{}, d.fail("Could not read the folder tree.")
	}
	parent := domain.FindFolder(root, path.Dir(handle.Path))
	if parent == nil {
		d.log.Errorf("parent folder of %s not in snapshot", handle.Path)
		return domain.CascadePlan{}, d.fail("Could not read the folder tree.")
	}
	return domain.PlanCascade(parent, handle.Path, d.settings), nil
}

// stripOnly removes the link span without touching any file. Runs under the
// single-flight lock like every other execution branch.
func (d *Deleter) stripOnly(req DeleteRequest, ref *domain.AttachmentRef, msg string, refs domain.ReferenceSummary) *DeleteResult {
	if !d.running.CompareAndSwap(false, true) {
		return &DeleteResult{Outcome: OutcomeSkipped}
	}
	defer d.running.Store(false)

	if err := d.editor.RemoveRange(req.DocPath, ref.Start, ref.End); err != nil {
		d.log.Errorf("remove link span in %s: %s", req.DocPath, err.Error())
		return d.fail("Could not remove the link text.")
	}
	d.notifier.Notify(msg)
	return &DeleteResult{Outcome: OutcomeLinkRemoved, Message: msg, Refs: refs}
}

// perform executes physical deletion, text removal, and the cascade. The
// ordering is the rollback strategy: the span is stripped only after the file
// is gone, so the document never loses a link to a file that still exists.
func (d *Deleter) perform(req DeleteRequest, ref *domain.AttachmentRef, handle *domain.FileHandle, plan domain.CascadePlan, cascade bool) *DeleteResult {
	if !d.running.CompareAndSwap(false, true) {
		return &DeleteResult{Outcome: OutcomeSkipped}
	}
	defer d.running.Store(false)

	if err := d.store.TrashOrDelete(handle.Path, d.settings.TrashStrategy); err != nil {
		if application.IsBusy(err) {
			msg := fmt.Sprintf("Could not delete %s: the file is in use. Close the other program and try again.", handle.Name)
			d.notifier.Notify(msg)
			return &DeleteResult{Outcome: OutcomeBusy, Message: msg}
		}
		d.log.Errorf("delete %s: %s", handle.Path, err.Error())
		return d.fail(fmt.Sprintf("Could not delete %s.", handle.Name))
	}

	if err := d.editor.RemoveRange(req.DocPath, ref.Start, ref.End); err != nil {
		d.log.Errorf("remove link span in %s: %s", req.DocPath, err.Error())
		// The attachment is already gone; accepted as a partial effect.
		return d.fail(fmt.Sprintf("Deleted %s, but could not remove the link text.", handle.Name))
	}

	deleted := 0
	if cascade && plan.Len() > 0 {
		for _, folderPath := range plan.Paths() {
			// Re-resolve: the folder may have been externally removed while
			// the confirmation modal was open.
			h, err := d.store.StatFolder(folderPath)
			if err != nil || h == nil {
				continue
			}
			if err := d.store.TrashOrDelete(h.Path, d.settings.TrashStrategy); err != nil {
				d.log.Errorf("cascade delete %s: %s", h.Path, err.Error())
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		msg := fmt.Sprintf("Deleted %s and %d empty folder(s).", handle.Name, deleted)
		d.notifier.Notify(msg)
		return &DeleteResult{Outcome: OutcomeDeletedWithFolders, FoldersDeleted: deleted, Message: msg}
	}
	msg := fmt.Sprintf("Deleted %s.", handle.Name)
	d.notifier.Notify(msg)
	return &DeleteResult{Outcome: OutcomeDeleted, Message: msg}
}

func (d *Deleter) fail(msg string) *DeleteResult {
	d.notifier.Notify(msg)
	return &DeleteResult{Outcome: OutcomeFailed, Message: msg}
}
