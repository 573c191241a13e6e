package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"attachsweep/internal/adapters/tui/views"
	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// Confirmer implements ports.Confirmer by running the confirmation modal as a
// bubbletea program in the terminal. The call blocks until the user answers;
// the deletion lock is not held while the modal is open.
type Confirmer struct{}

// Ensure Confirmer implements the port
var _ ports.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a terminal confirmer.
func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

// Confirm shows the modal and returns the user's choice.
func (c *Confirmer) Confirm(attachment string, folderPaths []string) (domain.Choice, error) {
	model := views.NewConfirmModel(attachment, folderPaths)

	out, err := tea.NewProgram(model).Run()
	if err != nil {
		return domain.ChoiceCancel, fmt.Errorf("confirmation modal failed: %w", err)
	}
	final, ok := out.(*views.ConfirmModel)
	if !ok {
		return domain.ChoiceCancel, fmt.Errorf("unexpected model type %T", out)
	}
	return final.Choice(), nil
}

// StaticConfirmer answers every confirmation with a fixed choice. Used for
// non-interactive runs where the caller decided up front.
type StaticConfirmer struct {
	Answer domain.Choice
}

// Confirm returns the fixed answer.
func (c *StaticConfirmer) Confirm(attachment string, folderPaths []string) (domain.Choice, error) {
	return c.Answer, nil
}
