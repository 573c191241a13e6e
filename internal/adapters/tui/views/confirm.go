package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"attachsweep/internal/adapters/tui/styles"
	"attachsweep/internal/domain"
)

// ConfirmKeyMap defines key bindings for the cascade confirmation modal
type ConfirmKeyMap struct {
	All      key.Binding
	FileOnly key.Binding
	Cancel   key.Binding
	Copy     key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "delete all"),
	),
	FileOnly: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "file only"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("c", "esc"),
		key.WithHelp("c/esc", "cancel"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy paths"),
	),
}

// ConfirmModel is the cascade confirmation modal: it lists the folders that
// would be deleted along with the attachment and waits for one of cancel,
// file-only, or all. Folder paths arrive in display order, outermost last.
type ConfirmModel struct {
	attachment  string
	folderPaths []string
	keys        ConfirmKeyMap
	choice      domain.Choice
	done        bool
	width       int
	height      int
}

// NewConfirmModel creates the modal for one deletion request.
func NewConfirmModel(attachment string, folderPaths []string) *ConfirmModel {
	return &ConfirmModel{
		attachment:  attachment,
		folderPaths: folderPaths,
		keys:        DefaultConfirmKeys,
		choice:      domain.ChoiceCancel,
	}
}

// Choice returns the user's answer once the program has finished.
func (m *ConfirmModel) Choice() domain.Choice {
	return m.choice
}

// Init initializes the modal
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the modal
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.All):
			m.choice = domain.ChoiceAll
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.FileOnly):
			m.choice = domain.ChoiceFileOnly
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.choice = domain.ChoiceCancel
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			clipboard.WriteAll(strings.Join(m.folderPaths, "\n"))
			return m, nil
		}
	}

	return m, nil
}

// View renders the modal
func (m *ConfirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete attachment and empty folders?"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Deleting %s would leave %d folder(s) empty:",
		styles.WarningMsg.Render(m.attachment), len(m.folderPaths)))
	b.WriteString("\n\n")

	for _, p := range m.folderPaths {
		b.WriteString("  ")
		b.WriteString(styles.FolderPath.Render(p))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("The outermost folder is listed last."))
	b.WriteString("\n\n")

	b.WriteString(renderHelp(m.keys))

	return styles.App.Render(b.String())
}

func renderHelp(keys ConfirmKeyMap) string {
	var parts []string
	for _, binding := range []key.Binding{keys.All, keys.FileOnly, keys.Cancel, keys.Copy} {
		parts = append(parts,
			styles.HelpKey.Render(binding.Help().Key)+" "+styles.HelpDesc.Render(binding.Help().Desc))
	}
	return strings.Join(parts, styles.HelpDesc.Render("  ·  "))
}
