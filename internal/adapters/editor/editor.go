package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"attachsweep/internal/domain"
	"attachsweep/internal/ports"
)

// Editor implements ports.Editor by editing vault documents in place, using
// (line, character) coordinates over the file's lines.
type Editor struct {
	vaultPath string
}

// Ensure Editor implements the port
var _ ports.Editor = (*Editor)(nil)

// NewEditor creates an editor rooted at vaultPath.
func NewEditor(vaultPath string) *Editor {
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Editor{vaultPath: vaultPath}
}

func (e *Editor) abs(docPath string) string {
	return filepath.Join(e.vaultPath, filepath.FromSlash(docPath))
}

func (e *Editor) readLines(docPath string) ([]string, error) {
	data, err := os.ReadFile(e.abs(docPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", docPath, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// Line returns the text of one line of a document.
func (e *Editor) Line(docPath string, line int) (string, error) {
	lines, err := e.readLines(docPath)
	if err != nil {
		return "", err
	}
	if line < 0 || line >= len(lines) {
		return "", fmt.Errorf("line %d out of range in %s", line, docPath)
	}
	return lines[line], nil
}

// RemoveRange deletes the text between start and end. The range may span
// lines; character offsets are clamped to the line length.
func (e *Editor) RemoveRange(docPath string, start, end domain.Pos) error {
	lines, err := e.readLines(docPath)
	if err != nil {
		return err
	}
	if start.Line < 0 || start.Line >= len(lines) || end.Line < start.Line || end.Line >= len(lines) {
		return fmt.Errorf("range %d:%d-%d:%d out of range in %s",
			start.Line, start.Ch, end.Line, end.Ch, docPath)
	}

	first := lines[start.Line]
	last := lines[end.Line]
	prefix := first[:clamp(start.Ch, len(first))]
	suffix := last[clamp(end.Ch, len(last)):]

	edited := append([]string{}, lines[:start.Line]...)
	edited = append(edited, prefix+suffix)
	edited = append(edited, lines[end.Line+1:]...)

	out := strings.Join(edited, "\n")
	if err := os.WriteFile(e.abs(docPath), []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", docPath, err)
	}
	return nil
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
