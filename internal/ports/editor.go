package ports

import "attachsweep/internal/domain"

// Editor is the text-editing collaborator for source documents.
type Editor interface {
	// Line returns the text of one line of a document.
	Line(docPath string, line int) (string, error)

	// RemoveRange deletes the text between start and end, both expressed as
	// (line, character) coordinates.
	RemoveRange(docPath string, start, end domain.Pos) error
}
