package domain

import "sort"

// Backlink records how many times one source document links a target.
type Backlink struct {
	SourcePath string
	Count      int
}

// ReferenceSummary aggregates the corpus-wide references to a target file.
// Computed fresh on every deletion request; the underlying index may change
// between requests, so summaries are never cached.
type ReferenceSummary struct {
	TotalCount int
	FileCount  int
	Files      []string
}

// Summarize folds per-source occurrence counts into a ReferenceSummary.
// Sources with a zero count are ignored.
func Summarize(backlinks []Backlink) ReferenceSummary {
	var s ReferenceSummary
	seen := make(map[string]bool)
	for _, b := range backlinks {
		if b.Count <= 0 {
			continue
		}
		s.TotalCount += b.Count
		if !seen[b.SourcePath] {
			seen[b.SourcePath] = true
			s.Files = append(s.Files, b.SourcePath)
		}
	}
	sort.Strings(s.Files)
	s.FileCount = len(s.Files)
	return s
}

// OnlyReferencedFrom reports whether every reference comes from the given
// document. Used to pick the "remaining references are in this note" message.
func (s ReferenceSummary) OnlyReferencedFrom(path string) bool {
	return s.FileCount == 1 && s.Files[0] == path
}
