package domain

import (
	"net/url"
	"regexp"
	"strings"
)

// Pos is a zero-based (line, character) position in a document.
type Pos struct {
	Line int
	Ch   int
}

// AttachmentRef identifies one link occurrence in a document: the raw target
// text as written plus the exact span it occupies. Computed per cursor query
// and discarded after use.
type AttachmentRef struct {
	LinkText string
	Start    Pos
	End      Pos
}

// Wiki embeds and links: ![[target]], [[target]], [[target|alias]].
var wikiLinkPattern = regexp.MustCompile(`!?\[\[([^\[\]|]+)(?:\|[^\]]*)?\]\]`)

// Markdown embeds and links: ![label](target), [label](target).
var mdLinkPattern = regexp.MustCompile(`!?\[[^\]]*\]\(([^()]+)\)`)

// Locate finds the embed or link whose span contains the cursor, inclusive on
// both ends. The wiki syntax is tried exhaustively before the markdown syntax;
// markdown targets are percent-decoded. Returns nil when no link spans the
// cursor.
func Locate(lineText string, line, cursor int) *AttachmentRef {
	if ref := locateWith(wikiLinkPattern, lineText, line, cursor, false); ref != nil {
		return ref
	}
	return locateWith(mdLinkPattern, lineText, line, cursor, true)
}

func locateWith(pattern *regexp.Regexp, lineText string, line, cursor int, decode bool) *AttachmentRef {
	for _, m := range pattern.FindAllStringSubmatchIndex(lineText, -1) {
		start, end := m[0], m[1]
		if cursor < start || cursor > end {
			continue
		}
		target := lineText[m[2]:m[3]]
		if decode {
			if decoded, err := url.PathUnescape(target); err == nil {
				target = decoded
			}
		}
		return &AttachmentRef{
			LinkText: strings.TrimSpace(target),
			Start:    Pos{Line: line, Ch: start},
			End:      Pos{Line: line, Ch: end},
		}
	}
	return nil
}

// LinkOccurrence is one parsed link target in a document body.
type LinkOccurrence struct {
	Target string
	Embed  bool
}

// ParseLinks extracts every wiki and markdown link target from text, in
// document order per syntax family. Used by the index sync to build the
// corpus-wide resolved-link table.
func ParseLinks(text string) []LinkOccurrence {
	var links []LinkOccurrence
	for _, m := range wikiLinkPattern.FindAllStringSubmatch(text, -1) {
		links = append(links, LinkOccurrence{
			Target: strings.TrimSpace(m[1]),
			Embed:  strings.HasPrefix(m[0], "!"),
		})
	}
	for _, m := range mdLinkPattern.FindAllStringSubmatch(text, -1) {
		target := m[1]
		if decoded, err := url.PathUnescape(target); err == nil {
			target = decoded
		}
		links = append(links, LinkOccurrence{
			Target: strings.TrimSpace(target),
			Embed:  strings.HasPrefix(m[0], "!"),
		})
	}
	return links
}
