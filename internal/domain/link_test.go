package domain

import "testing"

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		cursor   int
		wantText string
		wantCh   [2]int // start, end; ignored when wantText is ""
	}{
		{
			name:     "cursor inside wiki embed",
			line:     "before ![[img.png]] after",
			cursor:   12,
			wantText: "img.png",
			wantCh:   [2]int{7, 19},
		},
		{
			name:     "cursor at span start",
			line:     "![[img.png]]",
			cursor:   0,
			wantText: "img.png",
			wantCh:   [2]int{0, 12},
		},
		{
			name:     "cursor at span end is inclusive",
			line:     "![[img.png]]",
			cursor:   12,
			wantText: "img.png",
			wantCh:   [2]int{0, 12},
		},
		{
			name:     "cursor past span end",
			line:     "![[img.png]] x",
			cursor:   13,
			wantText: "",
		},
		{
			name:     "wiki link with alias",
			line:     "see [[notes/diagram.svg|the diagram]] here",
			cursor:   10,
			wantText: "notes/diagram.svg",
			wantCh:   [2]int{4, 37},
		},
		{
			name:     "markdown embed with percent encoding",
			line:     "![scan](files/my%20scan.pdf)",
			cursor:   5,
			wantText: "files/my scan.pdf",
			wantCh:   [2]int{0, 28},
		},
		{
			name:     "markdown link plain",
			line:     "a [doc](papers/doc.pdf) b",
			cursor:   8,
			wantText: "papers/doc.pdf",
			wantCh:   [2]int{2, 23},
		},
		{
			name:     "second wiki link on the line",
			line:     "[[a.png]] and [[b.png]]",
			cursor:   16,
			wantText: "b.png",
			wantCh:   [2]int{14, 23},
		},
		{
			name:     "cursor between two links",
			line:     "[[a.png]] x [[b.png]]",
			cursor:   10,
			wantText: "",
		},
		{
			name:     "plain text",
			line:     "no links here",
			cursor:   4,
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locate(tt.line, 7, tt.cursor)

			if tt.wantText == "" {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}

			if got == nil {
				t.Fatalf("expected a match, got nil")
			}
			if got.LinkText != tt.wantText {
				t.Errorf("LinkText = %q, want %q", got.LinkText, tt.wantText)
			}
			if got.Start.Line != 7 || got.End.Line != 7 {
				t.Errorf("line = %d/%d, want 7", got.Start.Line, got.End.Line)
			}
			if got.Start.Ch != tt.wantCh[0] || got.End.Ch != tt.wantCh[1] {
				t.Errorf("span = [%d, %d], want [%d, %d]",
					got.Start.Ch, got.End.Ch, tt.wantCh[0], tt.wantCh[1])
			}
		})
	}
}

func TestLocateWikiTriedBeforeMarkdown(t *testing.T) {
	// A wiki link later in the line wins over a markdown link containing the cursor
	// only when the cursor is inside the wiki span; the families are tried in
	// order, each exhaustively.
	line := "[md](a.png) then [[b.png]]"

	got := Locate(line, 0, 20)
	if got == nil || got.LinkText != "b.png" {
		t.Fatalf("cursor in wiki span: got %+v, want b.png", got)
	}

	got = Locate(line, 0, 3)
	if got == nil || got.LinkText != "a.png" {
		t.Fatalf("cursor in markdown span: got %+v, want a.png", got)
	}
}

func TestParseLinks(t *testing.T) {
	text := "intro ![[img.png]] and [[img.png]]\n" +
		"also [scan](files/my%20scan.pdf) end\n"

	got := ParseLinks(text)
	if len(got) != 3 {
		t.Fatalf("got %d links, want 3", len(got))
	}
	if !got[0].Embed || got[0].Target != "img.png" {
		t.Errorf("link[0] = %+v, want embedded img.png", got[0])
	}
	if got[1].Embed || got[1].Target != "img.png" {
		t.Errorf("link[1] = %+v, want linked img.png", got[1])
	}
	if got[2].Target != "files/my scan.pdf" {
		t.Errorf("link[2].Target = %q, want decoded path", got[2].Target)
	}
}
