package domain

import (
	"path"
	"reflect"
	"testing"
)

// buildChain creates root/A/B/C with the given extra files per folder and
// returns the innermost folder C. The attachment itself lives in C.
func buildChain(t *testing.T, files map[string][]string) *FolderNode {
	t.Helper()

	root := &FolderNode{Path: "", Name: "vault"}
	cur := root
	for _, name := range []string{"A", "B", "C"} {
		child := &FolderNode{
			Path:   path.Join(cur.Path, name),
			Name:   name,
			Parent: cur,
			Files:  files[name],
		}
		cur.Children = append(cur.Children, child)
		cur = child
	}
	return cur
}

func TestPlanCascade(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string][]string
		settings Settings
		want     []string
	}{
		{
			name:     "empty chain cascades to below root",
			files:    map[string][]string{"C": {"file.png"}},
			settings: Settings{EnableCascade: true},
			want:     []string{"A/B/C", "A/B", "A"},
		},
		{
			name:     "run stops at first non-empty ancestor",
			files:    map[string][]string{"C": {"file.png"}, "A": {"readme.md"}},
			settings: Settings{EnableCascade: true},
			want:     []string{"A/B/C", "A/B"},
		},
		{
			name:     "barrier name stops the walk",
			files:    map[string][]string{"C": {"file.png"}},
			settings: Settings{EnableCascade: true, StopFolders: "B"},
			want:     []string{"A/B/C"},
		},
		{
			name:     "barrier on the immediate parent yields empty plan",
			files:    map[string][]string{"C": {"file.png"}},
			settings: Settings{EnableCascade: true, StopFolders: "other, C"},
			want:     nil,
		},
		{
			name:     "unrelated sibling file blocks the folder",
			files:    map[string][]string{"C": {"file.png", "keep.md"}},
			settings: Settings{EnableCascade: true},
			want:     nil,
		},
		{
			name:     "noise files never block emptiness",
			files:    map[string][]string{"C": {"file.png", ".DS_Store"}, "B": {"Thumbs.db", "Desktop.ini"}},
			settings: Settings{EnableCascade: true},
			want:     []string{"A/B/C", "A/B", "A"},
		},
		{
			name:     "sibling higher up truncates the run",
			files:    map[string][]string{"C": {"file.png"}, "B": {"note.md"}},
			settings: Settings{EnableCascade: true},
			want:     []string{"A/B/C"},
		},
		{
			name:     "cascade disabled",
			files:    map[string][]string{"C": {"file.png"}},
			settings: Settings{},
			want:     nil,
		},
		{
			name:     "barrier match is case sensitive",
			files:    map[string][]string{"C": {"file.png"}},
			settings: Settings{EnableCascade: true, StopFolders: "b"},
			want:     []string{"A/B/C", "A/B", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := buildChain(t, tt.files)
			plan := PlanCascade(parent, "A/B/C/file.png", tt.settings)

			var got []string
			if plan.Len() > 0 {
				got = plan.Paths()
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("plan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanCascadeParentIsRoot(t *testing.T) {
	root := &FolderNode{Path: "", Name: "vault", Files: []string{"file.png"}}

	plan := PlanCascade(root, "file.png", Settings{EnableCascade: true})
	if plan.Len() != 0 {
		t.Errorf("plan for root parent = %v, want empty", plan.Paths())
	}
}

func TestPlanCascadeSubfolderBlocks(t *testing.T) {
	parent := buildChain(t, map[string][]string{"C": {"file.png"}})
	// Unrelated empty subfolder inside B: B is not empty even though C is planned.
	b := parent.Parent
	b.Children = append(b.Children, &FolderNode{Path: "A/B/other", Name: "other", Parent: b})

	plan := PlanCascade(parent, "A/B/C/file.png", Settings{EnableCascade: true})
	if want := []string{"A/B/C"}; !reflect.DeepEqual(plan.Paths(), want) {
		t.Errorf("plan = %v, want %v", plan.Paths(), want)
	}
}

func TestDisplayPathsReversed(t *testing.T) {
	parent := buildChain(t, map[string][]string{"C": {"file.png"}})
	plan := PlanCascade(parent, "A/B/C/file.png", Settings{EnableCascade: true})

	want := []string{"A", "A/B", "A/B/C"}
	if !reflect.DeepEqual(plan.DisplayPaths(), want) {
		t.Errorf("DisplayPaths = %v, want %v", plan.DisplayPaths(), want)
	}
	// Deletion order must be untouched by the display reversal.
	if want := []string{"A/B/C", "A/B", "A"}; !reflect.DeepEqual(plan.Paths(), want) {
		t.Errorf("Paths after DisplayPaths = %v, want %v", plan.Paths(), want)
	}
}
