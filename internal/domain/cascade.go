package domain

import "slices"

// systemNoiseFiles are OS metadata files that never block a folder from being
// classified as empty. Comparison is exact and case-sensitive.
var systemNoiseFiles = map[string]bool{
	".DS_Store":   true,
	"Thumbs.db":   true,
	"Desktop.ini": true,
}

// IsSystemNoise reports whether name is a recognized system-noise filename.
func IsSystemNoise(name string) bool {
	return systemNoiseFiles[name]
}

// CascadePlan is the ordered run of ancestor folders to delete, innermost
// first. Every planned folder was empty at computation time apart from
// already-planned descendants and system-noise files; a plan never contains a
// barrier-named folder or the vault root. Computed once per deletion request,
// consumed immediately, discarded.
type CascadePlan struct {
	Folders []*FolderNode
}

// Len returns the number of folders in the plan.
func (p CascadePlan) Len() int {
	return len(p.Folders)
}

// Paths returns the folder paths in deletion order, innermost first.
func (p CascadePlan) Paths() []string {
	paths := make([]string, len(p.Folders))
	for i, f := range p.Folders {
		paths[i] = f.Path
	}
	return paths
}

// DisplayPaths returns the folder paths in presentation order, reversed from
// deletion order so the outermost folder sits at the bottom of the list.
func (p CascadePlan) DisplayPaths() []string {
	paths := p.Paths()
	slices.Reverse(paths)
	return paths
}

// PlanCascade walks upward from the folder containing the target file and
// collects the maximal contiguous run of ancestors that would become empty
// once the target is removed. A folder whose name matches a barrier name
// stops the walk before its emptiness is ever considered; a non-empty folder
// or the vault root stops it too. Pure computation over a read-only snapshot;
// nothing is deleted here.
func PlanCascade(parent *FolderNode, targetPath string, settings Settings) CascadePlan {
	var plan CascadePlan
	if !settings.EnableCascade {
		return plan
	}

	barriers := settings.BarrierNames()
	ignored := map[string]bool{targetPath: true}

	for cur := parent; cur != nil && !cur.IsRoot(); cur = cur.Parent {
		if slices.Contains(barriers, cur.Name) {
			break
		}
		if !emptyApartFrom(cur, ignored) {
			break
		}
		plan.Folders = append(plan.Folders, cur)
		ignored[cur.Path] = true
	}
	return plan
}

// emptyApartFrom reports whether the folder holds nothing beyond system-noise
// files and already-ignored paths (the target and previously planned folders).
func emptyApartFrom(n *FolderNode, ignored map[string]bool) bool {
	for _, name := range n.Files {
		if IsSystemNoise(name) || ignored[n.FilePath(name)] {
			continue
		}
		return false
	}
	for _, child := range n.Children {
		if !ignored[child.Path] {
			return false
		}
	}
	return true
}
