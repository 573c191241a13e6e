package domain

import "path"

// FileHandle identifies a file or folder inside the vault by relative path.
type FileHandle struct {
	Path  string
	Name  string
	IsDir bool
}

// FolderNode is a read-only view of one folder in the vault tree. The tree is
// owned and mutated by the file store; this core only reads it and issues
// deletion commands by path. Parent is a non-owning back reference, Children
// is the owned subfolder collection.
type FolderNode struct {
	Path     string
	Name     string
	Parent   *FolderNode
	Children []*FolderNode
	Files    []string // names of regular files directly inside
}

// IsRoot reports whether this node is the vault root.
func (n *FolderNode) IsRoot() bool {
	return n.Parent == nil
}

// FilePath returns the vault-relative path of a file directly inside n.
func (n *FolderNode) FilePath(name string) string {
	return path.Join(n.Path, name)
}

// FindFolder returns the folder with the given vault-relative path in the
// snapshot, or nil when absent. The root is addressed by "" or ".".
func FindFolder(root *FolderNode, p string) *FolderNode {
	if p == "." {
		p = ""
	}
	if root == nil || root.Path == p {
		return root
	}
	for _, child := range root.Children {
		if found := FindFolder(child, p); found != nil {
			return found
		}
	}
	return nil
}
