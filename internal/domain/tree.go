package domain

import (
	"slices"
)

// FolderIndex is a parent→children adjacency index over the flat
// folder collection. It is rebuilt after every folder mutation so
// descendant resolution does not rescan the whole collection per call.
//
// Nothing structurally prevents cyclic parent pointers in persisted
// data, so every traversal guards with a visited set.
type FolderIndex struct {
	byID     map[string]Folder
	children map[string][]string
}

// NewFolderIndex builds an index from the folder collection.
// Child id lists preserve collection order; sorting by the Order
// field happens at tree-build time.
func NewFolderIndex(folders []Folder) *FolderIndex {
	ix := &FolderIndex{
		byID:     make(map[string]Folder, len(folders)),
		children: make(map[string][]string),
	}
	for _, f := range folders {
		ix.byID[f.ID] = f
		ix.children[f.ParentID] = append(ix.children[f.ParentID], f.ID)
	}
	return ix
}

// Get returns the folder with the given id.
func (ix *FolderIndex) Get(id string) (Folder, bool) {
	f, ok := ix.byID[id]
	return f, ok
}

// DescendantIDs returns folderID plus all transitive children.
// Terminates on cyclic data: an id is never visited twice.
func (ix *FolderIndex) DescendantIDs(folderID string) map[string]struct{} {
	visited := make(map[string]struct{})
	stack := []string{folderID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		stack = append(stack, ix.children[id]...)
	}
	return visited
}

// WouldCycle reports whether reparenting folderID under newParentID
// would make the folder its own ancestor. The walk follows parent
// pointers from the proposed parent up to the top and also stops on
// any pre-existing cycle along the way.
func (ix *FolderIndex) WouldCycle(folderID, newParentID string) bool {
	if folderID == newParentID {
		return true
	}
	visited := make(map[string]struct{})
	for id := newParentID; id != ""; {
		if id == folderID {
			return true
		}
		if _, seen := visited[id]; seen {
			return false
		}
		visited[id] = struct{}{}
		parent, ok := ix.byID[id]
		if !ok {
			return false
		}
		id = parent.ParentID
	}
	return false
}

// TreeNode is a folder with its resolved children, ordered by the
// sibling sort key.
type TreeNode struct {
	Folder
	Children []*TreeNode `json:"children"`
}

// Tree materializes the folder hierarchy starting at the top-level
// folders. Siblings are sorted by Order ascending.
func (ix *FolderIndex) Tree() []*TreeNode {
	visited := make(map[string]struct{})
	return ix.buildSubtree("", visited)
}

func (ix *FolderIndex) buildSubtree(parentID string, visited map[string]struct{}) []*TreeNode {
	ids := ix.children[parentID]
	nodes := make([]*TreeNode, 0, len(ids))
	for _, id := range ids {
		if _, seen := visited[id]; seen {
			continue
		}
		visited[id] = struct{}{}
		f := ix.byID[id]
		nodes = append(nodes, &TreeNode{
			Folder:   f,
			Children: ix.buildSubtree(id, visited),
		})
	}
	slices.SortStableFunc(nodes, func(a, b *TreeNode) int {
		switch {
		case a.Order < b.Order:
			return -1
		case a.Order > b.Order:
			return 1
		default:
			return 0
		}
	})
	return nodes
}
