package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFolders() []Folder {
	return []Folder{
		{ID: "root", Name: "All", Order: 0},
		{ID: "work", Name: "Work", ParentID: "root", Order: 2},
		{ID: "personal", Name: "Personal", ParentID: "root", Order: 1},
		{ID: "dev", Name: "Dev", ParentID: "work", Order: 3},
		{ID: "design", Name: "Design", ParentID: "work", Order: 4},
	}
}

func TestFolderIndex_DescendantIDs(t *testing.T) {
	ix := NewFolderIndex(testFolders())

	got := ix.DescendantIDs("work")
	assert.Len(t, got, 3)
	assert.Contains(t, got, "work")
	assert.Contains(t, got, "dev")
	assert.Contains(t, got, "design")

	// A leaf resolves to itself only.
	assert.Len(t, ix.DescendantIDs("dev"), 1)

	// Unknown ids still resolve to themselves; scoping by a deleted
	// folder simply matches nothing.
	assert.Len(t, ix.DescendantIDs("ghost"), 1)
}

func TestFolderIndex_DescendantIDs_CycleSafe(t *testing.T) {
	// a → b → c → a, introduced by an unchecked reparent in old data.
	ix := NewFolderIndex([]Folder{
		{ID: "a", ParentID: "c"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "b"},
	})

	got := ix.DescendantIDs("a")
	assert.Len(t, got, 3)
}

func TestFolderIndex_WouldCycle(t *testing.T) {
	ix := NewFolderIndex(testFolders())

	tests := []struct {
		name      string
		folderID  string
		newParent string
		want      bool
	}{
		{"into own child", "work", "dev", true},
		{"into itself", "work", "work", true},
		{"into sibling", "dev", "design", false},
		{"up to root", "dev", "root", false},
		{"to top level", "work", "", false},
		{"under unknown parent", "work", "ghost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.WouldCycle(tt.folderID, tt.newParent))
		})
	}
}

func TestFolderIndex_WouldCycle_TerminatesOnCyclicData(t *testing.T) {
	ix := NewFolderIndex([]Folder{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
	})

	// Walking ancestors of "a" loops a→b→a; must terminate.
	assert.False(t, ix.WouldCycle("x", "a"))
}

func TestFolderIndex_Tree_SortsSiblingsByOrder(t *testing.T) {
	ix := NewFolderIndex(testFolders())

	tree := ix.Tree()
	require.Len(t, tree, 1)
	root := tree[0]
	assert.Equal(t, "root", root.ID)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "personal", root.Children[0].ID) // order 1
	assert.Equal(t, "work", root.Children[1].ID)     // order 2

	work := root.Children[1]
	require.Len(t, work.Children, 2)
	assert.Equal(t, "dev", work.Children[0].ID)
	assert.Equal(t, "design", work.Children[1].ID)
}

func TestFolderIndex_Tree_OrphansAreOmitted(t *testing.T) {
	// c's parent b does not exist; c is unreachable from the top.
	ix := NewFolderIndex([]Folder{
		{ID: "a"},
		{ID: "c", ParentID: "b"},
	})

	tree := ix.Tree()
	require.Len(t, tree, 1)
	assert.Equal(t, "a", tree[0].ID)
}
