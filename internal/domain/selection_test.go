package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleBookmark(t *testing.T) {
	s := NewSelection()

	s.ToggleBookmark("a")
	s.ToggleBookmark("b")
	assert.Equal(t, []string{"a", "b"}, s.BookmarkIDs())

	s.ToggleBookmark("a")
	assert.Equal(t, []string{"b"}, s.BookmarkIDs())
}

func TestSelection_FoldersIndependentOfBookmarks(t *testing.T) {
	s := NewSelection()

	s.ToggleBookmark("x")
	s.ToggleFolder("x")
	assert.Equal(t, []string{"x"}, s.BookmarkIDs())
	assert.Equal(t, []string{"x"}, s.FolderIDs())

	s.ToggleFolder("x")
	assert.Empty(t, s.FolderIDs())
	assert.Equal(t, []string{"x"}, s.BookmarkIDs())
}

func TestSelection_ReplaceBookmarks(t *testing.T) {
	s := NewSelection()
	s.ToggleBookmark("old")

	s.ReplaceBookmarks([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, s.BookmarkIDs())
}

func TestSelection_RemoveBookmarks(t *testing.T) {
	s := NewSelection()
	s.ReplaceBookmarks([]string{"a", "b", "c"})

	s.RemoveBookmarks([]string{"b", "ghost"})
	assert.Equal(t, []string{"a", "c"}, s.BookmarkIDs())
}

func TestSelection_ClearExitsBatchMode(t *testing.T) {
	s := NewSelection()
	s.SetBatchMode(true)
	s.ToggleBookmark("a")
	s.ToggleFolder("f")

	s.Clear()
	assert.Empty(t, s.BookmarkIDs())
	assert.Empty(t, s.FolderIDs())
	assert.False(t, s.BatchMode())
}

func TestSelection_DisablingBatchModeClears(t *testing.T) {
	s := NewSelection()
	s.SetBatchMode(true)
	s.ToggleBookmark("a")

	s.SetBatchMode(false)
	assert.Empty(t, s.BookmarkIDs())
}

func TestSelection_ReturnsCopies(t *testing.T) {
	s := NewSelection()
	s.ToggleBookmark("a")

	got := s.BookmarkIDs()
	got[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.BookmarkIDs())
}
