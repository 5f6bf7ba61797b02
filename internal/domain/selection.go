package domain

import (
	"slices"
	"sync"
)

// Selection tracks batch-selected bookmark and folder ids. The two
// sets are independent of each other and of the data collections.
// Safe for concurrent use.
type Selection struct {
	mu          sync.Mutex
	bookmarkIDs []string
	folderIDs   []string
	batchMode   bool
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{}
}

// ToggleBookmark flips membership of a bookmark id.
func (s *Selection) ToggleBookmark(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarkIDs = toggle(s.bookmarkIDs, id)
}

// ToggleFolder flips membership of a folder id.
func (s *Selection) ToggleFolder(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folderIDs = toggle(s.folderIDs, id)
}

// ReplaceBookmarks replaces the bookmark selection wholesale.
// Used by select-all with the currently filtered ids.
func (s *Selection) ReplaceBookmarks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarkIDs = slices.Clone(ids)
}

// RemoveBookmarks drops the given ids from the bookmark selection.
// Called when bookmarks are deleted so the selection never holds
// dangling ids.
func (s *Selection) RemoveBookmarks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarkIDs = slices.DeleteFunc(s.bookmarkIDs, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// RemoveFolders drops the given ids from the folder selection.
func (s *Selection) RemoveFolders(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folderIDs = slices.DeleteFunc(s.folderIDs, func(id string) bool {
		return slices.Contains(ids, id)
	})
}

// Clear empties both sets and exits batch mode.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarkIDs = nil
	s.folderIDs = nil
	s.batchMode = false
}

// SetBatchMode enables or disables batch mode. Disabling clears the
// selection as a coupled side effect.
func (s *Selection) SetBatchMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchMode = on
	if !on {
		s.bookmarkIDs = nil
		s.folderIDs = nil
	}
}

// BatchMode reports whether batch mode is active.
func (s *Selection) BatchMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batchMode
}

// BookmarkIDs returns a copy of the selected bookmark ids in
// selection order.
func (s *Selection) BookmarkIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookmarkIDs)
}

// FolderIDs returns a copy of the selected folder ids.
func (s *Selection) FolderIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.folderIDs)
}

func toggle(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, id)
}
