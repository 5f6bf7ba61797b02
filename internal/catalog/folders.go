package catalog

import (
	"context"
	"slices"

	"github.com/markstashapp/markstash-server/internal/domain"
	domainerrors "github.com/markstashapp/markstash-server/internal/errors"
	"github.com/markstashapp/markstash-server/internal/id"
)

// CreateFolderInput carries the fields for a new folder.
type CreateFolderInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	ParentID string `json:"parent_id,omitempty"`
}

// CreateFolder adds a folder and returns it. New folders start
// expanded, ordered after existing siblings by creation time.
func (c *Catalog) CreateFolder(ctx context.Context, input CreateFolderInput) (domain.Folder, error) {
	if err := c.validate.Validate(input); err != nil {
		return domain.Folder{}, err
	}

	folderID, err := id.Generate("fld")
	if err != nil {
		return domain.Folder{}, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate folder id")
	}

	now := domain.NowMillis()
	folder := domain.Folder{
		ID:         folderID,
		Name:       input.Name,
		ParentID:   input.ParentID,
		IsExpanded: true,
		CreatedAt:  now,
		Order:      now,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	folders := append(slices.Clone(c.folders), folder)
	if err := c.commit(ctx, folders, c.bookmarks); err != nil {
		return domain.Folder{}, err
	}

	c.emitFolderCreated(folder)
	return folder, nil
}

// RenameFolder replaces the folder's name. Unknown ids are a silent
// no-op.
func (c *Catalog) RenameFolder(ctx context.Context, folderID, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.folders, func(f domain.Folder) bool { return f.ID == folderID })
	if i < 0 {
		return nil
	}

	folders := slices.Clone(c.folders)
	folders[i].Name = name
	if err := c.commit(ctx, folders, c.bookmarks); err != nil {
		return err
	}

	c.emitFolderUpdated(folders[i])
	return nil
}

// DeleteFolder removes the folder, its direct child folders, and its
// direct bookmarks. The cascade is deliberately shallow: grandchild
// folders are orphaned in place with a dangling parent id, and their
// bookmarks are retained.
func (c *Catalog) DeleteFolder(ctx context.Context, folderID string) error {
	if folderID == domain.RootFolderID {
		return domainerrors.Validation("the root folder cannot be deleted")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !slices.ContainsFunc(c.folders, func(f domain.Folder) bool { return f.ID == folderID }) {
		return nil
	}

	var removedFolders []string
	folders := slices.DeleteFunc(slices.Clone(c.folders), func(f domain.Folder) bool {
		if f.ID == folderID || f.ParentID == folderID {
			removedFolders = append(removedFolders, f.ID)
			return true
		}
		return false
	})

	var removedBookmarks []string
	bookmarks := slices.DeleteFunc(slices.Clone(c.bookmarks), func(b domain.Bookmark) bool {
		if b.FolderID == folderID {
			removedBookmarks = append(removedBookmarks, b.ID)
			return true
		}
		return false
	})

	if err := c.commit(ctx, folders, bookmarks); err != nil {
		return err
	}

	c.selection.RemoveFolders(removedFolders)
	c.selection.RemoveBookmarks(removedBookmarks)
	c.emitFolderDeleted(removedFolders, removedBookmarks)
	return nil
}

// MoveFolder reparents a folder. Moving a folder under itself or any
// of its descendants is rejected; unknown ids are a silent no-op.
func (c *Catalog) MoveFolder(ctx context.Context, folderID, newParentID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.folders, func(f domain.Folder) bool { return f.ID == folderID })
	if i < 0 {
		return nil
	}

	if c.index.WouldCycle(folderID, newParentID) {
		return domainerrors.Validation("cannot move a folder into itself or its descendants")
	}

	folders := slices.Clone(c.folders)
	folders[i].ParentID = newParentID
	if err := c.commit(ctx, folders, c.bookmarks); err != nil {
		return err
	}

	c.emitFolderUpdated(folders[i])
	return nil
}

// ToggleExpanded flips the folder's expanded flag. Unknown ids are a
// silent no-op.
func (c *Catalog) ToggleExpanded(ctx context.Context, folderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.folders, func(f domain.Folder) bool { return f.ID == folderID })
	if i < 0 {
		return nil
	}

	folders := slices.Clone(c.folders)
	folders[i].IsExpanded = !folders[i].IsExpanded
	if err := c.commit(ctx, folders, c.bookmarks); err != nil {
		return err
	}

	c.emitFolderUpdated(folders[i])
	return nil
}

// Tree returns the folder hierarchy with siblings ordered by their
// sort key.
func (c *Catalog) Tree() []*domain.TreeNode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.Tree()
}

// DescendantIDs returns folderID plus all transitive child folder ids,
// sorted for stable output.
func (c *Catalog) DescendantIDs(folderID string) []string {
	c.mu.RLock()
	set := c.index.DescendantIDs(folderID)
	c.mu.RUnlock()

	ids := make([]string, 0, len(set))
	for fid := range set {
		ids = append(ids, fid)
	}
	slices.Sort(ids)
	return ids
}
