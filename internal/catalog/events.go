package catalog

import (
	"github.com/markstashapp/markstash-server/internal/domain"
	"github.com/markstashapp/markstash-server/internal/sse"
)

func (c *Catalog) emitFolderCreated(folder domain.Folder) {
	c.emitter.Emit(sse.NewEvent(sse.EventFolderCreated, sse.FolderEventData{Folder: folder}))
}

func (c *Catalog) emitFolderUpdated(folder domain.Folder) {
	c.emitter.Emit(sse.NewEvent(sse.EventFolderUpdated, sse.FolderEventData{Folder: folder}))
}

func (c *Catalog) emitFolderDeleted(folderIDs, bookmarkIDs []string) {
	c.emitter.Emit(sse.NewEvent(sse.EventFolderDeleted, sse.FolderDeletedEventData{
		FolderIDs:   folderIDs,
		BookmarkIDs: bookmarkIDs,
	}))
}

func (c *Catalog) emitBookmarkCreated(bookmark domain.Bookmark) {
	c.emitter.Emit(sse.NewEvent(sse.EventBookmarkCreated, sse.BookmarkEventData{Bookmark: bookmark}))
}

func (c *Catalog) emitBookmarkUpdated(bookmark domain.Bookmark) {
	c.emitter.Emit(sse.NewEvent(sse.EventBookmarkUpdated, sse.BookmarkEventData{Bookmark: bookmark}))
}

func (c *Catalog) emitBookmarksDeleted(bookmarkIDs []string) {
	c.emitter.Emit(sse.NewEvent(sse.EventBookmarkDeleted, sse.BookmarksDeletedEventData{BookmarkIDs: bookmarkIDs}))
}

func (c *Catalog) emitThemeChanged(theme domain.Theme) {
	c.emitter.Emit(sse.NewEvent(sse.EventThemeChanged, sse.ThemeEventData{Theme: theme}))
}
