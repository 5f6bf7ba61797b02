package catalog

import (
	"github.com/markstashapp/markstash-server/internal/domain"
)

// List derives the visible bookmark list for the query: folder scope,
// then search, then view mode, then the stable starred-first sort.
func (c *Catalog) List(q domain.Query) []domain.Bookmark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.FilterBookmarks(c.bookmarks, c.index, q)
}

// SelectAll replaces the bookmark selection with the ids of the
// currently filtered list, not the full collection.
func (c *Catalog) SelectAll(q domain.Query) []string {
	filtered := c.List(q)
	ids := make([]string, len(filtered))
	for i, b := range filtered {
		ids[i] = b.ID
	}
	c.selection.ReplaceBookmarks(ids)
	return ids
}
