package catalog

import (
	"context"
	"slices"
	"time"

	"github.com/markstashapp/markstash-server/internal/domain"
	domainerrors "github.com/markstashapp/markstash-server/internal/errors"
	"github.com/markstashapp/markstash-server/internal/id"
	"github.com/markstashapp/markstash-server/internal/normalize"
)

// enrichTimeout bounds one background title fetch end to end.
const enrichTimeout = 15 * time.Second

// AddBookmarkInput carries the fields for a new bookmark.
type AddBookmarkInput struct {
	URL      string   `json:"url" validate:"required"`
	Title    string   `json:"title" validate:"omitempty,max=500"`
	Icon     string   `json:"icon,omitempty"`
	FolderID string   `json:"folder_id,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Starred  bool     `json:"starred,omitempty"`
}

// AddBookmark creates a bookmark. The URL is normalized (https://
// prepended when no scheme is given) and rejected if unparsable.
// A blank title falls back to the title-cased host label, a blank icon
// to the favicon service URL. When enabled, the real page title is
// fetched in the background and applied last-write-wins.
func (c *Catalog) AddBookmark(ctx context.Context, input AddBookmarkInput) (domain.Bookmark, error) {
	if err := c.validate.Validate(input); err != nil {
		return domain.Bookmark{}, err
	}

	rawURL, err := normalize.URL(input.URL)
	if err != nil {
		return domain.Bookmark{}, err
	}

	bookmarkID, err := id.Generate("bm")
	if err != nil {
		return domain.Bookmark{}, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate bookmark id")
	}

	title := input.Title
	fetchTitle := false
	if title == "" {
		title = normalize.TitleFromURL(rawURL)
		fetchTitle = c.enricher.TitlesEnabled()
	}

	icon := input.Icon
	if icon == "" {
		icon = c.enricher.IconURL(rawURL)
	}

	folderID := input.FolderID
	if folderID == "" {
		folderID = domain.RootFolderID
	}

	now := domain.NowMillis()
	bookmark := domain.Bookmark{
		ID:        bookmarkID,
		Title:     title,
		URL:       rawURL,
		Icon:      icon,
		FolderID:  folderID,
		Tags:      slices.Clone(input.Tags),
		Starred:   input.Starred,
		CreatedAt: now,
		UpdatedAt: now,
	}

	c.mu.Lock()
	bookmarks := append(slices.Clone(c.bookmarks), bookmark)
	err = c.commit(ctx, c.folders, bookmarks)
	c.mu.Unlock()
	if err != nil {
		return domain.Bookmark{}, err
	}

	c.emitBookmarkCreated(bookmark)

	if fetchTitle {
		go c.enrichTitle(bookmark.ID, rawURL)
	}

	return bookmark, nil
}

// UpdateBookmark merges the patch into the record, always refreshing
// its updated timestamp. Unknown ids are a silent no-op.
func (c *Catalog) UpdateBookmark(ctx context.Context, bookmarkID string, patch domain.BookmarkPatch) error {
	if err := c.validate.Validate(patch); err != nil {
		return err
	}

	if patch.URL != nil {
		normalized, err := normalize.URL(*patch.URL)
		if err != nil {
			return err
		}
		patch.URL = &normalized
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.bookmarks, func(b domain.Bookmark) bool { return b.ID == bookmarkID })
	if i < 0 {
		return nil
	}

	bookmarks := slices.Clone(c.bookmarks)
	patch.Apply(&bookmarks[i])
	if err := c.commit(ctx, c.folders, bookmarks); err != nil {
		return err
	}

	c.emitBookmarkUpdated(bookmarks[i])
	return nil
}

// DeleteBookmarks removes every listed bookmark in one persisted write
// and prunes them from the selection. Unknown ids are skipped.
func (c *Catalog) DeleteBookmarks(ctx context.Context, bookmarkIDs []string) error {
	if len(bookmarkIDs) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []string
	bookmarks := slices.DeleteFunc(slices.Clone(c.bookmarks), func(b domain.Bookmark) bool {
		if slices.Contains(bookmarkIDs, b.ID) {
			removed = append(removed, b.ID)
			return true
		}
		return false
	})
	if len(removed) == 0 {
		return nil
	}

	if err := c.commit(ctx, c.folders, bookmarks); err != nil {
		return err
	}

	c.selection.RemoveBookmarks(removed)
	c.emitBookmarksDeleted(removed)
	return nil
}

// MoveBookmarks reassigns every listed bookmark to targetFolderID and
// refreshes their updated timestamps in one persisted write. The
// target folder's existence is not checked.
func (c *Catalog) MoveBookmarks(ctx context.Context, bookmarkIDs []string, targetFolderID string) error {
	if len(bookmarkIDs) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bookmarks := slices.Clone(c.bookmarks)
	var moved []domain.Bookmark
	for i := range bookmarks {
		if !slices.Contains(bookmarkIDs, bookmarks[i].ID) {
			continue
		}
		bookmarks[i].FolderID = targetFolderID
		bookmarks[i].Touch()
		moved = append(moved, bookmarks[i])
	}
	if len(moved) == 0 {
		return nil
	}

	if err := c.commit(ctx, c.folders, bookmarks); err != nil {
		return err
	}

	for _, b := range moved {
		c.emitBookmarkUpdated(b)
	}
	return nil
}

// ToggleStar flips the bookmark's starred flag. Unknown ids are a
// silent no-op.
func (c *Catalog) ToggleStar(ctx context.Context, bookmarkID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.bookmarks, func(b domain.Bookmark) bool { return b.ID == bookmarkID })
	if i < 0 {
		return nil
	}

	bookmarks := slices.Clone(c.bookmarks)
	starred := !bookmarks[i].Starred
	domain.BookmarkPatch{Starred: &starred}.Apply(&bookmarks[i])
	if err := c.commit(ctx, c.folders, bookmarks); err != nil {
		return err
	}

	c.emitBookmarkUpdated(bookmarks[i])
	return nil
}

// CopyURL resolves the bookmark and hands its URL to the clipboard.
// Copy failures are surfaced, never retried.
func (c *Catalog) CopyURL(ctx context.Context, bookmarkID string) error {
	c.mu.RLock()
	i := slices.IndexFunc(c.bookmarks, func(b domain.Bookmark) bool { return b.ID == bookmarkID })
	var rawURL string
	if i >= 0 {
		rawURL = c.bookmarks[i].URL
	}
	c.mu.RUnlock()

	if i < 0 {
		return domainerrors.NotFoundf("bookmark %s not found", bookmarkID)
	}

	if err := c.clipboard.Write(ctx, rawURL); err != nil {
		if c.log != nil {
			c.log.Warn("clipboard copy failed", "bookmark_id", bookmarkID, "error", err)
		}
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "copy to clipboard")
	}
	return nil
}

// enrichTitle fetches the page title in the background and applies it
// through the normal update path, which is a no-op if the bookmark was
// deleted in the meantime. All failures are swallowed.
func (c *Catalog) enrichTitle(bookmarkID, rawURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
	defer cancel()

	title, err := c.enricher.PageTitle(ctx, rawURL)
	if err != nil || title == "" {
		if err != nil && c.log != nil {
			c.log.Debug("title enrichment failed", "bookmark_id", bookmarkID, "error", err)
		}
		return
	}

	if err := c.UpdateBookmark(ctx, bookmarkID, domain.BookmarkPatch{Title: &title}); err != nil && c.log != nil {
		c.log.Debug("title enrichment not applied", "bookmark_id", bookmarkID, "error", err)
	}
}
