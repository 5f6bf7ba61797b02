package domain

import (
	"slices"
	"strings"
)

// ViewMode selects between the full list and the starred-only view.
type ViewMode string

// View modes.
const (
	ViewAll     ViewMode = "all"
	ViewStarred ViewMode = "starred"
)

// tagSearchPrefix switches the search box into tag matching.
const tagSearchPrefix = "tag:"

// Query is the full input of the derived bookmark view.
type Query struct {
	// FolderID scopes the result to a folder and its descendants.
	// Empty or RootFolderID means no scoping.
	FolderID string
	// Search is matched case-insensitively as a substring of title,
	// URL, or any tag. A "tag:" prefix restricts matching to tags.
	Search string
	// Mode defaults to ViewAll when empty.
	Mode ViewMode
}

// FilterBookmarks derives the visible bookmark list. Pure function of
// its inputs: filters apply scope → search → view mode, then a stable
// sort puts starred bookmarks first and orders each group by
// UpdatedAt descending. Ties keep their original collection order.
func FilterBookmarks(bookmarks []Bookmark, ix *FolderIndex, q Query) []Bookmark {
	result := slices.Clone(bookmarks)

	if q.FolderID != "" && q.FolderID != RootFolderID {
		scope := ix.DescendantIDs(q.FolderID)
		result = slices.DeleteFunc(result, func(b Bookmark) bool {
			_, in := scope[b.FolderID]
			return !in
		})
	}

	if q.Search != "" {
		query := strings.ToLower(q.Search)
		if tag, isTagSearch := strings.CutPrefix(query, tagSearchPrefix); isTagSearch {
			tag = strings.TrimSpace(tag)
			result = slices.DeleteFunc(result, func(b Bookmark) bool {
				return !matchesTag(b, tag)
			})
		} else {
			result = slices.DeleteFunc(result, func(b Bookmark) bool {
				return !matchesText(b, query)
			})
		}
	}

	if q.Mode == ViewStarred {
		result = slices.DeleteFunc(result, func(b Bookmark) bool {
			return !b.Starred
		})
	}

	slices.SortStableFunc(result, compareBookmarks)
	return result
}

// matchesTag reports whether any tag contains the query as a
// case-insensitive substring. An empty query matches everything.
func matchesTag(b Bookmark, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range b.Tags {
		if strings.Contains(strings.ToLower(t), tag) {
			return true
		}
	}
	return false
}

// matchesText matches against title, URL, or any tag.
func matchesText(b Bookmark, query string) bool {
	if strings.Contains(strings.ToLower(b.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.URL), query) {
		return true
	}
	return matchesTag(b, query)
}

// compareBookmarks orders starred before unstarred, then by UpdatedAt
// descending. Equal keys compare as 0 so the stable sort preserves
// collection order.
func compareBookmarks(a, b Bookmark) int {
	if a.Starred != b.Starred {
		if a.Starred {
			return -1
		}
		return 1
	}
	switch {
	case a.UpdatedAt > b.UpdatedAt:
		return -1
	case a.UpdatedAt < b.UpdatedAt:
		return 1
	default:
		return 0
	}
}
