package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() ([]Bookmark, *FolderIndex) {
	ix := NewFolderIndex([]Folder{
		{ID: "root", Order: 0},
		{ID: "work", ParentID: "root", Order: 1},
		{ID: "personal", ParentID: "root", Order: 2},
		{ID: "dev", ParentID: "work", Order: 3},
		{ID: "design", ParentID: "work", Order: 4},
	})
	bookmarks := []Bookmark{
		{ID: "github", Title: "GitHub", URL: "https://github.com", FolderID: "dev", Tags: []string{"工具", "开发"}, Starred: true, UpdatedAt: 3000},
		{ID: "figma", Title: "Figma", URL: "https://figma.com", FolderID: "design", Tags: []string{"工具", "设计"}, UpdatedAt: 1000},
		{ID: "so", Title: "Stack Overflow", URL: "https://stackoverflow.com", FolderID: "dev", Tags: []string{"学习", "参考"}, Starred: true, UpdatedAt: 2000},
		{ID: "news", Title: "Hacker News", URL: "https://news.ycombinator.com", FolderID: "personal", Tags: []string{"资讯"}, UpdatedAt: 4000},
	}
	return bookmarks, ix
}

func ids(bookmarks []Bookmark) []string {
	out := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = b.ID
	}
	return out
}

func TestFilterBookmarks_NoScope(t *testing.T) {
	bookmarks, ix := queryFixture()

	all := FilterBookmarks(bookmarks, ix, Query{})
	assert.Equal(t, []string{"github", "so", "news", "figma"}, ids(all))

	// Selecting root is the same as selecting nothing.
	root := FilterBookmarks(bookmarks, ix, Query{FolderID: RootFolderID})
	assert.Equal(t, ids(all), ids(root))
}

func TestFilterBookmarks_ScopeIncludesDescendants(t *testing.T) {
	bookmarks, ix := queryFixture()

	got := FilterBookmarks(bookmarks, ix, Query{FolderID: "work"})
	// dev and design are descendants of work: all three, starred
	// first, each group by UpdatedAt descending.
	assert.Equal(t, []string{"github", "so", "figma"}, ids(got))
}

func TestFilterBookmarks_ScopeLeaf(t *testing.T) {
	bookmarks, ix := queryFixture()

	got := FilterBookmarks(bookmarks, ix, Query{FolderID: "design"})
	assert.Equal(t, []string{"figma"}, ids(got))
}

func TestFilterBookmarks_TextSearch(t *testing.T) {
	bookmarks, ix := queryFixture()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title match case-insensitive", "github", []string{"github"}},
		{"url match", "ycombinator", []string{"news"}},
		{"tag match through plain search", "设计", []string{"figma"}},
		{"substring across title", "over", []string{"so"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookmarks(bookmarks, ix, Query{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterBookmarks_TagSearch(t *testing.T) {
	bookmarks, ix := queryFixture()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"exact tag", "tag:工具", []string{"github", "figma"}},
		{"tag substring", "tag:工", []string{"github", "figma"}},
		{"prefix is case-insensitive", "TAG:工具", []string{"github", "figma"}},
		{"remainder is trimmed", "tag: 工具", []string{"github", "figma"}},
		{"tag search ignores titles", "tag:github", []string{}},
		{"unknown tag", "tag:xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBookmarks(bookmarks, ix, Query{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterBookmarks_StarredView(t *testing.T) {
	bookmarks, ix := queryFixture()

	got := FilterBookmarks(bookmarks, ix, Query{Mode: ViewStarred})
	assert.Equal(t, []string{"github", "so"}, ids(got))
}

func TestFilterBookmarks_Composition(t *testing.T) {
	bookmarks, ix := queryFixture()

	got := FilterBookmarks(bookmarks, ix, Query{
		FolderID: "work",
		Search:   "tag:工具",
		Mode:     ViewStarred,
	})
	assert.Equal(t, []string{"github"}, ids(got))
}

func TestFilterBookmarks_SortStability(t *testing.T) {
	ix := NewFolderIndex([]Folder{{ID: "root"}})
	bookmarks := []Bookmark{
		{ID: "first", FolderID: "root", UpdatedAt: 100},
		{ID: "second", FolderID: "root", UpdatedAt: 100},
		{ID: "third", FolderID: "root", UpdatedAt: 100},
	}

	got := FilterBookmarks(bookmarks, ix, Query{})
	// Identical sort keys keep original collection order.
	assert.Equal(t, []string{"first", "second", "third"}, ids(got))
}

func TestFilterBookmarks_DoesNotMutateInput(t *testing.T) {
	bookmarks, ix := queryFixture()
	before := ids(bookmarks)

	_ = FilterBookmarks(bookmarks, ix, Query{})
	assert.Equal(t, before, ids(bookmarks))
}

func TestFilterBookmarks_Deterministic(t *testing.T) {
	bookmarks, ix := queryFixture()
	q := Query{FolderID: "work", Search: "工具"}

	first := FilterBookmarks(bookmarks, ix, q)
	second := FilterBookmarks(bookmarks, ix, q)
	require.Equal(t, ids(first), ids(second))
}
