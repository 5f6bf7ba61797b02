package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/config"
	"github.com/markstashapp/markstash-server/internal/domain"
	"github.com/markstashapp/markstash-server/internal/logger"
	"github.com/markstashapp/markstash-server/internal/store"
)

// testServer wraps the API server for handler testing.
type testServer struct {
	*Server
	api humatest.TestAPI
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "markstash.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	cat, err := catalog.New(context.Background(), st, catalog.Options{})
	require.NoError(t, err)

	log := logger.New(logger.Config{Writer: io.Discard, Format: "json"})
	cfg := &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"*"}},
	}

	s := NewServer(cfg, cat, nil, log)
	return &testServer{Server: s, api: humatest.Wrap(t, s.api)}
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "healthy", decode[HealthResponse](t, resp.Body.Bytes()).Status)
}

func TestListBookmarks_SeedScenario(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/bookmarks?folder_id=work")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[ListBookmarksResponse](t, resp.Body.Bytes())
	require.Equal(t, 3, body.Total)
	assert.Equal(t, "bm-seed-github", body.Bookmarks[0].ID)
	assert.Equal(t, "bm-seed-stackoverflow", body.Bookmarks[1].ID)
	assert.Equal(t, "bm-seed-figma", body.Bookmarks[2].ID)
}

func TestListBookmarks_TagSearchAndStarredView(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/bookmarks?search=tag:工具&view=starred")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decode[ListBookmarksResponse](t, resp.Body.Bytes())
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "bm-seed-github", body.Bookmarks[0].ID)
}

func TestAddBookmark(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/bookmarks", map[string]any{
		"url":  "example.com/path",
		"tags": []string{"测试"},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	b := decode[domain.Bookmark](t, resp.Body.Bytes())
	assert.Equal(t, "https://example.com/path", b.URL)
	assert.Equal(t, "Example", b.Title)
	assert.Equal(t, domain.RootFolderID, b.FolderID)
	assert.NotEmpty(t, b.ID)
}

func TestAddBookmark_InvalidURL(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/bookmarks", map[string]any{"url": "http://"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "VALIDATION", apiErr.Code)
}

func TestUpdateBookmark(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Patch("/api/v1/bookmarks/bm-seed-figma", map[string]any{
		"title": "Figma Design",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	list := decode[ListBookmarksResponse](t, ts.api.Get("/api/v1/bookmarks?search=figma").Body.Bytes())
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Figma Design", list.Bookmarks[0].Title)
}

func TestDeleteBookmarks_SingleAndBatchRoutes(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Delete("/api/v1/bookmarks/bm-seed-figma")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/bookmarks/delete", map[string]any{
		"ids": []string{"bm-seed-github", "bm-seed-stackoverflow"},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	list := decode[ListBookmarksResponse](t, ts.api.Get("/api/v1/bookmarks").Body.Bytes())
	assert.Zero(t, list.Total)
}

func TestMoveBookmarks(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/bookmarks/move", map[string]any{
		"id":        "bm-seed-github",
		"folder_id": "personal",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	list := decode[ListBookmarksResponse](t, ts.api.Get("/api/v1/bookmarks?folder_id=personal").Body.Bytes())
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "bm-seed-github", list.Bookmarks[0].ID)
}

func TestToggleStar(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/bookmarks/bm-seed-figma/star")
	require.Equal(t, http.StatusOK, resp.Code)

	list := decode[ListBookmarksResponse](t, ts.api.Get("/api/v1/bookmarks?view=starred").Body.Bytes())
	assert.Equal(t, 3, list.Total)
}

func TestFolderLifecycle(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/folders", map[string]any{
		"name":      "Reading",
		"parent_id": "personal",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	folder := decode[domain.Folder](t, resp.Body.Bytes())
	assert.True(t, folder.IsExpanded)

	resp = ts.api.Patch("/api/v1/folders/"+folder.ID, map[string]any{"name": "Reading List"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Post("/api/v1/folders/" + folder.ID + "/toggle")
	require.Equal(t, http.StatusOK, resp.Code)

	folders := decode[ListFoldersResponse](t, ts.api.Get("/api/v1/folders").Body.Bytes())
	var found *domain.Folder
	for i := range folders.Folders {
		if folders.Folders[i].ID == folder.ID {
			found = &folders.Folders[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Reading List", found.Name)
	assert.False(t, found.IsExpanded)

	resp = ts.api.Delete("/api/v1/folders/" + folder.ID)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestMoveFolder_CycleRejected(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/folders/work/move", map[string]any{"parent_id": "dev"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apiErr))
	assert.Equal(t, "VALIDATION", apiErr.Code)
}

func TestDeleteFolder_RootRejected(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Delete("/api/v1/folders/root")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFolderTree(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/folders/tree")
	require.Equal(t, http.StatusOK, resp.Code)

	tree := decode[FolderTreeResponse](t, resp.Body.Bytes()).Tree
	require.Len(t, tree, 1)
	assert.Equal(t, "root", tree[0].ID)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "work", tree[0].Children[0].ID)
	assert.Equal(t, "personal", tree[0].Children[1].ID)
}

func TestSelectionFlow(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/selection/batch-mode", map[string]any{"enabled": true})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, decode[SelectionResponse](t, resp.Body.Bytes()).BatchMode)

	resp = ts.api.Post("/api/v1/selection/bookmarks/bm-seed-github/toggle")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"bm-seed-github"},
		decode[SelectionResponse](t, resp.Body.Bytes()).BookmarkIDs)

	// Select-all captures the filtered view, not the full collection.
	resp = ts.api.Post("/api/v1/selection/select-all", map[string]any{
		"folder_id": "work",
		"view":      "starred",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	sel := decode[SelectionResponse](t, resp.Body.Bytes())
	assert.Equal(t, []string{"bm-seed-github", "bm-seed-stackoverflow"}, sel.BookmarkIDs)

	resp = ts.api.Post("/api/v1/selection/clear")
	require.Equal(t, http.StatusOK, resp.Code)
	sel = decode[SelectionResponse](t, resp.Body.Bytes())
	assert.Empty(t, sel.BookmarkIDs)
	assert.False(t, sel.BatchMode)
}

func TestDeleteBookmark_PrunesSelection(t *testing.T) {
	ts := setupTestServer(t)

	ts.api.Post("/api/v1/selection/bookmarks/bm-seed-figma/toggle")
	ts.api.Delete("/api/v1/bookmarks/bm-seed-figma")

	sel := decode[SelectionResponse](t, ts.api.Get("/api/v1/selection").Body.Bytes())
	assert.Empty(t, sel.BookmarkIDs)
}

func TestThemeSettings(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/settings/theme")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, domain.DefaultTheme, decode[ThemeResponse](t, resp.Body.Bytes()).Theme)

	resp = ts.api.Put("/api/v1/settings/theme", map[string]any{"theme": "dark"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/settings/theme")
	assert.Equal(t, domain.ThemeDark, decode[ThemeResponse](t, resp.Body.Bytes()).Theme)

	resp = ts.api.Put("/api/v1/settings/theme", map[string]any{"theme": "midnight"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
