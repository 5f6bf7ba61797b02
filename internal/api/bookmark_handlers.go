package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/domain"
)

func (s *Server) registerBookmarkRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBookmarks",
		Method:      http.MethodGet,
		Path:        "/api/v1/bookmarks",
		Summary:     "List bookmarks",
		Description: "Returns the derived view: folder scope, search, view mode, starred-first sort",
		Tags:        []string{"Bookmarks"},
	}, s.handleListBookmarks)

	huma.Register(s.api, huma.Operation{
		OperationID: "addBookmark",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks",
		Summary:     "Add bookmark",
		Tags:        []string{"Bookmarks"},
	}, s.handleAddBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBookmark",
		Method:      http.MethodPatch,
		Path:        "/api/v1/bookmarks/{id}",
		Summary:     "Update bookmark",
		Description: "Merges the given fields into the record; omitted fields are untouched",
		Tags:        []string{"Bookmarks"},
	}, s.handleUpdateBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBookmark",
		Method:      http.MethodDelete,
		Path:        "/api/v1/bookmarks/{id}",
		Summary:     "Delete bookmark",
		Tags:        []string{"Bookmarks"},
	}, s.handleDeleteBookmark)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBookmarks",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/delete",
		Summary:     "Delete bookmarks",
		Description: "Removes all listed bookmarks in one write",
		Tags:        []string{"Bookmarks"},
	}, s.handleDeleteBookmarks)

	huma.Register(s.api, huma.Operation{
		OperationID: "moveBookmarks",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/move",
		Summary:     "Move bookmarks",
		Description: "Reassigns all listed bookmarks to the target folder in one write",
		Tags:        []string{"Bookmarks"},
	}, s.handleMoveBookmarks)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleBookmarkStar",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/{id}/star",
		Summary:     "Toggle star",
		Tags:        []string{"Bookmarks"},
	}, s.handleToggleStar)

	huma.Register(s.api, huma.Operation{
		OperationID: "copyBookmarkURL",
		Method:      http.MethodPost,
		Path:        "/api/v1/bookmarks/{id}/copy",
		Summary:     "Copy bookmark URL",
		Description: "Copies the bookmark's URL to the system clipboard",
		Tags:        []string{"Bookmarks"},
	}, s.handleCopyURL)
}

// === DTOs ===

// ListBookmarksInput carries the query parameters of the derived view.
type ListBookmarksInput struct {
	FolderID string `query:"folder_id" doc:"Scope to this folder and its descendants"`
	Search   string `query:"search" doc:"Substring search; prefix with tag: for tag search"`
	View     string `query:"view" enum:"all,starred" doc:"View mode" default:"all"`
}

// ListBookmarksResponse contains the derived bookmark list.
type ListBookmarksResponse struct {
	Bookmarks []domain.Bookmark `json:"bookmarks" doc:"Filtered and sorted bookmarks"`
	Total     int               `json:"total" doc:"Number of bookmarks in the view"`
}

// ListBookmarksOutput wraps the list response for Huma.
type ListBookmarksOutput struct {
	Body ListBookmarksResponse
}

// AddBookmarkRequest is the request body for creating a bookmark.
type AddBookmarkRequest struct {
	URL      string   `json:"url" doc:"Bookmark URL; https:// is prepended when no scheme is given"`
	Title    string   `json:"title,omitempty" doc:"Title; derived from the host when empty"`
	Icon     string   `json:"icon,omitempty" doc:"Icon URI; derived from the favicon service when empty"`
	FolderID string   `json:"folder_id,omitempty" doc:"Target folder; root when empty"`
	Tags     []string `json:"tags,omitempty" doc:"Free-form tags"`
	Starred  bool     `json:"starred,omitempty" doc:"Create starred"`
}

// AddBookmarkInput wraps the add bookmark request for Huma.
type AddBookmarkInput struct {
	Body AddBookmarkRequest
}

// BookmarkOutput wraps a single bookmark for Huma.
type BookmarkOutput struct {
	Body domain.Bookmark
}

// UpdateBookmarkInput wraps a bookmark patch for Huma.
type UpdateBookmarkInput struct {
	ID   string `path:"id" doc:"Bookmark id"`
	Body domain.BookmarkPatch
}

// BookmarkIDInput carries a bookmark id path parameter.
type BookmarkIDInput struct {
	ID string `path:"id" doc:"Bookmark id"`
}

// DeleteBookmarksRequest lists bookmarks to remove. A single id and a
// one-element list are equivalent.
type DeleteBookmarksRequest struct {
	ID  string   `json:"id,omitempty" doc:"Single bookmark id"`
	IDs []string `json:"ids,omitempty" doc:"Bookmark ids"`
}

// DeleteBookmarksInput wraps the batch delete request for Huma.
type DeleteBookmarksInput struct {
	Body DeleteBookmarksRequest
}

// MoveBookmarksRequest reassigns bookmarks to a folder. A single id
// and a one-element list are equivalent.
type MoveBookmarksRequest struct {
	ID       string   `json:"id,omitempty" doc:"Single bookmark id"`
	IDs      []string `json:"ids,omitempty" doc:"Bookmark ids"`
	FolderID string   `json:"folder_id" doc:"Target folder id"`
}

// MoveBookmarksInput wraps the move request for Huma.
type MoveBookmarksInput struct {
	Body MoveBookmarksRequest
}

// mergeIDs combines the single-id and list forms of a batch request.
func mergeIDs(id string, ids []string) []string {
	if id == "" {
		return ids
	}
	return append([]string{id}, ids...)
}

// === Handlers ===

func (s *Server) handleListBookmarks(_ context.Context, input *ListBookmarksInput) (*ListBookmarksOutput, error) {
	bookmarks := s.catalog.List(domain.Query{
		FolderID: input.FolderID,
		Search:   input.Search,
		Mode:     domain.ViewMode(input.View),
	})
	return &ListBookmarksOutput{Body: ListBookmarksResponse{
		Bookmarks: bookmarks,
		Total:     len(bookmarks),
	}}, nil
}

func (s *Server) handleAddBookmark(ctx context.Context, input *AddBookmarkInput) (*BookmarkOutput, error) {
	bookmark, err := s.catalog.AddBookmark(ctx, catalog.AddBookmarkInput{
		URL:      input.Body.URL,
		Title:    input.Body.Title,
		Icon:     input.Body.Icon,
		FolderID: input.Body.FolderID,
		Tags:     input.Body.Tags,
		Starred:  input.Body.Starred,
	})
	if err != nil {
		return nil, err
	}
	return &BookmarkOutput{Body: bookmark}, nil
}

func (s *Server) handleUpdateBookmark(ctx context.Context, input *UpdateBookmarkInput) (*MessageOutput, error) {
	if err := s.catalog.UpdateBookmark(ctx, input.ID, input.Body); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Bookmark updated"}}, nil
}

func (s *Server) handleDeleteBookmark(ctx context.Context, input *BookmarkIDInput) (*MessageOutput, error) {
	if err := s.catalog.DeleteBookmarks(ctx, []string{input.ID}); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Bookmark deleted"}}, nil
}

func (s *Server) handleDeleteBookmarks(ctx context.Context, input *DeleteBookmarksInput) (*MessageOutput, error) {
	if err := s.catalog.DeleteBookmarks(ctx, mergeIDs(input.Body.ID, input.Body.IDs)); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Bookmarks deleted"}}, nil
}

func (s *Server) handleMoveBookmarks(ctx context.Context, input *MoveBookmarksInput) (*MessageOutput, error) {
	ids := mergeIDs(input.Body.ID, input.Body.IDs)
	if err := s.catalog.MoveBookmarks(ctx, ids, input.Body.FolderID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Bookmarks moved"}}, nil
}

func (s *Server) handleToggleStar(ctx context.Context, input *BookmarkIDInput) (*MessageOutput, error) {
	if err := s.catalog.ToggleStar(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Star toggled"}}, nil
}

func (s *Server) handleCopyURL(ctx context.Context, input *BookmarkIDInput) (*MessageOutput, error) {
	if err := s.catalog.CopyURL(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "URL copied"}}, nil
}
