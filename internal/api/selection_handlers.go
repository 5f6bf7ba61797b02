package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/markstashapp/markstash-server/internal/domain"
)

func (s *Server) registerSelectionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getSelection",
		Method:      http.MethodGet,
		Path:        "/api/v1/selection",
		Summary:     "Get selection",
		Tags:        []string{"Selection"},
	}, s.handleGetSelection)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleBookmarkSelection",
		Method:      http.MethodPost,
		Path:        "/api/v1/selection/bookmarks/{id}/toggle",
		Summary:     "Toggle bookmark selection",
		Tags:        []string{"Selection"},
	}, s.handleToggleBookmarkSelection)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFolderSelection",
		Method:      http.MethodPost,
		Path:        "/api/v1/selection/folders/{id}/toggle",
		Summary:     "Toggle folder selection",
		Tags:        []string{"Selection"},
	}, s.handleToggleFolderSelection)

	huma.Register(s.api, huma.Operation{
		OperationID: "selectAllBookmarks",
		Method:      http.MethodPost,
		Path:        "/api/v1/selection/select-all",
		Summary:     "Select all",
		Description: "Replaces the bookmark selection with the currently filtered list",
		Tags:        []string{"Selection"},
	}, s.handleSelectAll)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearSelection",
		Method:      http.MethodPost,
		Path:        "/api/v1/selection/clear",
		Summary:     "Clear selection",
		Description: "Empties both sets and exits batch mode",
		Tags:        []string{"Selection"},
	}, s.handleClearSelection)

	huma.Register(s.api, huma.Operation{
		OperationID: "setBatchMode",
		Method:      http.MethodPut,
		Path:        "/api/v1/selection/batch-mode",
		Summary:     "Set batch mode",
		Description: "Disabling batch mode clears the selection",
		Tags:        []string{"Selection"},
	}, s.handleSetBatchMode)
}

// === DTOs ===

// SelectionResponse is the current selection state.
type SelectionResponse struct {
	BookmarkIDs []string `json:"bookmark_ids" doc:"Selected bookmark ids"`
	FolderIDs   []string `json:"folder_ids" doc:"Selected folder ids"`
	BatchMode   bool     `json:"batch_mode" doc:"Whether batch mode is active"`
}

// SelectionOutput wraps the selection state for Huma.
type SelectionOutput struct {
	Body SelectionResponse
}

// SelectionIDInput carries an id path parameter for selection toggles.
type SelectionIDInput struct {
	ID string `path:"id" doc:"Bookmark or folder id"`
}

// SelectAllRequest scopes select-all to the current view.
type SelectAllRequest struct {
	FolderID string `json:"folder_id,omitempty" doc:"Scope to this folder and its descendants"`
	Search   string `json:"search,omitempty" doc:"Active search query"`
	View     string `json:"view,omitempty" enum:"all,starred" doc:"Active view mode"`
}

// SelectAllInput wraps the select-all request for Huma.
type SelectAllInput struct {
	Body SelectAllRequest
}

// BatchModeRequest enables or disables batch mode.
type BatchModeRequest struct {
	Enabled bool `json:"enabled" doc:"Batch mode state"`
}

// BatchModeInput wraps the batch mode request for Huma.
type BatchModeInput struct {
	Body BatchModeRequest
}

// === Handlers ===

func (s *Server) selectionResponse() SelectionResponse {
	sel := s.catalog.Selection()
	return SelectionResponse{
		BookmarkIDs: sel.BookmarkIDs(),
		FolderIDs:   sel.FolderIDs(),
		BatchMode:   sel.BatchMode(),
	}
}

func (s *Server) handleGetSelection(_ context.Context, _ *struct{}) (*SelectionOutput, error) {
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}

func (s *Server) handleToggleBookmarkSelection(_ context.Context, input *SelectionIDInput) (*SelectionOutput, error) {
	s.catalog.Selection().ToggleBookmark(input.ID)
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}

func (s *Server) handleToggleFolderSelection(_ context.Context, input *SelectionIDInput) (*SelectionOutput, error) {
	s.catalog.Selection().ToggleFolder(input.ID)
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}

func (s *Server) handleSelectAll(_ context.Context, input *SelectAllInput) (*SelectionOutput, error) {
	s.catalog.SelectAll(domain.Query{
		FolderID: input.Body.FolderID,
		Search:   input.Body.Search,
		Mode:     domain.ViewMode(input.Body.View),
	})
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}

func (s *Server) handleClearSelection(_ context.Context, _ *struct{}) (*SelectionOutput, error) {
	s.catalog.Selection().Clear()
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}

func (s *Server) handleSetBatchMode(_ context.Context, input *BatchModeInput) (*SelectionOutput, error) {
	s.catalog.Selection().SetBatchMode(input.Body.Enabled)
	return &SelectionOutput{Body: s.selectionResponse()}, nil
}
