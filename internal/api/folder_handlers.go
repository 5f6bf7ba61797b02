package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/markstashapp/markstash-server/internal/catalog"
	"github.com/markstashapp/markstash-server/internal/domain"
)

func (s *Server) registerFolderRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFolders",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders",
		Summary:     "List folders",
		Description: "Returns the flat folder collection",
		Tags:        []string{"Folders"},
	}, s.handleListFolders)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFolderTree",
		Method:      http.MethodGet,
		Path:        "/api/v1/folders/tree",
		Summary:     "Get folder tree",
		Description: "Returns the folder hierarchy with siblings in display order",
		Tags:        []string{"Folders"},
	}, s.handleGetFolderTree)

	huma.Register(s.api, huma.Operation{
		OperationID: "createFolder",
		Method:      http.MethodPost,
		Path:        "/api/v1/folders",
		Summary:     "Create folder",
		Tags:        []string{"Folders"},
	}, s.handleCreateFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "renameFolder",
		Method:      http.MethodPatch,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Rename folder",
		Tags:        []string{"Folders"},
	}, s.handleRenameFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteFolder",
		Method:      http.MethodDelete,
		Path:        "/api/v1/folders/{id}",
		Summary:     "Delete folder",
		Description: "Removes the folder, its direct child folders, and its direct bookmarks",
		Tags:        []string{"Folders"},
	}, s.handleDeleteFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "moveFolder",
		Method:      http.MethodPost,
		Path:        "/api/v1/folders/{id}/move",
		Summary:     "Move folder",
		Description: "Reparents the folder; moves into the folder's own subtree are rejected",
		Tags:        []string{"Folders"},
	}, s.handleMoveFolder)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFolderExpanded",
		Method:      http.MethodPost,
		Path:        "/api/v1/folders/{id}/toggle",
		Summary:     "Toggle folder expansion",
		Tags:        []string{"Folders"},
	}, s.handleToggleExpanded)
}

// === DTOs ===

// ListFoldersResponse contains the flat folder collection.
type ListFoldersResponse struct {
	Folders []domain.Folder `json:"folders" doc:"All folders"`
}

// ListFoldersOutput wraps the folder list for Huma.
type ListFoldersOutput struct {
	Body ListFoldersResponse
}

// FolderTreeResponse contains the folder hierarchy.
type FolderTreeResponse struct {
	Tree []*domain.TreeNode `json:"tree" doc:"Top-level folders with nested children"`
}

// FolderTreeOutput wraps the folder tree for Huma.
type FolderTreeOutput struct {
	Body FolderTreeResponse
}

// CreateFolderRequest is the request body for creating a folder.
type CreateFolderRequest struct {
	Name     string `json:"name" doc:"Folder name"`
	ParentID string `json:"parent_id,omitempty" doc:"Parent folder id; empty for top level"`
}

// CreateFolderInput wraps the create folder request for Huma.
type CreateFolderInput struct {
	Body CreateFolderRequest
}

// FolderOutput wraps a single folder for Huma.
type FolderOutput struct {
	Body domain.Folder
}

// RenameFolderRequest is the request body for renaming a folder.
type RenameFolderRequest struct {
	Name string `json:"name" doc:"New folder name"`
}

// RenameFolderInput wraps the rename request for Huma.
type RenameFolderInput struct {
	ID   string `path:"id" doc:"Folder id"`
	Body RenameFolderRequest
}

// FolderIDInput carries a folder id path parameter.
type FolderIDInput struct {
	ID string `path:"id" doc:"Folder id"`
}

// MoveFolderRequest is the request body for reparenting a folder.
type MoveFolderRequest struct {
	ParentID string `json:"parent_id" doc:"New parent folder id; empty for top level"`
}

// MoveFolderInput wraps the move request for Huma.
type MoveFolderInput struct {
	ID   string `path:"id" doc:"Folder id"`
	Body MoveFolderRequest
}

// === Handlers ===

func (s *Server) handleListFolders(_ context.Context, _ *struct{}) (*ListFoldersOutput, error) {
	return &ListFoldersOutput{Body: ListFoldersResponse{Folders: s.catalog.Folders()}}, nil
}

func (s *Server) handleGetFolderTree(_ context.Context, _ *struct{}) (*FolderTreeOutput, error) {
	return &FolderTreeOutput{Body: FolderTreeResponse{Tree: s.catalog.Tree()}}, nil
}

func (s *Server) handleCreateFolder(ctx context.Context, input *CreateFolderInput) (*FolderOutput, error) {
	folder, err := s.catalog.CreateFolder(ctx, catalog.CreateFolderInput{
		Name:     input.Body.Name,
		ParentID: input.Body.ParentID,
	})
	if err != nil {
		return nil, err
	}
	return &FolderOutput{Body: folder}, nil
}

func (s *Server) handleRenameFolder(ctx context.Context, input *RenameFolderInput) (*MessageOutput, error) {
	if err := s.catalog.RenameFolder(ctx, input.ID, input.Body.Name); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Folder renamed"}}, nil
}

func (s *Server) handleDeleteFolder(ctx context.Context, input *FolderIDInput) (*MessageOutput, error) {
	if err := s.catalog.DeleteFolder(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Folder deleted"}}, nil
}

func (s *Server) handleMoveFolder(ctx context.Context, input *MoveFolderInput) (*MessageOutput, error) {
	if err := s.catalog.MoveFolder(ctx, input.ID, input.Body.ParentID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Folder moved"}}, nil
}

func (s *Server) handleToggleExpanded(ctx context.Context, input *FolderIDInput) (*MessageOutput, error) {
	if err := s.catalog.ToggleExpanded(ctx, input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Folder toggled"}}, nil
}
