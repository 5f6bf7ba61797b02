package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/markstashapp/markstash-server/internal/domain"
)

func (s *Server) registerSettingsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTheme",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/theme",
		Summary:     "Get theme",
		Tags:        []string{"Settings"},
	}, s.handleGetTheme)

	huma.Register(s.api, huma.Operation{
		OperationID: "setTheme",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/theme",
		Summary:     "Set theme",
		Tags:        []string{"Settings"},
	}, s.handleSetTheme)
}

// ThemeResponse carries the theme preference.
type ThemeResponse struct {
	Theme domain.Theme `json:"theme" doc:"One of light, dark, auto"`
}

// ThemeOutput wraps the theme response for Huma.
type ThemeOutput struct {
	Body ThemeResponse
}

// SetThemeInput wraps the theme update request for Huma.
type SetThemeInput struct {
	Body ThemeResponse
}

func (s *Server) handleGetTheme(ctx context.Context, _ *struct{}) (*ThemeOutput, error) {
	theme, err := s.catalog.Theme(ctx)
	if err != nil {
		return nil, err
	}
	return &ThemeOutput{Body: ThemeResponse{Theme: theme}}, nil
}

func (s *Server) handleSetTheme(ctx context.Context, input *SetThemeInput) (*ThemeOutput, error) {
	if err := s.catalog.SetTheme(ctx, input.Body.Theme); err != nil {
		return nil, err
	}
	return &ThemeOutput{Body: ThemeResponse{Theme: input.Body.Theme}}, nil
}
