// Package project fetches the project list, the supervisor's settings, and
// the per-project configuration tree.
package project

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/foryougroup/field-reporter/internal/api"
	"github.com/foryougroup/field-reporter/internal/model"
)

const (
	projectsEndpoint = "/project/mobile"
	settingsEndpoint = "/user/settings"
	configEndpoint   = "/project/config"
)

// Service provides project-related remote data.
type Service struct {
	api *api.Client
	log *zap.Logger
}

// NewService creates a project service.
func NewService(client *api.Client, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: client, log: log}
}

// Projects returns all projects visible to the supervisor.
func (s *Service) Projects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.api.Get(ctx, projectsEndpoint, &projects); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return projects, nil
}

// ResolveID finds a project's id by exact name.
func (s *Service) ResolveID(ctx context.Context, name string) (int, error) {
	projects, err := s.Projects(ctx)
	if err != nil {
		return 0, err
	}
	for _, p := range projects {
		if p.Name == name {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("project %q not found", name)
}

// UserSettings returns the supervisor's active project and brigade. A fetch
// failure degrades to empty settings so the selection flow can proceed with
// no choices, mirroring the mobile client.
func (s *Service) UserSettings(ctx context.Context) model.UserSettings {
	var settings model.UserSettings
	if err := s.api.Get(ctx, settingsEndpoint, &settings); err != nil {
		s.log.Warn("fetch user settings", zap.Error(err))
		return model.UserSettings{}
	}
	return settings
}

// SaveUserSettings stores the active project and brigade on the backend.
func (s *Service) SaveUserSettings(ctx context.Context, settings model.UserSettings) api.Result {
	var result api.Result
	if err := s.api.Post(ctx, settingsEndpoint, settings, &result); err != nil {
		s.log.Warn("save user settings", zap.Error(err))
		return api.Result{Success: false, Message: err.Error()}
	}
	return result
}

// Config fetches the configuration tree of one project by name.
func (s *Service) Config(ctx context.Context, projectName string) (*model.ProjectConfig, error) {
	var envelope struct {
		Config model.ProjectConfig `json:"config"`
	}
	endpoint := configEndpoint + "?name=" + url.QueryEscape(projectName)
	if err := s.api.Get(ctx, endpoint, &envelope); err != nil {
		return nil, fmt.Errorf("fetch config for %q: %w", projectName, err)
	}
	return &envelope.Config, nil
}
