package v0

import (
	"context"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// ProjectsService manages projects.
type ProjectsService struct {
	client *Client
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type projectList struct {
	Data []Project `json:"data"`
}

// List returns all projects for the authenticated user.
func (s *ProjectsService) List(ctx context.Context) ([]Project, error) {
	var list projectList
	if err := s.client.get(ctx, "/projects", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Create creates a new project.
func (s *ProjectsService) Create(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "must not be empty")
	}

	var project Project
	if err := s.client.post(ctx, "/projects", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Get fetches one project.
func (s *ProjectsService) Get(ctx context.Context, projectID string) (*Project, error) {
	if projectID == "" {
		return nil, errors.NewValidationError("projectID", projectID, "must not be empty")
	}

	var project Project
	if err := s.client.get(ctx, "/projects/"+projectID, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// AssignChat moves a chat into a project.
func (s *ProjectsService) AssignChat(ctx context.Context, projectID, chatID string) error {
	if projectID == "" {
		return errors.NewValidationError("projectID", projectID, "must not be empty")
	}
	if chatID == "" {
		return errors.NewValidationError("chatID", chatID, "must not be empty")
	}

	body := map[string]string{"chatId": chatID}
	return s.client.post(ctx, "/projects/"+projectID+"/chats", body, nil)
}
