package v0

import (
	"context"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// IntegrationsService bridges to the connected Vercel account.
type IntegrationsService struct {
	client *Client
}

type vercelProjectList struct {
	Data []VercelProject `json:"data"`
}

// VercelProjects lists projects in the connected Vercel account.
func (s *IntegrationsService) VercelProjects(ctx context.Context) ([]VercelProject, error) {
	var list vercelProjectList
	if err := s.client.get(ctx, "/integrations/vercel/projects", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// CreateVercelProject creates a project in the connected Vercel account.
func (s *IntegrationsService) CreateVercelProject(ctx context.Context, name string) (*VercelProject, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", name, "must not be empty")
	}

	body := map[string]string{"name": name}
	var project VercelProject
	if err := s.client.post(ctx, "/integrations/vercel/projects", body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
