package v0

import (
	"context"
	"net/url"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// DeploymentsService manages deployments.
type DeploymentsService struct {
	client *Client
}

// CreateDeploymentRequest is the payload for creating a deployment. All
// three IDs are required; the deployment publishes one specific version of
// a chat into a project.
type CreateDeploymentRequest struct {
	ProjectID string `json:"projectId"`
	ChatID    string `json:"chatId"`
	VersionID string `json:"versionId"`
}

// DeploymentListParams filters List.
type DeploymentListParams struct {
	ProjectID string
	ChatID    string
}

type deploymentList struct {
	Data []Deployment `json:"data"`
}

type logList struct {
	Data []LogEntry `json:"data"`
}

type errorList struct {
	Data []ErrorEvent `json:"data"`
}

// Create publishes a chat version as a deployment.
func (s *DeploymentsService) Create(ctx context.Context, req CreateDeploymentRequest) (*Deployment, error) {
	if req.ProjectID == "" {
		return nil, errors.NewValidationError("projectID", req.ProjectID, "must not be empty")
	}
	if req.ChatID == "" {
		return nil, errors.NewValidationError("chatID", req.ChatID, "must not be empty")
	}
	if req.VersionID == "" {
		return nil, errors.NewValidationError("versionID", req.VersionID, "must not be empty")
	}

	var deployment Deployment
	if err := s.client.post(ctx, "/deployments", req, &deployment); err != nil {
		return nil, err
	}
	return &deployment, nil
}

// List returns deployments, optionally filtered by project and chat.
func (s *DeploymentsService) List(ctx context.Context, params DeploymentListParams) ([]Deployment, error) {
	query := url.Values{}
	if params.ProjectID != "" {
		query.Set("projectId", params.ProjectID)
	}
	if params.ChatID != "" {
		query.Set("chatId", params.ChatID)
	}

	path := "/deployments"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list deploymentList
	if err := s.client.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Get fetches one deployment.
func (s *DeploymentsService) Get(ctx context.Context, deploymentID string) (*Deployment, error) {
	if deploymentID == "" {
		return nil, errors.NewValidationError("deploymentID", deploymentID, "must not be empty")
	}

	var deployment Deployment
	if err := s.client.get(ctx, "/deployments/"+deploymentID, &deployment); err != nil {
		return nil, err
	}
	return &deployment, nil
}

// Delete removes a deployment.
func (s *DeploymentsService) Delete(ctx context.Context, deploymentID string) error {
	if deploymentID == "" {
		return errors.NewValidationError("deploymentID", deploymentID, "must not be empty")
	}
	return s.client.delete(ctx, "/deployments/"+deploymentID)
}

// Logs returns the build and runtime logs of a deployment.
func (s *DeploymentsService) Logs(ctx context.Context, deploymentID string) ([]LogEntry, error) {
	if deploymentID == "" {
		return nil, errors.NewValidationError("deploymentID", deploymentID, "must not be empty")
	}

	var list logList
	if err := s.client.get(ctx, "/deployments/"+deploymentID+"/logs", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Errors returns captured runtime errors of a deployment.
func (s *DeploymentsService) Errors(ctx context.Context, deploymentID string) ([]ErrorEvent, error) {
	if deploymentID == "" {
		return nil, errors.NewValidationError("deploymentID", deploymentID, "must not be empty")
	}

	var list errorList
	if err := s.client.get(ctx, "/deployments/"+deploymentID+"/errors", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
