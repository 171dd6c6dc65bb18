package v0

import (
	"context"

	"github.com/agentstation/v0-cli/pkg/errors"
)

// HooksService manages webhook subscriptions.
type HooksService struct {
	client *Client
}

// CreateHookRequest is the payload for registering a webhook.
type CreateHookRequest struct {
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
	ChatID string   `json:"chatId,omitempty"`
}

type hookList struct {
	Data []Hook `json:"data"`
}

// List returns all registered webhooks.
func (s *HooksService) List(ctx context.Context) ([]Hook, error) {
	var list hookList
	if err := s.client.get(ctx, "/hooks", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// Create registers a new webhook.
func (s *HooksService) Create(ctx context.Context, req CreateHookRequest) (*Hook, error) {
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "must not be empty")
	}
	if req.URL == "" {
		return nil, errors.NewValidationError("url", req.URL, "must not be empty")
	}
	if len(req.Events) == 0 {
		return nil, errors.NewValidationError("events", req.Events, "at least one event is required")
	}

	var hook Hook
	if err := s.client.post(ctx, "/hooks", req, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// Get fetches one webhook.
func (s *HooksService) Get(ctx context.Context, hookID string) (*Hook, error) {
	if hookID == "" {
		return nil, errors.NewValidationError("hookID", hookID, "must not be empty")
	}

	var hook Hook
	if err := s.client.get(ctx, "/hooks/"+hookID, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// Delete removes a webhook.
func (s *HooksService) Delete(ctx context.Context, hookID string) error {
	if hookID == "" {
		return errors.NewValidationError("hookID", hookID, "must not be empty")
	}
	return s.client.delete(ctx, "/hooks/"+hookID)
}
