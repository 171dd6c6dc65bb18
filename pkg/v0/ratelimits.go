package v0

import "context"

// RateLimitsService reads the API key's request budget.
type RateLimitsService struct {
	client *Client
}

// Get returns the current rate limit window.
func (s *RateLimitsService) Get(ctx context.Context) (*RateLimit, error) {
	var limit RateLimit
	if err := s.client.get(ctx, "/rate-limits", &limit); err != nil {
		return nil, err
	}
	return &limit, nil
}
