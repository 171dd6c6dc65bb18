package v0

import "context"

// UserService reads account information.
type UserService struct {
	client *Client
}

type scopeList struct {
	Data []Scope `json:"data"`
}

// Get returns the authenticated user.
func (s *UserService) Get(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.get(ctx, "/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Billing returns plan and usage information.
func (s *UserService) Billing(ctx context.Context) (*Billing, error) {
	var billing Billing
	if err := s.client.get(ctx, "/user/billing", &billing); err != nil {
		return nil, err
	}
	return &billing, nil
}

// Plan returns the subscription tier.
func (s *UserService) Plan(ctx context.Context) (*Plan, error) {
	var plan Plan
	if err := s.client.get(ctx, "/user/plan", &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Scopes returns the teams and workspaces the API key can act in.
func (s *UserService) Scopes(ctx context.Context) ([]Scope, error) {
	var list scopeList
	if err := s.client.get(ctx, "/user/scopes", &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
