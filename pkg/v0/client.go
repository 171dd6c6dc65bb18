// Package v0 provides a typed client for the v0 Platform API.
//
// The client is organized into services mirroring the API surface: chats,
// projects, deployments, user, hooks, Vercel integration, and rate limits.
// All operations take a context and return explicit errors; non-2xx
// responses surface as typed APIErrors from pkg/errors.
package v0

import (
	"context"
	"net/http"
	"strings"

	"github.com/agentstation/v0-cli/internal/transport"
)

// DefaultBaseURL is the production platform API endpoint.
const DefaultBaseURL = "https://api.v0.dev/v1"

// defaultUserAgent identifies the CLI to the platform.
const defaultUserAgent = "v0-cli"

// Client is the entry point to the platform API.
type Client struct {
	baseURL   string
	transport *transport.Client

	// Services
	Chats        *ChatsService
	Projects     *ProjectsService
	Deployments  *DeploymentsService
	User         *UserService
	Hooks        *HooksService
	Integrations *IntegrationsService
	RateLimits   *RateLimitsService
}

// New creates a client authenticated with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		transport: transport.New(&transport.BearerAuth{}, apiKey, defaultUserAgent),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Chats = &ChatsService{client: c}
	c.Projects = &ProjectsService{client: c}
	c.Deployments = &DeploymentsService{client: c}
	c.User = &UserService{client: c}
	c.Hooks = &HooksService{client: c}
	c.Integrations = &IntegrationsService{client: c}
	c.RateLimits = &RateLimitsService{client: c}

	return c
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.baseURL, "/") + path
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	resp, err := c.transport.Get(ctx, c.url(path))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, target)
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	resp, err := c.transport.Post(ctx, c.url(path), body)
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, target)
}

func (c *Client) put(ctx context.Context, path string, body, target any) error {
	resp, err := c.transport.Put(ctx, c.url(path), body)
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, target)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.transport.Delete(ctx, c.url(path))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, nil)
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the platform API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.baseURL = baseURL
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.transport.SetUserAgent(userAgent)
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport.SetHTTPClient(httpClient)
	}
}
