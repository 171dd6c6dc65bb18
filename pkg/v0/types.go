package v0

import "github.com/agentstation/utc"

// ChatPrivacy controls who can view a chat.
type ChatPrivacy string

// Chat privacy values accepted by the platform.
const (
	ChatPrivacyPrivate  ChatPrivacy = "private"
	ChatPrivacyPublic   ChatPrivacy = "public"
	ChatPrivacyTeam     ChatPrivacy = "team"
	ChatPrivacyUnlisted ChatPrivacy = "unlisted"
)

// Chat is a generation session on the platform.
type Chat struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Privacy       ChatPrivacy  `json:"privacy,omitempty"`
	Favorite      bool         `json:"favorite,omitempty"`
	ProjectID     string       `json:"projectId,omitempty"`
	WebURL        string       `json:"webUrl,omitempty"`
	DemoURL       string       `json:"demoUrl,omitempty"`
	LatestVersion *ChatVersion `json:"latestVersion,omitempty"`
	CreatedAt     utc.Time     `json:"createdAt"`
	UpdatedAt     utc.Time     `json:"updatedAt,omitempty"`
}

// ChatVersion is one generated iteration within a chat.
type ChatVersion struct {
	ID        string   `json:"id"`
	Status    string   `json:"status,omitempty"`
	DemoURL   string   `json:"demoUrl,omitempty"`
	CreatedAt utc.Time `json:"createdAt"`
}

// Message is one turn in a chat.
type Message struct {
	ID        string   `json:"id"`
	Role      string   `json:"role"`
	Content   string   `json:"content"`
	CreatedAt utc.Time `json:"createdAt"`
}

// Project groups chats and deployments.
type Project struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	VercelProjectID string   `json:"vercelProjectId,omitempty"`
	WebURL          string   `json:"webUrl,omitempty"`
	CreatedAt       utc.Time `json:"createdAt"`
}

// DeploymentStatus is the lifecycle state of a deployment.
type DeploymentStatus string

// Deployment status values reported by the platform.
const (
	DeploymentPending   DeploymentStatus = "pending"
	DeploymentBuilding  DeploymentStatus = "building"
	DeploymentCompleted DeploymentStatus = "completed"
	DeploymentFailed    DeploymentStatus = "failed"
)

// Deployment is a published build of a chat version.
type Deployment struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"projectId"`
	ChatID       string           `json:"chatId"`
	VersionID    string           `json:"versionId"`
	Status       DeploymentStatus `json:"status"`
	WebURL       string           `json:"webUrl,omitempty"`
	InspectorURL string           `json:"inspectorUrl,omitempty"`
	CreatedAt    utc.Time         `json:"createdAt"`
}

// LogEntry is one build or runtime log line of a deployment.
type LogEntry struct {
	Timestamp utc.Time `json:"timestamp"`
	Level     string   `json:"level,omitempty"`
	Message   string   `json:"message"`
}

// ErrorEvent is one captured runtime error of a deployment.
type ErrorEvent struct {
	Timestamp utc.Time `json:"timestamp"`
	Message   string   `json:"message"`
	Stack     string   `json:"stack,omitempty"`
}

// User is the authenticated account.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name,omitempty"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	CreatedAt utc.Time `json:"createdAt"`
}

// Billing describes the account's plan and remaining balance.
type Billing struct {
	Plan        string        `json:"plan"`
	PeriodStart utc.Time      `json:"periodStart,omitempty"`
	PeriodEnd   utc.Time      `json:"periodEnd,omitempty"`
	Usage       *BillingUsage `json:"usage,omitempty"`
}

// BillingUsage is the consumed/total breakdown for the current period.
type BillingUsage struct {
	Remaining float64 `json:"remaining"`
	Total     float64 `json:"total"`
	Unit      string  `json:"unit,omitempty"`
}

// Plan describes the subscription tier.
type Plan struct {
	Plan string `json:"plan"`
}

// Scope is a team or workspace the API key can act in.
type Scope struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Hook is a registered webhook subscription.
type Hook struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	ChatID    string   `json:"chatId,omitempty"`
	CreatedAt utc.Time `json:"createdAt"`
}

// VercelProject is a project in the connected Vercel account.
type VercelProject struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt utc.Time `json:"createdAt"`
}

// RateLimit reports remaining request budget for the API key.
type RateLimit struct {
	Limit     int      `json:"limit"`
	Remaining int      `json:"remaining"`
	Reset     utc.Time `json:"reset"`
}
