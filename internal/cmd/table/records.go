// Package table converts platform API types into presentation records for
// the table output format. Machine formats (json, yaml) render the raw API
// payloads; these converters pick and order the columns a terminal reader
// actually wants, with humanized display headers.
package table

import (
	"strings"

	"github.com/agentstation/v0-cli/internal/cmd/emoji"
	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/pkg/v0"
)

// humanize rewrites record keys as display headers, e.g. "latest_version"
// becomes "Latest Version". Only table-bound records pass through here; raw
// API payloads keep their wire keys.
func humanize(record output.Record) output.Record {
	out := make(output.Record, len(record))
	for i, field := range record {
		out[i] = output.Field{Key: output.TitleCase(field.Key), Value: field.Value}
	}
	return out
}

// statusCell prefixes a deployment status with its glyph.
func statusCell(status v0.DeploymentStatus) string {
	switch status {
	case v0.DeploymentCompleted:
		return emoji.Success + " " + string(status)
	case v0.DeploymentFailed:
		return emoji.Error + " " + string(status)
	case v0.DeploymentPending, v0.DeploymentBuilding:
		return emoji.Info + " " + string(status)
	default:
		return emoji.Unknown + " " + string(status)
	}
}

// ChatsToRecords shapes chats for list output.
func ChatsToRecords(chats []v0.Chat) []output.Record {
	records := make([]output.Record, 0, len(chats))
	for _, chat := range chats {
		name := chat.Name
		if name == "" {
			name = "(untitled)"
		}
		records = append(records, humanize(output.Record{
			{Key: "id", Value: chat.ID},
			{Key: "name", Value: name},
			{Key: "privacy", Value: string(chat.Privacy)},
			{Key: "favorite", Value: chat.Favorite},
			{Key: "updated", Value: chat.UpdatedAt},
		}))
	}
	return records
}

// ChatToRecord shapes one chat for detail output.
func ChatToRecord(chat *v0.Chat) output.Record {
	record := output.Record{
		{Key: "id", Value: chat.ID},
		{Key: "name", Value: chat.Name},
		{Key: "privacy", Value: string(chat.Privacy)},
		{Key: "favorite", Value: chat.Favorite},
		{Key: "project", Value: chat.ProjectID},
		{Key: "url", Value: chat.WebURL},
		{Key: "demo", Value: chat.DemoURL},
		{Key: "created", Value: chat.CreatedAt},
	}
	if chat.LatestVersion != nil {
		record = append(record,
			output.Field{Key: "latest_version", Value: chat.LatestVersion.ID},
			output.Field{Key: "version_status", Value: chat.LatestVersion.Status},
		)
	}
	return humanize(record)
}

// ProjectToRecord shapes one project for detail output.
func ProjectToRecord(project *v0.Project) output.Record {
	record := output.Record{
		{Key: "id", Value: project.ID},
		{Key: "name", Value: project.Name},
		{Key: "description", Value: project.Description},
		{Key: "url", Value: project.WebURL},
		{Key: "created", Value: project.CreatedAt},
	}
	if project.VercelProjectID != "" {
		record = append(record,
			output.Field{Key: "vercel_project", Value: project.VercelProjectID})
	}
	return humanize(record)
}

// ProjectsToRecords shapes projects for list output.
func ProjectsToRecords(projects []v0.Project) []output.Record {
	records := make([]output.Record, 0, len(projects))
	for _, project := range projects {
		records = append(records, humanize(output.Record{
			{Key: "id", Value: project.ID},
			{Key: "name", Value: project.Name},
			{Key: "description", Value: project.Description},
			{Key: "created", Value: project.CreatedAt},
		}))
	}
	return records
}

// DeploymentsToRecords shapes deployments for list output.
func DeploymentsToRecords(deployments []v0.Deployment) []output.Record {
	records := make([]output.Record, 0, len(deployments))
	for _, d := range deployments {
		records = append(records, humanize(output.Record{
			{Key: "id", Value: d.ID},
			{Key: "status", Value: statusCell(d.Status)},
			{Key: "project", Value: d.ProjectID},
			{Key: "chat", Value: d.ChatID},
			{Key: "url", Value: d.WebURL},
			{Key: "created", Value: d.CreatedAt},
		}))
	}
	return records
}

// DeploymentToRecord shapes one deployment for detail output.
func DeploymentToRecord(d *v0.Deployment) output.Record {
	return humanize(output.Record{
		{Key: "id", Value: d.ID},
		{Key: "status", Value: statusCell(d.Status)},
		{Key: "project", Value: d.ProjectID},
		{Key: "chat", Value: d.ChatID},
		{Key: "version", Value: d.VersionID},
		{Key: "url", Value: d.WebURL},
		{Key: "inspector", Value: d.InspectorURL},
		{Key: "created", Value: d.CreatedAt},
	})
}

// LogsToRecords shapes deployment logs for list output.
func LogsToRecords(logs []v0.LogEntry) []output.Record {
	records := make([]output.Record, 0, len(logs))
	for _, entry := range logs {
		records = append(records, humanize(output.Record{
			{Key: "time", Value: entry.Timestamp},
			{Key: "level", Value: entry.Level},
			{Key: "message", Value: entry.Message},
		}))
	}
	return records
}

// ErrorsToRecords shapes deployment error events for list output.
func ErrorsToRecords(events []v0.ErrorEvent) []output.Record {
	records := make([]output.Record, 0, len(events))
	for _, event := range events {
		records = append(records, humanize(output.Record{
			{Key: "time", Value: event.Timestamp},
			{Key: "message", Value: event.Message},
		}))
	}
	return records
}

// UserToRecord shapes the authenticated user for detail output.
func UserToRecord(user *v0.User) output.Record {
	return humanize(output.Record{
		{Key: "id", Value: user.ID},
		{Key: "email", Value: user.Email},
		{Key: "name", Value: user.Name},
		{Key: "created", Value: user.CreatedAt},
	})
}

// BillingToRecord shapes billing information for detail output.
func BillingToRecord(billing *v0.Billing) output.Record {
	record := output.Record{
		{Key: "plan", Value: billing.Plan},
	}
	if !billing.PeriodStart.IsZero() {
		record = append(record,
			output.Field{Key: "period_start", Value: billing.PeriodStart},
			output.Field{Key: "period_end", Value: billing.PeriodEnd},
		)
	}
	if billing.Usage != nil {
		record = append(record,
			output.Field{Key: "remaining", Value: billing.Usage.Remaining},
			output.Field{Key: "total", Value: billing.Usage.Total},
		)
		if billing.Usage.Unit != "" {
			record = append(record,
				output.Field{Key: "unit", Value: billing.Usage.Unit})
		}
	}
	return humanize(record)
}

// RateLimitToRecord shapes the rate limit window for detail output.
func RateLimitToRecord(limit *v0.RateLimit) output.Record {
	return humanize(output.Record{
		{Key: "limit", Value: limit.Limit},
		{Key: "remaining", Value: limit.Remaining},
		{Key: "reset", Value: limit.Reset},
	})
}

// HookToRecord shapes one webhook for detail output.
func HookToRecord(hook *v0.Hook) output.Record {
	record := output.Record{
		{Key: "id", Value: hook.ID},
		{Key: "name", Value: hook.Name},
		{Key: "url", Value: hook.URL},
		{Key: "events", Value: strings.Join(hook.Events, ",")},
		{Key: "created", Value: hook.CreatedAt},
	}
	if hook.ChatID != "" {
		record = append(record, output.Field{Key: "chat", Value: hook.ChatID})
	}
	return humanize(record)
}

// HooksToRecords shapes webhooks for list output.
func HooksToRecords(hooks []v0.Hook) []output.Record {
	records := make([]output.Record, 0, len(hooks))
	for _, hook := range hooks {
		records = append(records, humanize(output.Record{
			{Key: "id", Value: hook.ID},
			{Key: "name", Value: hook.Name},
			{Key: "url", Value: hook.URL},
			{Key: "events", Value: strings.Join(hook.Events, ",")},
		}))
	}
	return records
}

// VercelProjectToRecord shapes one Vercel project for detail output.
func VercelProjectToRecord(project *v0.VercelProject) output.Record {
	return humanize(output.Record{
		{Key: "id", Value: project.ID},
		{Key: "name", Value: project.Name},
		{Key: "created", Value: project.CreatedAt},
	})
}

// VercelProjectsToRecords shapes Vercel projects for list output.
func VercelProjectsToRecords(projects []v0.VercelProject) []output.Record {
	records := make([]output.Record, 0, len(projects))
	for _, project := range projects {
		records = append(records, humanize(output.Record{
			{Key: "id", Value: project.ID},
			{Key: "name", Value: project.Name},
			{Key: "created", Value: project.CreatedAt},
		}))
	}
	return records
}

// ScopesToRecords shapes API key scopes for list output.
func ScopesToRecords(scopes []v0.Scope) []output.Record {
	records := make([]output.Record, 0, len(scopes))
	for _, scope := range scopes {
		records = append(records, humanize(output.Record{
			{Key: "id", Value: scope.ID},
			{Key: "name", Value: scope.Name},
		}))
	}
	return records
}
