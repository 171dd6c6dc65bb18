package table

import (
	"testing"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/pkg/v0"
)

func fieldValue(t *testing.T, record output.Record, key string) any {
	t.Helper()
	value, ok := record.Get(key)
	if !ok {
		t.Fatalf("record missing key %q: %v", key, record)
	}
	return value
}

func hasKey(record output.Record, key string) bool {
	_, ok := record.Get(key)
	return ok
}

func TestChatsToRecordsUntitledFallback(t *testing.T) {
	records := ChatsToRecords([]v0.Chat{
		{ID: "chat_1", Name: "Pricing page"},
		{ID: "chat_2"},
	})

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if got := fieldValue(t, records[0], "Name"); got != "Pricing page" {
		t.Errorf("records[0] Name = %v, want Pricing page", got)
	}
	if got := fieldValue(t, records[1], "Name"); got != "(untitled)" {
		t.Errorf("records[1] Name = %v, want (untitled)", got)
	}
}

func TestChatToRecordVersionFields(t *testing.T) {
	without := ChatToRecord(&v0.Chat{ID: "chat_1"})
	if hasKey(without, "Latest Version") {
		t.Error("Latest Version present for chat with no versions")
	}

	with := ChatToRecord(&v0.Chat{
		ID:            "chat_1",
		LatestVersion: &v0.ChatVersion{ID: "ver_9", Status: "completed"},
	})
	if got := fieldValue(t, with, "Latest Version"); got != "ver_9" {
		t.Errorf("Latest Version = %v, want ver_9", got)
	}
	if got := fieldValue(t, with, "Version Status"); got != "completed" {
		t.Errorf("Version Status = %v, want completed", got)
	}
}

func TestHumanizedHeaders(t *testing.T) {
	record := ChatToRecord(&v0.Chat{ID: "chat_1"})

	want := []string{"Id", "Name", "Privacy", "Favorite", "Project", "Url", "Demo", "Created"}
	if len(record) != len(want) {
		t.Fatalf("len(record) = %d, want %d", len(record), len(want))
	}
	for i, field := range record {
		if field.Key != want[i] {
			t.Errorf("key %d = %q, want %q", i, field.Key, want[i])
		}
	}
}

func TestProjectToRecordVercelField(t *testing.T) {
	plain := ProjectToRecord(&v0.Project{ID: "prj_1", Name: "demo"})
	if hasKey(plain, "Vercel Project") {
		t.Error("Vercel Project present for unlinked project")
	}

	linked := ProjectToRecord(&v0.Project{ID: "prj_1", VercelProjectID: "vp_1"})
	if got := fieldValue(t, linked, "Vercel Project"); got != "vp_1" {
		t.Errorf("Vercel Project = %v, want vp_1", got)
	}
}

func TestHooksToRecordsJoinsEvents(t *testing.T) {
	records := HooksToRecords([]v0.Hook{
		{ID: "hook_1", Events: []string{"chat.created", "chat.deleted"}},
	})

	if got := fieldValue(t, records[0], "Events"); got != "chat.created,chat.deleted" {
		t.Errorf("Events = %v, want chat.created,chat.deleted", got)
	}
}

func TestHookToRecordChatField(t *testing.T) {
	global := HookToRecord(&v0.Hook{ID: "hook_1", Events: []string{"chat.created"}})
	if hasKey(global, "Chat") {
		t.Error("Chat present for global hook")
	}

	scoped := HookToRecord(&v0.Hook{ID: "hook_1", ChatID: "chat_7", Events: []string{"chat.created"}})
	if got := fieldValue(t, scoped, "Chat"); got != "chat_7" {
		t.Errorf("Chat = %v, want chat_7", got)
	}
}

func TestBillingToRecordOptionalSections(t *testing.T) {
	bare := BillingToRecord(&v0.Billing{Plan: "free"})
	if got := fieldValue(t, bare, "Plan"); got != "free" {
		t.Errorf("Plan = %v, want free", got)
	}
	if hasKey(bare, "Remaining") || hasKey(bare, "Period Start") {
		t.Errorf("usage and period fields present on bare billing: %v", bare)
	}

	full := BillingToRecord(&v0.Billing{
		Plan:  "premium",
		Usage: &v0.BillingUsage{Remaining: 12.5, Total: 100, Unit: "credits"},
	})
	if got := fieldValue(t, full, "Remaining"); got != 12.5 {
		t.Errorf("Remaining = %v, want 12.5", got)
	}
	if got := fieldValue(t, full, "Unit"); got != "credits" {
		t.Errorf("Unit = %v, want credits", got)
	}
}

func TestDeploymentsToRecordsColumns(t *testing.T) {
	records := DeploymentsToRecords([]v0.Deployment{
		{ID: "dep_1", Status: v0.DeploymentBuilding, ProjectID: "prj_1", ChatID: "chat_1"},
	})

	if got := fieldValue(t, records[0], "Status"); got != "i building" {
		t.Errorf("Status = %v, want i building", got)
	}
	want := []string{"Id", "Status", "Project", "Chat", "Url", "Created"}
	if len(records[0]) != len(want) {
		t.Fatalf("len(record) = %d, want %d", len(records[0]), len(want))
	}
	for i, field := range records[0] {
		if field.Key != want[i] {
			t.Errorf("column %d = %q, want %q", i, field.Key, want[i])
		}
	}
}

func TestStatusCellGlyphs(t *testing.T) {
	tests := []struct {
		status   v0.DeploymentStatus
		expected string
	}{
		{v0.DeploymentCompleted, "✓ completed"},
		{v0.DeploymentFailed, "✗ failed"},
		{v0.DeploymentPending, "i pending"},
		{v0.DeploymentBuilding, "i building"},
		{v0.DeploymentStatus("queued"), "? queued"},
	}

	for _, test := range tests {
		result := statusCell(test.status)
		if result != test.expected {
			t.Errorf("statusCell(%q) = %q, want %q", test.status, result, test.expected)
		}
	}
}

func TestRateLimitToRecord(t *testing.T) {
	record := RateLimitToRecord(&v0.RateLimit{Limit: 100, Remaining: 42})
	if got := fieldValue(t, record, "Remaining"); got != 42 {
		t.Errorf("Remaining = %v, want 42", got)
	}
}
