package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/prompt"
	v0errors "github.com/agentstation/v0-cli/pkg/errors"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewAt(filepath.Join(t.TempDir(), "config.yaml"))
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
}

func TestGet_Defaults(t *testing.T) {
	s := tempStore(t)

	got := s.Get()
	if got.APIKey != "" || got.DefaultProject != "" || got.BaseURL != "" {
		t.Errorf("string fields should default to empty: %+v", got)
	}
	if got.OutputFormat != output.FormatTable {
		t.Errorf("OutputFormat = %q, want table", got.OutputFormat)
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	s := tempStore(t)

	for _, format := range []string{"json", "table", "yaml"} {
		if err := s.Set(KeyOutputFormat, format); err != nil {
			t.Fatalf("Set(output_format, %q) failed: %v", format, err)
		}
		if got := s.Get().OutputFormat; string(got) != format {
			t.Errorf("OutputFormat = %q, want %q", got, format)
		}
	}

	if err := s.Set(KeyDefaultProject, "prj_1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh store over the same file sees the persisted values.
	reopened := NewAt(s.Path())
	if got := reopened.Get().DefaultProject; got != "prj_1" {
		t.Errorf("persisted DefaultProject = %q, want prj_1", got)
	}
}

func TestSet_RejectsUnknownKeyAndInvalidFormat(t *testing.T) {
	s := tempStore(t)

	if err := s.Set("favorite_color", "blue"); !errors.Is(err, v0errors.ErrInvalidInput) {
		t.Errorf("unknown key error = %v, want validation error", err)
	}
	if err := s.Set(KeyOutputFormat, "xml"); !errors.Is(err, v0errors.ErrInvalidInput) {
		t.Errorf("invalid format error = %v, want validation error", err)
	}
}

func TestGet_InvalidStoredFormatFallsBackToTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_format: xml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewAt(path)
	if got := s.Get().OutputFormat; got != output.FormatTable {
		t.Errorf("OutputFormat = %q, want table fallback", got)
	}
}

func TestClear(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(KeyAPIKey, "v1:abc"); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if got := s.Get(); got.APIKey != "" || got.OutputFormat != output.FormatTable {
		t.Errorf("settings after Clear = %+v, want defaults", got)
	}

	// Clearing an already-empty store is fine.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear() failed: %v", err)
	}
}

func TestResolveBaseURL_Precedence(t *testing.T) {
	clearEnv(t)
	s := tempStore(t)
	if err := s.Set(KeyBaseURL, "https://stored.example.com"); err != nil {
		t.Fatal(err)
	}

	// Preferred always wins.
	if got := s.ResolveBaseURL("https://x"); got != "https://x" {
		t.Errorf("ResolveBaseURL(preferred) = %q", got)
	}

	// Whitespace-only preferred counts as absent.
	if got := s.ResolveBaseURL("  "); got != "https://stored.example.com" {
		t.Errorf("ResolveBaseURL(whitespace) = %q, want stored value", got)
	}

	// Environment beats stored.
	t.Setenv(EnvBaseURL, "https://env.example.com")
	if got := s.ResolveBaseURL(""); got != "https://env.example.com" {
		t.Errorf("ResolveBaseURL with env = %q", got)
	}

	// Whitespace-only env falls through to stored.
	t.Setenv(EnvBaseURL, "   ")
	if got := s.ResolveBaseURL(""); got != "https://stored.example.com" {
		t.Errorf("ResolveBaseURL with blank env = %q", got)
	}
}

func TestResolveBaseURL_AllAbsent(t *testing.T) {
	clearEnv(t)
	s := tempStore(t)

	if got := s.ResolveBaseURL(""); got != "" {
		t.Errorf("ResolveBaseURL() = %q, want empty", got)
	}
}

func TestResolveOutputFormat(t *testing.T) {
	s := tempStore(t)
	if err := s.Set(KeyOutputFormat, "yaml"); err != nil {
		t.Fatal(err)
	}

	if got := s.ResolveOutputFormat("json"); got != output.FormatJSON {
		t.Errorf("flag should win: %q", got)
	}
	if got := s.ResolveOutputFormat(""); got != output.FormatYAML {
		t.Errorf("stored should apply: %q", got)
	}
	if got := s.ResolveOutputFormat("bogus"); got != output.FormatYAML {
		t.Errorf("invalid flag should fall through: %q", got)
	}
}

func TestEnsureAPIKey_Precedence(t *testing.T) {
	clearEnv(t)
	s := tempStore(t)
	if err := s.Set(KeyAPIKey, "stored-key"); err != nil {
		t.Fatal(err)
	}

	got, err := s.EnsureAPIKey("flag-key", prompt.NewScript())
	if err != nil || got != "flag-key" {
		t.Errorf("EnsureAPIKey(preferred) = %q, %v", got, err)
	}

	t.Setenv(EnvAPIKey, "env-key")
	got, err = s.EnsureAPIKey("", prompt.NewScript())
	if err != nil || got != "env-key" {
		t.Errorf("EnsureAPIKey with env = %q, %v", got, err)
	}

	t.Setenv(EnvAPIKey, "")
	got, err = s.EnsureAPIKey("", prompt.NewScript())
	if err != nil || got != "stored-key" {
		t.Errorf("EnsureAPIKey stored = %q, %v", got, err)
	}
}

func TestEnsureAPIKey_PromptsAndPersists(t *testing.T) {
	clearEnv(t)
	s := tempStore(t)

	// Empty answers re-ask; the first non-empty answer wins.
	script := prompt.NewScript("", "  ", "typed-key")
	got, err := s.EnsureAPIKey("", script)
	if err != nil {
		t.Fatalf("EnsureAPIKey failed: %v", err)
	}
	if got != "typed-key" {
		t.Errorf("EnsureAPIKey = %q", got)
	}
	if len(script.Labels) != 3 {
		t.Errorf("expected 3 prompt attempts, got %d", len(script.Labels))
	}

	// The entered key is persisted for the next invocation.
	if stored := NewAt(s.Path()).Get().APIKey; stored != "typed-key" {
		t.Errorf("persisted key = %q", stored)
	}
}

func TestEnsureAPIKey_NonInteractiveFails(t *testing.T) {
	clearEnv(t)
	s := tempStore(t)

	// An exhausted script behaves like a closed/absent terminal.
	_, err := s.EnsureAPIKey("", prompt.NewScript())
	if err == nil {
		t.Fatal("EnsureAPIKey should fail when prompting is unavailable")
	}
	var cfgErr *v0errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want ConfigError", err)
	}
}
