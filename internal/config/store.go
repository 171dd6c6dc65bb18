// Package config persists CLI preferences in a single namespaced settings
// file and resolves effective values across flag, environment, and stored
// sources with first-non-empty-wins precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/errors"
)

// Settings keys stored in the config file.
const (
	KeyAPIKey         = "api_key"
	KeyDefaultProject = "default_project"
	KeyBaseURL        = "base_url"
	KeyOutputFormat   = "output_format"
)

// Environment overrides consulted by the resolution helpers.
const (
	EnvAPIKey  = "V0_API_KEY"
	EnvBaseURL = "V0_BASE_URL"
)

// Keys lists every valid settings key.
var Keys = []string{KeyAPIKey, KeyDefaultProject, KeyBaseURL, KeyOutputFormat}

// Settings is the full contents of the config file. String fields default
// to empty; OutputFormat always holds one of the three valid formats.
type Settings struct {
	APIKey         string        `json:"api_key" yaml:"api_key"`
	DefaultProject string        `json:"default_project" yaml:"default_project"`
	BaseURL        string        `json:"base_url" yaml:"base_url"`
	OutputFormat   output.Format `json:"output_format" yaml:"output_format"`
}

// Store reads and writes the settings file. Writes rewrite the whole file;
// the CLI is single-invocation so no concurrent-writer protection exists.
type Store struct {
	path string
	v    *viper.Viper
}

// New opens the store at the default location
// ($XDG_CONFIG_HOME/v0/config.yaml, falling back to ~/.config/v0).
func New() (*Store, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.NewConfigError("store", "cannot locate home directory", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return NewAt(filepath.Join(dir, "v0", "config.yaml")), nil
}

// NewAt opens the store at an explicit path. A missing file reads as
// all-default settings.
func NewAt(path string) *Store {
	return &Store{path: path, v: loadViper(path)}
}

func loadViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()
	return v
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Get reads all settings, applying defaults for missing or invalid values.
// It never fails: a missing backing file is treated as all-defaults.
func (s *Store) Get() Settings {
	format, err := output.ParseFormat(s.v.GetString(KeyOutputFormat))
	if err != nil || format == "" {
		format = output.FormatTable
	}

	return Settings{
		APIKey:         s.v.GetString(KeyAPIKey),
		DefaultProject: s.v.GetString(KeyDefaultProject),
		BaseURL:        s.v.GetString(KeyBaseURL),
		OutputFormat:   format,
	}
}

// Set writes one field and persists immediately.
func (s *Store) Set(key, value string) error {
	if !validKey(key) {
		return errors.NewValidationError("key", key,
			"must be one of: "+strings.Join(Keys, ", "))
	}
	if key == KeyOutputFormat {
		format, err := output.ParseFormat(value)
		if err != nil {
			return errors.WrapValidation(KeyOutputFormat, err)
		}
		value = string(format)
	}

	s.v.Set(key, value)
	return s.write()
}

// Clear erases all fields back to defaults.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("remove", s.path, err)
	}
	s.v = loadViper(s.path)
	return nil
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.WrapIO("create", filepath.Dir(s.path), err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// ResolveBaseURL returns the effective base URL: preferred > environment >
// stored > empty. Whitespace-only candidates count as absent at every level.
func (s *Store) ResolveBaseURL(preferred string) string {
	return firstNonBlank(preferred, os.Getenv(EnvBaseURL), s.Get().BaseURL)
}

// ResolveOutputFormat returns the effective output format: flag > stored >
// terminal detection. Invalid flag values fall through to the stored format;
// with nothing configured, a terminal gets a table and a pipe gets JSON.
func (s *Store) ResolveOutputFormat(flag string) output.Format {
	if strings.TrimSpace(flag) != "" {
		if format, err := output.ParseFormat(flag); err == nil && format != "" {
			return format
		}
	}
	if strings.TrimSpace(s.v.GetString(KeyOutputFormat)) == "" {
		return output.DetectFormat("")
	}
	return s.Get().OutputFormat
}

// EnsureAPIKey returns the effective API key: preferred > environment >
// stored. When every source is absent it prompts for one with masked input,
// re-asking on empty answers, and persists the entered key for future
// invocations.
func (s *Store) EnsureAPIKey(preferred string, p prompt.Prompter) (string, error) {
	if key := firstNonBlank(preferred, os.Getenv(EnvAPIKey), s.Get().APIKey); key != "" {
		return key, nil
	}

	for {
		key, err := p.Masked("Enter your v0 API key")
		if err != nil {
			return "", errors.NewConfigError("api_key",
				"no API key configured and prompting failed", err)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := s.Set(KeyAPIKey, key); err != nil {
			return "", err
		}
		return key, nil
	}
}

// firstNonBlank returns the first candidate that is not empty or
// whitespace-only, trimmed.
func firstNonBlank(candidates ...string) string {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
