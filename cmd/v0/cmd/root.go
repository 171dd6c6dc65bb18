// Package cmd provides CLI commands for the v0 tool.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/globals"
	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/config"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/logging"
	"github.com/agentstation/v0-cli/pkg/v0"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
	// BuiltBy is the build system identifier.
	BuiltBy = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "v0",
	Short: "Command-line interface for the v0 Platform API",
	Long: `v0 is a command-line interface for the v0 Platform API.

It creates and manages chats, projects, deployments, and webhooks, and
reads account and billing information. Results render as a table by
default and as JSON or YAML with --output.`,
	PersistentPreRunE: setupCommand,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date, builtBy string) {
	Version = version
	Commit = commit
	Date = date
	BuiltBy = builtBy

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadEnvFiles)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "platform",
		Title: "Platform Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "account",
		Title: "Account Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is ~/.config/v0/config.yaml)")
	globalFlags = globals.AddFlags(rootCmd)
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.NoColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	level := "info"
	if globalFlags.Verbose {
		level = "debug"
	}
	logging.Setup(&logging.Config{
		Level:   level,
		NoColor: globalFlags.NoColor,
	})
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// newStore opens the settings store, honoring the --config override.
func newStore() (*config.Store, error) {
	if configFile != "" {
		return config.NewAt(configFile), nil
	}
	return config.New()
}

// newClient builds a platform client from the resolved configuration,
// prompting for an API key when none is configured anywhere.
func newClient(store *config.Store) (*v0.Client, error) {
	apiKey, err := store.EnsureAPIKey(globalFlags.APIKey, prompt.New())
	if err != nil {
		return nil, err
	}

	opts := []v0.Option{}
	if baseURL := store.ResolveBaseURL(globalFlags.BaseURL); baseURL != "" {
		opts = append(opts, v0.WithBaseURL(baseURL))
	}
	return v0.New(apiKey, opts...), nil
}

// render writes data to stdout in the resolved output format.
func render(store *config.Store, data any) error {
	return output.Render(os.Stdout, data, store.ResolveOutputFormat(globalFlags.Output))
}

// renderList writes raw data for machine formats and the table-shaped
// records for the table format, mirroring how list commands separate
// API payloads from their presentation.
func renderList(store *config.Store, raw any, records []output.Record) error {
	format := store.ResolveOutputFormat(globalFlags.Output)
	if format == output.FormatTable {
		return output.Render(os.Stdout, records, format)
	}
	return output.Render(os.Stdout, raw, format)
}
