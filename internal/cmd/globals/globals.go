// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	APIKey  string
	BaseURL string
	Output  string
	Verbose bool
	NoColor bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVar(&flags.APIKey, "api-key", "",
		"v0 API key (overrides V0_API_KEY and stored config)")
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "",
		"Platform API base URL (overrides V0_BASE_URL and stored config)")
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "",
		"Output format: table, json, yaml")
	// Add --format as an alias for --output
	cmd.PersistentFlags().StringVar(&flags.Output, "format", "", "")
	_ = cmd.PersistentFlags().MarkHidden("format") // Hidden but functional

	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) (*Flags, error) {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	apiKey, _ := root.PersistentFlags().GetString("api-key")
	baseURL, _ := root.PersistentFlags().GetString("base-url")
	output, _ := root.PersistentFlags().GetString("output")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Output:  output,
		Verbose: verbose,
		NoColor: noColor,
	}, nil
}
