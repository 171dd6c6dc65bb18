package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/config"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/errors"
)

// configCmd groups settings subcommands.
var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage CLI settings",
	GroupID: "account",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write one setting",
	Long: `Set writes one setting and persists it immediately.

Valid keys: ` + strings.Join(config.Keys, ", "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigClear,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configClearCmd)
	configCmd.AddCommand(configPathCmd)
}

// maskKey hides all but the last four characters of a secret.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	settings := store.Get()
	return render(store, output.Record{
		{Key: config.KeyAPIKey, Value: maskKey(settings.APIKey)},
		{Key: config.KeyDefaultProject, Value: settings.DefaultProject},
		{Key: config.KeyBaseURL, Value: settings.BaseURL},
		{Key: config.KeyOutputFormat, Value: string(settings.OutputFormat)},
	})
}

func runConfigGet(_ *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	settings := store.Get()
	var value string
	switch args[0] {
	case config.KeyAPIKey:
		value = maskKey(settings.APIKey)
	case config.KeyDefaultProject:
		value = settings.DefaultProject
	case config.KeyBaseURL:
		value = settings.BaseURL
	case config.KeyOutputFormat:
		value = string(settings.OutputFormat)
	default:
		return errors.NewValidationError("key", args[0],
			"must be one of: "+strings.Join(config.Keys, ", "))
	}

	fmt.Fprintln(output.Stdout, value)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	if err := store.Set(args[0], args[1]); err != nil {
		return err
	}
	output.Successf("%s set", args[0])
	return nil
}

func runConfigClear(_ *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	confirmed, err := prompt.New().Confirm("Erase all settings, including the stored API key?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		output.Infof("aborted")
		return nil
	}

	if err := store.Clear(); err != nil {
		return err
	}
	output.Successf("settings cleared")
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	fmt.Fprintln(output.Stdout, store.Path())
	return nil
}
