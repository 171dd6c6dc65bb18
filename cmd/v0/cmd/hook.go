package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/v0"
)

// hookEvents lists the webhook event types the platform emits.
var hookEvents = []string{
	"chat.created",
	"chat.updated",
	"chat.deleted",
	"message.created",
	"deployment.created",
	"deployment.completed",
	"deployment.failed",
}

var (
	hookCreateEvents []string
	hookCreateChat   string
)

// hookCmd groups webhook subcommands.
var hookCmd = &cobra.Command{
	Use:     "hook",
	Short:   "Manage webhooks",
	GroupID: "platform",
}

var hookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered webhooks",
	Args:  cobra.NoArgs,
	RunE:  runHookList,
}

var hookCreateCmd = &cobra.Command{
	Use:   "create <name> <url>",
	Short: "Register a new webhook",
	Example: `  v0 hook create deploy-notify https://example.com/hook --event deployment.completed
  v0 hook create all-chats https://example.com/hook`,
	Args: cobra.ExactArgs(2),
	RunE: runHookCreate,
}

var hookShowCmd = &cobra.Command{
	Use:   "show <hook-id>",
	Short: "Show one webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runHookShow,
}

var hookDeleteCmd = &cobra.Command{
	Use:   "delete <hook-id>",
	Short: "Delete a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runHookDelete,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookListCmd)
	hookCmd.AddCommand(hookCreateCmd)
	hookCmd.AddCommand(hookShowCmd)
	hookCmd.AddCommand(hookDeleteCmd)

	hookCreateCmd.Flags().StringSliceVar(&hookCreateEvents, "event", nil,
		"Event to subscribe to (repeatable); prompts when omitted")
	hookCreateCmd.Flags().StringVar(&hookCreateChat, "chat", "",
		"Limit the webhook to one chat")
}

func runHookList(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	hooks, err := client.Hooks.List(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, hooks, table.HooksToRecords(hooks))
}

func runHookCreate(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	events := hookCreateEvents
	if len(events) == 0 {
		options := make([]prompt.Option, 0, len(hookEvents))
		for _, event := range hookEvents {
			options = append(options, prompt.Option{Label: event, Value: event})
		}
		events, err = prompt.New().MultiSelect("Which events should trigger this webhook?", options)
		if err != nil {
			return err
		}
	}

	hook, err := client.Hooks.Create(cmd.Context(), v0.CreateHookRequest{
		Name:   args[0],
		URL:    args[1],
		Events: events,
		ChatID: hookCreateChat,
	})
	if err != nil {
		return err
	}

	output.Successf("webhook %s registered", hook.ID)
	return renderList(store, hook, []output.Record{table.HookToRecord(hook)})
}

func runHookShow(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	hook, err := client.Hooks.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, hook, []output.Record{table.HookToRecord(hook)})
}

func runHookDelete(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	confirmed, err := prompt.New().Confirm("Delete webhook "+args[0]+"?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		output.Infof("aborted")
		return nil
	}

	client, err := newClient(store)
	if err != nil {
		return err
	}
	if err := client.Hooks.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	output.Successf("webhook %s deleted", args[0])
	return nil
}
