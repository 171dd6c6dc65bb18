package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/v0"
)

var (
	chatSystem  string
	chatModel   string
	chatProject string
	chatPrivacy string
)

// chatCmd groups chat subcommands.
var chatCmd = &cobra.Command{
	Use:     "chat",
	Short:   "Create and manage chats",
	GroupID: "platform",
}

var chatCreateCmd = &cobra.Command{
	Use:   "create <message>",
	Short: "Create a new chat from a message",
	Example: `  v0 chat create "a pricing page with three tiers"
  v0 chat create --project prj_123 "a dashboard with a sidebar"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChatCreate,
}

var chatListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your chats",
	Args:  cobra.NoArgs,
	RunE:  runChatList,
}

var chatShowCmd = &cobra.Command{
	Use:   "show <chat-id>",
	Short: "Show one chat",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatShow,
}

var chatSendCmd = &cobra.Command{
	Use:   "send <chat-id> <message>",
	Short: "Send a follow-up message to a chat",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runChatSend,
}

var chatFavoriteCmd = &cobra.Command{
	Use:   "favorite <chat-id>",
	Short: "Toggle a chat as favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatFavorite,
}

var chatDeleteCmd = &cobra.Command{
	Use:   "delete <chat-id>",
	Short: "Delete a chat",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatDelete,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.AddCommand(chatCreateCmd)
	chatCmd.AddCommand(chatListCmd)
	chatCmd.AddCommand(chatShowCmd)
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatFavoriteCmd)
	chatCmd.AddCommand(chatDeleteCmd)

	chatCreateCmd.Flags().StringVar(&chatSystem, "system", "", "System prompt for the chat")
	chatCreateCmd.Flags().StringVar(&chatModel, "model", "", "Model configuration")
	chatCreateCmd.Flags().StringVar(&chatProject, "project", "", "Project ID to create the chat in")
	chatCreateCmd.Flags().StringVar(&chatPrivacy, "privacy", "", "Chat privacy: private, public, team, unlisted")
}

func runChatCreate(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	projectID := chatProject
	if projectID == "" {
		projectID = store.Get().DefaultProject
	}

	chat, err := client.Chats.Create(cmd.Context(), v0.CreateChatRequest{
		Message:   strings.Join(args, " "),
		System:    chatSystem,
		Model:     chatModel,
		ProjectID: projectID,
		Privacy:   v0.ChatPrivacy(chatPrivacy),
	})
	if err != nil {
		return err
	}

	output.Successf("chat %s created", chat.ID)
	return renderList(store, chat, []output.Record{table.ChatToRecord(chat)})
}

func runChatList(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	chats, err := client.Chats.List(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, chats, table.ChatsToRecords(chats))
}

func runChatShow(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	chat, err := client.Chats.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, chat, []output.Record{table.ChatToRecord(chat)})
}

func runChatSend(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	chat, err := client.Chats.SendMessage(cmd.Context(), args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	output.Successf("message sent to chat %s", chat.ID)
	return renderList(store, chat, []output.Record{table.ChatToRecord(chat)})
}

func runChatFavorite(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	chat, err := client.Chats.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	favorite := !chat.Favorite
	if err := client.Chats.Favorite(cmd.Context(), chat.ID, favorite); err != nil {
		return err
	}

	if favorite {
		output.Successf("chat %s marked as favorite", chat.ID)
	} else {
		output.Successf("chat %s removed from favorites", chat.ID)
	}
	return nil
}

func runChatDelete(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	confirmed, err := prompt.New().Confirm("Delete chat "+args[0]+"? This cannot be undone.", false)
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
	if err := client.Chats.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	output.Successf("chat %s deleted", args[0])
	return nil
}
