package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
)

// userCmd groups account subcommands.
var userCmd = &cobra.Command{
	Use:     "user",
	Short:   "Read account information",
	GroupID: "account",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE:  runUserShow,
}

var userBillingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Show plan and usage for the current period",
	Args:  cobra.NoArgs,
	RunE:  runUserBilling,
}

var userPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the subscription tier",
	Args:  cobra.NoArgs,
	RunE:  runUserPlan,
}

var userScopesCmd = &cobra.Command{
	Use:   "scopes",
	Short: "List teams and workspaces the API key can act in",
	Args:  cobra.NoArgs,
	RunE:  runUserScopes,
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userBillingCmd)
	userCmd.AddCommand(userPlanCmd)
	userCmd.AddCommand(userScopesCmd)
}

func runUserShow(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	user, err := client.User.Get(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, user, []output.Record{table.UserToRecord(user)})
}

func runUserBilling(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	billing, err := client.User.Billing(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, billing, []output.Record{table.BillingToRecord(billing)})
}

func runUserPlan(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	plan, err := client.User.Plan(cmd.Context())
	if err != nil {
		return err
	}
	return render(store, plan.Plan)
}

func runUserScopes(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	scopes, err := client.User.Scopes(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, scopes, table.ScopesToRecords(scopes))
}
