package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
)

// vercelCmd groups Vercel integration subcommands.
var vercelCmd = &cobra.Command{
	Use:     "vercel",
	Short:   "Work with the connected Vercel account",
	GroupID: "platform",
}

var vercelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in the connected Vercel account",
	Args:  cobra.NoArgs,
	RunE:  runVercelList,
}

var vercelCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project in the connected Vercel account",
	Args:  cobra.ExactArgs(1),
	RunE:  runVercelCreate,
}

func init() {
	rootCmd.AddCommand(vercelCmd)
	vercelCmd.AddCommand(vercelListCmd)
	vercelCmd.AddCommand(vercelCreateCmd)
}

func runVercelList(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	projects, err := client.Integrations.VercelProjects(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, projects, table.VercelProjectsToRecords(projects))
}

func runVercelCreate(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	project, err := client.Integrations.CreateVercelProject(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	output.Successf("vercel project %s created", project.ID)
	return renderList(store, project, []output.Record{table.VercelProjectToRecord(project)})
}
