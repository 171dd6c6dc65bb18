package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
	"github.com/agentstation/v0-cli/pkg/v0"
)

var projectDescription string

// projectCmd groups project subcommands.
var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Manage projects",
	GroupID: "platform",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectAssignCmd = &cobra.Command{
	Use:   "assign <project-id> <chat-id>",
	Short: "Move a chat into a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectAssign,
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectAssignCmd)

	projectCreateCmd.Flags().StringVar(&projectDescription, "description", "",
		"Project description")
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	projects, err := client.Projects.List(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, projects, table.ProjectsToRecords(projects))
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	project, err := client.Projects.Create(cmd.Context(), v0.CreateProjectRequest{
		Name:        args[0],
		Description: projectDescription,
	})
	if err != nil {
		return err
	}

	output.Successf("project %s created", project.ID)
	return renderList(store, project, []output.Record{table.ProjectToRecord(project)})
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	project, err := client.Projects.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, project, []output.Record{table.ProjectToRecord(project)})
}

func runProjectAssign(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	if err := client.Projects.AssignChat(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}

	output.Successf("chat %s assigned to project %s", args[1], args[0])
	return nil
}
