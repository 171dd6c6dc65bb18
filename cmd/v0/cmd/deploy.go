package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
	"github.com/agentstation/v0-cli/internal/config"
	"github.com/agentstation/v0-cli/internal/prompt"
	"github.com/agentstation/v0-cli/pkg/errors"
	"github.com/agentstation/v0-cli/pkg/v0"
)

const (
	deployPollInterval = 3 * time.Second
	deployWaitTimeout  = 60 * time.Second
)

var (
	deployChat    string
	deployProject string
	deployWait    bool

	deployListProject string
	deployListChat    string
)

// deployCmd groups deployment subcommands.
var deployCmd = &cobra.Command{
	Use:     "deploy",
	Short:   "Publish and inspect deployments",
	GroupID: "platform",
}

var deployCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Deploy the latest version of a chat",
	Long: `Deploy publishes the latest version of a chat into a project.

When --chat or --project is omitted the command asks interactively,
using the configured default_project when one is set.`,
	Example: `  v0 deploy create --chat chat_123 --project prj_456
  v0 deploy create --chat chat_123 --wait`,
	Args: cobra.NoArgs,
	RunE: runDeployCreate,
}

var deployListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deployments",
	Args:  cobra.NoArgs,
	RunE:  runDeployList,
}

var deployShowCmd = &cobra.Command{
	Use:   "show <deployment-id>",
	Short: "Show one deployment",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeployShow,
}

var deployLogsCmd = &cobra.Command{
	Use:   "logs <deployment-id>",
	Short: "Show build and runtime logs of a deployment",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeployLogs,
}

var deployErrorsCmd = &cobra.Command{
	Use:   "errors <deployment-id>",
	Short: "Show captured runtime errors of a deployment",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeployErrors,
}

var deployDeleteCmd = &cobra.Command{
	Use:   "delete <deployment-id>",
	Short: "Delete a deployment",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeployDelete,
}

func init() {
	rootCmd.AddCommand(deployCmd)
	deployCmd.AddCommand(deployCreateCmd)
	deployCmd.AddCommand(deployListCmd)
	deployCmd.AddCommand(deployShowCmd)
	deployCmd.AddCommand(deployLogsCmd)
	deployCmd.AddCommand(deployErrorsCmd)
	deployCmd.AddCommand(deployDeleteCmd)

	deployCreateCmd.Flags().StringVar(&deployChat, "chat", "", "Chat ID to deploy")
	deployCreateCmd.Flags().StringVar(&deployProject, "project", "", "Project ID to deploy into")
	deployCreateCmd.Flags().BoolVar(&deployWait, "wait", false,
		"Wait for the deployment to complete")

	deployListCmd.Flags().StringVar(&deployListProject, "project", "", "Filter by project ID")
	deployListCmd.Flags().StringVar(&deployListChat, "chat", "", "Filter by chat ID")
}

func runDeployCreate(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	chatID := deployChat
	if chatID == "" {
		chatID, err = pickChat(cmd, client)
		if err != nil {
			return err
		}
	}

	chat, err := client.Chats.Get(ctx, chatID)
	if err != nil {
		return err
	}
	if chat.LatestVersion == nil {
		return errors.NewValidationError("chat", chatID,
			"has no versions to deploy yet")
	}

	projectID, err := resolveDeployProject(cmd, store, client, chat)
	if err != nil {
		return err
	}

	deployment, err := client.Deployments.Create(ctx, v0.CreateDeploymentRequest{
		ProjectID: projectID,
		ChatID:    chat.ID,
		VersionID: chat.LatestVersion.ID,
	})
	if err != nil {
		return err
	}

	output.Successf("deployment %s created", deployment.ID)

	if deployWait {
		deployment, err = waitForDeployment(cmd, client, deployment)
		if err != nil {
			return err
		}
	}
	return renderList(store, deployment, []output.Record{table.DeploymentToRecord(deployment)})
}

// pickChat asks the user to choose a chat when --chat is omitted.
func pickChat(cmd *cobra.Command, client *v0.Client) (string, error) {
	chats, err := client.Chats.List(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(chats) == 0 {
		return "", errors.NewValidationError("chat", "",
			"no chats exist; create one with 'v0 chat create'")
	}

	options := make([]prompt.Option, 0, len(chats))
	for _, chat := range chats {
		label := chat.Name
		if label == "" {
			label = "(untitled)"
		}
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("%s (%s)", label, chat.ID),
			Value: chat.ID,
		})
	}
	return prompt.New().Select("Which chat do you want to deploy?", options)
}

// resolveDeployProject picks the target project: flag, then the chat's own
// project, then the configured default, then an interactive choice.
func resolveDeployProject(cmd *cobra.Command, store *config.Store, client *v0.Client, chat *v0.Chat) (string, error) {
	if deployProject != "" {
		return deployProject, nil
	}
	if chat.ProjectID != "" {
		return chat.ProjectID, nil
	}
	if id := store.Get().DefaultProject; id != "" {
		return id, nil
	}

	projects, err := client.Projects.List(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(projects) == 0 {
		return "", errors.NewValidationError("project", "",
			"no projects exist; create one with 'v0 project create'")
	}

	options := make([]prompt.Option, 0, len(projects))
	for _, project := range projects {
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("%s (%s)", project.Name, project.ID),
			Value: project.ID,
		})
	}
	return prompt.New().Select("Which project do you want to deploy into?", options)
}

// waitForDeployment polls until the deployment reaches a terminal status or
// the wait window closes. Timing out is not an error; the deployment keeps
// building server-side.
func waitForDeployment(cmd *cobra.Command, client *v0.Client, deployment *v0.Deployment) (*v0.Deployment, error) {
	ctx := cmd.Context()

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr))
	spin.Suffix = " waiting for deployment " + deployment.ID
	spin.Start()
	defer spin.Stop()

	deadline := time.After(deployWaitTimeout)
	ticker := time.NewTicker(deployPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			spin.Stop()
			output.Infof("deployment %s is not ready yet; check later with 'v0 deploy show %s'",
				deployment.ID, deployment.ID)
			return deployment, nil
		case <-ticker.C:
			current, err := client.Deployments.Get(ctx, deployment.ID)
			if err != nil {
				return nil, err
			}
			switch current.Status {
			case v0.DeploymentCompleted:
				spin.Stop()
				output.Successf("deployment %s completed", current.ID)
				return current, nil
			case v0.DeploymentFailed:
				spin.Stop()
				return nil, fmt.Errorf("deployment %s failed; inspect with 'v0 deploy logs %s'",
					current.ID, current.ID)
			}
			deployment = current
		}
	}
}

func runDeployList(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	deployments, err := client.Deployments.List(cmd.Context(), v0.DeploymentListParams{
		ProjectID: deployListProject,
		ChatID:    deployListChat,
	})
	if err != nil {
		return err
	}
	return renderList(store, deployments, table.DeploymentsToRecords(deployments))
}

func runDeployShow(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	deployment, err := client.Deployments.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, deployment, []output.Record{table.DeploymentToRecord(deployment)})
}

func runDeployLogs(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	logs, err := client.Deployments.Logs(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, logs, table.LogsToRecords(logs))
}

func runDeployErrors(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	events, err := client.Deployments.Errors(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderList(store, events, table.ErrorsToRecords(events))
}

func runDeployDelete(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	confirmed, err := prompt.New().Confirm("Delete deployment "+args[0]+"?", false)
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
	if err := client.Deployments.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}

	output.Successf("deployment %s deleted", args[0])
	return nil
}
