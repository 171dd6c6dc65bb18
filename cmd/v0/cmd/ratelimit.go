package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/v0-cli/internal/cmd/output"
	"github.com/agentstation/v0-cli/internal/cmd/table"
)

var ratelimitCmd = &cobra.Command{
	Use:     "ratelimit",
	Short:   "Show the API key's request budget",
	GroupID: "account",
	Args:    cobra.NoArgs,
	RunE:    runRateLimit,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
}

func runRateLimit(cmd *cobra.Command, _ []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	client, err := newClient(store)
	if err != nil {
		return err
	}

	limit, err := client.RateLimits.Get(cmd.Context())
	if err != nil {
		return err
	}
	return renderList(store, limit, []output.Record{table.RateLimitToRecord(limit)})
}
