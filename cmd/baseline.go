package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sprintcast/sprintcast/core"
	"github.com/sprintcast/sprintcast/internal/contract"
)

// baselineCmd explains which baseline velocity the forecast would use.
var baselineCmd = &cobra.Command{
	Use:   "baseline <plan>",
	Short: "Show how the baseline velocity is resolved for a plan.",
	Long: `Resolve and display the baseline velocity decision for a sprint plan.

Shows whether the moving average over the velocity log applies or the
static last_velocity fallback is used, along with the window size and the
number of log entries found.

Examples:
  # Explain the baseline for a plan
  sprintcast baseline team.json

  # Machine-readable resolution
  sprintcast baseline team.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBaseline(cfg); err != nil {
			contract.LogFatal("Cannot resolve baseline", err)
		}
	},
}
