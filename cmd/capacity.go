package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sprintcast/sprintcast/core"
	"github.com/sprintcast/sprintcast/internal/contract"
)

// capacityCmd shows only the per-resource availability breakdown.
var capacityCmd = &cobra.Command{
	Use:   "capacity <plan>",
	Short: "Show each resource's effective working days for both sprints.",
	Long: `Compute and display the per-resource capacity breakdown without scaling.

Useful when validating a plan's availability inputs before forecasting, or
when the capacity picture itself is the deliverable for sprint planning.

Examples:
  # Show effective days per resource
  sprintcast capacity team.json

  # Machine-readable breakdown
  sprintcast capacity team.json --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCapacity(cfg); err != nil {
			contract.LogFatal("Cannot compute capacity", err)
		}
	},
}
