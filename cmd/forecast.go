package cmd

import (
	"github.com/spf13/cobra"
	"github.com/sprintcast/sprintcast/core"
	"github.com/sprintcast/sprintcast/internal/contract"
)

// forecastCmd computes the full next-sprint velocity forecast.
var forecastCmd = &cobra.Command{
	Use:   "forecast <plan>",
	Short: "Project next-sprint velocity from a sprint plan document.",
	Long: `Compute the next sprint's achievable story points from a sprint plan.

The plan document (JSON or YAML) names the team's resources with their PTO
and partial-availability figures, the sprint length, carry-over points, and
optionally a velocity log of completed points per historical sprint.

The forecast:
- Resolves a baseline velocity (moving average over the log, or fallback)
- Computes each resource's effective working days for both sprints
- Scales the baseline by the capacity ratio and floors the result
- Nets out carry-over to report points available for new work

Examples:
  # Print the forecast as tables
  sprintcast forecast team.json

  # Export the breakdown to CSV for tracking
  sprintcast forecast team.json --output csv --output-file forecast.csv

  # Persist the report document without clobbering an existing one
  sprintcast forecast team.json --report-file report.json

  # Overwrite a previous report
  sprintcast forecast team.json --report-file report.json --force`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecast(cfg); err != nil {
			contract.LogFatal("Cannot run forecast", err)
		}
	},
}
