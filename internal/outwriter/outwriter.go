// Package outwriter has output and writer logic for forecast results.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sprintcast/sprintcast/internal/contract"
	"golang.org/x/term"
)

// LogForecastHeader prints a concise, 2-line header for each invocation.
func LogForecastHeader(plan *contract.SprintPlan, cfg *contract.Config) {
	planName := filepath.Base(cfg.PlanPath)
	if planName == "" || planName == "." {
		planName = "plan"
	}

	prefixPlan, prefixSprint := "🔎 ", "📅 "
	if !cfg.UseEmojis {
		prefixPlan, prefixSprint = "", ""
	}

	// Line 1: the plan summary (document and resource count)
	fmt.Printf("%sPlan: %s (%d resources)\n", prefixPlan, planName, len(plan.Resources))

	// Line 2: the sprint shape being projected
	fmt.Printf("%sSprint length: %g days (velocity window: %d)\n", prefixSprint, plan.SprintDays, plan.VelocityWindow)
}

// getMaxTableNameWidth calculates the maximum width for resource names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the six numeric columns, the availability label,
	// and table borders/padding.
	baseWidth := 66

	available := termWidth - baseWidth
	if available < 10 {
		// Minimum reasonable name width
		return 10
	}
	if available > 40 {
		// Maximum name width to prevent overly wide tables
		return 40
	}
	return available
}
