// Package core has the sprint velocity calculation pipeline: baseline
// resolution, effective-capacity computation, ratio scaling and report
// assembly.
package core

import (
	"time"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/internal/outwriter"
	"github.com/sprintcast/sprintcast/internal/persist"
	"github.com/sprintcast/sprintcast/schema"
)

// GetForecastReport loads the plan and computes the full report without
// printing anything. It is the quiet entry point used by MCP handlers.
func GetForecastReport(cfg *contract.Config) (*schema.Report, error) {
	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return nil, err
	}
	return BuildForecast(plan)
}

// GetBaselineResolution loads the plan and resolves the baseline velocity
// without printing anything.
func GetBaselineResolution(cfg *contract.Config) (schema.BaselineResolution, error) {
	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return schema.BaselineResolution{}, err
	}
	return ResolveBaseline(plan)
}

// ExecuteForecast runs the full pipeline and renders the report. When a
// report file is requested it is persisted before anything is displayed,
// so a persistence failure aborts the invocation without partial output.
// It serves as the main entry point for the 'forecast' command.
func ExecuteForecast(cfg *contract.Config) error {
	start := time.Now()
	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return err
	}
	outwriter.LogForecastHeader(plan, cfg)

	report, err := BuildForecast(plan)
	if err != nil {
		return err
	}

	if cfg.ReportFile != "" {
		if err := persist.WriteReport(cfg.ReportFile, report, cfg.Force); err != nil {
			return err
		}
	}

	duration := time.Since(start)
	return outwriter.WriteForecastResults(report, cfg, duration)
}

// ExecuteCapacity computes and renders only the per-resource breakdown.
// It serves as the main entry point for the 'capacity' command.
func ExecuteCapacity(cfg *contract.Config) error {
	start := time.Now()
	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return err
	}
	outwriter.LogForecastHeader(plan, cfg)

	details, totalLast, totalNext, err := ComputeEffectiveDays(plan.Resources, plan.SprintDays)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.WriteCapacityResults(details, totalLast, totalNext, plan.SprintDays, cfg, duration)
}

// ExecuteBaseline resolves and renders the baseline velocity decision.
// It serves as the main entry point for the 'baseline' command.
func ExecuteBaseline(cfg *contract.Config) error {
	plan, err := contract.LoadSprintPlan(cfg.PlanPath)
	if err != nil {
		return err
	}
	outwriter.LogForecastHeader(plan, cfg)

	res, err := ResolveBaseline(plan)
	if err != nil {
		return err
	}
	return outwriter.WriteBaselineResults(res, cfg)
}
