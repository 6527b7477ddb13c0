package core

import (
	"sort"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// ResolveBaseline determines the baseline velocity to scale and reports how
// it was chosen:
//   - The moving average of the last VelocityWindow completed_points when
//     the plan names a velocity log with enough history.
//   - Otherwise the static LastVelocity fallback from the plan.
//
// A window of zero or less means "no averaging window": the fallback is
// returned without touching the log. Windowing is all-or-nothing; fewer
// entries than the window never produce a partial average.
func ResolveBaseline(plan *contract.SprintPlan) (schema.BaselineResolution, error) {
	res := schema.BaselineResolution{
		Source: schema.BaselineFallback,
		Window: plan.VelocityWindow,
		Value:  plan.LastVelocity,
	}
	if plan.VelocityLog == "" || plan.VelocityWindow <= 0 {
		return res, nil
	}

	entries, err := contract.LoadVelocityLog(plan.VelocityLog)
	if err != nil {
		return schema.BaselineResolution{}, err
	}
	res.EntryCount = len(entries)

	// Stable sort: entries with equal sprint keys keep their original
	// relative order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Sprint < entries[j].Sprint
	})

	if len(entries) < plan.VelocityWindow {
		return res, nil
	}

	recent := entries[len(entries)-plan.VelocityWindow:]
	var sum float64
	for _, e := range recent {
		sum += e.CompletedPoints
	}
	res.Source = schema.BaselineMovingAverage
	res.Value = sum / float64(plan.VelocityWindow)
	return res, nil
}

// ResolveBaselineVelocity returns just the baseline scalar.
func ResolveBaselineVelocity(plan *contract.SprintPlan) (float64, error) {
	res, err := ResolveBaseline(plan)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}
