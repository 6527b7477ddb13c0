package core

import (
	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// BuildForecast runs the full velocity pipeline over a validated plan:
// resolve the baseline, compute effective capacity, scale by the capacity
// ratio, net out carry-over, and assemble the report. The computation is
// pure; every invocation with the same plan yields an identical report.
func BuildForecast(plan *contract.SprintPlan) (*schema.Report, error) {
	baseline, err := ResolveBaselineVelocity(plan)
	if err != nil {
		return nil, err
	}

	details, totalLast, totalNext, err := ComputeEffectiveDays(plan.Resources, plan.SprintDays)
	if err != nil {
		return nil, err
	}

	raw, scaled, err := ScaleVelocity(baseline, totalLast, totalNext)
	if err != nil {
		return nil, err
	}

	available := max(float64(scaled)-plan.CarryoverPoints, 0)

	return &schema.Report{
		Metrics: schema.Metrics{
			SprintDays:        plan.SprintDays,
			NumResources:      len(details),
			TotalEffDaysLast:  contract.Round2(totalLast),
			TotalEffDaysNext:  contract.Round2(totalNext),
			FullCapacityDays:  plan.SprintDays * float64(len(details)),
			RawScaledVelocity: contract.Round2(raw),
			ScaledVelocity:    scaled,
			CarryoverPoints:   plan.CarryoverPoints,
			AvailablePoints:   available,
		},
		ResourceDetails: details,
	}, nil
}
