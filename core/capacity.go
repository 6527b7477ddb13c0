package core

import (
	"fmt"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// ComputeEffectiveDays computes each resource's effective working days for
// the last and next sprint, validating range invariants first:
// every field non-negative, percentages at most 100, PTO at most sprintDays.
// First failure wins and names the resource and field.
//
// Per-resource figures are rounded to two decimals in the returned records;
// the totals accumulate unrounded values so rounding error never compounds.
// Records are returned in input order.
func ComputeEffectiveDays(resources []contract.Resource, sprintDays float64) ([]schema.ResourceDetail, float64, float64, error) {
	details := make([]schema.ResourceDetail, 0, len(resources))
	var totalLast, totalNext float64

	for _, r := range resources {
		if err := validateResourceRanges(r, sprintDays); err != nil {
			return nil, 0, 0, err
		}

		lastEff := (sprintDays - r.LastPTODays) * (r.LastPctAvail / 100)
		nextEff := (sprintDays - r.NextPTODays) * (r.NextPctAvail / 100)
		totalLast += lastEff
		totalNext += nextEff

		details = append(details, schema.ResourceDetail{
			Name:         r.Name,
			LastPTODays:  r.LastPTODays,
			LastPctAvail: r.LastPctAvail,
			EffDaysLast:  contract.Round2(lastEff),
			NextPTODays:  r.NextPTODays,
			NextPctAvail: r.NextPctAvail,
			EffDaysNext:  contract.Round2(nextEff),
		})
	}
	return details, totalLast, totalNext, nil
}

// validateResourceRanges enforces the numeric invariants for one resource,
// stage by stage: non-negativity, percentage bounds, then PTO bounds.
func validateResourceRanges(r contract.Resource, sprintDays float64) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"last_pto_days", r.LastPTODays},
		{"last_pct_avail", r.LastPctAvail},
		{"next_pto_days", r.NextPTODays},
		{"next_pct_avail", r.NextPctAvail},
	}

	for _, f := range fields {
		if f.value < 0 {
			return &contract.ValidationError{Resource: r.Name, Field: f.name, Message: "cannot be negative"}
		}
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"last_pct_avail", r.LastPctAvail},
		{"next_pct_avail", r.NextPctAvail},
	} {
		if f.value > 100 {
			return &contract.ValidationError{Resource: r.Name, Field: f.name, Message: "must be between 0 and 100"}
		}
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"last_pto_days", r.LastPTODays},
		{"next_pto_days", r.NextPTODays},
	} {
		if f.value > sprintDays {
			return &contract.ValidationError{
				Resource: r.Name,
				Field:    f.name,
				Message:  fmt.Sprintf("(%g) exceeds sprint days (%g)", f.value, sprintDays),
			}
		}
	}
	return nil
}
