package core

import (
	"math"

	"github.com/sprintcast/sprintcast/internal/contract"
)

// ScaleVelocity scales the baseline velocity by the ratio of next-sprint to
// last-sprint effective days. It returns both the unrounded ratio-scaled
// value and the floored integer. Floor, not round: fractional story points
// cannot be claimed as committable capacity.
//
// A non-positive totalLast is a validation error for any baseline value,
// including zero; scaling by a meaningless capacity baseline must never
// silently produce infinity.
func ScaleVelocity(baseline, totalLast, totalNext float64) (float64, int, error) {
	if totalLast <= 0 {
		return 0, 0, &contract.ValidationError{
			Message: "cannot scale velocity: total effective days last sprint is zero or negative",
		}
	}
	raw := baseline * (totalNext / totalLast)
	return raw, int(math.Floor(raw)), nil
}
