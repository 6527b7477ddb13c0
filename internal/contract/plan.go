package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/sprintcast/sprintcast/schema"
)

// Default values for sprint plan documents.
const (
	DefaultSprintDays     = 10
	DefaultVelocityWindow = 4
)

// requiredResourceFields are the numeric fields every resource must carry,
// in validation order.
var requiredResourceFields = []string{
	"last_pto_days",
	"last_pct_avail",
	"next_pto_days",
	"next_pct_avail",
}

// SprintPlan is the validated sprint plan document. All defaults are
// applied and every resource field is known to be numeric; range
// invariants are enforced later by the capacity calculator.
type SprintPlan struct {
	SprintDays      float64
	LastVelocity    float64
	CarryoverPoints float64
	VelocityWindow  int
	VelocityLog     string
	Resources       []Resource
}

// Resource is one team member's availability inputs for the last and next
// sprint.
type Resource struct {
	Name         string
	LastPTODays  float64
	LastPctAvail float64
	NextPTODays  float64
	NextPctAvail float64
}

// sprintPlanRaw mirrors the plan document before validation. Pointers
// distinguish "absent" from "zero" so defaults only apply when a field is
// genuinely missing. Resources stay untyped until per-field validation.
type sprintPlanRaw struct {
	SprintDays      *float64         `mapstructure:"sprint_days"`
	LastVelocity    *float64         `mapstructure:"last_velocity"`
	CarryoverPoints *float64         `mapstructure:"carryover_points"`
	VelocityWindow  *int             `mapstructure:"velocity_window"`
	VelocityLog     string           `mapstructure:"velocity_log"`
	Resources       []map[string]any `mapstructure:"resources"`
}

// LoadSprintPlan reads a plan document (JSON or YAML) from path and
// validates it into a SprintPlan. Unreadable or malformed documents yield
// a ConfigLoadError; invalid field values yield a ValidationError.
func LoadSprintPlan(path string) (*SprintPlan, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}

	raw := &sprintPlanRaw{}
	if err := v.Unmarshal(raw); err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	return buildSprintPlan(raw)
}

// buildSprintPlan applies documented defaults and validates plan-level
// scalars plus per-resource field presence and type.
func buildSprintPlan(raw *sprintPlanRaw) (*SprintPlan, error) {
	plan := &SprintPlan{
		SprintDays:     DefaultSprintDays,
		VelocityWindow: DefaultVelocityWindow,
		VelocityLog:    raw.VelocityLog,
	}

	if raw.SprintDays != nil {
		plan.SprintDays = *raw.SprintDays
	}
	if raw.LastVelocity != nil {
		plan.LastVelocity = *raw.LastVelocity
	}
	if raw.CarryoverPoints != nil {
		plan.CarryoverPoints = *raw.CarryoverPoints
	}
	if raw.VelocityWindow != nil {
		plan.VelocityWindow = *raw.VelocityWindow
	}

	if plan.SprintDays <= 0 {
		return nil, &ValidationError{Field: "sprint_days", Message: fmt.Sprintf("sprint_days must be positive (received %g)", plan.SprintDays)}
	}
	if plan.LastVelocity < 0 {
		return nil, &ValidationError{Field: "last_velocity", Message: fmt.Sprintf("last_velocity cannot be negative (received %g)", plan.LastVelocity)}
	}
	if plan.CarryoverPoints < 0 {
		return nil, &ValidationError{Field: "carryover_points", Message: fmt.Sprintf("carryover_points cannot be negative (received %g)", plan.CarryoverPoints)}
	}
	if raw.Resources == nil {
		return nil, &ValidationError{Field: "resources", Message: "plan is missing required field 'resources'"}
	}

	plan.Resources = make([]Resource, 0, len(raw.Resources))
	for idx, m := range raw.Resources {
		res, err := buildResource(m, idx)
		if err != nil {
			return nil, err
		}
		plan.Resources = append(plan.Resources, res)
	}
	return plan, nil
}

// buildResource validates presence and numeric type of the four required
// fields for a single resource record. First failure wins.
func buildResource(m map[string]any, idx int) (Resource, error) {
	name := fmt.Sprintf("resource_%d", idx)
	if s, ok := m["name"].(string); ok && s != "" {
		name = s
	}

	for _, key := range requiredResourceFields {
		if _, ok := m[key]; !ok {
			return Resource{}, &ValidationError{Resource: name, Field: key, Message: "is missing"}
		}
	}

	values := make(map[string]float64, len(requiredResourceFields))
	for _, key := range requiredResourceFields {
		n, ok := toNumber(m[key])
		if !ok {
			return Resource{}, &ValidationError{Resource: name, Field: key, Message: "must be a number"}
		}
		values[key] = n
	}

	return Resource{
		Name:         name,
		LastPTODays:  values["last_pto_days"],
		LastPctAvail: values["last_pct_avail"],
		NextPTODays:  values["next_pto_days"],
		NextPctAvail: values["next_pct_avail"],
	}, nil
}

// toNumber reports a decoded document value as float64. Booleans and
// numeric strings are deliberately rejected: a plan author writing "5"
// gets a validation error, not a silent coercion.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// LoadVelocityLog reads the historical sprint log, a JSON array of entries.
// Missing entry keys default to zero via the zero value of the struct.
func LoadVelocityLog(path string) ([]schema.VelocityLogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	var entries []schema.VelocityLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &ConfigLoadError{Path: path, Err: err}
	}
	return entries, nil
}
