// Package schema has configs, models and constants for all parts of sprintcast.
package schema

// Metrics holds the nine summary figures of a velocity forecast.
// The JSON keys double as display labels so that the persisted report
// document matches the console output field for field.
type Metrics struct {
	SprintDays        float64 `json:"Sprint Days (per resource)"`
	NumResources      int     `json:"Number of Resources"`
	TotalEffDaysLast  float64 `json:"Total Effective Days (Last Sprint)"`
	TotalEffDaysNext  float64 `json:"Total Effective Days (Next Sprint)"`
	FullCapacityDays  float64 `json:"Full Capacity Days (Baseline)"`
	RawScaledVelocity float64 `json:"Raw Scaled Next Velocity"`
	ScaledVelocity    int     `json:"Scaled Next Velocity (floored)"`
	CarryoverPoints   float64 `json:"Carry-over Story Points"`
	AvailablePoints   float64 `json:"Available Story Points for New Work"`
}

// ResourceDetail is the per-resource availability breakdown for one team member.
// Effective-day fields are rounded to two decimals; the unrounded values only
// live in the running totals so rounding error never compounds.
type ResourceDetail struct {
	Name         string  `json:"Name"`
	LastPTODays  float64 `json:"Last PTO Days"`
	LastPctAvail float64 `json:"Last % Avail"`
	EffDaysLast  float64 `json:"Eff Days Last"`
	NextPTODays  float64 `json:"Next PTO Days"`
	NextPctAvail float64 `json:"Next % Avail"`
	EffDaysNext  float64 `json:"Eff Days Next"`
}

// Report is the complete output of one forecast invocation. It is a pure
// value: constructed once, then rendered and optionally persisted.
type Report struct {
	Metrics         Metrics          `json:"metrics"`
	ResourceDetails []ResourceDetail `json:"resource_details"`
}

// BaselineResolution describes how the baseline velocity was chosen.
// It backs the 'baseline' diagnostic command and the MCP baseline tool.
type BaselineResolution struct {
	Source     BaselineSource `json:"source"`
	Window     int            `json:"window"`
	EntryCount int            `json:"entry_count"`
	Value      float64        `json:"value"`
}
