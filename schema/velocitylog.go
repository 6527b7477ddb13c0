package schema

// VelocityLogEntry is one historical sprint record from the velocity log.
// Both fields default to zero when absent from the source document.
type VelocityLogEntry struct {
	Sprint          float64 `json:"sprint"`
	CompletedPoints float64 `json:"completed_points"`
}
