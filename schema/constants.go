package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// BaselineSource represents how the baseline velocity was resolved.
	BaselineSource string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All baseline sources supported.
const (
	// BaselineMovingAverage means the baseline is the arithmetic mean of the
	// most recent velocity-log entries within the configured window.
	BaselineMovingAverage BaselineSource = "moving-average"

	// BaselineFallback means the static last_velocity figure was used, either
	// because no log was configured or because history was insufficient.
	BaselineFallback BaselineSource = "fallback"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}
