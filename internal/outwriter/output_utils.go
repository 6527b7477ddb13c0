package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, useEmojis bool, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		prefix := "💾 "
		if !useEmojis {
			prefix = ""
		}
		fmt.Fprintf(os.Stderr, "%s%s to %s\n", prefix, successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// metricRows returns the nine metric fields as ordered label/value pairs.
// Order is fixed for display; it matches the persisted document fields.
func metricRows(m schema.Metrics, fmtFloat func(float64) string) [][]string {
	return [][]string{
		{"Sprint Days (per resource)", fmtFloat(m.SprintDays)},
		{"Number of Resources", strconv.Itoa(m.NumResources)},
		{"Total Effective Days (Last Sprint)", fmtFloat(m.TotalEffDaysLast)},
		{"Total Effective Days (Next Sprint)", fmtFloat(m.TotalEffDaysNext)},
		{"Full Capacity Days (Baseline)", fmtFloat(m.FullCapacityDays)},
		{"Raw Scaled Next Velocity", fmtFloat(m.RawScaledVelocity)},
		{"Scaled Next Velocity (floored)", strconv.Itoa(m.ScaledVelocity)},
		{"Carry-over Story Points", fmtFloat(m.CarryoverPoints)},
		{"Available Story Points for New Work", fmtFloat(m.AvailablePoints)},
	}
}

// resourceRow formats one resource detail record for CSV or table output.
func resourceRow(d schema.ResourceDetail, nameWidth int, fmtFloat func(float64) string) []string {
	return []string{
		contract.TruncateName(d.Name, nameWidth),
		fmtFloat(d.LastPTODays),
		fmtFloat(d.LastPctAvail),
		fmtFloat(d.EffDaysLast),
		fmtFloat(d.NextPTODays),
		fmtFloat(d.NextPctAvail),
		fmtFloat(d.EffDaysNext),
	}
}

// resourceHeader is the column header shared by the CSV and table renderers.
var resourceHeader = []string{
	"Name",
	"Last PTO Days",
	"Last % Avail",
	"Eff Days Last",
	"Next PTO Days",
	"Next % Avail",
	"Eff Days Next",
}
