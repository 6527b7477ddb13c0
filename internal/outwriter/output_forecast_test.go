package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *schema.Report {
	return &schema.Report{
		Metrics: schema.Metrics{
			SprintDays:        10,
			NumResources:      2,
			TotalEffDaysLast:  18,
			TotalEffDaysNext:  15,
			FullCapacityDays:  20,
			RawScaledVelocity: 10.83,
			ScaledVelocity:    10,
			CarryoverPoints:   2,
			AvailablePoints:   8,
		},
		ResourceDetails: []schema.ResourceDetail{
			{Name: "alice", LastPctAvail: 100, EffDaysLast: 10, NextPctAvail: 70, EffDaysNext: 7},
			{Name: "bob", LastPTODays: 2, LastPctAvail: 100, EffDaysLast: 8, NextPctAvail: 80, EffDaysNext: 8},
		},
	}
}

func plainConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 2,
		Width:     120,
	}
}

// TestWriteForecastTables verifies the rendered tables carry the metric
// labels, resource names, availability labels, and the timing footer.
func TestWriteForecastTables(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)

	err := writeForecastTables(&buf, sampleReport(), plainConfig(), fmtFloat, 5*time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sprint Days (per resource)")
	assert.Contains(t, out, "Scaled Next Velocity (floored)")
	assert.Contains(t, out, "Available Story Points for New Work")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, contract.ReducedValue)
	assert.Contains(t, out, contract.FullValue)
	assert.Contains(t, out, "Forecast completed in 5ms (2 resources)")
}

// TestWriteForecastCSV verifies the two-section CSV layout: metrics rows,
// an empty separator record, then the resource breakdown.
func TestWriteForecastCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeForecastCSV(&buf, sampleReport(), fmtFloat))

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// Header + 9 metrics + separator + resource header + 2 resources.
	require.Len(t, records, 14)
	assert.Equal(t, []string{"Metric", "Value"}, records[0])
	assert.Equal(t, []string{"Sprint Days (per resource)", "10.00"}, records[1])
	assert.Equal(t, []string{"Scaled Next Velocity (floored)", "10"}, records[7])
	assert.Equal(t, []string{""}, records[10])
	assert.Equal(t, resourceHeader, records[11])
	assert.Equal(t, "alice", records[12][0])
	assert.Equal(t, "8.00", records[13][6])
}

// TestWriteForecastJSON verifies JSON output decodes back into an equal
// report document.
func TestWriteForecastJSON(t *testing.T) {
	var buf bytes.Buffer
	report := sampleReport()

	require.NoError(t, writeJSON(&buf, report))

	var got schema.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *report, got)
}

// TestMetricRowsOrder verifies the fixed display order of the nine metrics.
func TestMetricRowsOrder(t *testing.T) {
	fmtFloat, _ := createFormatters(2)
	rows := metricRows(sampleReport().Metrics, fmtFloat)

	require.Len(t, rows, 9)
	labels := make([]string, 0, len(rows))
	for _, row := range rows {
		require.Len(t, row, 2)
		labels = append(labels, row[0])
	}
	assert.Equal(t, []string{
		"Sprint Days (per resource)",
		"Number of Resources",
		"Total Effective Days (Last Sprint)",
		"Total Effective Days (Next Sprint)",
		"Full Capacity Days (Baseline)",
		"Raw Scaled Next Velocity",
		"Scaled Next Velocity (floored)",
		"Carry-over Story Points",
		"Available Story Points for New Work",
	}, labels)
}

// TestGetMaxTableNameWidth verifies the width override clamps to the
// supported band.
func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "wide terminal caps at max", width: 200, want: 40},
		{name: "standard terminal", width: 100, want: 34},
		{name: "narrow terminal floors at min", width: 60, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := plainConfig()
			cfg.Width = tt.width
			assert.Equal(t, tt.want, getMaxTableNameWidth(cfg))
		})
	}
}
