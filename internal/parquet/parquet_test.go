package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
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

func TestMetricsRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(MetricsRecord))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"sprint_days",
		"num_resources",
		"total_eff_days_last",
		"total_eff_days_next",
		"full_capacity_days",
		"raw_scaled_velocity",
		"scaled_velocity",
		"carryover_points",
		"available_points",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestResourceRecordStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(ResourceRecord))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"name",
		"last_pto_days",
		"last_pct_avail",
		"eff_days_last",
		"next_pto_days",
		"next_pct_avail",
		"eff_days_next",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteReportParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "forecast")
	report := sampleReport()

	err := WriteReportParquet(report, outputFile)
	require.NoError(t, err, "Writing Parquet files should not produce error")

	// Both sibling files exist and are non-empty
	for _, suffix := range []string{".metrics.parquet", ".resources.parquet"} {
		info, err := os.Stat(outputFile + suffix)
		require.NoError(t, err, "Output file %s should exist", suffix)
		assert.Greater(t, info.Size(), int64(0), "Output file %s should not be empty", suffix)
	}

	// Read back the resource rows and verify data integrity
	file, err := os.Open(outputFile + ".resources.parquet")
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[ResourceRecord](file)
	defer reader.Close()

	readData := make([]ResourceRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, 2, n, "Should read all records")

	assert.Equal(t, "alice", readData[0].Name)
	assert.InDelta(t, 7, readData[0].EffDaysNext, 0.001)
	assert.Equal(t, "bob", readData[1].Name)
	assert.InDelta(t, 2, readData[1].LastPTODays, 0.001)
}

func TestWriteReportParquetMetricsRow(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "forecast")
	report := sampleReport()

	require.NoError(t, WriteReportParquet(report, outputFile))

	file, err := os.Open(outputFile + ".metrics.parquet")
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[MetricsRecord](file)
	defer reader.Close()

	readData := make([]MetricsRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, 1, n, "Metrics should be a single row")

	assert.InDelta(t, 10, readData[0].SprintDays, 0.001)
	assert.Equal(t, int32(2), readData[0].NumResources)
	assert.Equal(t, int32(10), readData[0].ScaledVelocity)
	assert.InDelta(t, 8, readData[0].AvailablePoints, 0.001)
}

func TestWriteResourcesParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "capacity")

	err := WriteResourcesParquet(sampleReport().ResourceDetails, outputFile)
	require.NoError(t, err)

	info, err := os.Stat(outputFile + ".resources.parquet")
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")
	assert.NoFileExists(t, outputFile+".metrics.parquet")
}

func TestWriteReportParquet_EmptyResources(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "empty")
	report := &schema.Report{Metrics: schema.Metrics{SprintDays: 10}}

	err := WriteReportParquet(report, outputFile)
	require.NoError(t, err, "Writing empty data should not produce error")

	info, err := os.Stat(outputFile + ".resources.parquet")
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteReportParquet_InvalidPath(t *testing.T) {
	err := WriteReportParquet(sampleReport(), "/nonexistent/directory/forecast")
	require.Error(t, err, "Writing to invalid path should produce error")
}
