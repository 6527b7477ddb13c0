// Package parquet provides data structures and functions for exporting
// forecast reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/sprintcast/sprintcast/schema"
)

// MetricsRecord is the columnar form of the forecast metrics summary.
type MetricsRecord struct {
	SprintDays        float64 `parquet:"sprint_days,snappy"`
	NumResources      int32   `parquet:"num_resources,snappy"`
	TotalEffDaysLast  float64 `parquet:"total_eff_days_last,snappy"`
	TotalEffDaysNext  float64 `parquet:"total_eff_days_next,snappy"`
	FullCapacityDays  float64 `parquet:"full_capacity_days,snappy"`
	RawScaledVelocity float64 `parquet:"raw_scaled_velocity,snappy"`
	ScaledVelocity    int32   `parquet:"scaled_velocity,snappy"`
	CarryoverPoints   float64 `parquet:"carryover_points,snappy"`
	AvailablePoints   float64 `parquet:"available_points,snappy"`
}

// ResourceRecord is the columnar form of one resource breakdown row.
type ResourceRecord struct {
	Name         string  `parquet:"name,snappy"`
	LastPTODays  float64 `parquet:"last_pto_days,snappy"`
	LastPctAvail float64 `parquet:"last_pct_avail,snappy"`
	EffDaysLast  float64 `parquet:"eff_days_last,snappy"`
	NextPTODays  float64 `parquet:"next_pto_days,snappy"`
	NextPctAvail float64 `parquet:"next_pct_avail,snappy"`
	EffDaysNext  float64 `parquet:"eff_days_next,snappy"`
}

// ConvertMetrics converts the report metrics into a single-row record set.
func ConvertMetrics(m schema.Metrics) []MetricsRecord {
	return []MetricsRecord{{
		SprintDays:        m.SprintDays,
		NumResources:      int32(m.NumResources),
		TotalEffDaysLast:  m.TotalEffDaysLast,
		TotalEffDaysNext:  m.TotalEffDaysNext,
		FullCapacityDays:  m.FullCapacityDays,
		RawScaledVelocity: m.RawScaledVelocity,
		ScaledVelocity:    int32(m.ScaledVelocity),
		CarryoverPoints:   m.CarryoverPoints,
		AvailablePoints:   m.AvailablePoints,
	}}
}

// ConvertResources converts the resource breakdown into parquet records.
func ConvertResources(details []schema.ResourceDetail) []ResourceRecord {
	records := make([]ResourceRecord, len(details))
	for i, d := range details {
		records[i] = ResourceRecord{
			Name:         d.Name,
			LastPTODays:  d.LastPTODays,
			LastPctAvail: d.LastPctAvail,
			EffDaysLast:  d.EffDaysLast,
			NextPTODays:  d.NextPTODays,
			NextPctAvail: d.NextPctAvail,
			EffDaysNext:  d.EffDaysNext,
		}
	}
	return records
}

// WriteReportParquet writes the full report as two sibling Parquet files,
// one for the metrics summary and one for the resource breakdown.
func WriteReportParquet(report *schema.Report, outputFile string) error {
	metricsFile := outputFile + ".metrics.parquet"
	if err := writeParquet(ConvertMetrics(report.Metrics), metricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}

	resourcesFile := outputFile + ".resources.parquet"
	if err := writeParquet(ConvertResources(report.ResourceDetails), resourcesFile); err != nil {
		return fmt.Errorf("failed to write resources: %w", err)
	}
	return nil
}

// WriteResourcesParquet writes only the resource breakdown to a Parquet file.
func WriteResourcesParquet(details []schema.ResourceDetail, outputFile string) error {
	resourcesFile := outputFile + ".resources.parquet"
	if err := writeParquet(ConvertResources(details), resourcesFile); err != nil {
		return fmt.Errorf("failed to write resources: %w", err)
	}
	return nil
}

// writeParquet writes a slice of records to a Parquet file using struct
// schema inference from the record tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
