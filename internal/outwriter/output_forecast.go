package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/internal/parquet"
	"github.com/sprintcast/sprintcast/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteForecastResults outputs the full report, dispatching based on the
// output format configured.
func WriteForecastResults(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeForecastCSV(w, report, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteReportParquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeForecastTables(w, report, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeForecastCSV writes the metrics rows followed by the resource
// breakdown, separated by an empty record.
func writeForecastCSV(w io.Writer, report *schema.Report, fmtFloat func(float64) string) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range metricRows(report.Metrics, fmtFloat) {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if err := csvWriter.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write CSV separator: %w", err)
	}

	if err := csvWriter.Write(resourceHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, d := range report.ResourceDetails {
		// No truncation outside table mode
		if err := csvWriter.Write(resourceRow(d, 0, fmtFloat)); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// writeForecastTables generates and writes the human-readable metrics and
// resource tables.
func writeForecastTables(w io.Writer, report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if err := writeMetricsTable(w, report.Metrics, fmtFloat); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeResourceTable(w, report.ResourceDetails, report.Metrics.SprintDays, cfg, fmtFloat); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Forecast completed in %v (%d resources)\n", duration, len(report.ResourceDetails)); err != nil {
		return err
	}
	return nil
}

// writeMetricsTable renders the nine-field metrics summary.
func writeMetricsTable(w io.Writer, m schema.Metrics, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(metricRows(m, fmtFloat)); err != nil {
		return err
	}
	return table.Render()
}

// writeResourceTable renders the per-resource breakdown with an
// availability label column.
func writeResourceTable(w io.Writer, details []schema.ResourceDetail, sprintDays float64, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header(append(append([]string{}, resourceHeader...), "Avail"))
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)

	var data [][]string
	for _, d := range details {
		row := resourceRow(d, nameWidth, fmtFloat)
		if cfg.UseColors {
			row = append(row, contract.GetColorAvailabilityLabel(d.EffDaysNext, sprintDays))
		} else {
			row = append(row, contract.GetPlainAvailabilityLabel(d.EffDaysNext, sprintDays))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
