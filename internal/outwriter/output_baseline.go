package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/schema"
)

// WriteBaselineResults outputs the baseline velocity resolution,
// dispatching based on the output format configured. Parquet is not
// offered here; a single scalar decision has no columnar use.
func WriteBaselineResults(res schema.BaselineResolution, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeJSON(w, res)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			header := []string{"source", "window", "entry_count", "value"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				record := []string{
					string(res.Source),
					strconv.Itoa(res.Window),
					strconv.Itoa(res.EntryCount),
					fmtFloat(res.Value),
				}
				return csvWriter.Write(record)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for baseline")
	default:
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeBaselineText(w, res, fmtFloat)
		}, "Wrote baseline")
	}
	return nil
}

// writeBaselineText renders the baseline decision as plain lines.
func writeBaselineText(w io.Writer, res schema.BaselineResolution, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Baseline velocity: %s\n", fmtFloat(res.Value)); err != nil {
		return err
	}
	if res.Source == schema.BaselineMovingAverage {
		_, err := fmt.Fprintf(w, "Source: moving average over the last %d of %d log entries\n", res.Window, res.EntryCount)
		return err
	}
	_, err := fmt.Fprintf(w, "Source: fallback to last_velocity (window %d, %d log entries)\n", res.Window, res.EntryCount)
	return err
}
