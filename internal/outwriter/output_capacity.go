package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/sprintcast/sprintcast/internal/contract"
	"github.com/sprintcast/sprintcast/internal/parquet"
	"github.com/sprintcast/sprintcast/schema"
)

// capacityResult is the JSON shape for the capacity-only view.
type capacityResult struct {
	ResourceDetails []schema.ResourceDetail `json:"resource_details"`
	TotalEffLast    float64                 `json:"total_effective_days_last"`
	TotalEffNext    float64                 `json:"total_effective_days_next"`
}

// WriteCapacityResults outputs the per-resource breakdown and capacity
// totals, dispatching based on the output format configured.
func WriteCapacityResults(details []schema.ResourceDetail, totalLast, totalNext, sprintDays float64, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		result := capacityResult{
			ResourceDetails: details,
			TotalEffLast:    contract.Round2(totalLast),
			TotalEffNext:    contract.Round2(totalNext),
		}
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			return writeCSVWithHeader(w, resourceHeader, func(csvWriter *csv.Writer) error {
				for _, d := range details {
					if err := csvWriter.Write(resourceRow(d, 0, fmtFloat)); err != nil {
						return fmt.Errorf("failed to write CSV record: %w", err)
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteResourcesParquet(details, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, cfg.UseEmojis, func(w io.Writer) error {
			if err := writeResourceTable(w, details, sprintDays, cfg, fmtFloat); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Totals: %s effective days last sprint, %s next sprint. Completed in %v\n",
				fmtFloat(totalLast), fmtFloat(totalNext), duration)
			return err
		}, "Wrote table")
	}
	return nil
}
