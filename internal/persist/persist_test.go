package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

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
			TotalEffDaysNext:  16,
			FullCapacityDays:  20,
			RawScaledVelocity: 12.44,
			ScaledVelocity:    12,
			CarryoverPoints:   2,
			AvailablePoints:   10,
		},
		ResourceDetails: []schema.ResourceDetail{
			{Name: "alice", LastPctAvail: 100, EffDaysLast: 10, NextPctAvail: 80, EffDaysNext: 8},
			{Name: "bob", LastPTODays: 2, LastPctAvail: 100, EffDaysLast: 8, NextPctAvail: 80, EffDaysNext: 8},
		},
	}
}

// TestWriteReport verifies a fresh write lands as valid JSON that decodes
// back into the same report, with no staging artifacts left behind.
func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	report := sampleReport()

	require.NoError(t, WriteReport(path, report, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got schema.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *report, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report.json", entries[0].Name())
}

// TestWriteReportRefusesExisting verifies an existing destination is left
// untouched unless forced.
func TestWriteReportRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("precious"), 0o644))

	err := WriteReport(path, sampleReport(), false)
	require.ErrorIs(t, err, ErrOutputExists)
	assert.Contains(t, err.Error(), path)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "precious", string(data))
}

// TestWriteReportForce verifies force overwrites an existing destination.
func TestWriteReportForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteReport(path, sampleReport(), true))

	var got schema.Report
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 12, got.Metrics.ScaledVelocity)
}

// TestWriteReportMissingParent verifies a destination in a nonexistent
// directory fails the claim without leaving any artifacts behind.
func TestWriteReportMissingParent(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "missing", "report.json")

	err := WriteReport(blocked, sampleReport(), false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutputExists)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

// TestWriteReportRetryAfterRefusal verifies a refused write can succeed on
// retry with force, proving the refusal left no claim in place.
func TestWriteReportRetryAfterRefusal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.ErrorIs(t, WriteReport(path, sampleReport(), false), ErrOutputExists)
	require.NoError(t, WriteReport(path, sampleReport(), true))

	var got schema.Report
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 10.0, got.Metrics.AvailablePoints)
}
