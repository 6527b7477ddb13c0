package contract

import (
	"testing"

	"github.com/sprintcast/sprintcast/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation; tests mutate one
// field at a time.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		PlanPathStr: "team.json",
		Output:      "text",
		Precision:   DefaultPrecision,
		Color:       "yes",
		Emoji:       "yes",
	}
}

// TestProcessAndValidateHappyPath verifies field transfer and parsing of a
// fully valid input.
func TestProcessAndValidateHappyPath(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.OutputFile = "out.txt"
	input.ReportFile = "report.json"
	input.Force = true
	input.Width = 120

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "team.json", cfg.PlanPath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, "out.txt", cfg.OutputFile)
	assert.Equal(t, "report.json", cfg.ReportFile)
	assert.True(t, cfg.Force)
	assert.Equal(t, 120, cfg.Width)
	assert.True(t, cfg.UseColors)
	assert.True(t, cfg.UseEmojis)
}

// TestProcessAndValidateOutputModes verifies mode normalization and the
// parquet output-file requirement.
func TestProcessAndValidateOutputModes(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		input := validInput()
		input.Output = "JSON"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("unknown mode", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("parquet requires output file", func(t *testing.T) {
		input := validInput()
		input.Output = "parquet"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output-file is required")
	})

	t.Run("parquet with output file", func(t *testing.T) {
		input := validInput()
		input.Output = "parquet"
		input.OutputFile = "report"
		require.NoError(t, ProcessAndValidate(&Config{}, input))
	})
}

// TestProcessAndValidateBounds verifies precision and width limits.
func TestProcessAndValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
		errMsg string
	}{
		{name: "precision zero", mutate: func(i *ConfigRawInput) { i.Precision = 0 }, errMsg: "precision must be between"},
		{name: "precision too high", mutate: func(i *ConfigRawInput) { i.Precision = MaxPrecision + 1 }, errMsg: "precision must be between"},
		{name: "negative width", mutate: func(i *ConfigRawInput) { i.Width = -1 }, errMsg: "width cannot be negative"},
		{name: "bad color", mutate: func(i *ConfigRawInput) { i.Color = "maybe" }, errMsg: "invalid --color value"},
		{name: "bad emoji", mutate: func(i *ConfigRawInput) { i.Emoji = "sometimes" }, errMsg: "invalid --emoji value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
