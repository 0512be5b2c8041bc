package contract

import (
	"context"
	"math"
	"testing"

	"github.com/huangsam/folio/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = context.Background()

// validInput returns raw input matching the registered defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:        DefaultResultLimit,
		Precision:    DefaultPrecision,
		Output:       "text",
		StoreBackend: "sqlite",
		Emoji:        "no",
		Color:        "yes",
		Progress:     UnsetProgress,
		Step:         UnsetStep,
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(t0, cfg, validInput()))

	assert.Equal(t, DefaultLinesPath, cfg.LinesPath)
	assert.Equal(t, DefaultProjectsPath, cfg.ProjectsPath)
	assert.Equal(t, schema.DefaultCommitURLBase, cfg.CommitURLBase)
	assert.Equal(t, schema.DefaultHeading, cfg.Heading)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Nil(t, cfg.Category)
	assert.Nil(t, cfg.Brush)
	assert.Nil(t, cfg.Progress)
	assert.Nil(t, cfg.Step)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.UseEmojis)
	assert.Empty(t, cfg.BasePath)
}

func TestProcessAndValidateSelection(t *testing.T) {
	input := validInput()
	input.Query = "bike"
	input.Year = " 2024 "
	input.Brush = "0,0,500,300"
	input.Progress = 42
	input.Heading = "H3"
	input.BasePath = "portfolio"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(t0, cfg, input))

	assert.Equal(t, "bike", cfg.Query)
	require.NotNil(t, cfg.Category)
	assert.Equal(t, "2024", *cfg.Category)
	require.NotNil(t, cfg.Brush)
	assert.Equal(t, 500.0, cfg.Brush.To.X)
	require.NotNil(t, cfg.Progress)
	assert.Equal(t, 42.0, *cfg.Progress)
	assert.Equal(t, schema.HeadingLevel("h3"), cfg.Heading)
	assert.Equal(t, "/portfolio/", cfg.BasePath)

	state := cfg.FilterState()
	assert.Equal(t, "bike", state.Query)
	assert.Equal(t, "2024", *state.Category)
	assert.NotNil(t, state.Brush)
}

func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(in *ConfigRawInput)
		contains string
	}{
		{"Zero limit", func(in *ConfigRawInput) { in.Limit = 0 }, "limit must be greater than 0"},
		{"Limit too high", func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, "cannot exceed"},
		{"Bad precision", func(in *ConfigRawInput) { in.Precision = 3 }, "precision must be 1 or 2"},
		{"Bad output", func(in *ConfigRawInput) { in.Output = "xml" }, "invalid output format"},
		{"Parquet without file", func(in *ConfigRawInput) { in.Output = "parquet" }, "parquet output requires --output-file"},
		{"Negative width", func(in *ConfigRawInput) { in.Width = -1 }, "width cannot be negative"},
		{"Bad emoji", func(in *ConfigRawInput) { in.Emoji = "maybe" }, "invalid --emoji value"},
		{"Bad color", func(in *ConfigRawInput) { in.Color = "sometimes" }, "invalid --color value"},
		{"Bad commit url", func(in *ConfigRawInput) { in.CommitURL = "ftp://x" }, "commit-url must be an http(s) URL"},
		{"Bad heading", func(in *ConfigRawInput) { in.Heading = "h9" }, "invalid heading level"},
		{"Bad brush", func(in *ConfigRawInput) { in.Brush = "1,2" }, "invalid --brush value"},
		{"Progress too high", func(in *ConfigRawInput) { in.Progress = 101 }, "progress must be between 0 and 100"},
		{"Progress NaN", func(in *ConfigRawInput) { in.Progress = math.NaN() }, "progress must be between 0 and 100"},
		{"Progress infinite", func(in *ConfigRawInput) { in.Progress = math.Inf(-1) }, "progress must be between 0 and 100"},
		{"Non-finite brush", func(in *ConfigRawInput) { in.Brush = "NaN,0,1,1" }, "invalid --brush value"},
		{"Negative step", func(in *ConfigRawInput) { in.Step = -3 }, "step cannot be negative"},
		{"Step with progress", func(in *ConfigRawInput) { in.Step = 1; in.Progress = 10 }, "cannot be combined"},
		{"Bad addr", func(in *ConfigRawInput) { in.Addr = "localhost" }, "addr must be host:port"},
		{"Bad backend", func(in *ConfigRawInput) { in.StoreBackend = "redis" }, "invalid store backend"},
		{"MySQL without conn", func(in *ConfigRawInput) { in.StoreBackend = "mysql" }, "store-db-connect is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			err := ProcessAndValidate(t0, &Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		conn    string
		hasErr  bool
	}{
		{"SQLite needs nothing", schema.SQLiteBackend, "", false},
		{"None needs nothing", schema.NoneBackend, "", false},
		{"MySQL valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/folio", false},
		{"MySQL missing tcp", schema.MySQLBackend, "user:pass@localhost/folio", true},
		{"MySQL missing db", schema.MySQLBackend, "user:pass@tcp(localhost:3306)", true},
		{"Postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 dbname=folio", false},
		{"Postgres missing host", schema.PostgreSQLBackend, "dbname=folio", true},
		{"Postgres missing db", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.conn)
			assert.Equal(t, tt.hasErr, err != nil)
		})
	}
}

func TestConfigClone(t *testing.T) {
	year := "2024"
	progress := 10.0
	step := 2
	cfg := &Config{Category: &year, Progress: &progress, Step: &step, Brush: &schema.Rect{}}

	clone := cfg.Clone()
	*clone.Category = "2023"
	*clone.Progress = 90
	*clone.Step = 0
	clone.Brush.To.X = 5

	assert.Equal(t, "2024", *cfg.Category)
	assert.Equal(t, 10.0, *cfg.Progress)
	assert.Equal(t, 2, *cfg.Step)
	assert.Equal(t, 0.0, cfg.Brush.To.X)
}

func TestGetStoreDBFilePath(t *testing.T) {
	assert.Contains(t, GetStoreDBFilePath(), ".folio.db")
}
