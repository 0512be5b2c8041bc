package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/folio/core/filter"
	"github.com/huangsam/folio/core/site"
	"github.com/huangsam/folio/schema"
)

// Default values for configuration.
const (
	DefaultLinesPath    = "meta/loc.csv"
	DefaultProjectsPath = "lib/projects.json"
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 1
	DefaultAddr         = "127.0.0.1:8080"
	UnsetProgress       = -1 // Sentinel for --progress when the slider is not positioned
	UnsetStep           = -1 // Sentinel for --step when no scroll step is entered
)

// Config holds the runtime configuration.
// This struct remains the "final, validated" config.
type Config struct {
	LinesPath     string
	ProjectsPath  string
	CommitURLBase string

	Query    string
	Category *string       // Selected year, nil when none
	Brush    *schema.Rect  // Brush rectangle in plot coordinates, nil when none
	Progress *float64      // Slider progress 0..100, nil when unset
	Step     *int          // Scroll step index, nil when unset
	Heading  schema.HeadingLevel

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	BasePath string // Empty resolves the base path from the request host
	Addr     string
	Watch    bool

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Lines          string `mapstructure:"lines"`
	Projects       string `mapstructure:"projects"`
	CommitURL      string `mapstructure:"commit-url"`
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from projectsCmd.Flags() and breakdownCmd.Flags() ---
	Query   string `mapstructure:"query"`
	Year    string `mapstructure:"year"`
	Heading string `mapstructure:"heading"`

	// --- Fields from commitsCmd.Flags() ---
	Brush    string  `mapstructure:"brush"`
	Progress float64 `mapstructure:"progress"`
	Step     int     `mapstructure:"step"`

	// --- Fields from serveCmd.Flags() ---
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base-path"`
	Watch    bool   `mapstructure:"watch"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Category != nil {
		v := *c.Category
		clone.Category = &v
	}
	if c.Brush != nil {
		v := *c.Brush
		clone.Brush = &v
	}
	if c.Progress != nil {
		v := *c.Progress
		clone.Progress = &v
	}
	if c.Step != nil {
		v := *c.Step
		clone.Step = &v
	}
	return &clone
}

// FilterState returns the selection described by the config.
func (c *Config) FilterState() filter.FilterState {
	s := filter.FilterState{}.WithQuery(c.Query)
	if c.Category != nil {
		s = s.ToggleCategory(*c.Category)
	}
	if c.Brush != nil {
		s = s.WithBrush(*c.Brush)
	}
	return s
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(_ context.Context, cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSources(cfg, input); err != nil {
		return err
	}
	if err := processSelection(cfg, input); err != nil {
		return err
	}
	if err := processServe(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", cfg.Width)
	}
	return nil
}

// processSources resolves the data source paths and the commit URL base.
func processSources(cfg *Config, input *ConfigRawInput) error {
	cfg.LinesPath = strings.TrimSpace(input.Lines)
	if cfg.LinesPath == "" {
		cfg.LinesPath = DefaultLinesPath
	}
	cfg.ProjectsPath = strings.TrimSpace(input.Projects)
	if cfg.ProjectsPath == "" {
		cfg.ProjectsPath = DefaultProjectsPath
	}
	cfg.CommitURLBase = strings.TrimSpace(input.CommitURL)
	if cfg.CommitURLBase == "" {
		cfg.CommitURLBase = schema.DefaultCommitURLBase
	}
	if !strings.HasPrefix(cfg.CommitURLBase, "http://") && !strings.HasPrefix(cfg.CommitURLBase, "https://") {
		return fmt.Errorf("commit-url must be an http(s) URL (received %q)", input.CommitURL)
	}
	return nil
}

// processSelection handles the query, year, brush, slider and step inputs.
func processSelection(cfg *Config, input *ConfigRawInput) error {
	cfg.Query = input.Query

	cfg.Category = nil
	if year := strings.TrimSpace(input.Year); year != "" {
		cfg.Category = &year
	}

	heading, err := site.ValidateHeading(input.Heading)
	if err != nil {
		return err
	}
	cfg.Heading = heading

	brush, err := filter.ParseBrush(input.Brush)
	if err != nil {
		return fmt.Errorf("invalid --brush value: %w", err)
	}
	cfg.Brush = brush

	cfg.Progress = nil
	if input.Progress != UnsetProgress {
		if !schema.ValidProgress(input.Progress) {
			return fmt.Errorf("progress must be between %d and %d (received %g)", schema.MinProgress, schema.MaxProgress, input.Progress)
		}
		p := input.Progress
		cfg.Progress = &p
	}

	cfg.Step = nil
	if input.Step != UnsetStep {
		if input.Step < 0 {
			return fmt.Errorf("step cannot be negative (received %d)", input.Step)
		}
		s := input.Step
		cfg.Step = &s
	}
	if cfg.Step != nil && cfg.Progress != nil {
		return fmt.Errorf("--step and --progress cannot be combined")
	}
	return nil
}

// processServe handles the server inputs.
func processServe(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if !strings.Contains(cfg.Addr, ":") {
		return fmt.Errorf("addr must be host:port (received %q)", input.Addr)
	}
	cfg.BasePath = ""
	if bp := strings.TrimSpace(input.BasePath); bp != "" {
		cfg.BasePath = site.NormalizeBasePath(bp)
	}
	cfg.Watch = input.Watch
	return nil
}

// GetStoreDBFilePath returns the path to the SQLite DB file for the stores.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".folio.db"
	}
	return filepath.Join(homeDir, ".folio.db")
}
