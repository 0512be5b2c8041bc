package schema

import "math"

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the preference and dataset stores.
	DatabaseBackend string

	// ColorScheme represents a value of the theme selector.
	ColorScheme string

	// HeadingLevel represents the HTML heading used for each project block.
	HeadingLevel string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All color schemes offered by the theme selector.
const (
	AutoScheme  ColorScheme = "light dark" // default, follows the OS
	LightScheme ColorScheme = "light"
	DarkScheme  ColorScheme = "dark"
)

// DefaultHeading is the heading level used when none is configured.
const DefaultHeading HeadingLevel = "h2"

// Preference keys persisted in the preference store.
const (
	ColorSchemeKey = "colorScheme"
)

// DefaultCommitURLBase prefixes commit identifiers to build their canonical URL.
const DefaultCommitURLBase = "https://github.com/vis-society/lab-7/commit/"

// Progress bounds of the time slider.
const (
	MinProgress = 0
	MaxProgress = 100
)

// ValidProgress reports whether p is a finite slider position within bounds.
func ValidProgress(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= MinProgress && p <= MaxProgress
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidColorSchemes lists all valid color schemes.
var ValidColorSchemes = map[ColorScheme]struct{}{
	AutoScheme:  {},
	LightScheme: {},
	DarkScheme:  {},
}

// ValidHeadingLevels lists all valid heading levels.
var ValidHeadingLevels = map[HeadingLevel]struct{}{
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

// SchemeLabel returns the label shown in the theme selector for a scheme.
func SchemeLabel(s ColorScheme) string {
	switch s {
	case LightScheme:
		return "Light"
	case DarkScheme:
		return "Dark"
	default:
		return "Automatic"
	}
}

// AllColorSchemes returns the schemes in selector order.
var AllColorSchemes = []ColorScheme{AutoScheme, LightScheme, DarkScheme}
