// Package constants provides shared constants for the calckit application.
package constants

// DateLayout is the calendar date format accepted in calculator inputs and
// used for date output.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxLoanTermMonths is the longest accepted loan term (30 years)
	MaxLoanTermMonths = 360

	// MaxSavingsTermMonths is the longest accepted deposit or savings term (50 years)
	MaxSavingsTermMonths = 600
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "calckit.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "CALCKIT"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Runtime defaults
const (
	// DefaultLocale is used when no locale is requested or the requested one is unsupported
	DefaultLocale = "en"

	// DefaultDebounceMillis is the delay before a pending recalculation fires
	DefaultDebounceMillis = 500

	// DefaultTickMillis drives live countdown and world-clock displays
	DefaultTickMillis = 1000

	// DefaultPreferenceTTLHours bounds how long cached preferences live in redis
	DefaultPreferenceTTLHours = 24 * 30
)

// BalanceEpsilon is the residual loan balance treated as fully repaid.
const BalanceEpsilon = 0.005
