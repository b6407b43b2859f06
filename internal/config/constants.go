package config

const (
	// Log Defaults
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Loader Defaults
	DefaultLoaderMaxFileSizeMB = 200

	// Reporter Defaults
	DefaultReporterTitle            = "Document Comparison Report"
	DefaultReporterMaxSnippetLength = 200

	// History Defaults
	DefaultHistoryDBPath = "database/history/comparison_history.db"

	// ConfigPathEnvVar names the environment variable holding the config file path
	ConfigPathEnvVar = "PDFDIFF_CONFIG_PATH"
)
