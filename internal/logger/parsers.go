package logger

import (
	"strings"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// LogLevelParser handles parsing of log levels
type LogLevelParser struct{}

// NewLogLevelParser creates a new log level parser
func NewLogLevelParser() *LogLevelParser {
	return &LogLevelParser{}
}

// ParseLevel parses string log level to zerolog.Level.
// "warning" and "critical" are accepted as aliases of warn and fatal.
func (llp *LogLevelParser) ParseLevel(levelStr string) (zerolog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(levelStr))
	switch normalized {
	case "warning":
		normalized = "warn"
	case "critical":
		normalized = "fatal"
	}

	level, err := zerolog.ParseLevel(normalized)
	if err != nil || normalized == "" {
		if err == nil {
			err = errorwrapper.NewError("empty level")
		}
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

// LogFormatParser handles parsing of log formats
type LogFormatParser struct{}

// NewLogFormatParser creates a new log format parser
func NewLogFormatParser() *LogFormatParser {
	return &LogFormatParser{}
}

// ParseFormat parses string format to LogFormat
func (lfp *LogFormatParser) ParseFormat(formatStr string) LogFormat {
	switch strings.ToLower(formatStr) {
	case "json":
		return FormatJSON
	case "console":
		return FormatConsole
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
