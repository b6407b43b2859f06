package reporter

import (
	"encoding/json"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/rs/zerolog"
)

// JSONReporter writes the machine-readable report
type JSONReporter struct {
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewJSONReporter creates a new JSONReporter
func NewJSONReporter(logger zerolog.Logger) *JSONReporter {
	componentLogger := logger.With().Str("component", "JSONReporter").Logger()
	return &JSONReporter{
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// Render marshals the report as indented JSON
func (jr *JSONReporter) Render(report *ComparisonReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to marshal JSON report")
	}
	return append(data, '\n'), nil
}

// WriteFile writes the JSON report to path
func (jr *JSONReporter) WriteFile(path string, report *ComparisonReport) error {
	data, err := jr.Render(report)
	if err != nil {
		return err
	}
	if err := jr.fileManager.WriteFile(path, data, filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.WrapError(err, "failed to write JSON report")
	}
	jr.logger.Info().Str("path", path).Int("text_diffs", len(report.TextDiffs)).Msg("JSON report written")
	return nil
}
