package reporter

import (
	"io"

	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/rs/zerolog"
)

// ReportOutputs names the files to write. Empty paths are skipped.
type ReportOutputs struct {
	TextPath    string
	JSONPath    string
	HTMLPath    string
	ParquetPath string
}

// ReportManager prints the text report and writes every requested report file
type ReportManager struct {
	logger  zerolog.Logger
	text    *TextReporter
	json    *JSONReporter
	html    *HTMLReporter
	parquet *ParquetExporter
}

// NewReportManager creates the reporters for cfg
func NewReportManager(cfg config.ReporterConfig, logger zerolog.Logger) (*ReportManager, error) {
	htmlReporter, err := NewHTMLReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &ReportManager{
		logger:  logger.With().Str("component", "ReportManager").Logger(),
		text:    NewTextReporter(cfg, logger),
		json:    NewJSONReporter(logger),
		html:    htmlReporter,
		parquet: NewParquetExporter(cfg, logger),
	}, nil
}

// Generate prints the text report to stdout and writes the requested files.
// It returns the paths written, in the order text, JSON, HTML, Parquet.
func (rm *ReportManager) Generate(report *ComparisonReport, stdout io.Writer, outputs ReportOutputs) ([]string, error) {
	if err := rm.text.Print(stdout, report); err != nil {
		return nil, err
	}

	writers := []struct {
		path  string
		write func(string, *ComparisonReport) error
	}{
		{outputs.TextPath, rm.text.WriteFile},
		{outputs.JSONPath, rm.json.WriteFile},
		{outputs.HTMLPath, rm.html.WriteFile},
		{outputs.ParquetPath, rm.parquet.WriteFile},
	}

	written := make([]string, 0, len(writers))
	for _, w := range writers {
		if w.path == "" {
			continue
		}
		if err := w.write(w.path, report); err != nil {
			return written, err
		}
		written = append(written, w.path)
	}

	rm.logger.Debug().Strs("paths", written).Msg("Reports generated")
	return written, nil
}
