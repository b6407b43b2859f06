package reporter

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/differ"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/rs/zerolog"
)

// htmlTemplateData wraps the page data with the embedded stylesheet
type htmlTemplateData struct {
	models.DiffReportPageData
	CSS template.CSS
}

// HTMLReporter renders a self-contained HTML report. REPLACE pairs carry an
// inline highlight of what changed inside the paragraph.
type HTMLReporter struct {
	config        config.ReporterConfig
	logger        zerolog.Logger
	template      *template.Template
	css           template.CSS
	diffProcessor *differ.DiffProcessor
	stats         *differ.DiffStatsCalculator
	fileManager   *filemanager.FileManager
}

// NewHTMLReporter parses the embedded template and creates a new HTMLReporter
func NewHTMLReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*HTMLReporter, error) {
	componentLogger := logger.With().Str("component", "HTMLReporter").Logger()

	tmpl, err := template.New(ComparisonReportTemplateName).
		Funcs(GetTemplateFunctions()).
		ParseFS(templatesFS, ComparisonReportTemplatePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML report template")
	}

	css, err := assetsFS.ReadFile(EmbeddedCSSPath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read embedded stylesheet")
	}

	componentLogger.Debug().Str("defined_templates", tmpl.DefinedTemplates()).Msg("HTML report template parsed")

	return &HTMLReporter{
		config:        cfg,
		logger:        componentLogger,
		template:      tmpl,
		css:           template.CSS(css),
		diffProcessor: differ.NewDiffProcessor(differ.DefaultDiffConfig()),
		stats:         differ.NewDiffStatsCalculator(),
		fileManager:   filemanager.NewFileManager(componentLogger),
	}, nil
}

// BuildPageData converts a report into template data
func (hr *HTMLReporter) BuildPageData(report *ComparisonReport) models.DiffReportPageData {
	title := hr.config.ReportTitle
	if title == "" {
		title = DefaultReportTitle
	}

	displays := make([]models.TextDiffDisplay, 0, len(report.TextDiffs))
	for i, d := range report.TextDiffs {
		display := models.TextDiffDisplay{
			Ordinal:     i + 1,
			Kind:        d.Kind.String(),
			PositionA:   formatPosition(d.A),
			PositionB:   formatPosition(d.B),
			TextA:       paragraphText(d.A),
			TextB:       paragraphText(d.B),
			Similarity:  formatSimilarity(d.Similarity),
			Description: d.Description,
		}
		if inline := hr.diffProcessor.InlineDiff(d); inline != nil {
			display.InlineHTML = renderInlineDiff(inline)
			display.EditSummary = formatEditSummary(hr.stats.CalculateStats(inline))
		}
		displays = append(displays, display)
	}

	return models.DiffReportPageData{
		ReportTitle: title,
		GeneratedAt: report.GeneratedAt.Format(ReportTimeLayout),
		FileA:       report.FileA,
		FileB:       report.FileB,
		Summary:     report.Summary,
		ImageDiffs:  report.ImageDiffs,
		TextDiffs:   displays,
	}
}

// Render executes the template for report
func (hr *HTMLReporter) Render(report *ComparisonReport) ([]byte, error) {
	data := htmlTemplateData{
		DiffReportPageData: hr.BuildPageData(report),
		CSS:                hr.css,
	}

	var buf bytes.Buffer
	if err := hr.template.ExecuteTemplate(&buf, ComparisonReportTemplateName, data); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to execute HTML report template")
	}
	return buf.Bytes(), nil
}

// WriteFile writes the HTML report to path
func (hr *HTMLReporter) WriteFile(path string, report *ComparisonReport) error {
	data, err := hr.Render(report)
	if err != nil {
		return err
	}
	if err := hr.fileManager.WriteFile(path, data, filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.WrapError(err, "failed to write HTML report")
	}
	hr.logger.Info().Str("path", path).Msg("HTML report written")
	return nil
}

func formatEditSummary(stats differ.DiffStatistics) string {
	if stats.IsIdentical {
		return "no textual edits"
	}
	return fmt.Sprintf("%s, %s", pluralize(stats.Insertions, "insertion"), pluralize(stats.Deletions, "deletion"))
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
