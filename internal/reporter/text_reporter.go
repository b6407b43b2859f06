package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
)

// textPalette colors the parts of a text report
type textPalette struct {
	heading *color.Color
	replace *color.Color
	insert  *color.Color
	delete  *color.Color
	muted   *color.Color
}

func newTextPalette(colorize bool) textPalette {
	p := textPalette{
		heading: color.New(color.Bold),
		replace: color.New(color.FgYellow),
		insert:  color.New(color.FgGreen),
		delete:  color.New(color.FgRed),
		muted:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.heading, p.replace, p.insert, p.delete, p.muted} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p textPalette) kind(k models.TextDiffKind) *color.Color {
	switch k {
	case models.TextDiffInsert:
		return p.insert
	case models.TextDiffDelete:
		return p.delete
	default:
		return p.replace
	}
}

// TextReporter renders the human-readable report
type TextReporter struct {
	config      config.ReporterConfig
	logger      zerolog.Logger
	fileManager *filemanager.FileManager
}

// NewTextReporter creates a new TextReporter
func NewTextReporter(cfg config.ReporterConfig, logger zerolog.Logger) *TextReporter {
	componentLogger := logger.With().Str("component", "TextReporter").Logger()
	return &TextReporter{
		config:      cfg,
		logger:      componentLogger,
		fileManager: filemanager.NewFileManager(componentLogger),
	}
}

// Render returns the report as plain text, with ANSI colors when colorize is set
func (tr *TextReporter) Render(report *ComparisonReport, colorize bool) string {
	palette := newTextPalette(colorize)
	var sb strings.Builder

	tr.writeHeader(&sb, report, palette)

	if !report.HasDifferences() {
		sb.WriteString(NoDifferencesMessage)
		sb.WriteString("\n")
		return sb.String()
	}

	if len(report.ImageDiffs) > 0 {
		tr.writeImageDiffs(&sb, report.ImageDiffs, palette)
	}
	if len(report.TextDiffs) > 0 {
		tr.writeTextDiffs(&sb, report.TextDiffs, palette)
	}
	return sb.String()
}

// Print writes the report to w, colored according to the reporter config
func (tr *TextReporter) Print(w io.Writer, report *ComparisonReport) error {
	if _, err := io.WriteString(w, tr.Render(report, tr.config.ColorOutput)); err != nil {
		return errorwrapper.WrapError(err, "failed to print text report")
	}
	return nil
}

// WriteFile writes the uncolored report to path
func (tr *TextReporter) WriteFile(path string, report *ComparisonReport) error {
	data := []byte(tr.Render(report, false))
	if err := tr.fileManager.WriteFile(path, data, filemanager.DefaultFileWriteOptions()); err != nil {
		return errorwrapper.WrapError(err, "failed to write text report")
	}
	tr.logger.Info().Str("path", path).Msg("Text report written")
	return nil
}

func (tr *TextReporter) writeHeader(sb *strings.Builder, report *ComparisonReport, palette textPalette) {
	title := tr.config.ReportTitle
	if title == "" {
		title = DefaultReportTitle
	}
	s := report.Summary

	sb.WriteString(palette.heading.Sprint(title))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "File A: %s\n", report.FileA)
	fmt.Fprintf(sb, "File B: %s\n", report.FileB)
	fmt.Fprintf(sb, "Generated: %s\n", report.GeneratedAt.Format(ReportTimeLayout))
	fmt.Fprintf(sb, "Pages: A=%d, B=%d | Paragraphs: A=%d, B=%d\n", s.PagesA, s.PagesB, s.ParagraphsA, s.ParagraphsB)
	fmt.Fprintf(sb, "Image differences: %d | Text differences: %d (replaced %d, inserted %d, deleted %d)\n\n",
		s.ImageDiffs, s.TextDiffCount(), s.Replaced, s.Inserted, s.Deleted)
}

func (tr *TextReporter) writeImageDiffs(sb *strings.Builder, diffs []models.ImageDiff, palette textPalette) {
	sb.WriteString(palette.heading.Sprint("Image differences"))
	sb.WriteString("\n")
	for _, d := range diffs {
		fmt.Fprintf(sb, "  Page %d: A=%d, B=%d\n", d.Page, d.ImagesA, d.ImagesB)
	}
	sb.WriteString("\n")
}

func (tr *TextReporter) writeTextDiffs(sb *strings.Builder, diffs []models.TextDiff, palette textPalette) {
	sb.WriteString(palette.heading.Sprint("Text differences"))
	sb.WriteString("\n")

	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"#", "Kind", "A", "B", "Similarity", "Description"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, d := range diffs {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			d.Kind.String(),
			formatPosition(d.A),
			formatPosition(d.B),
			formatSimilarity(d.Similarity),
			d.Description,
		})
	}
	table.Render()
	sb.WriteString("\n")

	snippetLen := tr.config.MaxSnippetLength
	for i, d := range diffs {
		fmt.Fprintf(sb, "[%d] %s\n", i+1, palette.kind(d.Kind).Sprint(d.Kind.String()))
		if d.A != nil {
			fmt.Fprintf(sb, "  A %s: %s\n", palette.muted.Sprint(formatPosition(d.A)), truncateRunes(d.A.Text, snippetLen))
		}
		if d.B != nil {
			fmt.Fprintf(sb, "  B %s: %s\n", palette.muted.Sprint(formatPosition(d.B)), truncateRunes(d.B.Text, snippetLen))
		}
	}
}
