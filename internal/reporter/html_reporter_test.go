package reporter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/differ"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHTML(t *testing.T, report *ComparisonReport) *goquery.Document {
	t.Helper()
	hr, err := NewHTMLReporter(config.NewDefaultReporterConfig(), zerolog.Nop())
	require.NoError(t, err)

	data, err := hr.Render(report)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	return doc
}

func TestHTMLReporter_Render(t *testing.T) {
	doc := renderHTML(t, fixtureReport())

	assert.Equal(t, DefaultReportTitle, doc.Find("h1").Text())
	assert.Equal(t, "a.pdf", doc.Find("#file-a").Text())
	assert.Equal(t, "b.pdf", doc.Find("#file-b").Text())
	assert.Equal(t, "1", doc.Find("#count-replaced").Text())
	assert.Equal(t, "1", doc.Find("#count-inserted").Text())
	assert.Equal(t, 1, doc.Find("tr.image-diff").Length())
	assert.Equal(t, 0, doc.Find(".no-diff").Length())

	articles := doc.Find("article.text-diff")
	require.Equal(t, 2, articles.Length())

	replace := articles.First()
	assert.True(t, replace.HasClass("kind-replace"))
	assert.Equal(t, "0.78", replace.Find(".similarity").Text())
	assert.Positive(t, replace.Find("p.inline ins.diff-ins").Length())
	assert.Contains(t, replace.Find("p.inline ins.diff-ins").Text(), "changed")
	assert.Contains(t, replace.Find("p.edits").Text(), "0 deletions")

	insert := articles.Last()
	assert.True(t, insert.HasClass("kind-insert"))
	assert.Equal(t, 0, insert.Find("p.inline").Length())
	assert.Equal(t, 0, insert.Find("p.edits").Length())
	// Paragraph text is escaped, not interpreted as markup.
	assert.Equal(t, "Delta <paragraph>", insert.Find("p.text-b").Text())
}

func TestHTMLReporter_NoDifferences(t *testing.T) {
	doc := renderHTML(t, emptyReport())

	assert.Equal(t, NoDifferencesMessage, doc.Find(".no-diff").Text())
	assert.Equal(t, 0, doc.Find("#text-diffs").Length())
	assert.Equal(t, 0, doc.Find("#image-diffs").Length())
}

func TestHTMLReporter_WriteFile(t *testing.T) {
	hr, err := NewHTMLReporter(config.NewDefaultReporterConfig(), zerolog.Nop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, hr.WriteFile(path, fixtureReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<style>")
	assert.Contains(t, string(data), "diff-ins")
}

func TestFormatEditSummary(t *testing.T) {
	assert.Equal(t, "no textual edits", formatEditSummary(differ.DiffStatistics{IsIdentical: true}))
	assert.Equal(t, "1 insertion, 2 deletions", formatEditSummary(differ.DiffStatistics{Insertions: 1, Deletions: 2}))
}
