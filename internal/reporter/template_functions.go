package reporter

import (
	"html"
	"html/template"
	"strings"

	"github.com/aleister1102/pdfdiff/internal/models"
)

// GetTemplateFunctions returns the functions available to report templates
func GetTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"ToLower": strings.ToLower,
	}
}

// renderInlineDiff turns inline diff operations into HTML with <ins> and <del> markup
func renderInlineDiff(diffs []models.ContentDiff) template.HTML {
	var sb strings.Builder
	for _, d := range diffs {
		text := html.EscapeString(d.Text)
		switch d.Operation {
		case models.DiffInsert:
			sb.WriteString(`<ins class="diff-ins">`)
			sb.WriteString(text)
			sb.WriteString(`</ins>`)
		case models.DiffDelete:
			sb.WriteString(`<del class="diff-del">`)
			sb.WriteString(text)
			sb.WriteString(`</del>`)
		default:
			sb.WriteString(text)
		}
	}
	return template.HTML(sb.String())
}
