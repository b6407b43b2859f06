package reporter

const (
	// Embedded template and asset paths
	ComparisonReportTemplateName = "comparison_report.html.tmpl"
	ComparisonReportTemplatePath = "templates/" + ComparisonReportTemplateName
	EmbeddedCSSPath              = "assets/css/comparison_report.css"

	// Report generation defaults
	DefaultReportTitle      = "Document Comparison Report"
	DefaultMaxSnippetLength = 200
	NoDifferencesMessage    = "No differences found."

	// Timestamp layout used in every report
	ReportTimeLayout = "2006-01-02 15:04:05 MST"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
