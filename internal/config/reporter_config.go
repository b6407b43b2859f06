package config

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	ReportTitle      string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	MaxSnippetLength int    `json:"max_snippet_length,omitempty" yaml:"max_snippet_length,omitempty" validate:"min=0"`
	ColorOutput      bool   `json:"color_output" yaml:"color_output"`
	// ParquetCompression is one of zstd, gzip, snappy or none
	ParquetCompression string `json:"parquet_compression,omitempty" yaml:"parquet_compression,omitempty" validate:"omitempty,oneof=zstd gzip snappy none"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		ReportTitle:        DefaultReporterTitle,
		MaxSnippetLength:   DefaultReporterMaxSnippetLength,
		ColorOutput:        false,
		ParquetCompression: "zstd",
	}
}
