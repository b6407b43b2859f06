package reporter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ParquetExporter writes text differences as Parquet rows, one per TextDiff
type ParquetExporter struct {
	config config.ReporterConfig
	logger zerolog.Logger
}

// NewParquetExporter creates a new ParquetExporter
func NewParquetExporter(cfg config.ReporterConfig, logger zerolog.Logger) *ParquetExporter {
	return &ParquetExporter{
		config: cfg,
		logger: logger.With().Str("component", "ParquetExporter").Logger(),
	}
}

// BuildRows converts the report's text differences into Parquet rows
func (pe *ParquetExporter) BuildRows(report *ComparisonReport) []models.ParquetTextDiffRow {
	generatedAt := report.GeneratedAt.UnixMilli()
	rows := make([]models.ParquetTextDiffRow, 0, len(report.TextDiffs))
	for i, d := range report.TextDiffs {
		row := models.ParquetTextDiffRow{
			RunID:         report.RunID,
			FileA:         report.FileA,
			FileB:         report.FileB,
			Ordinal:       int32(i + 1),
			Kind:          d.Kind.String(),
			Similarity:    d.Similarity,
			Description:   d.Description,
			GeneratedAtMs: generatedAt,
		}
		if d.A != nil {
			row.PageA = int32Ptr(d.A.Page)
			row.IndexInPageA = int32Ptr(d.A.IndexInPage)
			row.GlobalIndexA = int32Ptr(d.A.GlobalIndex)
			row.TextA = stringPtr(d.A.Text)
		}
		if d.B != nil {
			row.PageB = int32Ptr(d.B.Page)
			row.IndexInPageB = int32Ptr(d.B.IndexInPage)
			row.GlobalIndexB = int32Ptr(d.B.GlobalIndex)
			row.TextB = stringPtr(d.B.Text)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteFile writes the report's text differences to a Parquet file at path
func (pe *ParquetExporter) WriteFile(path string, report *ComparisonReport) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return errorwrapper.WrapError(err, "failed to create parquet output directory")
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePermissions)
	if err != nil {
		return errorwrapper.WrapErrorf(err, "opening parquet file '%s'", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			pe.logger.Error().Err(closeErr).Str("path", path).Msg("Failed to close parquet file")
		}
	}()

	rows := pe.BuildRows(report)
	writer := parquet.NewWriter(file, parquet.SchemaOf(models.ParquetTextDiffRow{}), pe.compressionOption())
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errorwrapper.WrapError(err, "writing parquet row")
		}
	}

	if err := writer.Close(); err != nil {
		return errorwrapper.WrapError(err, "closing parquet writer")
	}

	pe.logger.Info().Str("path", path).Int("rows", len(rows)).Msg("Parquet export written")
	return nil
}

func (pe *ParquetExporter) compressionOption() parquet.WriterOption {
	switch strings.ToLower(pe.config.ParquetCompression) {
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "none", "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	case "zstd", "":
		return parquet.Compression(&parquet.Zstd)
	default:
		pe.logger.Warn().Str("codec", pe.config.ParquetCompression).Msg("Unsupported compression codec, defaulting to zstd")
		return parquet.Compression(&parquet.Zstd)
	}
}

func int32Ptr(v int) *int32 {
	i := int32(v)
	return &i
}

func stringPtr(s string) *string {
	return &s
}
