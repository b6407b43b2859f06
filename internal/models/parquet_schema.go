package models

// ParquetTextDiffRow is the Parquet schema for one paragraph difference.
// Position and text columns of the missing side are null for INSERT and DELETE rows.
type ParquetTextDiffRow struct {
	RunID         string  `parquet:"run_id"`
	FileA         string  `parquet:"file_a"`
	FileB         string  `parquet:"file_b"`
	Ordinal       int32   `parquet:"ordinal"` // 1-based position in the diff list
	Kind          string  `parquet:"kind"`
	PageA         *int32  `parquet:"page_a,optional"`
	IndexInPageA  *int32  `parquet:"index_in_page_a,optional"`
	GlobalIndexA  *int32  `parquet:"global_index_a,optional"`
	TextA         *string `parquet:"text_a,optional"`
	PageB         *int32  `parquet:"page_b,optional"`
	IndexInPageB  *int32  `parquet:"index_in_page_b,optional"`
	GlobalIndexB  *int32  `parquet:"global_index_b,optional"`
	TextB         *string `parquet:"text_b,optional"`
	Similarity    float64 `parquet:"similarity"`
	Description   string  `parquet:"description"`
	GeneratedAtMs int64   `parquet:"generated_at_ms"` // Unix milliseconds
}
