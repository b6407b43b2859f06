package reporter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, path string) []models.ParquetTextDiffRow {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	stat, err := f.Stat()
	require.NoError(t, err)

	pqFile, err := parquet.OpenFile(f, stat.Size())
	require.NoError(t, err)

	reader := parquet.NewReader(pqFile)
	var rows []models.ParquetTextDiffRow
	for {
		var row models.ParquetTextDiffRow
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestParquetExporter_WriteFile(t *testing.T) {
	for _, codec := range []string{"zstd", "gzip", "snappy", "none"} {
		t.Run(codec, func(t *testing.T) {
			cfg := config.NewDefaultReporterConfig()
			cfg.ParquetCompression = codec
			pe := NewParquetExporter(cfg, zerolog.Nop())

			path := filepath.Join(t.TempDir(), "diffs.parquet")
			require.NoError(t, pe.WriteFile(path, fixtureReport()))

			rows := readRows(t, path)
			require.Len(t, rows, 2)

			replace := rows[0]
			assert.Equal(t, "run-1", replace.RunID)
			assert.Equal(t, int32(1), replace.Ordinal)
			assert.Equal(t, "REPLACE", replace.Kind)
			require.NotNil(t, replace.PageA)
			assert.Equal(t, int32(1), *replace.PageA)
			require.NotNil(t, replace.TextB)
			assert.Equal(t, "Beta changed paragraph", *replace.TextB)
			assert.InDelta(t, 0.7777, replace.Similarity, 1e-9)

			insert := rows[1]
			assert.Equal(t, "INSERT", insert.Kind)
			assert.Nil(t, insert.PageA)
			assert.Nil(t, insert.TextA)
			require.NotNil(t, insert.GlobalIndexB)
			assert.Equal(t, int32(3), *insert.GlobalIndexB)
		})
	}
}

func TestParquetExporter_BuildRowsEmpty(t *testing.T) {
	pe := NewParquetExporter(config.NewDefaultReporterConfig(), zerolog.Nop())
	assert.Empty(t, pe.BuildRows(emptyReport()))
}
