package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeHistoryConfig(t *testing.T, dir string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "history", "runs.db")
	return writeFile(t, dir, "config.yaml", fmt.Sprintf(`log_config:
  log_level: error
history_config:
  enabled: true
  db_path: %s
`, dbPath))
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("PDFDIFF_CONFIG_PATH", "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_UsageErrors(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "a.pdf", "%PDF-1.4")

	tests := []struct {
		name string
		args []string
	}{
		{"no files", nil},
		{"one file", []string{existing}},
		{"missing file", []string{existing, filepath.Join(dir, "missing.pdf")}},
		{"directory", []string{existing, dir}},
		{"missing config", []string{"-c", filepath.Join(dir, "nope.yaml"), existing, existing}},
		{"invalid log level", []string{"-log-level", "loud", existing, existing}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "-parquet")
}

func TestRun_InvalidConfigContent(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "reporter_config:\n  parquet_compression: lzma\n")
	a := writeFile(t, dir, "a.pdf", "%PDF-1.4")

	code, _, stderr := runCLI(t, "-c", cfg, a, a)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "validation")
}

func TestRun_UnsupportedFormatFails(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.txt", "two")

	code, stdout, _ := runCLI(t, "-log-level", "error", a, b)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
}

func TestRun_FailedRunIsRecordedInHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := writeHistoryConfig(t, dir)
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.txt", "two")

	code, _, _ := runCLI(t, "-c", cfg, a, b)
	require.Equal(t, exitError, code)

	code, stdout, _ := runCLI(t, "-c", cfg, "-history", "10")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "FAILED")
	assert.Contains(t, stdout, a)
	assert.Contains(t, stdout, b)
}

func TestRun_HistoryEmptyAndDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := writeHistoryConfig(t, dir)

	code, stdout, _ := runCLI(t, "-c", cfg, "-history", "3")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "No comparison runs recorded.")

	code, _, _ = runCLI(t, "-log-level", "error", "-history", "3")
	assert.Equal(t, exitUsage, code)
}

func TestRun_LogFileGroupedByRun(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	cfg := writeFile(t, dir, "config.yaml", fmt.Sprintf(`log_config:
  log_level: error
  log_file: %s
`, filepath.Join(logDir, "pdfdiff.log")))
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.txt", "two")

	code, _, _ := runCLI(t, "-c", cfg, a, b)
	require.Equal(t, exitError, code)

	matches, err := filepath.Glob(filepath.Join(logDir, "runs", "*", "pdfdiff.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Comparison failed")
	assert.Contains(t, string(data), filepath.Base(filepath.Dir(matches[0])))
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	fm := filemanager.NewFileManager(zerolog.Nop())

	assert.NoError(t, checkInputFile(fm, writeFile(t, dir, "a.pdf", "%PDF-1.4")))

	err := checkInputFile(fm, filepath.Join(dir, "missing.pdf"))
	assert.True(t, errorwrapper.IsNotFound(err))

	err = checkInputFile(fm, dir)
	require.Error(t, err)
	assert.False(t, errorwrapper.IsNotFound(err))
	var validationErr *errorwrapper.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
