package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/common/filemanager"
	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/loader"
	"github.com/aleister1102/pdfdiff/internal/logger"
	"github.com/aleister1102/pdfdiff/internal/orchestrator"
	"github.com/aleister1102/pdfdiff/internal/reporter"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Process exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errorwrapper.WrapError(errorwrapper.ErrInvalidInput, "invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, bootLogger)
	if err != nil {
		bootLogger.Error().Err(err).Str("path", flags.ConfigFile).Msg("Could not load configuration")
		return exitUsage
	}

	if flags.LogLevel != "" {
		gCfg.LogConfig.LogLevel = flags.LogLevel
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Configuration validation failed")
		return exitUsage
	}

	runID := uuid.NewString()
	appLogger, err := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithConsoleOutput(stderr).
		WithRunID(runID).
		Build()
	if err != nil {
		bootLogger.Error().Err(err).Msg("Could not initialize logger")
		return exitError
	}
	defer func() { _ = appLogger.Close() }()
	zLogger := *appLogger.GetZerolog()

	if flags.HistoryLimit > 0 {
		return printHistory(ctx, gCfg.HistoryConfig, flags.HistoryLimit, stdout, zLogger)
	}

	fileManager := filemanager.NewFileManager(zLogger)
	for _, path := range flags.Files {
		if err := checkInputFile(fileManager, path); err != nil {
			if errorwrapper.IsNotFound(err) {
				zLogger.Error().Str("path", path).Msg("Input file does not exist")
			} else {
				zLogger.Error().Err(err).Str("path", path).Msg("Invalid input file")
			}
			return exitUsage
		}
	}

	return runComparison(ctx, gCfg, flags, runID, stdout, zLogger)
}

// checkInputFile requires path to exist and be a regular file
func checkInputFile(fm *filemanager.FileManager, path string) error {
	info, err := fm.GetFileInfo(path)
	if err != nil {
		return err
	}
	if !info.Permissions.IsRegular() {
		return errorwrapper.NewValidationError("file", path, "not a regular file")
	}
	return nil
}

func runComparison(ctx context.Context, gCfg *config.GlobalConfig, flags AppFlags, runID string, stdout io.Writer, zLogger zerolog.Logger) int {
	fileA, fileB := flags.Files[0], flags.Files[1]
	runLogger := zLogger.With().Str("run_id", runID).Logger()

	reportManager, err := reporter.NewReportManager(gCfg.ReporterConfig, runLogger)
	if err != nil {
		runLogger.Error().Err(err).Msg("Failed to initialize reporters")
		return exitError
	}

	runs := openRunHistory(gCfg.HistoryConfig, runLogger)
	defer runs.Close()
	runs.Start(ctx, runID, fileA, fileB, time.Now())

	docLoader := loader.NewDocumentLoader(gCfg.LoaderConfig, runLogger)
	comparisonOrchestrator := orchestrator.NewComparisonOrchestrator(docLoader, runLogger)

	result, err := comparisonOrchestrator.ExecuteComparison(ctx, fileA, fileB, runID)
	if err != nil {
		if ctx.Err() != nil {
			runLogger.Warn().Msg("Comparison interrupted")
		}
		runLogger.Error().Err(err).Msg("Comparison failed")
		runs.Fail(ctx, err)
		return exitError
	}

	report := reporter.NewComparisonReport(result, time.Now())
	written, err := reportManager.Generate(report, stdout, reporter.ReportOutputs{
		TextPath:    flags.TextOutput,
		JSONPath:    flags.JSONOutput,
		HTMLPath:    flags.HTMLOutput,
		ParquetPath: flags.ParquetOutput,
	})
	if err != nil {
		runLogger.Error().Err(err).Msg("Failed to generate reports")
		runs.Fail(ctx, err)
		return exitError
	}

	for _, path := range written {
		runLogger.Info().Str("path", path).Msg("Report written")
	}
	runs.Complete(ctx, result, strings.Join(written, ";"))
	return exitOK
}
