package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/aleister1102/pdfdiff/internal/config"
	"github.com/aleister1102/pdfdiff/internal/history"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
)

// historyTimeLayout formats run times in the history listing
const historyTimeLayout = "2006-01-02 15:04:05"

// runHistory records one comparison run in the history database. A nil
// runHistory (history disabled or unavailable) ignores every call.
type runHistory struct {
	db     *history.DB
	rowID  int64
	logger zerolog.Logger
}

// openRunHistory opens the history database when enabled. Failures are logged
// and disable recording without failing the comparison.
func openRunHistory(cfg config.HistoryConfig, logger zerolog.Logger) *runHistory {
	if !cfg.Enabled {
		return nil
	}
	db, err := history.NewDB(cfg.DBPath, logger)
	if err != nil {
		logger.Warn().Err(err).Str("db_path", cfg.DBPath).Msg("History database unavailable, run will not be recorded")
		return nil
	}
	return &runHistory{db: db, logger: logger}
}

func (h *runHistory) Start(ctx context.Context, runID, fileA, fileB string, start time.Time) {
	if h == nil {
		return
	}
	id, err := h.db.RecordRunStart(ctx, runID, fileA, fileB, start)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to record run start")
		return
	}
	h.rowID = id
}

func (h *runHistory) Complete(ctx context.Context, result *models.ComparisonResult, reportPath string) {
	if h == nil || h.rowID == 0 {
		return
	}
	h.update(ctx, history.RunCompletion{
		EndTime:    time.Now(),
		Status:     history.StatusCompleted,
		ImageDiffs: result.Summary.ImageDiffs,
		Replaced:   result.Summary.Replaced,
		Inserted:   result.Summary.Inserted,
		Deleted:    result.Summary.Deleted,
		ReportPath: reportPath,
	})
}

func (h *runHistory) Fail(ctx context.Context, runErr error) {
	if h == nil || h.rowID == 0 {
		return
	}
	h.update(ctx, history.RunCompletion{
		EndTime:      time.Now(),
		Status:       history.StatusFailed,
		ErrorMessage: runErr.Error(),
	})
}

func (h *runHistory) update(ctx context.Context, c history.RunCompletion) {
	// The run may have ended because ctx was cancelled; the row still gets its final status.
	if err := h.db.UpdateRunCompletion(context.WithoutCancel(ctx), h.rowID, c); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to record run completion")
	}
}

func (h *runHistory) Close() {
	if h == nil {
		return
	}
	if err := h.db.Close(); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to close history database")
	}
}

// printHistory renders the most recent runs as a table on out
func printHistory(ctx context.Context, cfg config.HistoryConfig, limit int, out io.Writer, logger zerolog.Logger) int {
	if !cfg.Enabled {
		logger.Error().Msg("History is disabled in the configuration (history_config.enabled)")
		return exitUsage
	}

	db, err := history.NewDB(cfg.DBPath, logger)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.DBPath).Msg("Failed to open history database")
		return exitError
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRecentRuns(ctx, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list comparison runs")
		return exitError
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No comparison runs recorded.")
		return exitOK
	}

	renderHistoryTable(out, runs)
	return exitOK
}

func renderHistoryTable(out io.Writer, runs []history.RunEntry) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Run ID", "File A", "File B", "Started", "Status", "Images", "Replaced", "Inserted", "Deleted", "Duration"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range runs {
		duration := "-"
		if r.EndTime.Valid {
			duration = r.EndTime.Time.Sub(r.StartTime).Round(time.Millisecond).String()
		}
		table.Append([]string{
			r.RunID,
			r.FileA,
			r.FileB,
			r.StartTime.Local().Format(historyTimeLayout),
			r.Status,
			strconv.Itoa(r.ImageDiffs),
			strconv.Itoa(r.Replaced),
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Deleted),
			duration,
		})
	}
	table.Render()
}
