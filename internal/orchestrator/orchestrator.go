package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/differ"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DocumentLoader loads one side of a comparison
type DocumentLoader interface {
	Load(ctx context.Context, path string) (*models.Document, error)
}

// ComparisonOrchestrator runs the load -> diff workflow for two documents.
type ComparisonOrchestrator struct {
	loader     DocumentLoader
	comparator *differ.Comparator
	logger     zerolog.Logger
	now        func() time.Time
}

// NewComparisonOrchestrator creates a new ComparisonOrchestrator.
func NewComparisonOrchestrator(loader DocumentLoader, logger zerolog.Logger) *ComparisonOrchestrator {
	return &ComparisonOrchestrator{
		loader:     loader,
		comparator: differ.NewComparator(),
		logger:     logger.With().Str("component", "ComparisonOrchestrator").Logger(),
		now:        time.Now,
	}
}

// ExecuteComparison loads fileA and fileB concurrently, then computes the
// image and paragraph differences. The first load failure cancels the other
// load and is returned.
func (co *ComparisonOrchestrator) ExecuteComparison(ctx context.Context, fileA, fileB, runID string) (*models.ComparisonResult, error) {
	startedAt := co.now()
	logger := co.logger.With().Str("run_id", runID).Logger()

	logger.Info().Str("file_a", fileA).Str("file_b", fileB).Msg("Starting comparison")

	docA, docB, err := co.loadBoth(ctx, fileA, fileB)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load documents")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		logger.Info().Msg("Context cancelled before diffing")
		return nil, err
	}

	var (
		imageDiffs []models.ImageDiff
		textDiffs  []models.TextDiff
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		imageDiffs = co.comparator.CompareImages(docA, docB)
	}()
	go func() {
		defer wg.Done()
		textDiffs = co.comparator.CompareParagraphs(docA.Paragraphs, docB.Paragraphs)
	}()
	wg.Wait()

	result := &models.ComparisonResult{
		RunID:      runID,
		FileA:      fileA,
		FileB:      fileB,
		DocumentA:  docA,
		DocumentB:  docB,
		ImageDiffs: imageDiffs,
		TextDiffs:  textDiffs,
		Summary:    models.NewComparisonSummary(docA, docB, imageDiffs, textDiffs),
		StartedAt:  startedAt,
	}
	result.Duration = co.now().Sub(startedAt)

	logger.Info().
		Int("image_diffs", result.Summary.ImageDiffs).
		Int("replaced", result.Summary.Replaced).
		Int("inserted", result.Summary.Inserted).
		Int("deleted", result.Summary.Deleted).
		Dur("duration", result.Duration).
		Msg("Comparison finished")
	return result, nil
}

func (co *ComparisonOrchestrator) loadBoth(ctx context.Context, fileA, fileB string) (*models.Document, *models.Document, error) {
	var docA, docB *models.Document

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := co.loader.Load(gctx, fileA)
		if err != nil {
			return errorwrapper.WrapErrorf(err, "failed to load file A '%s'", fileA)
		}
		docA = doc
		return nil
	})
	g.Go(func() error {
		doc, err := co.loader.Load(gctx, fileB)
		if err != nil {
			return errorwrapper.WrapErrorf(err, "failed to load file B '%s'", fileB)
		}
		docB = doc
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return docA, docB, nil
}
