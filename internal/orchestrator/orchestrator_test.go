package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aleister1102/pdfdiff/internal/common/errorwrapper"
	"github.com/aleister1102/pdfdiff/internal/loader"
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	mu    sync.Mutex
	docs  map[string]*models.Document
	errs  map[string]error
	calls []string
}

func (s *stubLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	s.mu.Lock()
	s.calls = append(s.calls, path)
	s.mu.Unlock()

	if err, ok := s.errs[path]; ok {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.docs[path], nil
}

func makeDoc(path string, images []int, pages ...string) *models.Document {
	return &models.Document{
		Path:          path,
		Format:        models.FormatPDF,
		PagesText:     pages,
		Paragraphs:    loader.BuildParagraphs(pages, loader.SplitIntoParagraphs),
		ImagesPerPage: images,
	}
}

func newTestOrchestrator(l DocumentLoader) *ComparisonOrchestrator {
	co := NewComparisonOrchestrator(l, zerolog.Nop())
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	co.now = func() time.Time {
		calls++
		return start.Add(time.Duration(calls-1) * time.Second)
	}
	return co
}

func TestExecuteComparison(t *testing.T) {
	l := &stubLoader{docs: map[string]*models.Document{
		"a.pdf": makeDoc("a.pdf", []int{2, 0, 1},
			"Alpha paragraph\n\nBeta paragraph", "Gamma paragraph", ""),
		"b.pdf": makeDoc("b.pdf", []int{2, 1, 1},
			"Alpha paragraph\n\nBeta changed paragraph\n\nDelta paragraph", "Gamma paragraph", ""),
	}}

	result, err := newTestOrchestrator(l).ExecuteComparison(context.Background(), "a.pdf", "b.pdf", "run-fixed")
	require.NoError(t, err)

	assert.Equal(t, "run-fixed", result.RunID)
	assert.Equal(t, "a.pdf", result.FileA)
	assert.Equal(t, "b.pdf", result.FileB)
	assert.Equal(t, []models.ImageDiff{{Page: 2, ImagesA: 0, ImagesB: 1}}, result.ImageDiffs)

	require.Len(t, result.TextDiffs, 2)
	assert.Equal(t, models.TextDiffReplace, result.TextDiffs[0].Kind)
	assert.Equal(t, models.TextDiffInsert, result.TextDiffs[1].Kind)

	assert.Equal(t, models.ComparisonSummary{
		PagesA: 3, PagesB: 3,
		ParagraphsA: 3, ParagraphsB: 4,
		ImageDiffs: 1, Replaced: 1, Inserted: 1,
	}, result.Summary)
	assert.Equal(t, time.Second, result.Duration)
	assert.ElementsMatch(t, []string{"a.pdf", "b.pdf"}, l.calls)
}

func TestExecuteComparison_Identical(t *testing.T) {
	doc := makeDoc("a.pdf", []int{1}, "Same text")
	l := &stubLoader{docs: map[string]*models.Document{"a.pdf": doc, "copy.pdf": doc}}

	result, err := newTestOrchestrator(l).ExecuteComparison(context.Background(), "a.pdf", "copy.pdf", "run-fixed")
	require.NoError(t, err)

	assert.Empty(t, result.ImageDiffs)
	assert.Empty(t, result.TextDiffs)
	assert.True(t, result.Summary.Identical)
}

func TestExecuteComparison_LoadFailure(t *testing.T) {
	cause := errorwrapper.WrapError(errorwrapper.ErrNotFound, "file not found: b.pdf")
	l := &stubLoader{
		docs: map[string]*models.Document{"a.pdf": makeDoc("a.pdf", nil)},
		errs: map[string]error{"b.pdf": cause},
	}

	result, err := newTestOrchestrator(l).ExecuteComparison(context.Background(), "a.pdf", "b.pdf", "run-fixed")
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, errorwrapper.ErrNotFound)
	assert.Contains(t, err.Error(), "file B")
}

func TestExecuteComparison_Cancelled(t *testing.T) {
	l := &stubLoader{docs: map[string]*models.Document{
		"a.pdf": makeDoc("a.pdf", nil),
		"b.pdf": makeDoc("b.pdf", nil),
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestOrchestrator(l).ExecuteComparison(ctx, "a.pdf", "b.pdf", "run-fixed")
	assert.True(t, errors.Is(err, context.Canceled))
}
