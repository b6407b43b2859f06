package differ

import (
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffProcessor computes the inline differences between two paragraph texts,
// used to highlight what changed inside a REPLACE pair.
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = config.Timeout
	return &DiffProcessor{
		dmp:    dmp,
		config: config,
	}
}

// ProcessDiff generates the inline diff between two texts
func (dp *DiffProcessor) ProcessDiff(text1, text2 string) []models.ContentDiff {
	diffs := dp.dmp.DiffMain(text1, text2, false)

	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}

	return toContentDiffs(diffs)
}

// InlineDiff returns the inline diff of a REPLACE pair, or nil for any other kind.
func (dp *DiffProcessor) InlineDiff(d models.TextDiff) []models.ContentDiff {
	if d.Kind != models.TextDiffReplace || d.A == nil || d.B == nil {
		return nil
	}
	return dp.ProcessDiff(d.A.NormText, d.B.NormText)
}

func toContentDiffs(diffs []diffmatchpatch.Diff) []models.ContentDiff {
	out := make([]models.ContentDiff, 0, len(diffs))
	for _, d := range diffs {
		var op models.DiffOperation
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = models.DiffInsert
		case diffmatchpatch.DiffDelete:
			op = models.DiffDelete
		default:
			op = models.DiffEqual
		}
		out = append(out, models.ContentDiff{Operation: op, Text: d.Text})
	}
	return out
}

// DiffStatistics holds inline diff counts
type DiffStatistics struct {
	Insertions  int
	Deletions   int
	IsIdentical bool
}

// DiffStatsCalculator calculates statistics from inline diff results
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats computes statistics from inline diff results
func (dsc *DiffStatsCalculator) CalculateStats(diffs []models.ContentDiff) DiffStatistics {
	stats := DiffStatistics{IsIdentical: true}

	for _, diff := range diffs {
		switch diff.Operation {
		case models.DiffInsert:
			stats.Insertions++
			stats.IsIdentical = false
		case models.DiffDelete:
			stats.Deletions++
			stats.IsIdentical = false
		}
	}

	return stats
}
