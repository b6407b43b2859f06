package differ

import (
	"github.com/aleister1102/pdfdiff/internal/models"
	"github.com/aleister1102/pdfdiff/internal/normalizer"
)

// Descriptions attached to paragraph differences.
const (
	DescriptionDeleted     = "paragraph present in A but absent in B"
	DescriptionInserted    = "paragraph present in B but absent in A"
	DescriptionMinor       = "minor difference"
	DescriptionPartial     = "partial difference"
	DescriptionSubstantial = "substantial difference"
)

// Lower bounds (inclusive) of the REPLACE similarity bands.
const (
	MinorDifferenceThreshold   = 0.85
	PartialDifferenceThreshold = 0.60
)

// Comparator compares two loaded documents. It holds no state and is safe for
// concurrent use.
type Comparator struct{}

// NewComparator creates a new Comparator
func NewComparator() *Comparator {
	return &Comparator{}
}

// CompareImages compares the per-page image counts of two documents.
func (c *Comparator) CompareImages(docA, docB *models.Document) []models.ImageDiff {
	return CompareImages(docA.ImagesPerPage, docB.ImagesPerPage)
}

// CompareParagraphs aligns the global paragraph sequences of A and B and
// returns the differences in alignment order.
func (c *Comparator) CompareParagraphs(parasA, parasB []models.Paragraph) []models.TextDiff {
	keysA := paragraphKeys(parasA)
	keysB := paragraphKeys(parasB)

	matcher := NewSequenceMatcher(keysA, keysB)

	diffs := make([]models.TextDiff, 0)
	for _, op := range matcher.OpCodes() {
		switch op.Tag {
		case OpEqual:
			continue
		case OpReplace:
			diffs = append(diffs, c.handleReplace(parasA[op.I1:op.I2], parasB[op.J1:op.J2])...)
		case OpDelete:
			diffs = append(diffs, c.handleDelete(parasA[op.I1:op.I2])...)
		case OpInsert:
			diffs = append(diffs, c.handleInsert(parasB[op.J1:op.J2])...)
		}
	}

	return diffs
}

// handleReplace pairs the two blocks positionally up to the shorter length;
// the excess on either side becomes deletions or insertions.
func (c *Comparator) handleReplace(blockA, blockB []models.Paragraph) []models.TextDiff {
	minLen := min(len(blockA), len(blockB))

	diffs := make([]models.TextDiff, 0, len(blockA)+len(blockB)-minLen)
	for k := 0; k < minLen; k++ {
		a := blockA[k]
		b := blockB[k]
		sim := Similarity(a.NormText, b.NormText)
		diffs = append(diffs, models.TextDiff{
			Kind:        models.TextDiffReplace,
			A:           &a,
			B:           &b,
			Similarity:  sim,
			Description: DescribeReplace(sim),
		})
	}

	diffs = append(diffs, c.handleDelete(blockA[minLen:])...)
	diffs = append(diffs, c.handleInsert(blockB[minLen:])...)
	return diffs
}

func (c *Comparator) handleDelete(block []models.Paragraph) []models.TextDiff {
	diffs := make([]models.TextDiff, 0, len(block))
	for i := range block {
		a := block[i]
		diffs = append(diffs, models.TextDiff{
			Kind:        models.TextDiffDelete,
			A:           &a,
			Similarity:  0.0,
			Description: DescriptionDeleted,
		})
	}
	return diffs
}

func (c *Comparator) handleInsert(block []models.Paragraph) []models.TextDiff {
	diffs := make([]models.TextDiff, 0, len(block))
	for i := range block {
		b := block[i]
		diffs = append(diffs, models.TextDiff{
			Kind:        models.TextDiffInsert,
			B:           &b,
			Similarity:  0.0,
			Description: DescriptionInserted,
		})
	}
	return diffs
}

// DescribeReplace maps a REPLACE similarity to its description band.
func DescribeReplace(similarity float64) string {
	switch {
	case similarity >= MinorDifferenceThreshold:
		return DescriptionMinor
	case similarity >= PartialDifferenceThreshold:
		return DescriptionPartial
	default:
		return DescriptionSubstantial
	}
}

// paragraphKeys re-normalizes the stored normalized text so the keys stay
// stable even for paragraphs built by hand.
func paragraphKeys(paras []models.Paragraph) []string {
	keys := make([]string, len(paras))
	for i, p := range paras {
		keys[i] = normalizer.NormalizeText(p.NormText)
	}
	return keys
}
