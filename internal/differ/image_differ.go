package differ

import "github.com/aleister1102/pdfdiff/internal/models"

// CompareImages compares per-page image counts. Pages missing from the
// shorter sequence count as zero images. Diffs are returned in page order.
func CompareImages(imagesA, imagesB []int) []models.ImageDiff {
	maxPages := max(len(imagesA), len(imagesB))

	diffs := make([]models.ImageDiff, 0)
	for i := 0; i < maxPages; i++ {
		countA := countAt(imagesA, i)
		countB := countAt(imagesB, i)
		if countA != countB {
			diffs = append(diffs, models.ImageDiff{Page: i + 1, ImagesA: countA, ImagesB: countB})
		}
	}
	return diffs
}

func countAt(counts []int, i int) int {
	if i < len(counts) {
		return counts[i]
	}
	return 0
}
