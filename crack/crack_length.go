package crack

import (
	"fmt"
	"math"

	"github.com/mhr3/visioner/internal/columns"
)

// LengthScore records the coincidence statistics for one candidate key length.
type LengthScore struct {
	Length int
	MeanIC float64 // mean index of coincidence across the stride columns
	Diff   float64 // absolute distance from the expected index
}

// EstimateKeyLength picks the key length whose stride columns score the
// index of coincidence closest to expectedIC.
// Candidates run from 1 to maxLen; on equal distance the smaller length
// wins. The scores for every candidate come back alongside the choice.
// maxLen must be at least 1 and is never clamped to the input size, so
// short inputs simply score 0 for the lengths they cannot fill.
func EstimateKeyLength(seq []int, alphabetLen, maxLen int, expectedIC float64) (int, []LengthScore, error) {
	if maxLen < 1 {
		return 0, nil, fmt.Errorf("estimate key length: %w: max length %d", ErrKeyLengthRange, maxLen)
	}
	scores := make([]LengthScore, 0, maxLen)
	best, bestDiff := 1, math.Inf(1)
	for n := 1; n <= maxLen; n++ {
		var sum float64
		for _, col := range columns.Split(seq, n) {
			sum += IndexOfCoincidence(col, alphabetLen)
		}
		mean := sum / float64(n)
		diff := math.Abs(mean - expectedIC)
		scores = append(scores, LengthScore{Length: n, MeanIC: mean, Diff: diff})
		if diff < bestDiff {
			best, bestDiff = n, diff
		}
	}
	return best, scores, nil
}
