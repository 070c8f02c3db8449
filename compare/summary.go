package compare

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fdcomp/drainage"
)

// Summary describes a set of path scores.
type Summary struct {
	Count        int
	Mean         float64
	StdDev       float64 // sample standard deviation; 0 for a single score
	Min, Max     float64
	WeightedMean float64 // mean weighted by the supplied weights
}

// Summarize reduces scores to a Summary. weights may be nil, in which case
// WeightedMean equals Mean.
func Summarize(scores, weights []float64) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, ErrNoScores
	}
	if weights != nil && len(weights) != len(scores) {
		return Summary{}, fmt.Errorf("%w: %d weights, %d scores", ErrWeightsLength, len(weights), len(scores))
	}

	s := Summary{
		Count: len(scores),
		Min:   floats.Min(scores),
		Max:   floats.Max(scores),
	}
	if s.Count > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)
	} else {
		s.Mean = scores[0]
	}
	s.WeightedMean = s.Mean
	if weights != nil && floats.Sum(weights) > 0 {
		s.WeightedMean = stat.Mean(scores, weights)
	}

	return s, nil
}

// CellWeights returns each path's cell count as a float weight.
func CellWeights(paths drainage.PathTable) []float64 {
	w := make([]float64, len(paths))
	for i, p := range paths {
		w[i] = float64(p.Cells)
	}

	return w
}
