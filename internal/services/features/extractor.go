package features

import (
	"fmt"
	"time"

	"PriceCast/internal/domain/models"
)

// columnsPerRow is the number of feature columns per day row (datetime
// excluded): 7 raw bar columns plus 9 derived indicators.
const columnsPerRow = 16

func rowValues(r models.FeatureRow) []float64 {
	return []float64{
		r.OpenPrice,
		r.HighPrice,
		r.LowPrice,
		r.ClosePrice,
		r.Volume,
		r.VWAvgPrice,
		r.NumTransactions,
		r.SMA5,
		r.SMA20,
		r.EMA5,
		r.EMA20,
		r.Vol5,
		r.DailyReturn,
		r.PriceDiff,
		r.VolumeSMA5,
		r.VolumeChange,
	}
}

// Windows holds flattened sliding-window feature vectors, one target close
// price per window, and the datetime each target refers to.
type Windows struct {
	Features [][]float64
	Targets  []float64
	Times    []time.Time
}

// TransformIntoWindows converts a chronologically sorted batch into flattened
// sliding-window feature vectors, the shape the model was trained on. A window
// covers rows [first, first+nPrevious+1); its target is the close price of the
// row right after the window. The final window is excluded, matching the
// training cutoff. A batch too short for a single window yields zero windows,
// not an error.
func TransformIntoWindows(batch *models.FeatureBatch, nPrevious, stepSize int) (*Windows, error) {
	if nPrevious <= 0 || stepSize <= 0 {
		return nil, fmt.Errorf("window transform: nPrevious and stepSize must be positive")
	}

	pairs := cutoffPairs(batch.Len(), nPrevious, stepSize)

	windowLen := nPrevious + 1
	w := &Windows{
		Features: make([][]float64, 0, len(pairs)),
		Targets:  make([]float64, 0, len(pairs)),
		Times:    make([]time.Time, 0, len(pairs)),
	}
	for _, p := range pairs {
		vec := make([]float64, 0, windowLen*columnsPerRow)
		for _, row := range batch.Rows[p[0]:p[1]] {
			vec = append(vec, rowValues(row)...)
		}
		w.Features = append(w.Features, vec)
		w.Targets = append(w.Targets, batch.Rows[p[1]].ClosePrice)
		w.Times = append(w.Times, batch.Rows[p[1]].Datetime)
	}
	return w, nil
}

// cutoffPairs yields (first, target) index pairs for each window, dropping the
// final pair.
func cutoffPairs(n, nPrevious, stepSize int) [][2]int {
	stop := n - 1
	var pairs [][2]int
	for first, last := 0, nPrevious+1; last <= stop; first, last = first+stepSize, last+stepSize {
		pairs = append(pairs, [2]int{first, last})
	}
	if len(pairs) == 0 {
		return nil
	}
	return pairs[:len(pairs)-1]
}
