package score

import "fmt"

// Bins partitions [0,1] probability space into half-open intervals.
// Edges and the derived centers are captured once at construction and
// never mutated afterwards.
type Bins struct {
	edges   []float64
	centers []float64
}

// DefaultBins returns ten bins of width 0.1 with edges 0.0 through 1.1.
// The extra 0.1-wide guard bin gives a forecast of exactly 1.0 its own
// bucket instead of spilling it into the closed top edge of [0.9, 1.0].
func DefaultBins() Bins {
	edges := make([]float64, 12)
	for i := range edges {
		edges[i] = float64(i) * 0.1
	}
	b, err := NewBins(edges)
	if err != nil {
		panic(err) // static edges, cannot fail
	}
	return b
}

// NewBins builds a bin partition from a non-decreasing edge sequence.
// At least two edges are required. The center of each bin is its width
// scaled by 0.05, clipped to [0,1].
func NewBins(edges []float64) (Bins, error) {
	if len(edges) < 2 {
		return Bins{}, fmt.Errorf("bins need at least 2 edges, got %d", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			return Bins{}, fmt.Errorf("bin edges must be non-decreasing: edge[%d]=%g < edge[%d]=%g",
				i, edges[i], i-1, edges[i-1])
		}
	}

	b := Bins{
		edges:   make([]float64, len(edges)),
		centers: make([]float64, len(edges)-1),
	}
	copy(b.edges, edges)
	for i := range b.centers {
		c := (edges[i+1] - edges[i]) * 0.05
		if c > 1 {
			c = 1
		}
		if c < 0 {
			c = 0
		}
		b.centers[i] = c
	}
	return b, nil
}

// Count returns the number of bins.
func (b Bins) Count() int { return len(b.edges) - 1 }

// Edges returns a copy of the bin boundaries.
func (b Bins) Edges() []float64 {
	out := make([]float64, len(b.edges))
	copy(out, b.edges)
	return out
}

// Centers returns a copy of the per-bin reference probabilities used by
// the reliability score.
func (b Bins) Centers() []float64 {
	out := make([]float64, len(b.centers))
	copy(out, b.centers)
	return out
}

// histogram counts values per bin. Every bin is half-open [lo, hi)
// except the final bin, which also counts its top edge. Values outside
// the edge range are ignored.
func (b Bins) histogram(vals []float64) []int {
	counts := make([]int, b.Count())
	last := b.Count() - 1
	for _, v := range vals {
		for i := 0; i <= last; i++ {
			if v < b.edges[i] {
				break
			}
			if v < b.edges[i+1] || (i == last && v == b.edges[i+1]) {
				counts[i]++
				break
			}
		}
	}
	return counts
}
