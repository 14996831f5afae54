// backend-go/internal/segmentation/engine.go
package segmentation

import (
	"math"
	"sort"

	"github.com/tokostock/backend-go/internal/domain"
)

const (
	clusterCount  = 3
	maxIterations = 100
)

// point is a sales aggregate scaled to the unit cube: each feature divided by
// its maximum over the input set (0 when that maximum is 0). Engine-internal,
// lives only for the duration of one run.
type point struct {
	qty  float64
	rev  float64
	freq float64
}

func (p point) distance(c point) float64 {
	dq := p.qty - c.qty
	dr := p.rev - c.rev
	df := p.freq - c.freq
	return math.Sqrt(dq*dq + dr*dr + df*df)
}

// Segment partitions one tenant's sales aggregates into High/Medium/Low via
// k-means over three min-max normalized features (quantity, revenue,
// frequency). The result holds exactly one label per input product.
//
// Initialization uses the first three input points, so the outcome depends on
// input iteration order; callers that need reproducible results must fix that
// order. Inputs with fewer than three products are all labeled Medium rather
// than failing the pipeline.
func Segment(aggregates []domain.SalesAggregate) map[int64]domain.SegmentLabel {
	labels := make(map[int64]domain.SegmentLabel, len(aggregates))

	if len(aggregates) < clusterCount {
		for _, agg := range aggregates {
			labels[agg.ProductID] = domain.LabelMedium
		}
		return labels
	}

	points := normalize(aggregates)

	centroids := make([]point, clusterCount)
	copy(centroids, points[:clusterCount])

	assignments := make([]int, len(points))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false

		// Assignment: nearest centroid wins, ties to the lowest index.
		for i, p := range points {
			best := -1
			bestDist := math.Inf(1)
			for j, c := range centroids {
				if d := p.distance(c); d < bestDist {
					bestDist = d
					best = j
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update: each centroid becomes the mean of its members. An empty
		// cluster collapses to the zero vector, matching the reference
		// behavior even though it can leave a degenerate cluster.
		sums := make([]point, clusterCount)
		counts := make([]int, clusterCount)
		for i, idx := range assignments {
			sums[idx].qty += points[i].qty
			sums[idx].rev += points[i].rev
			sums[idx].freq += points[i].freq
			counts[idx]++
		}
		for j := range centroids {
			if counts[j] == 0 {
				centroids[j] = point{}
				continue
			}
			n := float64(counts[j])
			centroids[j] = point{
				qty:  sums[j].qty / n,
				rev:  sums[j].rev / n,
				freq: sums[j].freq / n,
			}
		}
	}

	rankToLabel := rankCentroids(centroids)
	for i, agg := range aggregates {
		labels[agg.ProductID] = rankToLabel[assignments[i]]
	}
	return labels
}

func normalize(aggregates []domain.SalesAggregate) []point {
	var maxQty, maxRev, maxFreq float64
	for _, agg := range aggregates {
		maxQty = math.Max(maxQty, float64(agg.QuantitySold))
		maxRev = math.Max(maxRev, agg.Revenue)
		maxFreq = math.Max(maxFreq, float64(agg.TransactionFrequency))
	}

	scale := func(v, max float64) float64 {
		if max <= 0 {
			return 0
		}
		return v / max
	}

	points := make([]point, len(aggregates))
	for i, agg := range aggregates {
		points[i] = point{
			qty:  scale(float64(agg.QuantitySold), maxQty),
			rev:  scale(agg.Revenue, maxRev),
			freq: scale(float64(agg.TransactionFrequency), maxFreq),
		}
	}
	return points
}

// rankCentroids orders the final centroids by summed normalized score and
// maps each centroid index to its label: highest score High, then Medium,
// then Low. The sort is stable so equal scores keep centroid index order.
func rankCentroids(centroids []point) map[int]domain.SegmentLabel {
	type scored struct {
		index int
		score float64
	}

	ranked := make([]scored, len(centroids))
	for i, c := range centroids {
		ranked[i] = scored{index: i, score: c.qty + c.rev + c.freq}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	ordered := []domain.SegmentLabel{domain.LabelHigh, domain.LabelMedium, domain.LabelLow}
	rankToLabel := make(map[int]domain.SegmentLabel, len(ranked))
	for rank, s := range ranked {
		rankToLabel[s.index] = ordered[rank]
	}
	return rankToLabel
}
