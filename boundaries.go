package gaia

import (
	"github.com/LonestarHTX/Gaia/various"
)

// DetectBoundaries flags every point that has at least one neighbor belonging
// to a different plate. Each flag depends only on the read-only input arrays,
// so the per-point tasks are trivially parallel-safe.
//
// A missing neighbor list (index beyond the neighbors slice) means the point
// has no neighbors; out-of-range neighbor indices are skipped.
func DetectBoundaries(pointToPlate []int, neighbors [][]int, parallel bool) []bool {
	flags := make([]bool, len(pointToPlate))
	various.ForEach(parallel, len(pointToPlate), func(i int) {
		if i >= len(neighbors) {
			return
		}
		own := pointToPlate[i]
		for _, nb := range neighbors[i] {
			if nb >= 0 && nb < len(pointToPlate) && pointToPlate[nb] != own {
				flags[i] = true
				return
			}
		}
	})
	return flags
}
