package gaia

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// GeneratePlateSeeds returns numPlates unit directions distributed with the
// same golden-angle construction as the sample points, renormalized to guard
// against precision loss.
func GeneratePlateSeeds(numPlates int) []vectors.Vec3 {
	seeds := GenerateFibonacciSpherePoints(0, numPlates, 1.0, 0)
	for i := range seeds {
		seeds[i] = seeds[i].Normalize()
	}
	return seeds
}

// AssignPointsToSeeds assigns every point to the seed maximizing the dot
// product with the normalized point, which minimizes great-circle distance
// since both are unit vectors. This is an O(N*M) nearest-center partition of
// the sphere. Ties resolve to the lowest seed index.
//
// It returns the point-to-plate mapping and the per-plate point index lists;
// together they always form an exact partition of the point index set.
func AssignPointsToSeeds(points, seeds []vectors.Vec3) ([]int, [][]int) {
	pointToPlate := make([]int, len(points))
	plateToPoints := make([][]int, len(seeds))
	if len(seeds) == 0 {
		for i := range pointToPlate {
			pointToPlate[i] = -1
		}
		return pointToPlate, plateToPoints
	}

	for i, p := range points {
		pn := p.Normalize()
		best := 0
		bestDot := math.Inf(-1)
		for j, s := range seeds {
			if d := pn.Dot(s); d > bestDot {
				bestDot = d
				best = j
			}
		}
		pointToPlate[i] = best
		plateToPoints[best] = append(plateToPoints[best], i)
	}
	return pointToPlate, plateToPoints
}
