package gaia_test

import (
	"math"
	"testing"

	"github.com/Flokey82/go_gens/vectors"
	gaia "github.com/LonestarHTX/Gaia"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlateSeedsUnitLength(t *testing.T) {
	seeds := gaia.GeneratePlateSeeds(40)
	require.Len(t, seeds, 40)
	for _, s := range seeds {
		require.InDelta(t, 1.0, s.Len(), 1e-9)
	}
}

func TestAssignPointsToSeedsPartition(t *testing.T) {
	points := gaia.GenerateFibonacciSpherePoints(0, 10000, 1.0, 0)
	seeds := gaia.GeneratePlateSeeds(20)

	pointToPlate, plateToPoints := gaia.AssignPointsToSeeds(points, seeds)
	require.Len(t, pointToPlate, len(points))
	require.Len(t, plateToPoints, len(seeds))

	// The union of all plate point lists is exactly {0..N-1}.
	seen := make([]int, len(points))
	total := 0
	for plate, members := range plateToPoints {
		for _, pi := range members {
			require.Equal(t, plate, pointToPlate[pi])
			seen[pi]++
			total++
		}
	}
	require.Equal(t, len(points), total)
	for pi, count := range seen {
		require.Equalf(t, 1, count, "point %d assigned %d times", pi, count)
	}
}

func TestAssignPointsToSeedsDeterminism(t *testing.T) {
	points := gaia.GenerateFibonacciSpherePoints(0, 10000, 1.0, 0)
	seeds := gaia.GeneratePlateSeeds(20)

	mapA, _ := gaia.AssignPointsToSeeds(points, seeds)
	mapB, _ := gaia.AssignPointsToSeeds(points, seeds)
	require.Equal(t, mapA, mapB)
}

func TestAssignPointsToSeedsTieBreak(t *testing.T) {
	// A point equidistant from both seeds goes to the lowest seed index.
	seeds := []vectors.Vec3{
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: -1, Z: 0},
	}
	points := []vectors.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	pointToPlate, _ := gaia.AssignPointsToSeeds(points, seeds)
	require.Equal(t, []int{0, 0}, pointToPlate)
}

func TestAssignPointsToSeedsNearest(t *testing.T) {
	seeds := gaia.GeneratePlateSeeds(6)
	points := gaia.GenerateFibonacciSpherePoints(0, 500, 1.0, 0)
	pointToPlate, _ := gaia.AssignPointsToSeeds(points, seeds)

	// Brute-force check: the assigned seed minimizes the geodesic angle.
	for i, p := range points {
		pn := p.Normalize()
		bestAngle := math.Inf(1)
		for _, s := range seeds {
			if a := math.Acos(math.Max(-1, math.Min(1, pn.Dot(s)))); a < bestAngle {
				bestAngle = a
			}
		}
		assigned := seeds[pointToPlate[i]]
		angle := math.Acos(math.Max(-1, math.Min(1, pn.Dot(assigned))))
		require.InDelta(t, bestAngle, angle, 1e-12)
	}
}
