package gaia

import (
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
)

// goldenAngle is the angular increment of the fibonacci spiral in radians
// (~2.39996323).
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// GenerateFibonacciSpherePoints distributes n points near-uniformly on a
// sphere of the given radius using a golden-angle spiral.
//
// The construction is fully deterministic: point i sits at height
// y = 1-2*(i+0.5)/n and longitude i*goldenAngle. Accumulation runs in double
// precision so the spiral does not drift for large n. A jitter factor > 0
// perturbs the regular spiral with randomness drawn from the given seed;
// with jitter 0 the seed is never consumed.
//
// n <= 0 yields an empty slice.
func GenerateFibonacciSpherePoints(seed int64, n int, radiusKm, jitter float64) []vectors.Vec3 {
	if n <= 0 {
		return nil
	}

	var rnd *rand.Rand
	if jitter > 0 {
		rnd = rand.New(rand.NewSource(seed))
	}

	dy := 2.0 / float64(n)
	points := make([]vectors.Vec3, 0, n)
	for i := 0; i < n; i++ {
		t := (float64(i) + 0.5) / float64(n)
		y := 1 - 2*t
		theta := goldenAngle * float64(i)
		if rnd != nil {
			y += jitter * (rnd.Float64() - rnd.Float64()) * dy
			theta += jitter * (rnd.Float64() - rnd.Float64()) * goldenAngle
			y = math.Max(-1, math.Min(1, y))
		}
		r := math.Sqrt(math.Max(0, 1-y*y))
		points = append(points, vectors.Vec3{
			X: r * math.Cos(theta) * radiusKm,
			Y: y * radiusKm,
			Z: r * math.Sin(theta) * radiusKm,
		})
	}
	return points
}
