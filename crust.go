package gaia

import (
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/LonestarHTX/Gaia/noise"
	"github.com/LonestarHTX/Gaia/various"
)

const (
	// OceanicThicknessKm is the fixed thickness of freshly initialized
	// oceanic crust.
	OceanicThicknessKm = 7.0

	// ContinentalThicknessKm is the fixed thickness of freshly initialized
	// continental crust.
	ContinentalThicknessKm = 35.0

	// MaxOceanicAgeMy is the seafloor age reached at the assumed maximum
	// distance from the spreading ridge.
	MaxOceanicAgeMy = 200.0

	// maxPlateExtentRad is the assumed maximum angular radius of a plate,
	// used to normalize the ridge-to-abyssal gradient. It is a fixed
	// constant independent of actual plate size.
	maxPlateExtentRad = math.Pi / 4

	// Seed offsets deriving the independent random streams from the root
	// seed. The per-plate stride is a large prime so streams never overlap
	// in seed space.
	perPlateSeedOffset = 1000
	perPlateSeedStride = 10007
	dynamicsSeedOffset = 100
)

func frandRange(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// classifyPlates marks round(numPlates*continentalRatio) plates continental
// by Fisher-Yates shuffling the plate index list with a seeded stream.
// Because plate sizes vary, the realized fraction of points that end up
// continental deviates from the target ratio.
func classifyPlates(numPlates int, continentalRatio float64, seed int64) []bool {
	isContinental := make([]bool, numPlates)
	numContinental := int(math.Round(float64(numPlates) * continentalRatio))

	indices := make([]int, numPlates)
	for i := range indices {
		indices[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	for i := numPlates - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	for i, plate := range indices {
		isContinental[plate] = i < numContinental
	}
	return isContinental
}

// initializeCrust classifies the plates and synthesizes the per-point crust
// samples, one independent task per plate. Each plate owns a random stream
// seeded purely from (root seed, plate index), so the result is bit-identical
// no matter how the plate tasks are scheduled.
func (p *Planet) initializeCrust() {
	cfg := p.cfg
	p.Crust = make([]CrustSample, len(p.SamplePoints))

	isContinental := classifyPlates(len(p.Plates), cfg.ContinentalRatio, cfg.InitialSeed)

	var detail *noise.Noise
	if cfg.ElevationNoiseOctaves > 0 {
		detail = noise.New(cfg.ElevationNoiseOctaves, 0.5, cfg.InitialSeed)
	}

	various.ForEach(cfg.Parallel, len(p.Plates), func(plateIdx int) {
		plate := p.Plates[plateIdx]
		plate.Continental = isContinental[plateIdx]

		rnd := rand.New(rand.NewSource(cfg.InitialSeed + perPlateSeedOffset + int64(plateIdx)*perPlateSeedStride))

		// Centroid direction from the member points; empty or degenerate
		// plates keep their seed direction.
		var sx, sy, sz float64
		for _, pi := range plate.PointIndices {
			sp := p.SamplePoints[pi]
			sx += sp.X
			sy += sp.Y
			sz += sp.Z
		}
		if c := various.SafeNormal(vectors.Vec3{X: sx, Y: sy, Z: sz}); c.Len() > 0 {
			plate.CentroidDir = c
		}
		centroid := plate.CentroidDir

		for _, pi := range plate.PointIndices {
			crust := &p.Crust[pi]
			pn := p.SamplePoints[pi].Normalize()

			if plate.Continental {
				crust.Type = Continental
				crust.ThicknessKm = ContinentalThicknessKm
				crust.ElevationKm = 0.5 + frandRange(rnd, -0.2, 0.2)
				crust.OrogenyAgeMy = frandRange(rnd, 500, 3000)
				crust.Orogeny = OrogenyNone
				crust.FoldDirection = vectors.Vec3{}

				// Reset oceanic fields.
				crust.OceanicAgeMy = 0
				crust.RidgeDirection = vectors.Vec3{}
			} else {
				crust.Type = Oceanic
				crust.ThicknessKm = OceanicThicknessKm

				// Distance from the plate center determines elevation and
				// age: ridge at the center, abyssal plain at the rim.
				angle := various.GeodesicAngle(pn, centroid)
				dist := math.Max(0, math.Min(1, angle/maxPlateExtentRad))
				crust.ElevationKm = lerp(cfg.HighestOceanicRidgeElevationKm, cfg.AbyssalPlainElevationKm, dist)
				crust.OceanicAgeMy = dist * MaxOceanicAgeMy

				// Ridge tangent: perpendicular on the sphere to the
				// direction toward the plate center.
				toCenter := various.SafeNormal(centroid.Sub(pn))
				crust.RidgeDirection = various.SafeNormal(toCenter.Cross(pn))

				// Reset continental fields.
				crust.OrogenyAgeMy = 0
				crust.Orogeny = OrogenyNone
				crust.FoldDirection = vectors.Vec3{}
			}

			if detail != nil {
				crust.ElevationKm += cfg.ElevationNoiseAmplitudeKm * (2*detail.Eval3(pn.X, pn.Y, pn.Z) - 1)
			}
		}
	})
}

// initializePlateDynamics assigns each plate a random rotation axis and a
// random angular velocity bounded so that no surface point of the plate can
// move faster than the configured maximum plate speed.
//
// Note: 1 mm/year == 1 km/My, so the configured speed doubles as km/My and
// the angular bound is w_max = v_max / R in radians per My. Since every
// sample point sits at radius R, |cross(axis*w, p)| <= w_max*R = v_max holds
// for any axis orientation.
func (p *Planet) initializePlateDynamics() {
	cfg := p.cfg
	maxAngular := 0.0
	if cfg.PlanetRadiusKm > 0 {
		maxAngular = cfg.MaxPlateSpeedMmPerYear / cfg.PlanetRadiusKm
	}

	rnd := rand.New(rand.NewSource(cfg.InitialSeed + dynamicsSeedOffset))
	for _, plate := range p.Plates {
		// Rejection-sample the axis to avoid degenerate near-zero vectors.
		var axis vectors.Vec3
		for {
			axis = vectors.Vec3{
				X: frandRange(rnd, -1, 1),
				Y: frandRange(rnd, -1, 1),
				Z: frandRange(rnd, -1, 1),
			}
			if axis.X*axis.X+axis.Y*axis.Y+axis.Z*axis.Z >= 0.01 {
				break
			}
		}
		plate.RotationAxis = axis.Normalize()
		plate.AngularVelocity = frandRange(rnd, -maxAngular, maxAngular)
	}
}
