package gaia_test

import (
	"math"
	"testing"

	gaia "github.com/LonestarHTX/Gaia"
	"github.com/stretchr/testify/require"
)

func testConfig() *gaia.Config {
	cfg := gaia.NewConfig()
	cfg.NumSamplePoints = 1000
	cfg.NumPlates = 10
	cfg.ContinentalRatio = 0.3
	cfg.InitialSeed = 12345
	return cfg
}

func TestCrustInitInvariants(t *testing.T) {
	cfg := testConfig()
	planet := gaia.NewPlanet(cfg)
	planet.Rebuild()

	require.Len(t, planet.Crust, cfg.NumSamplePoints)

	continentalCount := 0
	for i, crust := range planet.Crust {
		switch crust.Type {
		case gaia.Oceanic:
			require.Equal(t, gaia.OceanicThicknessKm, crust.ThicknessKm)
			require.Negative(t, crust.ElevationKm)
			require.GreaterOrEqual(t, crust.OceanicAgeMy, 0.0)
			require.LessOrEqual(t, crust.OceanicAgeMy, gaia.MaxOceanicAgeMy)
			require.GreaterOrEqual(t, crust.ElevationKm, cfg.AbyssalPlainElevationKm)
			require.LessOrEqual(t, crust.ElevationKm, cfg.HighestOceanicRidgeElevationKm)
			// Continental fields are neutral.
			require.Zero(t, crust.OrogenyAgeMy)
			require.Equal(t, gaia.OrogenyNone, crust.Orogeny)
			require.Zero(t, crust.FoldDirection.Len())
			// Ridge tangent is unit length or the degenerate fallback.
			if l := crust.RidgeDirection.Len(); l != 0 {
				require.InDeltaf(t, 1.0, l, 1e-9, "point %d ridge direction", i)
			}
		case gaia.Continental:
			continentalCount++
			require.Equal(t, gaia.ContinentalThicknessKm, crust.ThicknessKm)
			require.InDelta(t, 0.5, crust.ElevationKm, 0.2+1e-9)
			require.GreaterOrEqual(t, crust.OrogenyAgeMy, 500.0)
			require.LessOrEqual(t, crust.OrogenyAgeMy, 3000.0)
			require.Equal(t, gaia.OrogenyNone, crust.Orogeny)
			// Oceanic fields are neutral.
			require.Zero(t, crust.OceanicAgeMy)
			require.Zero(t, crust.RidgeDirection.Len())
		default:
			t.Fatalf("point %d has invalid crust type %d", i, crust.Type)
		}
	}

	// Plate-level classification only approximates the target point ratio.
	realized := float64(continentalCount) / float64(len(planet.Crust))
	require.InDelta(t, cfg.ContinentalRatio, realized, 0.15)
}

func TestCrustInitCentroids(t *testing.T) {
	planet := gaia.NewPlanet(testConfig())
	planet.Rebuild()

	for _, plate := range planet.Plates {
		require.InDelta(t, 1.0, plate.CentroidDir.Len(), 1e-9)
	}
}

func TestPlateDynamicsBounds(t *testing.T) {
	cfg := testConfig()
	planet := gaia.NewPlanet(cfg)
	planet.Rebuild()

	maxSpeed := cfg.MaxPlateSpeedMmPerYear // mm/year == km/My
	maxAngular := maxSpeed / cfg.PlanetRadiusKm

	for _, plate := range planet.Plates {
		require.InDelta(t, 1.0, plate.RotationAxis.Len(), 1e-3)
		require.LessOrEqual(t, math.Abs(plate.AngularVelocity), maxAngular+1e-9)

		// Surface speed stays bounded at every member point.
		for _, pi := range plate.PointIndices {
			speed := plate.VelocityAtPoint(planet.SamplePoints[pi]).Len()
			require.LessOrEqual(t, speed, maxSpeed*1.01)
		}
	}
}

func TestCrustInitParallelMatchesSequential(t *testing.T) {
	cfgPar := testConfig()
	cfgPar.Parallel = true
	parallel := gaia.NewPlanet(cfgPar)
	parallel.Rebuild()

	cfgSeq := testConfig()
	cfgSeq.Parallel = false
	sequential := gaia.NewPlanet(cfgSeq)
	sequential.Rebuild()

	// Both execution modes are bit-identical.
	require.Equal(t, sequential.SamplePoints, parallel.SamplePoints)
	require.Equal(t, sequential.PointToPlate, parallel.PointToPlate)
	require.Equal(t, sequential.Crust, parallel.Crust)
	require.Equal(t, sequential.Plates, parallel.Plates)
	require.Equal(t, sequential.IsBoundary, parallel.IsBoundary)
}

func TestCrustInitDeterminism(t *testing.T) {
	a := gaia.NewPlanet(testConfig())
	a.Rebuild()
	b := gaia.NewPlanet(testConfig())
	b.Rebuild()

	require.Equal(t, a.SamplePoints, b.SamplePoints)
	require.Equal(t, a.PointToPlate, b.PointToPlate)
	require.Equal(t, a.Crust, b.Crust)
	require.Equal(t, a.Plates, b.Plates)
}

func TestCrustElevationNoiseOverlay(t *testing.T) {
	base := gaia.NewPlanet(testConfig())
	base.Rebuild()

	cfg := testConfig()
	cfg.ElevationNoiseOctaves = 3
	cfg.ElevationNoiseAmplitudeKm = 0.1
	noisy := gaia.NewPlanet(cfg)
	noisy.Rebuild()

	// The overlay only shifts elevations, by at most the amplitude.
	changed := false
	for i := range base.Crust {
		require.Equal(t, base.Crust[i].Type, noisy.Crust[i].Type)
		require.Equal(t, base.Crust[i].ThicknessKm, noisy.Crust[i].ThicknessKm)
		diff := math.Abs(base.Crust[i].ElevationKm - noisy.Crust[i].ElevationKm)
		require.LessOrEqual(t, diff, cfg.ElevationNoiseAmplitudeKm+1e-9)
		if diff > 0 {
			changed = true
		}
	}
	require.True(t, changed)

	again := gaia.NewPlanet(cfg)
	again.Rebuild()
	require.Equal(t, noisy.Crust, again.Crust)
}
