package gaia

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Config holds all settings that drive planet initialization.
// Distances and elevations are in km, ages in My, rates in mm/year.
type Config struct {
	NumSamplePoints int     // number of sample points on the sphere
	PlanetRadiusKm  float64 // planet radius (R)
	Jitter          float64 // sampling jitter factor (0 = perfectly regular spiral)

	NumPlates        int     // number of tectonic plates
	ContinentalRatio float64 // fraction of plates marked continental [0..1]

	HighestOceanicRidgeElevationKm float64 // z_r, oceanic elevation at a spreading ridge
	AbyssalPlainElevationKm        float64 // z_a, oceanic elevation far from the ridge
	OceanicTrenchElevationKm       float64 // z_t, reserved for plate interactions
	HighestContinentalAltitudeKm   float64 // z_c, reserved for plate interactions

	MaxPlateSpeedMmPerYear float64 // v_0, bounds angular velocity via v_0 / R

	InitialSeed int64 // root seed; all random streams are derived offsets of it

	ElevationNoiseOctaves     int     // octaves of elevation detail noise, 0 disables
	ElevationNoiseAmplitudeKm float64 // amplitude of the detail noise

	Parallel bool // parallel vs. strictly sequential stage execution
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		NumSamplePoints:                500000,
		PlanetRadiusKm:                 6370.0,
		Jitter:                         0.0,
		NumPlates:                      40,
		ContinentalRatio:               0.3,
		HighestOceanicRidgeElevationKm: -1.0,
		AbyssalPlainElevationKm:        -6.0,
		OceanicTrenchElevationKm:       -10.0,
		HighestContinentalAltitudeKm:   10.0,
		MaxPlateSpeedMmPerYear:         100.0,
		InitialSeed:                    12345,
		ElevationNoiseOctaves:          0,
		ElevationNoiseAmplitudeKm:      0.1,
		Parallel:                       true,
	}
}

// generationHash returns an FNV-1a hash over every field that affects the
// generated output. Parallel is deliberately excluded: both execution modes
// produce bit-identical results.
func (cfg *Config) generationHash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)
	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf, v)
		h.Write(buf)
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(uint64(cfg.NumSamplePoints))
	writeF64(cfg.PlanetRadiusKm)
	writeF64(cfg.Jitter)
	writeU64(uint64(cfg.NumPlates))
	writeF64(cfg.ContinentalRatio)
	writeF64(cfg.HighestOceanicRidgeElevationKm)
	writeF64(cfg.AbyssalPlainElevationKm)
	writeF64(cfg.OceanicTrenchElevationKm)
	writeF64(cfg.HighestContinentalAltitudeKm)
	writeF64(cfg.MaxPlateSpeedMmPerYear)
	writeU64(uint64(cfg.InitialSeed))
	writeU64(uint64(cfg.ElevationNoiseOctaves))
	writeF64(cfg.ElevationNoiseAmplitudeKm)
	return h.Sum64()
}
