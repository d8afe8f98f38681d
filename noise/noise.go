// Package noise wraps opensimplex noise with octave summation, initialized
// from an explicit seed so repeated evaluation is deterministic.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Noise sums a number of octaves of normalized opensimplex noise with
// geometrically decaying amplitudes.
type Noise struct {
	Octaves     int
	Persistence float64
	Seed        int64

	amplitudes []float64
	ampSum     float64
	os         opensimplex.Noise
}

// New returns a new Noise with the given number of octaves and persistence.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Seed:        seed,
		amplitudes:  make([]float64, octaves),
		os:          opensimplex.NewNormalized(seed),
	}
	for i := range n.amplitudes {
		n.amplitudes[i] = math.Pow(persistence, float64(i))
		n.ampSum += n.amplitudes[i]
	}
	return n
}

// Eval3 returns the octave-summed noise value at the given point in [0,1].
// Evaluation is read-only and safe to call from concurrent workers.
func (n *Noise) Eval3(x, y, z float64) float64 {
	var sum float64
	for octave := 0; octave < n.Octaves; octave++ {
		f := float64(int(1) << octave)
		sum += n.amplitudes[octave] * n.os.Eval3(x*f, y*f, z*f)
	}
	return sum / n.ampSum
}
