package gaia

import (
	"github.com/Flokey82/go_gens/vectors"
)

// CrustType distinguishes oceanic from continental crust.
type CrustType uint8

const (
	Oceanic CrustType = iota
	Continental
)

func (t CrustType) String() string {
	if t == Continental {
		return "continental"
	}
	return "oceanic"
}

// OrogenyType classifies the mountain-building event a continental sample
// last took part in. Initialization always assigns OrogenyNone; the other
// values are set by the later-stage collision simulation.
type OrogenyType uint8

const (
	OrogenyNone OrogenyType = iota
	OrogenyAndean    // subduction orogeny (volcanic)
	OrogenyHimalayan // continental collision
)

func (t OrogenyType) String() string {
	switch t {
	case OrogenyAndean:
		return "andean"
	case OrogenyHimalayan:
		return "himalayan"
	default:
		return "none"
	}
}

// CrustSample is the per-point crust record, indexed like the sample points.
// Fields of the opposite crust type are always reset to neutral values.
type CrustSample struct {
	Type        CrustType
	ThicknessKm float64
	ElevationKm float64 // signed, relative to sea level

	// Oceanic parameters.
	OceanicAgeMy   float64
	RidgeDirection vectors.Vec3 // unit tangent along the spreading ridge, zero if degenerate

	// Continental parameters.
	OrogenyAgeMy  float64
	Orogeny       OrogenyType
	FoldDirection vectors.Vec3 // set by collisions later, zero for now
}

// Plate is a rigid partition of the sphere's sample points rotating around an
// Euler pole through the origin.
type Plate struct {
	ID           int
	PointIndices []int

	// CentroidDir is the unit direction of the normalized mean of the member
	// point positions; for an empty plate it stays at the seed direction.
	CentroidDir vectors.Vec3

	Continental bool

	RotationAxis    vectors.Vec3 // unit vector
	AngularVelocity float64      // radians per My, signed
}

// AngularVelocityVector returns the plate's rotation axis scaled by its
// angular velocity.
func (p *Plate) AngularVelocityVector() vectors.Vec3 {
	return p.RotationAxis.Mul(p.AngularVelocity)
}

// VelocityAtPoint returns the rigid-body surface velocity at the given
// position in km/My. For any position at planet radius R the speed is
// bounded by |AngularVelocity| * R.
func (p *Plate) VelocityAtPoint(point vectors.Vec3) vectors.Vec3 {
	return p.AngularVelocityVector().Cross(point)
}
