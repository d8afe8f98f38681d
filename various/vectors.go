package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// SafeNormal returns the normalized vector, or the zero vector if v is too
// short to normalize reliably.
func SafeNormal(v vectors.Vec3) vectors.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return vectors.Vec3{}
	}
	return v.Mul(1 / l)
}

// GeodesicAngle returns the angular distance between two unit vectors
// in radians.
func GeodesicAngle(a, b vectors.Vec3) float64 {
	return math.Acos(math.Max(-1, math.Min(1, a.Dot(b))))
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatLonFromVec3 converts a position on a sphere of the given radius to
// latitude and longitude in degrees.
// See: https://rbrundritt.wordpress.com/2008/10/14/conversion-between-spherical-and-cartesian-coordinates-systems/
func LatLonFromVec3(position vectors.Vec3, sphereRadius float64) (float64, float64) {
	return RadToDeg(math.Asin(position.Z / sphereRadius)),
		RadToDeg(math.Atan2(position.Y, position.X))
}
