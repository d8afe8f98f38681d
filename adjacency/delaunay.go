package adjacency

import (
	"fmt"
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/fogleman/delaunay"
)

// DelaunayProvider triangulates a spherical point cloud by projecting it onto
// a plane with the stereographic projection and running a planar Delaunay
// triangulation. The projection pole maps to infinity, so the last input
// point is rotated onto the pole, excluded from the planar triangulation, and
// reconnected across the convex hull afterwards.
type DelaunayProvider struct{}

// Build implements Provider.
func (DelaunayProvider) Build(points []vectors.Vec3) (*Adjacency, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("adjacency: need at least 4 points, got %d", n)
	}

	rotate := rotationToPole(points[n-1].Normalize())

	// Project everything except the pole point onto the plane.
	pts := make([]delaunay.Point, 0, n-1)
	for _, p := range points[:n-1] {
		u := rotate(p.Normalize())
		pts = append(pts, delaunay.Point{
			X: u.X / (1 - u.Z),
			Y: u.Y / (1 - u.Z),
		})
	}

	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("adjacency: triangulation failed: %w", err)
	}

	triangles := reconnectPole(n-1, tri)
	return &Adjacency{
		Triangles: triangles,
		Neighbors: neighborsFromTriangles(n, triangles),
	}, nil
}

// rotationToPole returns a function rotating unit vectors so that the given
// unit direction ends up at the projection pole (0,0,1).
func rotationToPole(dir vectors.Vec3) func(vectors.Vec3) vectors.Vec3 {
	zAxis := vectors.Vec3{Z: 1}
	axis := dir.Cross(zAxis)
	cosA := math.Max(-1, math.Min(1, dir.Dot(zAxis)))
	if axis.Len() < 1e-9 {
		if cosA > 0 {
			// Already at the pole.
			return func(v vectors.Vec3) vectors.Vec3 { return v }
		}
		// Antipodal; any axis in the equatorial plane works.
		flip := vectors.Vec3{X: 1}
		return func(v vectors.Vec3) vectors.Vec3 { return v.Rotate(flip, math.Pi) }
	}
	axis = axis.Normalize()
	angle := math.Acos(cosA)
	return func(v vectors.Vec3) vectors.Vec3 { return v.Rotate(axis, angle) }
}

// reconnectPole stitches the excluded pole point back into the triangulation
// by pairing every unpaired hull side with a new triangle that ends in the
// pole. This is the "ghost region" construction from redblobgames' dual-mesh,
// the same one used to close the south pole of a projected sphere mesh.
// See: https://mapbox.github.io/delaunator/
func reconnectPole(poleID int, d *delaunay.Triangulation) []int {
	triangles := d.Triangles
	halfedges := d.Halfedges
	numSides := len(triangles)

	nextSide := func(s int) int {
		if s%3 == 2 {
			return s - 2
		}
		return s + 1
	}

	numUnpaired := 0
	firstUnpaired := -1
	pointToSide := make(map[int]int) // hull vertex to its unpaired side
	for s := 0; s < numSides; s++ {
		if halfedges[s] == -1 {
			numUnpaired++
			pointToSide[triangles[s]] = s
			firstUnpaired = s
		}
	}
	if numUnpaired == 0 {
		return triangles
	}

	newTriangles := make([]int, numSides+3*numUnpaired)
	copy(newTriangles, triangles)
	newHalfedges := make([]int, numSides+3*numUnpaired)
	copy(newHalfedges, halfedges)

	for i, s := 0, firstUnpaired; i < numUnpaired; i++ {
		// Pair the unpaired side s with a new side.
		newSide := numSides + 3*i
		newHalfedges[s] = newSide
		newHalfedges[newSide] = s
		newTriangles[newSide] = newTriangles[nextSide(s)]

		// Build the triangle connecting the new side to the pole.
		newTriangles[newSide+1] = newTriangles[s]
		newTriangles[newSide+2] = poleID
		k := numSides + (3*i+4)%(3*numUnpaired)
		newHalfedges[newSide+2] = k
		newHalfedges[k] = newSide + 2
		s = pointToSide[newTriangles[nextSide(s)]]
	}

	return newTriangles
}
