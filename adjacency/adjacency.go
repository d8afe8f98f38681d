// Package adjacency derives triangulation-based neighbor relationships for a
// point cloud on a sphere. The core pipeline only depends on the Provider
// contract, not on how the triangulation is computed.
package adjacency

import (
	"github.com/Flokey82/go_gens/vectors"
)

// Adjacency holds the triangulation of a point cloud and the neighbor lists
// derived from it. Neighbor lists are symmetric (i neighbor of j iff j
// neighbor of i) and never contain the point itself.
type Adjacency struct {
	Triangles []int   // triangle index triplets into the point slice
	Neighbors [][]int // per-point neighbor indices, sorted ascending
}

// Provider builds a triangulation and neighbor lists for a point cloud.
// A provider must fail explicitly when fewer than 4 points are supplied or
// when the underlying triangulation is unavailable, and must not leave
// partial state behind on failure.
type Provider interface {
	Build(points []vectors.Vec3) (*Adjacency, error)
}

// neighborsFromTriangles derives symmetric, self-free, sorted neighbor lists
// for n points from triangle index triplets.
func neighborsFromTriangles(n int, triangles []int) [][]int {
	sets := make([]map[int]struct{}, n)
	link := func(a, b int) {
		if a == b {
			return
		}
		if sets[a] == nil {
			sets[a] = make(map[int]struct{})
		}
		sets[a][b] = struct{}{}
	}
	for t := 0; t+2 < len(triangles); t += 3 {
		a, b, c := triangles[t], triangles[t+1], triangles[t+2]
		link(a, b)
		link(b, a)
		link(b, c)
		link(c, b)
		link(c, a)
		link(a, c)
	}

	neighbors := make([][]int, n)
	for i, set := range sets {
		if len(set) == 0 {
			continue
		}
		lst := make([]int, 0, len(set))
		for nb := range set {
			lst = append(lst, nb)
		}
		sortInts(lst)
		neighbors[i] = lst
	}
	return neighbors
}

// sortInts is an insertion sort; neighbor lists are tiny (typically 5-7).
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
