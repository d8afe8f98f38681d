// Package gaia procedurally initializes the state of a planet-scale
// tectonic-plate simulation: it samples a sphere with near-uniform points,
// partitions them into rigid plates, synthesizes per-point crust attributes,
// initializes each plate's rigid rotational motion, and classifies points on
// plate boundaries. Plate interactions over time (collisions, subduction,
// erosion) are left to later simulation stages.
package gaia

import (
	"log"
	"time"

	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/LonestarHTX/Gaia/adjacency"
	"github.com/LonestarHTX/Gaia/various"
)

// Planet holds the generated planet state. All slices are indexed by sample
// point unless noted, owned exclusively by the Planet, and replaced wholesale
// on rebuild; concurrent stage tasks write disjoint ranges and never lock.
type Planet struct {
	cfg *Config

	SamplePoints []vectors.Vec3 // positions at distance PlanetRadiusKm from the origin
	LatLon       [][2]float64   // latitude/longitude in degrees
	Seeds        []vectors.Vec3 // plate seed directions (unit sphere)
	PointToPlate []int          // plate id per point
	Plates       []*Plate
	Crust        []CrustSample
	IsBoundary   []bool // empty until an adjacency build succeeds

	// Adjacency is computed out-of-band by the provider and re-supplied
	// whenever the geometry changes. AdjErr holds the last build failure.
	Adjacency *adjacency.Adjacency
	AdjErr    error

	provider    adjacency.Provider
	regQuadTree *geoquad.QuadTree
	cachedHash  uint64
}

// NewPlanet returns a planet using the build-configured adjacency provider.
// A nil config selects the defaults. No generation happens until Rebuild.
func NewPlanet(cfg *Config) *Planet {
	return NewPlanetWithProvider(cfg, adjacency.NewDefaultProvider())
}

// NewPlanetWithProvider returns a planet with an explicitly chosen adjacency
// provider.
func NewPlanetWithProvider(cfg *Config, provider adjacency.Provider) *Planet {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Planet{cfg: cfg, provider: provider}
}

// Config returns the planet's configuration. Mutating it and calling Rebuild
// triggers a full regeneration.
func (p *Planet) Config() *Config {
	return p.cfg
}

// Rebuild regenerates the entire planet state from the current configuration.
// The rebuild is skipped when the hash of the generation-relevant
// configuration is unchanged and previous output still exists, which makes it
// idempotent with respect to unchanged inputs.
//
// Adjacency and boundary flags are refreshed out-of-band at the end; a
// failing adjacency provider leaves the boundary flags empty rather than
// failing the rebuild (see BuildAdjacency for explicit retries).
func (p *Planet) Rebuild() {
	hash := p.cfg.generationHash()
	if hash == p.cachedHash && len(p.SamplePoints) > 0 {
		return
	}
	cfg := p.cfg

	start := time.Now()
	p.SamplePoints = GenerateFibonacciSpherePoints(cfg.InitialSeed, cfg.NumSamplePoints, cfg.PlanetRadiusKm, cfg.Jitter)
	log.Println("Done sampling in ", time.Since(start).String())

	start = time.Now()
	p.Seeds = GeneratePlateSeeds(cfg.NumPlates)
	var plateToPoints [][]int
	p.PointToPlate, plateToPoints = AssignPointsToSeeds(p.SamplePoints, p.Seeds)
	p.Plates = make([]*Plate, len(p.Seeds))
	for i := range p.Plates {
		p.Plates[i] = &Plate{
			ID:           i,
			PointIndices: plateToPoints[i],
			CentroidDir:  p.Seeds[i],
		}
	}
	log.Println("Done plates in ", time.Since(start).String())

	start = time.Now()
	p.initializeCrust()
	p.initializePlateDynamics()
	log.Println("Done crust in ", time.Since(start).String())

	p.buildLookup()
	p.IsBoundary = nil
	p.Adjacency = nil
	p.cachedHash = hash

	if err := p.BuildAdjacency(); err != nil {
		log.Println("adjacency unavailable: ", err)
	}
}

// BuildAdjacency asks the provider for a triangulation of the current sample
// points and recomputes the per-point boundary flags. On failure the planet
// keeps no partial adjacency state and the error is also recorded in AdjErr;
// the caller decides when to retry.
func (p *Planet) BuildAdjacency() error {
	adj, err := p.provider.Build(p.SamplePoints)
	if err != nil {
		p.AdjErr = err
		return err
	}
	p.Adjacency = adj
	p.AdjErr = nil
	p.IsBoundary = DetectBoundaries(p.PointToPlate, adj.Neighbors, p.cfg.Parallel)
	return nil
}

// buildLookup derives per-point lat/lon and the quadtree used for
// nearest-sample queries.
func (p *Planet) buildLookup() {
	p.LatLon = make([][2]float64, len(p.SamplePoints))
	pts := make([]geoquad.Point, 0, len(p.SamplePoints))
	for i, sp := range p.SamplePoints {
		la, lo := various.LatLonFromVec3(sp.Normalize(), 1.0)
		p.LatLon[i] = [2]float64{la, lo}
		pts = append(pts, geoquad.Point{Lat: la, Lon: lo, Data: i})
	}
	if len(pts) > 0 {
		p.regQuadTree = geoquad.NewQuadTree(pts)
	} else {
		p.regQuadTree = nil
	}
}

// NearestSample returns the index of the sample point closest to the given
// latitude and longitude in degrees.
func (p *Planet) NearestSample(lat, lon float64) (int, bool) {
	if p.regQuadTree == nil {
		return 0, false
	}
	res, ok := p.regQuadTree.FindNearestNeighbor(geoquad.Point{Lat: lat, Lon: lon})
	if !ok {
		return 0, false
	}
	return res.Data.(int), true
}
