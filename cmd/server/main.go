// Command server exposes a generated planet over HTTP: an equirectangular
// crust map, crust queries by latitude/longitude, and per-plate statistics.
package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	gaia "github.com/LonestarHTX/Gaia"
	"github.com/gorilla/mux"
)

var planet *gaia.Planet

var (
	addr       string  = ":3333"
	seed       int64   = 12345
	numPoints  int     = 100000
	numPlates  int     = 40
	ratio      float64 = 0.3
	sequential bool    = false
)

func init() {
	flag.StringVar(&addr, "addr", addr, "listen address")
	flag.Int64Var(&seed, "seed", seed, "the planet seed")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of sample points")
	flag.IntVar(&numPlates, "num_plates", numPlates, "number of plates")
	flag.Float64Var(&ratio, "continental_ratio", ratio, "fraction of continental plates")
	flag.BoolVar(&sequential, "sequential", sequential, "disable parallel stage execution")
}

func main() {
	flag.Parse()

	cfg := gaia.NewConfig()
	cfg.InitialSeed = seed
	cfg.NumSamplePoints = numPoints
	cfg.NumPlates = numPlates
	cfg.ContinentalRatio = ratio
	cfg.Parallel = !sequential

	planet = gaia.NewPlanet(cfg)
	planet.Rebuild()
	if planet.AdjErr != nil {
		log.Println("boundary flags unavailable: ", planet.AdjErr)
	}

	router := mux.NewRouter()
	router.HandleFunc("/map.png", mapHandler)
	router.HandleFunc("/crust", crustHandler)
	router.HandleFunc("/plates", platesHandler)
	log.Fatal(http.ListenAndServe(addr, router))
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "image/png")
	if err := png.Encode(res, planet.RenderMap(1024, 512)); err != nil {
		log.Println(err)
	}
}

type crustResponse struct {
	Index        int     `json:"index"`
	PlateID      int     `json:"plateId"`
	Boundary     bool    `json:"boundary"`
	Type         string  `json:"type"`
	ThicknessKm  float64 `json:"thicknessKm"`
	ElevationKm  float64 `json:"elevationKm"`
	OceanicAgeMy float64 `json:"oceanicAgeMy,omitempty"`
	OrogenyAgeMy float64 `json:"orogenyAgeMy,omitempty"`
	Orogeny      string  `json:"orogeny"`
	LatitudeDeg  float64 `json:"latitudeDeg"`
	LongitudeDeg float64 `json:"longitudeDeg"`
}

func crustHandler(res http.ResponseWriter, req *http.Request) {
	lat, err := strconv.ParseFloat(req.URL.Query().Get("lat"), 64)
	if err != nil {
		http.Error(res, "invalid lat", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(req.URL.Query().Get("lon"), 64)
	if err != nil {
		http.Error(res, "invalid lon", http.StatusBadRequest)
		return
	}
	idx, ok := planet.NearestSample(lat, lon)
	if !ok {
		http.Error(res, "no samples generated", http.StatusServiceUnavailable)
		return
	}

	crust := planet.Crust[idx]
	boundary := idx < len(planet.IsBoundary) && planet.IsBoundary[idx]
	writeJSON(res, crustResponse{
		Index:        idx,
		PlateID:      planet.PointToPlate[idx],
		Boundary:     boundary,
		Type:         crust.Type.String(),
		ThicknessKm:  crust.ThicknessKm,
		ElevationKm:  crust.ElevationKm,
		OceanicAgeMy: crust.OceanicAgeMy,
		OrogenyAgeMy: crust.OrogenyAgeMy,
		Orogeny:      crust.Orogeny.String(),
		LatitudeDeg:  planet.LatLon[idx][0],
		LongitudeDeg: planet.LatLon[idx][1],
	})
}

type plateResponse struct {
	ID              int        `json:"id"`
	Continental     bool       `json:"continental"`
	NumPoints       int        `json:"numPoints"`
	CentroidDir     [3]float64 `json:"centroidDir"`
	RotationAxis    [3]float64 `json:"rotationAxis"`
	AngularVelocity float64    `json:"angularVelocityRadPerMy"`
}

func platesHandler(res http.ResponseWriter, req *http.Request) {
	plates := make([]plateResponse, 0, len(planet.Plates))
	for _, pl := range planet.Plates {
		plates = append(plates, plateResponse{
			ID:              pl.ID,
			Continental:     pl.Continental,
			NumPoints:       len(pl.PointIndices),
			CentroidDir:     [3]float64{pl.CentroidDir.X, pl.CentroidDir.Y, pl.CentroidDir.Z},
			RotationAxis:    [3]float64{pl.RotationAxis.X, pl.RotationAxis.Y, pl.RotationAxis.Z},
			AngularVelocity: pl.AngularVelocity,
		})
	}
	writeJSON(res, plates)
}

func writeJSON(res http.ResponseWriter, v interface{}) {
	res.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(res).Encode(v); err != nil {
		log.Println(err)
	}
}
