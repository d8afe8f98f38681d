package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	gaia "github.com/LonestarHTX/Gaia"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed       int64   = 12345
	numPoints  int     = 500000
	numPlates  int     = 40
	ratio      float64 = 0.3
	radiusKm   float64 = 6370.0
	maxSpeed   float64 = 100.0
	sequential bool    = false
	out        string  = "planet.png"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the planet seed")
	flag.IntVar(&numPoints, "num_points", numPoints, "number of sample points")
	flag.IntVar(&numPlates, "num_plates", numPlates, "number of plates")
	flag.Float64Var(&ratio, "continental_ratio", ratio, "fraction of continental plates")
	flag.Float64Var(&radiusKm, "radius_km", radiusKm, "planet radius in km")
	flag.Float64Var(&maxSpeed, "max_speed", maxSpeed, "max plate speed in mm/year")
	flag.BoolVar(&sequential, "sequential", sequential, "disable parallel stage execution")
	flag.StringVar(&out, "out", out, "output PNG file")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := gaia.NewConfig()
	cfg.InitialSeed = seed
	cfg.NumSamplePoints = numPoints
	cfg.NumPlates = numPlates
	cfg.ContinentalRatio = ratio
	cfg.PlanetRadiusKm = radiusKm
	cfg.MaxPlateSpeedMmPerYear = maxSpeed
	cfg.Parallel = !sequential

	planet := gaia.NewPlanet(cfg)
	planet.Rebuild()
	if planet.AdjErr != nil {
		log.Println("boundary flags unavailable: ", planet.AdjErr)
	}

	if err := planet.ExportPng(out); err != nil {
		log.Fatal(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
