package gaia

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/mazznoer/colorgrad"
)

// RenderMap renders the crust elevation as an equirectangular image, with
// boundary points drawn on top. Every pixel is colored by the crust sample
// nearest to its latitude/longitude.
func (p *Planet) RenderMap(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(p.Crust) == 0 || p.regQuadTree == nil {
		return img
	}

	// Create the color gradient from abyssal blue to continental white.
	colorGrad := colorgrad.NewGradient()
	colorGrad.Colors(
		color.RGBA{0, 16, 96, 255},
		color.RGBA{0, 80, 160, 255},
		color.RGBA{64, 160, 112, 255},
		color.RGBA{176, 160, 96, 255},
		color.RGBA{240, 240, 240, 255},
	)
	grad, err := colorGrad.Build()
	if err != nil {
		log.Fatal(err)
	}

	minElev, maxElev := minMaxElevation(p.Crust)
	boundaryColor := color.RGBA{200, 30, 30, 255}

	for y := 0; y < height; y++ {
		lat := 90 - (float64(y)+0.5)*180/float64(height)
		for x := 0; x < width; x++ {
			lon := (float64(x)+0.5)*360/float64(width) - 180
			idx, ok := p.NearestSample(lat, lon)
			if !ok {
				continue
			}
			if idx < len(p.IsBoundary) && p.IsBoundary[idx] {
				img.Set(x, y, boundaryColor)
				continue
			}
			val := 0.5
			if maxElev > minElev {
				val = (p.Crust[idx].ElevationKm - minElev) / (maxElev - minElev)
			}
			img.Set(x, y, grad.At(val))
		}
	}
	return img
}

// ExportPng writes an equirectangular crust map to the given file.
func (p *Planet) ExportPng(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.RenderMap(1024, 512)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func minMaxElevation(crust []CrustSample) (float64, float64) {
	min, max := crust[0].ElevationKm, crust[0].ElevationKm
	for _, c := range crust[1:] {
		if c.ElevationKm < min {
			min = c.ElevationKm
		}
		if c.ElevationKm > max {
			max = c.ElevationKm
		}
	}
	return min, max
}
