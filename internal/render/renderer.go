package render

import (
	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/rtmath"
	"github.com/lumen-ml/lumen/internal/sampling"
)

// Renderer drives the per-pixel sampling loop over a fixed pinhole camera:
// eye at (0,0,-3) looking toward +z, image plane spanning [-1,1]^2 at z=0.
type Renderer struct {
	Width  int
	Height int
	SPP    int // samples per pixel
	Depth  int // maximum path length
}

// Config holds renderer settings; zero values fall back to defaults.
type Config struct {
	Width  int // default: 100
	Height int // default: 100
	SPP    int // default: 32
	Depth  int // default: 12
}

// New creates a renderer, filling defaults for unset config fields.
func New(config Config) *Renderer {
	if config.Width == 0 {
		config.Width = 100
	}
	if config.Height == 0 {
		config.Height = 100
	}
	if config.SPP == 0 {
		config.SPP = 32
	}
	if config.Depth == 0 {
		config.Depth = 12
	}
	return &Renderer{
		Width:  config.Width,
		Height: config.Height,
		SPP:    config.SPP,
		Depth:  config.Depth,
	}
}

// Render traces the scene into a row-major pixel buffer, top row first. Each
// pixel is the mean of SPP jittered samples; its components are tracked
// scalars, so the returned buffer carries the tape of the whole frame.
func (r *Renderer) Render(scene *geometry.Scene) []rtmath.Direction {
	eye := rtmath.NewVec3(0, 0, -3)
	forward := rtmath.NewVec3(0, 0, 3)
	up := rtmath.NewVec3(0, 1, 0)
	left := rtmath.NewVec3(-1, 0, 0)

	deltaU := 2.0 / float64(r.Width)
	deltaV := 2.0 / float64(r.Height)

	image := make([]rtmath.Direction, r.Width*r.Height)

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			l := rtmath.Zero()
			for s := 0; s < r.SPP; s++ {
				su := sampling.Uniform(0, deltaU)
				sv := sampling.Uniform(0, deltaV)

				u := float64(x)/float64(r.Width) + su
				v := float64(y)/float64(r.Height) + sv

				d := forward.
					Add(left.Scale(1 - 2*u)).
					Add(up.Scale(1 - 2*v))

				l = l.Add(Li(scene, rtmath.NewRay(eye, d), r.Depth))
			}
			image[y*r.Width+x] = l.DivF(float64(r.SPP))
		}
	}

	return image
}
