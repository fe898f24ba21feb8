// Package scene builds renderable scenes: the built-in Cornell box used by
// training, and a YAML description format for scenes defined on disk.
package scene

import (
	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/material"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// CornellOptions selects optional parts of the box.
type CornellOptions struct {
	// RefractiveSphere adds a glass sphere on the right side.
	RefractiveSphere bool

	// PointLight hangs a point light below the ceiling, giving the
	// integrator's next-event estimation something to sample.
	PointLight bool
}

// Cornell is the built box plus handles to its shared materials, so callers
// can perturb and train individual surfaces. Each wall is one material shared
// by its two triangles: training it moves both at once.
type Cornell struct {
	Scene *geometry.Scene

	BackWall  *material.Material
	Ceiling   *material.Material
	Floor     *material.Material
	LeftWall  *material.Material
	RightWall *material.Material
	Ball      *material.Material
}

// CornellBox builds the training scene: a unit box spanning [-1,1]^2 in x/y
// and [0,1] in z, an emissive ceiling, colored side walls, and a diffuse
// sphere with a slight specular coat.
func CornellBox(opts CornellOptions) *Cornell {
	c := &Cornell{
		Scene:     &geometry.Scene{},
		BackWall:  material.NewDiffuse(rtmath.NewVec3(0.9, 0.9, 0.9)),
		Ceiling:   material.NewEmissive(rtmath.NewVec3(1, 1, 1)),
		Floor:     material.NewDiffuse(rtmath.NewVec3(0.9, 0.9, 0.9)),
		LeftWall:  material.NewDiffuse(rtmath.NewVec3(0.9, 0, 0)),
		RightWall: material.NewDiffuse(rtmath.NewVec3(0, 0.9, 0)),
		Ball: material.New(
			rtmath.Zero(),
			rtmath.NewVec3(0.55290, 0.9, 0.9),
			rtmath.NewVec3(0.1, 0.1, 0.1),
			rtmath.Zero(),
			1, 1.5,
		),
	}

	quad := func(m *material.Material, v0, v1, v2, v3 rtmath.Point, n rtmath.Direction) {
		c.Scene.Add(geometry.NewTriangle(v0, v1, v2, n, m))
		c.Scene.Add(geometry.NewTriangle(v0, v2, v3, n, m))
	}

	// Back wall.
	quad(c.BackWall,
		rtmath.NewVec3(-1, -1, 1), rtmath.NewVec3(1, -1, 1),
		rtmath.NewVec3(1, 1, 1), rtmath.NewVec3(-1, 1, 1),
		rtmath.NewVec3(0, 0, -1))

	// Ceiling.
	quad(c.Ceiling,
		rtmath.NewVec3(-1, 1, 0), rtmath.NewVec3(1, 1, 0),
		rtmath.NewVec3(1, 1, 1), rtmath.NewVec3(-1, 1, 1),
		rtmath.NewVec3(0, -1, 0))

	// Floor.
	quad(c.Floor,
		rtmath.NewVec3(-1, -1, 0), rtmath.NewVec3(1, -1, 0),
		rtmath.NewVec3(1, -1, 1), rtmath.NewVec3(-1, -1, 1),
		rtmath.NewVec3(0, 1, 0))

	// Left wall.
	quad(c.LeftWall,
		rtmath.NewVec3(-1, -1, 0), rtmath.NewVec3(-1, -1, 1),
		rtmath.NewVec3(-1, 1, 1), rtmath.NewVec3(-1, 1, 0),
		rtmath.NewVec3(1, 0, 0))

	// Right wall.
	quad(c.RightWall,
		rtmath.NewVec3(1, -1, 0), rtmath.NewVec3(1, -1, 1),
		rtmath.NewVec3(1, 1, 1), rtmath.NewVec3(1, 1, 0),
		rtmath.NewVec3(-1, 0, 0))

	// Left sphere.
	c.Scene.Add(geometry.NewSphere(rtmath.NewVec3(-0.5, -0.7, 0.25), 0.3, c.Ball))

	if opts.RefractiveSphere {
		glass := material.New(
			rtmath.Zero(),
			rtmath.Zero(),
			rtmath.Zero(),
			rtmath.NewVec3(1, 1, 1),
			1.0, 1.5,
		)
		c.Scene.Add(geometry.NewSphere(rtmath.NewVec3(0.5, -0.7, 0.25), 0.3, glass))
	}

	if opts.PointLight {
		c.Scene.AddLight(&geometry.PointLight{
			P:     rtmath.NewVec3(0, 0.8, 0.5),
			Power: rtmath.NewVec3(1, 1, 1),
		})
	}

	return c
}
