package scene_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/rtmath"
	"github.com/lumen-ml/lumen/internal/scene"
)

// TestCornellBox_Layout verifies the primitive count and the wall sharing.
func TestCornellBox_Layout(t *testing.T) {
	c := scene.CornellBox(scene.CornellOptions{})

	// Five quads of two triangles each, plus the ball.
	assert.Len(t, c.Scene.Objects, 11)
	assert.Empty(t, c.Scene.Lights)

	// The two right-wall triangles share one material instance.
	var rightWallTris []*geometry.Triangle
	for _, o := range c.Scene.Objects {
		if tr, ok := o.(*geometry.Triangle); ok && tr.Mat() == c.RightWall {
			rightWallTris = append(rightWallTris, tr)
		}
	}
	require.Len(t, rightWallTris, 2)
	assert.Same(t, rightWallTris[0].Mat(), rightWallTris[1].Mat())
}

// TestCornellBox_Options verifies the optional glass sphere and point light.
func TestCornellBox_Options(t *testing.T) {
	c := scene.CornellBox(scene.CornellOptions{RefractiveSphere: true, PointLight: true})
	assert.Len(t, c.Scene.Objects, 12)
	assert.Len(t, c.Scene.Lights, 1)
}

// TestCornellBox_VisibleFromCamera verifies the camera-facing ray hits the
// back wall.
func TestCornellBox_VisibleFromCamera(t *testing.T) {
	c := scene.CornellBox(scene.CornellOptions{})

	r := rtmath.NewRay(rtmath.NewVec3(0, 0, -3), rtmath.NewVec3(0, 0, 1))
	hit, ok := c.Scene.Intersect(r)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.T.Value(), 1e-9)
	assert.Same(t, c.BackWall, hit.Material)
}

// TestFile_RoundTripAndBuild saves a description, loads it back, and builds
// a scene with a shared material.
func TestFile_RoundTripAndBuild(t *testing.T) {
	f := &scene.File{
		Materials: map[string]scene.MaterialSpec{
			"white": {Diffuse: [3]float64{0.9, 0.9, 0.9}},
			"lamp":  {Emission: [3]float64{1, 1, 1}},
		},
		Spheres: []scene.SphereSpec{
			{Center: [3]float64{0, 0, 5}, Radius: 1, Material: "white"},
			{Center: [3]float64{2, 0, 5}, Radius: 1, Material: "white"},
		},
		Triangles: []scene.TriangleSpec{
			{
				V0: [3]float64{-1, 1, 5}, V1: [3]float64{1, 1, 5}, V2: [3]float64{0, 2, 5},
				Normal:   [3]float64{0, 0, -1},
				Material: "lamp",
			},
		},
		Lights: []scene.LightSpec{
			{Position: [3]float64{0, 3, 0}, Power: [3]float64{1, 1, 1}},
		},
	}

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, scene.Save(path, f))

	loaded, err := scene.Load(path)
	require.NoError(t, err)
	require.Equal(t, f, loaded)

	sc, mats, err := loaded.Build()
	require.NoError(t, err)
	assert.Len(t, sc.Objects, 3)
	assert.Len(t, sc.Lights, 1)

	// Both spheres share the "white" material instance.
	assert.Same(t, sc.Objects[0].Mat(), sc.Objects[1].Mat())
	assert.Same(t, mats["white"], sc.Objects[0].Mat())
}

// TestFile_UnknownMaterial verifies the reference check.
func TestFile_UnknownMaterial(t *testing.T) {
	f := &scene.File{
		Spheres: []scene.SphereSpec{{Center: [3]float64{0, 0, 5}, Radius: 1, Material: "missing"}},
	}
	_, _, err := f.Build()
	assert.ErrorContains(t, err, "unknown material")
}

// TestLoad_MissingFile verifies the wrapped read error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := scene.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
