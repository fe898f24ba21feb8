package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/material"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// File is the on-disk YAML description of a scene. Materials are named and
// referenced so primitives can share them; shared materials train together.
type File struct {
	Materials map[string]MaterialSpec `yaml:"materials"`
	Spheres   []SphereSpec            `yaml:"spheres"`
	Triangles []TriangleSpec          `yaml:"triangles"`
	Lights    []LightSpec             `yaml:"lights"`
}

// MaterialSpec describes one material.
type MaterialSpec struct {
	Emission   [3]float64 `yaml:"emission"`
	Diffuse    [3]float64 `yaml:"diffuse"`
	Specular   [3]float64 `yaml:"specular"`
	Refractive [3]float64 `yaml:"refractive"`
	N1         float64    `yaml:"n1"`
	N2         float64    `yaml:"n2"`
}

// SphereSpec describes one sphere.
type SphereSpec struct {
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Material string     `yaml:"material"`
}

// TriangleSpec describes one triangle with an explicit face normal.
type TriangleSpec struct {
	V0       [3]float64 `yaml:"v0"`
	V1       [3]float64 `yaml:"v1"`
	V2       [3]float64 `yaml:"v2"`
	Normal   [3]float64 `yaml:"normal"`
	Material string     `yaml:"material"`
}

// LightSpec describes one point light.
type LightSpec struct {
	Position [3]float64 `yaml:"position"`
	Power    [3]float64 `yaml:"power"`
}

// Load reads a scene description from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", path, err)
	}
	return &f, nil
}

// Save writes a scene description to a YAML file.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scene: write %s: %w", path, err)
	}
	return nil
}

// Build instantiates the description. The returned material map holds one
// material per name; every primitive naming it shares the instance.
func (f *File) Build() (*geometry.Scene, map[string]*material.Material, error) {
	mats := make(map[string]*material.Material, len(f.Materials))
	for name, spec := range f.Materials {
		n1, n2 := spec.N1, spec.N2
		if n1 == 0 {
			n1 = 1.0
		}
		if n2 == 0 {
			n2 = 1.5
		}
		mats[name] = material.New(
			vec(spec.Emission), vec(spec.Diffuse), vec(spec.Specular), vec(spec.Refractive),
			n1, n2,
		)
	}

	sc := &geometry.Scene{}

	for i, s := range f.Spheres {
		m, ok := mats[s.Material]
		if !ok {
			return nil, nil, fmt.Errorf("scene: sphere %d references unknown material %q", i, s.Material)
		}
		sc.Add(geometry.NewSphere(vec(s.Center), s.Radius, m))
	}

	for i, tr := range f.Triangles {
		m, ok := mats[tr.Material]
		if !ok {
			return nil, nil, fmt.Errorf("scene: triangle %d references unknown material %q", i, tr.Material)
		}
		sc.Add(geometry.NewTriangle(vec(tr.V0), vec(tr.V1), vec(tr.V2), vec(tr.Normal), m))
	}

	for _, l := range f.Lights {
		sc.AddLight(&geometry.PointLight{P: vec(l.Position), Power: vec(l.Power)})
	}

	return sc, mats, nil
}

func vec(v [3]float64) rtmath.Vec3 {
	return rtmath.NewVec3(v[0], v[1], v[2])
}
