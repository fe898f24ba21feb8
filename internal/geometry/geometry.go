// Package geometry provides the renderer's primitives and the scene, a flat
// list of primitives and point lights intersected by linear scan.
package geometry

import (
	"math"

	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/material"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// Hit records an intersection: position, outward surface normal, the
// direction back along the ray, the ray parameter, and whether the ray was
// entering the surface. The material is attached by the scene.
type Hit struct {
	P        rtmath.Point
	N        rtmath.Direction
	Wo       rtmath.Direction
	T        autograd.Scalar
	Into     bool
	Material *material.Material
}

// Object is a scene primitive.
type Object interface {
	Intersect(r rtmath.Ray) (Hit, bool)
	Mat() *material.Material
}

// PointLight is a position with an RGB power, sampled deterministically by
// next-event estimation.
type PointLight struct {
	P     rtmath.Point
	Power rtmath.Direction
}

// Sphere is a center, radius, and material.
type Sphere struct {
	C        rtmath.Point
	R        autograd.Scalar
	Material *material.Material
}

// NewSphere builds a sphere.
func NewSphere(center rtmath.Point, radius float64, m *material.Material) *Sphere {
	return &Sphere{C: center, R: autograd.Const(radius), Material: m}
}

// Mat returns the sphere's material.
func (s *Sphere) Mat() *material.Material { return s.Material }

// Intersect solves the quadratic in its numerically stable form: one root
// comes from the sign-matched branch q and the other from c/q, avoiding the
// catastrophic cancellation of the textbook formula. The two are then sorted
// and the smallest positive one is kept.
func (s *Sphere) Intersect(r rtmath.Ray) (Hit, bool) {
	f := r.O.Sub(s.C)

	b := f.Neg().Dot(r.D)
	c := f.Dot(f).Sub(s.R.Mul(s.R))

	l := f.Add(r.D.MulS(b))
	d := s.R.Mul(s.R).Sub(l.Dot(l))

	if d.Value() < 0 {
		return Hit{}, false
	}

	q := b.Add(rtmath.Sign(b).Mul(d.Sqrt()))

	t0 := c.Div(q)
	t1 := q
	if t1.Value() < t0.Value() {
		t0, t1 = t1, t0
	}
	if t1.Value() <= 0 {
		return Hit{}, false
	}

	t := t0
	if t0.Value() <= 0 {
		t = t1
	}

	var hit Hit
	hit.T = t
	hit.P = r.At(t)
	hit.N = hit.P.Sub(s.C).Normalize()
	hit.Wo = r.D.Neg()
	hit.Into = hit.N.Dot(r.D).Value() < 0
	return hit, true
}

// Triangle is three vertices plus a pre-stored face normal. The normal is
// not recomputed at hit time, so geometry the optimizer is not training
// contributes no cross-product derivatives.
type Triangle struct {
	V0, V1, V2 rtmath.Point
	N          rtmath.Direction
	Material   *material.Material
}

// NewTriangle builds a triangle with an explicit face normal.
func NewTriangle(v0, v1, v2 rtmath.Point, n rtmath.Direction, m *material.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, N: n, Material: m}
}

// Mat returns the triangle's material.
func (t *Triangle) Mat() *material.Material { return t.Material }

// machineEps is the double-precision machine epsilon used to reject
// near-parallel rays and hits behind the origin.
const machineEps = 2.220446049250313e-16

// Intersect runs Moller-Trumbore: solve o + t d = v0 + u e1 + v e2 by
// Cramer's rule and accept when the barycentrics stay inside the triangle.
func (tr *Triangle) Intersect(r rtmath.Ray) (Hit, bool) {
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)

	rayXe2 := r.D.Cross(e2)
	det := e1.Dot(rayXe2)

	if math.Abs(det.Value()) < machineEps {
		return Hit{}, false
	}

	invDet := autograd.Const(1).Div(det)
	b := r.O.Sub(tr.V0)

	u := b.Dot(rayXe2).Mul(invDet)
	if u.Value() < 0 || u.Value() > 1 {
		return Hit{}, false
	}

	bXe1 := b.Cross(e1)
	v := r.D.Dot(bXe1).Mul(invDet)
	if v.Value() < 0 || u.Value()+v.Value() > 1 {
		return Hit{}, false
	}

	t := e2.Dot(bXe1).Mul(invDet)
	if t.Value() < machineEps {
		return Hit{}, false
	}

	var hit Hit
	hit.T = t
	hit.P = r.At(t)
	hit.N = tr.N
	hit.Wo = r.D.Neg()
	hit.Into = hit.N.Dot(r.D).Value() < 0
	return hit, true
}

// Scene is the primitive and light lists. Insertion order is irrelevant to
// correctness; it only pins down the RNG consumption order of a render.
type Scene struct {
	Objects []Object
	Lights  []*PointLight
}

// Add appends a primitive.
func (s *Scene) Add(o Object) { s.Objects = append(s.Objects, o) }

// AddLight appends a point light.
func (s *Scene) AddLight(l *PointLight) { s.Lights = append(s.Lights, l) }

// Intersect scans every primitive and keeps the nearest hit, attaching the
// winning primitive's material.
func (s *Scene) Intersect(r rtmath.Ray) (Hit, bool) {
	var nearest Hit
	found := false
	closest := math.MaxFloat64

	for _, o := range s.Objects {
		hit, ok := o.Intersect(r)
		if !ok || hit.T.Value() >= closest {
			continue
		}
		closest = hit.T.Value()
		nearest = hit
		nearest.Material = o.Mat()
		found = true
	}

	return nearest, found
}
