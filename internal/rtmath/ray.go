package rtmath

import "github.com/lumen-ml/lumen/internal/autograd"

// Ray is an origin plus a unit direction. NewRay normalizes the direction so
// ray parameters measure world-space distance.
type Ray struct {
	O Point
	D Direction
}

// NewRay builds a ray with a normalized direction.
func NewRay(origin Point, direction Direction) Ray {
	return Ray{O: origin, D: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t autograd.Scalar) Point {
	return r.O.Add(r.D.MulS(t))
}

// IsNaN reports whether the origin or direction carries a NaN component.
func (r Ray) IsNaN() bool { return r.O.IsNaN() || r.D.IsNaN() }

// Clamp limits v to [lo, hi] by value. The returned scalar is one of the
// three inputs, so gradients flow through whichever bound is active.
func Clamp(v, lo, hi autograd.Scalar) autograd.Scalar {
	t := v
	if v.Value() < lo.Value() {
		t = lo
	}
	if t.Value() > hi.Value() {
		return hi
	}
	return t
}

// Sign returns +1 for non-negative values and -1 otherwise, as an inert
// scalar.
func Sign(x autograd.Scalar) autograd.Scalar {
	if x.Value() >= 0 {
		return autograd.Const(1)
	}
	return autograd.Const(-1)
}
