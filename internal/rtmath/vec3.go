package rtmath

import (
	"math"

	"github.com/lumen-ml/lumen/internal/autograd"
)

// Vec3 is a differentiable 3-vector: three tracked scalars. Every vector
// operation lowers to componentwise scalar arithmetic, so the tape only ever
// sees scalars.
type Vec3 struct {
	X, Y, Z autograd.Scalar
}

// Direction and Point share the representation; the distinction is purely in
// which operations make geometric sense (Point-Point is a Direction,
// Point+Direction is a Point).
type (
	Direction = Vec3
	Point     = Vec3
)

// NewVec3 builds a vector of inert leaf components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{autograd.Const(x), autograd.Const(y), autograd.Const(z)}
}

// NewVec3S builds a vector from existing tracked scalars.
func NewVec3S(x, y, z autograd.Scalar) Vec3 {
	return Vec3{x, y, z}
}

// Zero returns the zero vector.
func Zero() Vec3 { return NewVec3(0, 0, 0) }

// SetRequiresGrad toggles gradient accumulation on all three components.
func (v Vec3) SetRequiresGrad(requiresGrad bool) {
	v.X.SetRequiresGrad(requiresGrad)
	v.Y.SetRequiresGrad(requiresGrad)
	v.Z.SetRequiresGrad(requiresGrad)
}

// ZeroGrad clears the gradients of all three components.
func (v Vec3) ZeroGrad() {
	v.X.ZeroGrad()
	v.Y.ZeroGrad()
	v.Z.ZeroGrad()
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

// Mul returns the componentwise product v * o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z)}
}

// MulS returns v scaled by a tracked scalar.
func (v Vec3) MulS(s autograd.Scalar) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// DivS returns v divided by a tracked scalar.
func (v Vec3) DivS(s autograd.Scalar) Vec3 {
	return v.MulS(autograd.Const(1).Div(s))
}

// Scale returns v scaled by a plain constant.
func (v Vec3) Scale(f float64) Vec3 { return v.MulS(autograd.Const(f)) }

// DivF returns v divided by a plain constant.
func (v Vec3) DivF(f float64) Vec3 { return v.DivS(autograd.Const(f)) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{v.X.Neg(), v.Y.Neg(), v.Z.Neg()} }

// Dot returns the inner product.
func (v Vec3) Dot(o Vec3) autograd.Scalar {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// NormSquared returns |v|^2.
func (v Vec3) NormSquared() autograd.Scalar { return v.Dot(v) }

// Norm returns |v|.
func (v Vec3) Norm() autograd.Scalar { return v.NormSquared().Sqrt() }

// Normalize returns v / |v|. Normalizing a zero vector propagates NaN.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n.Value() == 0 {
		return v.MulS(autograd.Const(math.NaN()))
	}
	return v.DivS(n)
}

// MinC returns the smallest component as an inert scalar. The gradient chain
// intentionally breaks here.
func (v Vec3) MinC() autograd.Scalar {
	return autograd.Const(math.Min(v.X.Value(), math.Min(v.Y.Value(), v.Z.Value())))
}

// MaxC returns the largest component as an inert scalar. The gradient chain
// intentionally breaks here.
func (v Vec3) MaxC() autograd.Scalar {
	return autograd.Const(math.Max(v.X.Value(), math.Max(v.Y.Value(), v.Z.Value())))
}

// IsNaN reports whether any component value is NaN.
func (v Vec3) IsNaN() bool {
	return v.X.IsValueNaN() || v.Y.IsValueNaN() || v.Z.IsValueNaN()
}

// Equal compares component values.
func (v Vec3) Equal(o Vec3) bool {
	return v.X.Value() == o.X.Value() && v.Y.Value() == o.Y.Value() && v.Z.Value() == o.Z.Value()
}

// Values returns the three component values.
func (v Vec3) Values() (x, y, z float64) {
	return v.X.Value(), v.Y.Value(), v.Z.Value()
}
