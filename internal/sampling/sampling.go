// Package sampling provides the renderer's pseudo-random number source and
// the hemispherical direction sampling built on it.
//
// The generator is deliberately outside the tape: values drawn from it are
// plain floats, so gradients never flow through random choices. This is the
// path-space assumption of the integrator.
package sampling

import (
	"math"
	"math/rand"

	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// DefaultSeed matches the Mersenne-twister default seed.
const DefaultSeed = 5489

// rng is confined to the rendering goroutine. It is an unlocked source so a
// future parallel renderer can hold one per worker, seeded per thread,
// without reseeding from call sites.
var rng = rand.New(rand.NewSource(DefaultSeed))

// Seed resets the generator. For a fixed seed the sequence of draws, and
// therefore the render, is reproducible.
func Seed(seed int64) {
	rng = rand.New(rand.NewSource(seed))
}

// Uniform returns a plain float in [lo, hi).
func Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// CosineHemisphere draws a cosine-weighted direction in the hemisphere
// around the unit normal n.
//
// The local frame is built from the component values of n, preferring the
// fallback axis against the smaller normal component for numerical
// stability. The tangent is built from plain values and carries no gradient;
// n and the bitangent n x tangent stay on the tape.
func CosineHemisphere(n rtmath.Direction) rtmath.Direction {
	theta := math.Acos(math.Sqrt(1 - Uniform(0, 1)))
	phi := 2 * math.Pi * Uniform(0, 1)

	nx, ny, nz := n.Values()

	var x rtmath.Direction
	if math.Abs(nx) > math.Abs(ny) {
		inv := 1 / math.Sqrt(nx*nx+nz*nz)
		x = rtmath.NewVec3(-nz*inv, 0, nx*inv)
	} else {
		inv := 1 / math.Sqrt(ny*ny+nz*nz)
		x = rtmath.NewVec3(0, nz*inv, -ny*inv)
	}
	z := n
	y := z.Cross(x)

	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	return x.MulS(autograd.Const(sinTheta * cosPhi)).
		Add(y.MulS(autograd.Const(sinTheta * sinPhi))).
		Add(z.MulS(autograd.Const(cosTheta)))
}
