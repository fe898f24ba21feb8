package autograd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-ml/lumen/internal/autograd"
)

// numericalGradient computes the gradient using centered finite differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// tolerance is the acceptance band for comparing tape gradients against
// finite differences: |g|*1e-5 + 1e-6.
func tolerance(g float64) float64 {
	return math.Abs(g)*1e-5 + 1e-6
}

// binaryCase pairs a tape expression with its plain-float counterpart.
type binaryCase struct {
	name string
	tape func(a, b autograd.Scalar) autograd.Scalar
	eval func(a, b float64) float64
}

// TestGradientCheck_BinaryOps compares tape gradients of every binary op
// against centered finite differences over a grid of operand pairs.
func TestGradientCheck_BinaryOps(t *testing.T) {
	cases := []binaryCase{
		{"add", func(a, b autograd.Scalar) autograd.Scalar { return a.Add(b) }, func(a, b float64) float64 { return a + b }},
		{"sub", func(a, b autograd.Scalar) autograd.Scalar { return a.Sub(b) }, func(a, b float64) float64 { return a - b }},
		{"mul", func(a, b autograd.Scalar) autograd.Scalar { return a.Mul(b) }, func(a, b float64) float64 { return a * b }},
		{"div", func(a, b autograd.Scalar) autograd.Scalar { return a.Div(b) }, func(a, b float64) float64 { return a / b }},
	}

	points := []float64{-2.5, -0.75, 0.5, 1.25, 3.0}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, av := range points {
				for _, bv := range points {
					a := autograd.New(av, true)
					b := autograd.New(bv, true)

					tc.tape(a, b).Backward()

					wantA := numericalGradient(func(x float64) float64 { return tc.eval(x, bv) }, av, 1e-5)
					wantB := numericalGradient(func(x float64) float64 { return tc.eval(av, x) }, bv, 1e-5)

					assert.InDelta(t, wantA, a.Grad(), tolerance(wantA), "%s d/da at (%v, %v)", tc.name, av, bv)
					assert.InDelta(t, wantB, b.Grad(), tolerance(wantB), "%s d/db at (%v, %v)", tc.name, av, bv)
				}
			}
		})
	}
}

// unaryCase pairs a tape expression with its plain-float counterpart.
type unaryCase struct {
	name   string
	tape   func(a autograd.Scalar) autograd.Scalar
	eval   func(a float64) float64
	points []float64
}

// TestGradientCheck_UnaryOps compares tape gradients of every unary op
// against centered finite differences.
func TestGradientCheck_UnaryOps(t *testing.T) {
	cases := []unaryCase{
		{
			"neg",
			func(a autograd.Scalar) autograd.Scalar { return a.Neg() },
			func(a float64) float64 { return -a },
			[]float64{-2.5, -0.75, 0.5, 1.25, 3.0},
		},
		{
			"pow3",
			func(a autograd.Scalar) autograd.Scalar { return a.Pow(3) },
			func(a float64) float64 { return a * a * a },
			[]float64{-2.5, -0.75, 0.5, 1.25, 3.0},
		},
		{
			"sqrt",
			func(a autograd.Scalar) autograd.Scalar { return a.Sqrt() },
			func(a float64) float64 { return math.Sqrt(a) },
			[]float64{0.25, 0.5, 1.25, 3.0},
		},
		{
			"sin",
			func(a autograd.Scalar) autograd.Scalar { return a.Sin() },
			math.Sin,
			[]float64{-2.5, -0.75, 0.5, 1.25, 3.0},
		},
		{
			"cos",
			func(a autograd.Scalar) autograd.Scalar { return a.Cos() },
			math.Cos,
			[]float64{-2.5, -0.75, 0.5, 1.25, 3.0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, av := range tc.points {
				a := autograd.New(av, true)
				tc.tape(a).Backward()

				want := numericalGradient(tc.eval, av, 1e-6)
				assert.InDelta(t, want, a.Grad(), tolerance(want), "%s d/da at %v", tc.name, av)
			}
		})
	}
}

// TestGradientCheck_Composite checks a composed expression mixing every op:
// f(a, b) = sin(a*b) + cos(a)/b - (a+b)^2.
func TestGradientCheck_Composite(t *testing.T) {
	eval := func(a, b float64) float64 {
		return math.Sin(a*b) + math.Cos(a)/b - (a+b)*(a+b)
	}

	for _, pt := range [][2]float64{{0.5, 1.5}, {-1.25, 2.0}, {2.0, -0.5}} {
		a := autograd.New(pt[0], true)
		b := autograd.New(pt[1], true)

		f := a.Mul(b).Sin().Add(a.Cos().Div(b)).Sub(a.Add(b).Pow(2))
		assert.InDelta(t, eval(pt[0], pt[1]), f.Value(), 1e-9)

		f.Backward()

		wantA := numericalGradient(func(x float64) float64 { return eval(x, pt[1]) }, pt[0], 1e-6)
		wantB := numericalGradient(func(x float64) float64 { return eval(pt[0], x) }, pt[1], 1e-6)

		assert.InDelta(t, wantA, a.Grad(), 1e-4)
		assert.InDelta(t, wantB, b.Grad(), 1e-4)
	}
}
