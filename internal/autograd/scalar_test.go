package autograd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-ml/lumen/internal/autograd"
)

// TestAdd_Linearity verifies that addition passes the upstream gradient to
// both operands unchanged.
func TestAdd_Linearity(t *testing.T) {
	a := autograd.New(2, true)
	b := autograd.New(3, true)

	f := a.Add(b)
	require.Equal(t, 5.0, f.Value())

	f.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, 1.0, b.Grad())
}

// TestSub_Linearity verifies that subtraction negates the gradient for the
// right operand.
func TestSub_Linearity(t *testing.T) {
	a := autograd.New(2, true)
	b := autograd.New(3, true)

	f := a.Sub(b)
	require.Equal(t, -1.0, f.Value())

	f.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

// TestMul_ProductRule verifies d(a*b)/da = b and d(a*b)/db = a.
func TestMul_ProductRule(t *testing.T) {
	a := autograd.New(3, true)
	b := autograd.New(4, true)

	f := a.Mul(b)
	require.Equal(t, 12.0, f.Value())

	f.Backward()
	assert.Equal(t, 4.0, a.Grad())
	assert.Equal(t, 3.0, b.Grad())
}

// TestFanOut_CubeChain verifies the DAG-with-reuse behavior: for y = a*a*a
// a single backward pass accumulates all three paths into a.
func TestFanOut_CubeChain(t *testing.T) {
	a := autograd.New(2, true)

	y := a.Mul(a).Mul(a)
	require.Equal(t, 8.0, y.Value())

	y.Backward()
	assert.Equal(t, 12.0, a.Grad(), "dy/da = 3a^2")
}

// TestBackward_Accumulates verifies that gradients accumulate across backward
// calls until ZeroGrad.
func TestBackward_Accumulates(t *testing.T) {
	a := autograd.New(3, true)
	b := autograd.New(4, true)

	f := a.Mul(b)
	f.Backward()
	f.Backward()

	assert.Equal(t, 8.0, a.Grad())
	assert.Equal(t, 6.0, b.Grad())

	a.ZeroGrad()
	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 6.0, b.Grad(), "ZeroGrad is per-leaf")
}

// TestCompositeExpression runs L = (a*b + c)^2 with a=2, b=3, c=4.
func TestCompositeExpression(t *testing.T) {
	a := autograd.New(2, true)
	b := autograd.New(3, true)
	c := autograd.New(4, true)

	l := a.Mul(b).Add(c).Pow(2)
	require.Equal(t, 100.0, l.Value())

	l.Backward()
	assert.Equal(t, 60.0, a.Grad())
	assert.Equal(t, 40.0, b.Grad())
	assert.Equal(t, 20.0, c.Grad())
}

// TestTrig runs L = sin(a)*cos(a) with a=1.5; dL/da = cos(2a).
func TestTrig(t *testing.T) {
	a := autograd.New(1.5, true)

	l := a.Sin().Mul(a.Cos())
	assert.InDelta(t, 0.0706, l.Value(), 1e-4)

	l.Backward()
	assert.InDelta(t, -0.9900, a.Grad(), 1e-4)
}

// TestSharedIdentity verifies that Scalar copies share value and gradient
// slots.
func TestSharedIdentity(t *testing.T) {
	a := autograd.New(1, true)
	alias := a

	alias.Update(7)
	assert.Equal(t, 7.0, a.Value())

	a.Mul(a).Backward()
	assert.Equal(t, 14.0, alias.Grad())
}

// TestUpdate_ChangesValueOnly verifies Update does not touch the gradient.
func TestUpdate_ChangesValueOnly(t *testing.T) {
	a := autograd.New(5, true)
	a.Mul(a).Backward()
	require.Equal(t, 10.0, a.Grad())

	a.Update(2)
	assert.Equal(t, 2.0, a.Value())
	assert.Equal(t, 10.0, a.Grad())
}

// TestInertShortCircuit verifies that arithmetic over inert operands yields an
// inert leaf, while one tracked operand keeps the result on the tape.
func TestInertShortCircuit(t *testing.T) {
	c := autograd.Const(2).Mul(autograd.Const(3))
	assert.True(t, c.IsLeaf())
	assert.False(t, c.RequiresGrad())

	a := autograd.New(2, true)
	d := a.Mul(autograd.Const(3))
	assert.False(t, d.IsLeaf())
}

// TestRequiresGrad_LeafToggle verifies the legal leaf toggles and that the
// kind decided at construction is permanent for derived scalars.
func TestRequiresGrad_LeafToggle(t *testing.T) {
	c := autograd.Const(1)
	c.SetRequiresGrad(true)
	assert.True(t, c.RequiresGrad())

	c.SetRequiresGrad(false)
	assert.False(t, c.RequiresGrad())

	a := autograd.New(1, true)
	d := a.Add(autograd.Const(1))
	assert.Panics(t, func() { d.SetRequiresGrad(true) })
}

// TestZeroGrad_NonAccumulating verifies the warning path is non-fatal.
func TestZeroGrad_NonAccumulating(t *testing.T) {
	c := autograd.Const(1)
	assert.NotPanics(t, func() { c.ZeroGrad() })
}

// TestDivisionByZero verifies forward and backward division by zero abort.
func TestDivisionByZero(t *testing.T) {
	a := autograd.New(1, true)
	assert.Panics(t, func() { a.Div(autograd.Const(0)) })

	b := autograd.New(1, true)
	f := a.Div(b)
	b.Update(0)
	assert.Panics(t, func() { f.Backward() })
}

// TestBackwardGrad_Seed verifies an explicit upstream gradient scales the
// whole pass.
func TestBackwardGrad_Seed(t *testing.T) {
	a := autograd.New(3, true)
	a.Mul(a).BackwardGrad(2)
	assert.Equal(t, 12.0, a.Grad())
}

// TestNaNPredicates exercises the NaN detection hooks.
func TestNaNPredicates(t *testing.T) {
	a := autograd.New(-1, true)
	s := a.Sqrt()
	assert.True(t, s.IsValueNaN())
	assert.False(t, a.IsGradNaN())
}
