// Package optim implements the gradient-descent optimizers that consume the
// autograd tape: SGD with momentum and Adam, both with optional L2
// regularization.
//
// Optimizer state (momentum and moment buffers) is plain floats, never
// tracked scalars; it is not part of any tape.
package optim

import (
	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// Optimizer is the shared surface of all optimization algorithms.
type Optimizer interface {
	// AddParam registers an accumulating leaf scalar. Registering anything
	// else is a programming error and panics. Registering after the first
	// Step is undefined.
	AddParam(p autograd.Scalar)

	// AddVec3 registers the three components of a vector in x, y, z order.
	AddVec3(v rtmath.Vec3)

	// ZeroGrad clears the gradient of every registered parameter.
	ZeroGrad()

	// Step applies one update from the currently accumulated gradients.
	Step()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate, for scheduling.
	SetLR(lr float64)
}

// base carries the ordered parameter list and the hyperparameters common to
// every optimizer. Auxiliary per-parameter state lives in the concrete
// optimizers, indexed by registration order.
type base struct {
	params      []autograd.Scalar
	lr          float64
	weightDecay float64
}

func (b *base) AddParam(p autograd.Scalar) {
	if !p.RequiresGrad() {
		panic("optim: parameter must be an accumulating leaf")
	}
	b.params = append(b.params, p)
}

func (b *base) AddVec3(v rtmath.Vec3) {
	b.AddParam(v.X)
	b.AddParam(v.Y)
	b.AddParam(v.Z)
}

func (b *base) ZeroGrad() {
	for _, p := range b.params {
		p.ZeroGrad()
	}
}

func (b *base) LR() float64 { return b.lr }

func (b *base) SetLR(lr float64) { b.lr = lr }

// gradient reads the accumulated gradient of parameter i with the L2 term
// folded in.
func (b *base) gradient(i int) float64 {
	g := b.params[i].Grad()
	if b.weightDecay > 0 {
		g += b.weightDecay * b.params[i].Value()
	}
	return g
}

// grow pads a per-parameter state slice up to the current parameter count.
func grow(state []float64, n int) []float64 {
	for len(state) < n {
		state = append(state, 0)
	}
	return state
}
