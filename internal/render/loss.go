package render

import (
	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// MSELoss is the mean over pixels of |pred - target|^2, as a single tracked
// scalar. The target buffer is typically rendered once with gradients
// disabled and reused across iterations; pred carries the live tape.
func MSELoss(pred, target []rtmath.Direction) autograd.Scalar {
	if len(pred) != len(target) {
		panic("render: loss buffers differ in size")
	}

	mse := autograd.Const(0)
	for i := range pred {
		mse = mse.Add(pred[i].Sub(target[i]).NormSquared())
	}
	return mse.DivF(float64(len(pred)))
}
