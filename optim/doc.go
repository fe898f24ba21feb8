// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements the optimizers that close the differentiable
// rendering loop: SGD with momentum and Adam, both with optional L2
// regularization.
//
// Optimizers hold an ordered list of accumulating leaf scalars and update
// their values in place from the gradients deposited by a Backward pass.
//
// Example usage:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.1, WeightDecay: 0.01})
//	opt.AddVec3(wall.Diffuse.K)
//
//	for i := 0; i < iters; i++ {
//	    opt.ZeroGrad()
//	    pred := renderer.Render(sc)
//	    loss := render.MSELoss(pred, target)
//	    loss.Backward()
//	    opt.Step()
//	}
package optim
