// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autograd provides scalar reverse-mode automatic differentiation.
//
// Arithmetic on Scalar values implicitly records a tape; a Backward call on
// any result propagates gradients into every accumulating leaf below it.
//
// Example:
//
//	a := autograd.New(2, true)
//	b := autograd.New(3, true)
//
//	l := a.Mul(b).Pow(2) // l.Value() == 36
//	l.Backward()
//
//	// a.Grad() == 2*a*b*b == 36
//	// b.Grad() == 2*a*a*b == 24
package autograd

import (
	"github.com/lumen-ml/lumen/internal/autograd"
)

// Scalar is a tracked scalar value carrying its accumulated gradient and its
// position in the tape.
type Scalar = autograd.Scalar

// New creates a leaf scalar, accumulating gradients when requiresGrad is set.
func New(v float64, requiresGrad bool) Scalar {
	return autograd.New(v, requiresGrad)
}

// Const creates an inert leaf scalar.
func Const(v float64) Scalar {
	return autograd.Const(v)
}
