// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rtmath provides the differentiable vector algebra of the renderer:
// 3-vectors whose components are tracked scalars, points, directions, and
// rays.
package rtmath

import (
	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// Vec3 is a differentiable 3-vector.
type Vec3 = rtmath.Vec3

// Direction is a Vec3 used as a direction.
type Direction = rtmath.Direction

// Point is a Vec3 used as a position.
type Point = rtmath.Point

// Ray is an origin plus a normalized direction.
type Ray = rtmath.Ray

// NewVec3 builds a vector of inert leaf components.
func NewVec3(x, y, z float64) Vec3 {
	return rtmath.NewVec3(x, y, z)
}

// NewVec3S builds a vector from existing tracked scalars.
func NewVec3S(x, y, z autograd.Scalar) Vec3 {
	return rtmath.NewVec3S(x, y, z)
}

// Zero returns the zero vector.
func Zero() Vec3 { return rtmath.Zero() }

// NewRay builds a ray with a normalized direction.
func NewRay(origin Point, direction Direction) Ray {
	return rtmath.NewRay(origin, direction)
}
