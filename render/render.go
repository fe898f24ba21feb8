// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package render exposes the differentiable path tracer: the radiance
// estimator, the pixel-loop renderer, and the image-space loss.
//
// Example:
//
//	box := scene.CornellBox(scene.CornellOptions{})
//	r := render.New(render.Config{Width: 100, Height: 100, SPP: 128, Depth: 256})
//
//	target := r.Render(box.Scene)
//	pred := r.Render(box.Scene)
//	loss := render.MSELoss(pred, target)
//	loss.Backward()
package render

import (
	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/render"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// Renderer drives the per-pixel sampling loop.
type Renderer = render.Renderer

// Config holds renderer settings; zero values fall back to defaults.
type Config = render.Config

// New creates a renderer.
func New(config Config) *Renderer {
	return render.New(config)
}

// Li estimates radiance along a ray with at most depth bounces.
func Li(scene *geometry.Scene, ray rtmath.Ray, depth int) rtmath.Direction {
	return render.Li(scene, ray, depth)
}

// MSELoss is the pixel-mean squared error between two buffers.
func MSELoss(pred, target []rtmath.Direction) autograd.Scalar {
	return render.MSELoss(pred, target)
}
