// Copyright 2025 The Lumen Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scene exposes scene construction: the built-in Cornell box and the
// YAML scene description format.
package scene

import (
	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/material"
	"github.com/lumen-ml/lumen/internal/scene"
)

// Scene is the primitive and light lists consumed by the renderer.
type Scene = geometry.Scene

// Material is one surface response, shared by pointer across primitives.
type Material = material.Material

// Cornell is the built training box plus handles to its shared materials.
type Cornell = scene.Cornell

// CornellOptions selects optional parts of the box.
type CornellOptions = scene.CornellOptions

// File is the on-disk YAML description of a scene.
type File = scene.File

// CornellBox builds the training scene.
func CornellBox(opts CornellOptions) *Cornell {
	return scene.CornellBox(opts)
}

// Load reads a scene description from a YAML file.
func Load(path string) (*File, error) {
	return scene.Load(path)
}

// Save writes a scene description to a YAML file.
func Save(path string, f *File) error {
	return scene.Save(path, f)
}
