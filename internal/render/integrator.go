// Package render holds the path-traced radiance estimator, the pixel-loop
// renderer, and the image-space loss that drives training.
package render

import (
	"math"

	"github.com/lumen-ml/lumen/internal/geometry"
	"github.com/lumen-ml/lumen/internal/rtmath"
)

// offsetEps pushes secondary ray origins off the surface to avoid
// self-intersection.
const offsetEps = 1e-4

// Li estimates the radiance arriving along ray with at most depth bounces.
//
// Emissive surfaces terminate the path: their emission is returned without a
// BSDF interaction. Each bounce Russian-roulettes a lobe, recurses for the
// indirect term, and adds deterministic next-event contributions from every
// point light. The indirect bounce multiplies by pi to undo the 1/pi the
// diffuse lobe bakes into its throughput.
func Li(scene *geometry.Scene, ray rtmath.Ray, depth int) rtmath.Direction {
	if depth == 0 {
		return rtmath.Zero()
	}

	hit, ok := scene.Intersect(ray)
	if !ok {
		return rtmath.Zero()
	}

	le := hit.Material.EvalEmission()
	if le.MaxC().Value() > 0 {
		return le
	}

	lobe, prob := hit.Material.RR()
	if lobe == nil {
		return rtmath.Zero()
	}

	wi := lobe.Sample(hit.Wo, hit.N)
	fr := lobe.Evaluate(hit.Wo, wi, hit.N).DivF(prob)
	cosThetaI := lobe.CosThetaI(wi, hit.N)
	pdf := lobe.PDF(hit.Wo, wi, hit.N)

	origin := hit.P.Add(hit.N.Scale(offsetEps))
	indirect := Li(scene, rtmath.NewRay(origin, wi), depth-1).
		Mul(fr).
		Scale(math.Pi * cosThetaI / pdf)

	return indirect.Add(directLight(scene, hit, fr))
}

// directLight accumulates next-event contributions from every point light:
// power * fr / r^2 when the shadow ray is unoccluded. The solid-angle
// geometry of a point light already accounts for the cosine and density
// terms, so nothing else multiplies in.
func directLight(scene *geometry.Scene, hit geometry.Hit, fr rtmath.Direction) rtmath.Direction {
	sum := rtmath.Zero()

	for _, light := range scene.Lights {
		toLight := light.P.Sub(hit.P)
		r2 := toLight.NormSquared()
		dist := math.Sqrt(r2.Value())

		shadow := rtmath.NewRay(hit.P.Add(hit.N.Scale(offsetEps)), toLight)
		if occ, ok := scene.Intersect(shadow); ok && occ.T.Value() < dist-offsetEps {
			continue
		}

		sum = sum.Add(light.Power.Mul(fr).DivS(r2))
	}

	return sum
}
