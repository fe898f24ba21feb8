// Package material bundles the three scattering lobes and an emission term,
// and selects a lobe per bounce by Russian roulette.
package material

import (
	"log"

	"github.com/lumen-ml/lumen/internal/bsdf"
	"github.com/lumen-ml/lumen/internal/rtmath"
	"github.com/lumen-ml/lumen/internal/sampling"
)

// Material is one surface response: an emissive term plus diffuse, specular
// and refractive lobes. Materials are shared by pointer across primitives;
// training a shared material's albedo moves every surface that references it.
type Material struct {
	Emission rtmath.Direction

	Diffuse    bsdf.Lobe
	Specular   bsdf.Lobe
	Refractive bsdf.Lobe

	probD, probS, probR float64
}

// New builds a material. The roulette weight of each lobe is the max channel
// of its albedo; if the weights sum past 1 they are normalized and the
// albedos rescaled by the same factor, which keeps the estimator unbiased.
func New(emission, kd, ks, kr rtmath.Direction, n1, n2 float64) *Material {
	m := &Material{
		Emission:   emission,
		Diffuse:    bsdf.NewDiffuse(kd),
		Specular:   bsdf.NewSpecular(ks),
		Refractive: bsdf.NewRefractive(kr, n1, n2),
		probD:      kd.MaxC().Value(),
		probS:      ks.MaxC().Value(),
		probR:      kr.MaxC().Value(),
	}

	if total := m.probD + m.probS + m.probR; total > 1 {
		log.Println("material: roulette weights sum past 1, normalizing")
		m.probD /= total
		m.probS /= total
		m.probR /= total

		m.Diffuse.K = m.Diffuse.K.DivF(total)
		m.Specular.K = m.Specular.K.DivF(total)
		m.Refractive.K = m.Refractive.K.DivF(total)
	}

	return m
}

// NewDiffuse builds a purely diffuse, non-emissive material with albedo kd.
func NewDiffuse(kd rtmath.Direction) *Material {
	return New(rtmath.Zero(), kd, rtmath.Zero(), rtmath.Zero(), 1, 1.5)
}

// NewEmissive builds a pure emitter.
func NewEmissive(emission rtmath.Direction) *Material {
	return New(emission, rtmath.Zero(), rtmath.Zero(), rtmath.Zero(), 1, 1.5)
}

// EvalEmission returns the emissive term.
func (m *Material) EvalEmission() rtmath.Direction { return m.Emission }

// RR picks a lobe by Russian roulette on a uniform draw against the lobe
// weights. A nil lobe with probability 0 means the path is absorbed.
func (m *Material) RR() (*bsdf.Lobe, float64) {
	p := sampling.Uniform(0, 1)

	switch {
	case p < m.probD:
		return &m.Diffuse, m.probD
	case p < m.probD+m.probS:
		return &m.Specular, m.probS
	case p < m.probD+m.probS+m.probR:
		return &m.Refractive, m.probR
	default:
		return nil, 0
	}
}

// Probs returns the roulette weights in lobe order.
func (m *Material) Probs() (d, s, r float64) { return m.probD, m.probS, m.probR }
