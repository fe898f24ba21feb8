// Package bsdf implements the three scattering lobes of the renderer:
// diffuse, perfect mirror, and refractive. The lobe set is closed, so a
// tagged struct replaces an interface hierarchy; callers dispatch on Kind.
//
// All three lobes bake their Dirac or cosine-sampling cancellations into the
// returned throughput: PDF and CosThetaI are identically 1, and the diffuse
// lobe folds 1/pi into Evaluate. The integrator compensates by multiplying
// the indirect bounce by pi.
package bsdf

import (
	"math"

	"github.com/lumen-ml/lumen/internal/autograd"
	"github.com/lumen-ml/lumen/internal/rtmath"
	"github.com/lumen-ml/lumen/internal/sampling"
)

// Kind identifies a lobe.
type Kind uint8

const (
	Diffuse Kind = iota
	Specular
	Refractive
)

// Lobe is one scattering lobe. K is the albedo; its components are tracked
// scalars and are what the optimizer trains. N1 and N2 are the refraction
// indices of the outer and inner medium, used by refractive lobes only.
type Lobe struct {
	Kind   Kind
	K      rtmath.Direction
	N1, N2 float64
}

// NewDiffuse builds a Lambertian lobe with albedo k.
func NewDiffuse(k rtmath.Direction) Lobe {
	return Lobe{Kind: Diffuse, K: k}
}

// NewSpecular builds a perfect-mirror lobe with albedo k.
func NewSpecular(k rtmath.Direction) Lobe {
	return Lobe{Kind: Specular, K: k}
}

// NewRefractive builds a Snell-refraction lobe with albedo k between media
// with indices n1 (outside) and n2 (inside). There is no Fresnel split; total
// internal reflection falls back to the mirror direction.
func NewRefractive(k rtmath.Direction, n1, n2 float64) Lobe {
	return Lobe{Kind: Refractive, K: k, N1: n1, N2: n2}
}

// Reflect mirrors wo about the normal n: wo - 2 n (n.wo).
func Reflect(wo, n rtmath.Direction) rtmath.Direction {
	return wo.Sub(n.MulS(n.Dot(wo).MulF(2)))
}

// Refract bends wo through the interface with normal n per Snell's law using
// eta = n1/n2. Past the critical angle it returns the mirror direction.
func Refract(wo, n rtmath.Direction, n1, n2 float64) rtmath.Direction {
	eta := autograd.Const(n1 / n2)
	cosThetaI := n.Dot(wo)
	sin2ThetaT := eta.Mul(eta).Mul(autograd.Const(1).Sub(cosThetaI.Mul(cosThetaI)))

	if sin2ThetaT.Value() > 1 {
		return Reflect(wo, n)
	}

	cosThetaT := autograd.Const(1).Sub(sin2ThetaT).Sqrt()
	return wo.MulS(eta).Add(n.MulS(eta.Mul(cosThetaI).Sub(cosThetaT)))
}

// Evaluate returns the lobe's reflectance for the pair (wo, wi). The Dirac
// lobes return K only when wi matches their single scattering direction.
func (l *Lobe) Evaluate(wo, wi, n rtmath.Direction) rtmath.Direction {
	switch l.Kind {
	case Diffuse:
		return l.K.Scale(1 / math.Pi)
	case Specular:
		if wi.Equal(Reflect(wo.Neg(), n)) {
			return l.K
		}
		return rtmath.Zero()
	case Refractive:
		if wi.Equal(Refract(wo.Neg(), n, l.N1, l.N2)) {
			return l.K
		}
		return rtmath.Zero()
	}
	return rtmath.Zero()
}

// Sample draws an incoming direction for the outgoing direction wo at a
// surface with normal n.
func (l *Lobe) Sample(wo, n rtmath.Direction) rtmath.Direction {
	switch l.Kind {
	case Diffuse:
		return sampling.CosineHemisphere(n)
	case Specular:
		return Reflect(wo.Neg(), n)
	case Refractive:
		return Refract(wo.Neg(), n, l.N1, l.N2)
	}
	return rtmath.Zero()
}

// PDF is identically 1: cosine sampling cancels the diffuse density and the
// Dirac lobes have no density to integrate.
func (l *Lobe) PDF(wo, wi, n rtmath.Direction) float64 { return 1 }

// CosThetaI is identically 1: the cosine factor cancels against the sampling
// density for every lobe.
func (l *Lobe) CosThetaI(wi, n rtmath.Direction) float64 { return 1 }
