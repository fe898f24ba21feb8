package optim

import "math"

// Adam implements Adam (Kingma & Ba, 2014) with optional L2 regularization.
//
// Update rule, with g = grad + weightDecay * value:
//
//	m = beta1 * m + (1-beta1) * g
//	v = beta2 * v + (1-beta2) * g^2
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	value -= lr * mHat / (sqrt(vHat) + eps)
type Adam struct {
	base
	beta1 float64
	beta2 float64
	eps   float64
	t     int
	m     []float64
	v     []float64
}

// AdamConfig holds Adam settings; zero values fall back to defaults.
type AdamConfig struct {
	LR          float64    // learning rate (default: 0.001)
	Betas       [2]float64 // moment decay rates (default: [0.9, 0.999])
	Eps         float64    // numerical stability term (default: 1e-8)
	WeightDecay float64    // L2 coefficient (default: 0)
}

// NewAdam creates an Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		base:  base{lr: config.LR, weightDecay: config.WeightDecay},
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step applies one Adam update to every registered parameter.
func (a *Adam) Step() {
	a.m = grow(a.m, len(a.params))
	a.v = grow(a.v, len(a.params))

	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, p := range a.params {
		g := a.gradient(i)

		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2

		p.Update(p.Value() - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
}

// Timestep returns the number of steps taken, for monitoring.
func (a *Adam) Timestep() int { return a.t }
