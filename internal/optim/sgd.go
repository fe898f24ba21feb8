package optim

// SGD implements stochastic gradient descent with optional momentum and L2
// regularization.
//
// Update rule, with g = grad + weightDecay * value:
//
//	without momentum: value -= lr * g
//	with momentum:    v = momentum * v - lr * g; value += v
type SGD struct {
	base
	momentum float64
	v        []float64
}

// SGDConfig holds SGD settings; zero values fall back to defaults.
type SGDConfig struct {
	LR          float64 // learning rate (default: 0.01)
	Momentum    float64 // momentum factor (default: 0, plain SGD)
	WeightDecay float64 // L2 coefficient (default: 0)
}

// NewSGD creates an SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		base:     base{lr: config.LR, weightDecay: config.WeightDecay},
		momentum: config.Momentum,
	}
}

// Step applies one SGD update to every registered parameter.
func (s *SGD) Step() {
	s.v = grow(s.v, len(s.params))

	for i, p := range s.params {
		g := s.gradient(i)

		if s.momentum > 0 {
			s.v[i] = s.momentum*s.v[i] - s.lr*g
			p.Update(p.Value() + s.v[i])
		} else {
			p.Update(p.Value() - s.lr*g)
		}
	}
}
