// Package lens models a function under observation: each input is scored
// with a coherence value that decays as the output drifts away from the
// input, a toy phenomenological lensing protocol (PLP) metric.
package lens

import "math"

// Model holds one observation of the function under the lens.
type Model struct {
	Input     float64
	Output    float64
	Coherence float64 // in (0, 1], 1 meaning perfectly coherent
}

// Default is the reference function under observation, a nonlinear
// phenomenological mapping.
func Default(x float64) float64 {
	return math.Sin(x) + math.Log(math.Abs(x)+1)
}

// Observe runs f at x and scores how coherent the response is: high when
// the output/input ratio is stable around 1, decaying exponentially as
// the behavior diverges.
func Observe(f func(float64) float64, x float64) Model {
	out := f(x)
	ratio := math.Abs(out / (x + 1e-6))
	return Model{
		Input:     x,
		Output:    out,
		Coherence: math.Exp(-math.Abs(ratio - 1)),
	}
}

// Sweep observes f at every step in [from, to]. Step must be positive.
func Sweep(f func(float64) float64, from, to, step float64) []Model {
	models := []Model{}
	for x := from; x <= to; x += step {
		models = append(models, Observe(f, x))
	}
	return models
}
