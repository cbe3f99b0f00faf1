// Package models provides named scalar test equations for the adams
// integrator, each with its derivative and, where one exists, a closed
// form solution for the initial condition noted on the model.
package models

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/multistep/adams"
)

// ErrUnknownModel indicates a lookup of an unregistered model name.
var ErrUnknownModel = errors.New("models: unknown model")

// Model is one scalar ODE y' = f(x, y).
type Model struct {
	Name       string
	Derivative adams.Func

	// Exact is the closed-form solution for the reference initial
	// condition, or nil when the equation has none worth carrying.
	Exact func(x float64) float64

	// Y0 is the reference initial value at x = 0 that Exact solves for.
	Y0 float64
}

var registry = map[string]Model{
	"linear": {
		Name:       "linear",
		Derivative: func(x, y float64) float64 { return x + y },
		Exact:      func(x float64) float64 { return 2*math.Exp(x) - x - 1 },
		Y0:         1,
	},
	"decay": {
		Name:       "decay",
		Derivative: func(x, y float64) float64 { return -y },
		Exact:      func(x float64) float64 { return math.Exp(-x) },
		Y0:         1,
	},
	"logistic": {
		Name:       "logistic",
		Derivative: func(x, y float64) float64 { return y * (1 - y) },
		Exact:      func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
		Y0:         0.5,
	},
	"cosine": {
		Name:       "cosine",
		Derivative: func(x, y float64) float64 { return math.Cos(x) },
		Exact:      math.Sin,
		Y0:         0,
	},
}

// Get returns the model registered under name.
func Get(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return m, nil
}

// Names lists the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
