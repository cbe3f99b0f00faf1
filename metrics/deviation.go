// Package metrics measures how far a computed trajectory sits from a
// reference curve or from another trajectory.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Deviation tracks the largest absolute gap between observed samples
// and a reference curve.
type Deviation struct {
	name    string
	ref     func(x float64) float64
	worst   float64
	samples int
}

func NewDeviation(name string, ref func(x float64) float64) *Deviation {
	return &Deviation{name: name, ref: ref}
}

func (d *Deviation) Name() string {
	return d.name
}

func (d *Deviation) Observe(x, y float64) {
	d.samples++
	if gap := math.Abs(y - d.ref(x)); gap > d.worst {
		d.worst = gap
	}
}

func (d *Deviation) Value() float64 {
	return d.worst
}

func (d *Deviation) Samples() int {
	return d.samples
}

func (d *Deviation) Reset() {
	d.worst = 0
	d.samples = 0
}

// MaxAbsError returns the largest absolute componentwise difference
// between two equal-length trajectories.
func MaxAbsError(got, want []float64) float64 {
	diff := make([]float64, len(got))
	floats.SubTo(diff, got, want)
	return floats.Norm(diff, math.Inf(1))
}

// RMSE returns the root mean square difference between two
// equal-length trajectories.
func RMSE(got, want []float64) float64 {
	if len(got) == 0 {
		return 0
	}
	diff := make([]float64, len(got))
	floats.SubTo(diff, got, want)
	return floats.Norm(diff, 2) / math.Sqrt(float64(len(diff)))
}
