package adams

import "fmt"

// Step2 extends the trajectory with the two-step method.
func (p *Problem) Step2() ([]float64, error) { return p.step(2) }

// Step3 extends the trajectory with the three-step method.
func (p *Problem) Step3() ([]float64, error) { return p.step(3) }

// Step4 extends the trajectory with the four-step method.
func (p *Problem) Step4() ([]float64, error) { return p.step(4) }

// Step5 extends the trajectory with the five-step method.
func (p *Problem) Step5() ([]float64, error) { return p.step(5) }

// step runs the order-k extrapolation loop. The result starts with the
// k warm-up values and gains one entry per step until xFinal is
// reached. Summation order inside each step is fixed so results are
// reproducible bit for bit.
func (p *Problem) step(order int) ([]float64, error) {
	if len(p.xInit) != order || len(p.yInit) != order {
		return nil, fmt.Errorf("%w: required %d, have %d x-values and %d y-values",
			ErrInsufficientPoints, order, len(p.xInit), len(p.yInit))
	}

	c := tables[order]
	scale := p.stepSize / c.denom

	// Truncated quotient, matching how the step count is derived from
	// the anchor at the last starting sample. Non-negative because New
	// established xFinal > xInit[order-1].
	n := int((p.xFinal - p.xInit[order-1]) / p.stepSize)

	y := make([]float64, order, order+n)
	copy(y, p.yInit)

	w := newWindow(p.xInit)
	fvals := make([]float64, order)

	for i := 0; i < n; i++ {
		// The y-values stay frozen at the warm-up samples while the
		// x-window slides; from the second step onward each abscissa is
		// paired with a y from an earlier time. This reproduces the
		// reference tool's evaluation exactly and is kept for output
		// compatibility.
		for j := 0; j < order; j++ {
			fvals[j] = p.fn(w.at(j), y[j])
		}
		// Ordered dot product, coefficient 0 against the most recent
		// derivative.
		var sum float64
		for j := 0; j < order; j++ {
			sum += c.terms[j] * fvals[order-1-j]
		}
		y = append(y, y[order+i-1]+scale*sum)
		w.slide(p.stepSize)
	}
	return y, nil
}
