package adams

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// spacingTol is the absolute tolerance used when checking that the
// starting abscissas are separated by exactly the step size. It
// absorbs representation error in values like 0.1*k.
const spacingTol = 1e-10

// Func is a scalar derivative dy/dx = f(x, y). It must be free of side
// effects that affect correctness; it may be invoked repeatedly with
// the same arguments.
type Func func(x, y float64) float64

// Problem is one validated integration task. It is immutable after New
// returns; the Step entry points only read it.
type Problem struct {
	fn       Func
	xInit    []float64
	yInit    []float64
	stepSize float64
	xFinal   float64
}

// New validates the task and returns the Problem. The starting slices
// are copied, never aliased. The number of starting samples is not
// fixed here; each order-k entry point independently requires exactly
// k of them.
func New(fn Func, xInitials, yInitials []float64, stepSize, xFinal float64) (*Problem, error) {
	if len(xInitials) > 0 && xInitials[len(xInitials)-1] >= xFinal {
		return nil, ErrInvalidRange
	}
	if stepSize <= 0 {
		return nil, ErrInvalidStepSize
	}
	for i := 1; i < len(xInitials); i++ {
		if !scalar.EqualWithinAbs(xInitials[i]-xInitials[i-1], stepSize, spacingTol) {
			return nil, ErrNonUniformSpacing
		}
	}

	p := &Problem{
		fn:       fn,
		xInit:    make([]float64, len(xInitials)),
		yInit:    make([]float64, len(yInitials)),
		stepSize: stepSize,
		xFinal:   xFinal,
	}
	copy(p.xInit, xInitials)
	copy(p.yInit, yInitials)
	return p, nil
}

// StepSize returns the fixed abscissa increment.
func (p *Problem) StepSize() float64 { return p.stepSize }

// XFinal returns the target endpoint.
func (p *Problem) XFinal() float64 { return p.xFinal }

// XInitials returns a copy of the starting abscissas.
func (p *Problem) XInitials() []float64 {
	xs := make([]float64, len(p.xInit))
	copy(xs, p.xInit)
	return xs
}

// YInitials returns a copy of the starting values.
func (p *Problem) YInitials() []float64 {
	ys := make([]float64, len(p.yInit))
	copy(ys, p.yInit)
	return ys
}

// Grid rebuilds n equally spaced abscissas starting at x0. It is the
// companion to the Step results, which carry y-values only.
func Grid(x0, h float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*h
	}
	return xs
}
