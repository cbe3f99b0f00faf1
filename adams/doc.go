// Package adams implements fixed-step explicit Adams-Bashforth
// integration of scalar first-order ODEs y' = f(x, y), orders 2-5.
//
// A [Problem] owns one integration task: the derivative [Func], the
// equally spaced starting samples, the step size, and the final
// abscissa. Construction validates the inputs; the order-k entry
// points [Problem.Step2] through [Problem.Step5] then extend the
// trajectory one step at a time using a sliding window of the k most
// recent derivative evaluations:
//
//	p, err := adams.New(f, []float64{0, 0.2, 0.4}, []float64{0, 0.2, 1}, 0.2, 1)
//	if err != nil {
//	    // invalid problem
//	}
//	ys, err := p.Step3()
//
// Each entry point requires exactly k starting samples. The returned
// slice begins with the k warm-up values and carries one entry per
// computed step; [Grid] rebuilds the matching abscissas.
//
// # Thread Safety
//
// A Problem is immutable after construction. Concurrent Step calls on
// the same Problem are safe as long as the derivative function itself
// is reentrant; that is a caller obligation.
package adams
