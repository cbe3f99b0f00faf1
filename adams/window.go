package adams

// window is a fixed-size ring over the k most recent abscissas.
// Sliding drops the oldest value and appends last+h without
// reallocating.
type window struct {
	xs   []float64
	head int
}

func newWindow(xs []float64) *window {
	w := &window{xs: make([]float64, len(xs))}
	copy(w.xs, xs)
	return w
}

// at returns the j-th abscissa in window order, oldest first.
func (w *window) at(j int) float64 {
	return w.xs[(w.head+j)%len(w.xs)]
}

func (w *window) last() float64 {
	return w.at(len(w.xs) - 1)
}

// slide overwrites the oldest slot with last+h and advances the head.
func (w *window) slide(h float64) {
	w.xs[w.head] = w.last() + h
	w.head = (w.head + 1) % len(w.xs)
}
