package adams

// SeedRK4 generates the order equally spaced starting samples an
// order-k method needs from a single initial condition, using
// classical fourth-order Runge-Kutta steps of size h. The first
// returned pair is (x0, y0).
func SeedRK4(fn Func, x0, y0, h float64, order int) (xs, ys []float64) {
	xs = make([]float64, order)
	ys = make([]float64, order)
	x, y := x0, y0
	for i := 0; i < order; i++ {
		xs[i] = x
		ys[i] = y
		if i == order-1 {
			break
		}
		k1 := fn(x, y)
		k2 := fn(x+h*0.5, y+h*0.5*k1)
		k3 := fn(x+h*0.5, y+h*0.5*k2)
		k4 := fn(x+h, y+h*k3)
		y += h / 6.0 * (k1 + 2*k2 + 2*k3 + k4)
		x = x0 + float64(i+1)*h
	}
	return xs, ys
}
