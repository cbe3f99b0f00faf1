package adams

// MinOrder and MaxOrder bound the supported Adams-Bashforth orders.
const (
	MinOrder = 2
	MaxOrder = 5
)

// coefficients holds one row of the Adams-Bashforth table: the integer
// weights with the most recent derivative term first, and the fixed
// denominator (order-1)!.
type coefficients struct {
	terms []float64
	denom float64
}

// tables maps order to its coefficient row. Read-only after init.
var tables = map[int]coefficients{
	2: {terms: []float64{3, -1}, denom: 1},
	3: {terms: []float64{23, -16, 5}, denom: 2},
	4: {terms: []float64{55, -59, 37, -9}, denom: 6},
	5: {terms: []float64{1901, -2774, 2616, -1274, 251}, denom: 24},
}
