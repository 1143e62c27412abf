package agp

// periodicSpline is a cubic spline through hourly control points with
// periodic boundary conditions: value, slope, and curvature match at hour 0
// and hour 24, which keeps the midnight wrap of the daily profile smooth.
type periodicSpline struct {
	y []float64 // control values, y[n] == y[0]
	m []float64 // second derivatives at the knots, m[n] == m[0]
}

// newPeriodicSpline fits control points at x = 0, 1, ..., len(y)-1. The last
// value must equal the first.
func newPeriodicSpline(y []float64) *periodicSpline {
	n := len(y) - 1 // number of unit intervals

	// Moment equations for a uniform grid with unit spacing:
	//   m[i-1] + 4 m[i] + m[i+1] = 6 (y[i+1] - 2 y[i] + y[i-1])
	// with all indices taken mod n. The cyclic tridiagonal system is
	// solved via the Sherman-Morrison correction of two ordinary
	// tridiagonal solves.
	r := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := y[(i-1+n)%n]
		next := y[(i+1)%n]
		r[i] = 6 * (next - 2*y[i] + prev)
	}

	m := solveCyclic(r)

	spline := &periodicSpline{
		y: y,
		m: append(m, m[0]),
	}
	return spline
}

// at evaluates the spline at t in [0, n). The caller wraps t beforehand.
func (s *periodicSpline) at(t float64) float64 {
	i := int(t)
	if i >= len(s.y)-1 {
		i = len(s.y) - 2
	}
	dx := t - float64(i)
	omdx := 1 - dx

	// Classic moment form with unit spacing.
	return s.m[i]*omdx*omdx*omdx/6 +
		s.m[i+1]*dx*dx*dx/6 +
		(s.y[i]-s.m[i]/6)*omdx +
		(s.y[i+1]-s.m[i+1]/6)*dx
}

// solveCyclic solves the cyclic tridiagonal system with diagonal 4 and
// off-diagonals 1 (wrapping corners 1) for the given right-hand side.
func solveCyclic(r []float64) []float64 {
	n := len(r)
	if n == 1 {
		// Degenerate single unknown: (4 + 1 + 1) m = r.
		return []float64{r[0] / 6}
	}

	const diag = 4.0
	gamma := -diag

	// Modified diagonal for the non-cyclic subproblem.
	b := make([]float64, n)
	for i := range b {
		b[i] = diag
	}
	b[0] -= gamma
	b[n-1] -= 1.0 / gamma // alpha*beta/gamma with alpha = beta = 1

	x := solveTridiag(b, r)

	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = 1
	z := solveTridiag(b, u)

	factor := (x[0] + x[n-1]/gamma) / (1 + z[0] + z[n-1]/gamma)
	for i := range x {
		x[i] -= factor * z[i]
	}
	return x
}

// solveTridiag runs the Thomas algorithm for a tridiagonal system with the
// given diagonal, unit off-diagonals, and right-hand side.
func solveTridiag(diag, rhs []float64) []float64 {
	n := len(diag)
	c := make([]float64, n)
	d := make([]float64, n)

	c[0] = 1 / diag[0]
	d[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - c[i-1]
		c[i] = 1 / denom
		d[i] = (rhs[i] - d[i-1]) / denom
	}

	x := make([]float64, n)
	x[n-1] = d[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = d[i] - c[i]*x[i+1]
	}
	return x
}
