package finance

const (
	// DefaultIRRTolerance is the absolute NPV (currency units) at which
	// the bisection search is considered converged.
	DefaultIRRTolerance = 100

	// DefaultIRRMaxIterations caps the bisection loop.
	DefaultIRRMaxIterations = 100
)

// IRR finds the discount rate at which the project NPV crosses zero,
// by bisection over the hard-bounded domain [0, 1].
//
// The domain is a known limitation, kept on purpose: a true IRR above
// 100% (or below 0%) cannot converge and the returned rate saturates at a
// domain boundary. Callers get converged=false in that case and must not
// present the rate as exact. A non-positive annual benefit never crosses
// zero, so it reports non-convergence immediately.
func IRR(investment, annualBenefit float64, years int, tolerance float64, maxIterations int) (rate float64, converged bool) {
	if annualBenefit <= 0 || years <= 0 {
		return 0, false
	}

	lo, hi := 0.0, 1.0
	mid := 0.0
	for i := 0; i < maxIterations; i++ {
		mid = (lo + hi) / 2
		npv := NPV(investment, annualBenefit, mid, years)
		if npv > -tolerance && npv < tolerance {
			return mid, true
		}
		// NPV is strictly decreasing in the rate for a positive benefit.
		if npv > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return mid, false
}
