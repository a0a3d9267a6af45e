package metrics

// ProgressFunc receives a monotonically non-decreasing fraction in [0,1] at
// the algorithm's own cadence, conventionally once at 0.0, once per outer
// loop iteration, and once at 1.0. A nil ProgressFunc is always safe to
// call via report.
type ProgressFunc func(fraction float64)

func report(p ProgressFunc, fraction float64) {
	if p != nil {
		p(fraction)
	}
}
