package irr

import (
	"math"
)

const (
	// MaxIterations determines the maximum number of iterations performed by the Newton-Raphson algorithm.
	// It bounds the latency of a single call.
	MaxIterations = 25
	// Precision determines how close to the solution the Newton-Raphson algorithm should arrive before stopping.
	// A step no larger than Precision is accepted, so it bounds the error of a returned rate.
	Precision = 1e-7
)

// newton runs the Newton-Raphson iteration from guess. ffp returns f(x) and f'(x).
// It stops at the first step no larger than precision, or after maxIt steps.
func newton(guess float64, ffp func(float64) (float64, float64), maxIt int, precision float64) Result {
	x := guess
	for numIt := 1; numIt <= maxIt; numIt++ {
		y, dy := ffp(x)
		if !finite(y) || !finite(dy) {
			return Result{Iterations: numIt}
		}

		var step float64
		if y != 0 {
			if dy == 0 {
				return Result{Iterations: numIt}
			}
			step = y / dy
		}

		next := x - step
		if !finite(next) {
			return Result{Iterations: numIt}
		}
		if math.Abs(next-x) <= precision {
			return Result{Rate: next, Converged: true, Iterations: numIt}
		}
		x = next
	}
	return Result{Iterations: maxIt}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NetPresentValue returns the cash flows discounted to time zero at rate.
//
// Excel equivalent: XNPV, with offsets already expressed in years.
func NetPresentValue(rate float64, cashFlows []CashFlow) float64 {
	npv := 0.0
	for _, cf := range cashFlows {
		npv += cf.Amount / math.Pow(1+rate, cf.TimeOffset)
	}
	return npv
}

// NetPresentValueDerivative returns the first derivative of NetPresentValue with respect to rate.
func NetPresentValueDerivative(rate float64, cashFlows []CashFlow) float64 {
	dnpv := 0.0
	for _, cf := range cashFlows {
		dnpv += -cf.TimeOffset * cf.Amount / math.Pow(1+rate, cf.TimeOffset+1)
	}
	return dnpv
}

// npvAndDerivative evaluates NPV(r) = -presentValue + NetPresentValue(r) and its derivative
// in one pass over cashFlows, summing in slice order.
func npvAndDerivative(rate, presentValue float64, cashFlows []CashFlow) (float64, float64) {
	sum, dsum := 0.0, 0.0
	base := 1 + rate
	for _, cf := range cashFlows {
		sum += cf.Amount / math.Pow(base, cf.TimeOffset)
		dsum += -cf.TimeOffset * cf.Amount / math.Pow(base, cf.TimeOffset+1)
	}
	return -presentValue + sum, dsum
}
