// Package irr computes the internal rate of return of a series of cash flows
// relative to a present value.
//
// Cash flows carry an amount and a time offset, the discounting exponent,
// typically in years. The rate r solves
//
//	-presentValue + Σ amount / (1+r)^timeOffset = 0
//
// and is found with Newton-Raphson using the analytic derivative. The solver
// takes at most MaxIterations steps and accepts a step no larger than
// Precision. Every numeric failure (zero derivative, NaN or infinite values,
// the iteration cap) is reported the same way: the result is not converged.
//
// A typical call:
//
//	rate, ok := irr.ComputeIRR(0, []irr.CashFlow{{-100, 0}, {110, 1}}, 0.1)
//	if !ok {
//	    // no rate
//	}
//
// All functions are pure and safe for concurrent use.
package irr
