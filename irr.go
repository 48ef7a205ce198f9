package irr

// CashFlow is a signed amount paid or received at TimeOffset.
// TimeOffset is the discounting exponent and need not be an integer.
type CashFlow struct {
	Amount     float64 `json:"amount"`
	TimeOffset float64 `json:"timeOffset"`
}

// Result is the outcome of one solver run.
// Rate is meaningful only when Converged is true.
type Result struct {
	Rate       float64
	Converged  bool
	Iterations int // Newton steps taken
}

// Value returns the rate and whether the solver converged.
func (r Result) Value() (float64, bool) {
	if !r.Converged {
		return 0, false
	}
	return r.Rate, true
}

// Solver holds the Newton-Raphson parameters. Zero fields use MaxIterations and Precision.
type Solver struct {
	MaxIterations int
	Precision     float64
}

// DefaultSolver is the solver used by the package-level functions.
var DefaultSolver = Solver{
	MaxIterations: MaxIterations,
	Precision:     Precision,
}

// Solve searches for the rate at which cashFlows discount to presentValue, starting from guess.
// cashFlows is read only.
func (s Solver) Solve(presentValue float64, cashFlows []CashFlow, guess float64) Result {
	maxIt := s.MaxIterations
	if maxIt <= 0 {
		maxIt = MaxIterations
	}
	precision := s.Precision
	if precision <= 0 {
		precision = Precision
	}

	ffp := func(rate float64) (float64, float64) {
		return npvAndDerivative(rate, presentValue, cashFlows)
	}
	return newton(guess, ffp, maxIt, precision)
}

// Solve runs DefaultSolver.
func Solve(presentValue float64, cashFlows []CashFlow, guess float64) Result {
	return DefaultSolver.Solve(presentValue, cashFlows, guess)
}

// ComputeIRR returns the internal rate of return of cashFlows against presentValue.
// Guess is a guess for the rate, used as a starting point for the iterative algorithm.
// The boolean is false when the algorithm did not converge.
//
// Excel equivalent: XIRR
func ComputeIRR(presentValue float64, cashFlows []CashFlow, guess float64) (float64, bool) {
	return Solve(presentValue, cashFlows, guess).Value()
}
