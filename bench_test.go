package irr_test

import (
	"testing"

	"github.com/mvonwaldner/irr"
)

// benchmarkSolve runs the solver over n yearly coupons plus a final principal.
func benchmarkSolve(b *testing.B, n int) {
	flows := make([]irr.CashFlow, 0, n)
	for i := 1; i <= n; i++ {
		flows = append(flows, irr.CashFlow{Amount: 5, TimeOffset: float64(i)})
	}
	flows[n-1].Amount += 100

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !irr.Solve(95, flows, 0.05).Converged {
			b.Fatal("did not converge")
		}
	}
}

func BenchmarkSolve_Short(b *testing.B) { benchmarkSolve(b, 3) }

func BenchmarkSolve_Long(b *testing.B) { benchmarkSolve(b, 360) }

func BenchmarkSolve_Oscillating(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = irr.Solve(oscillatingPV, oscillating, 0)
	}
}
