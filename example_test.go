package irr_test

import (
	"fmt"

	"github.com/mvonwaldner/irr"
)

func ExampleComputeIRR() {
	flows := []irr.CashFlow{
		{Amount: -100, TimeOffset: 0},
		{Amount: 110, TimeOffset: 1},
	}
	rate, ok := irr.ComputeIRR(0, flows, 0.1)
	if !ok {
		fmt.Println("no rate")
		return
	}
	fmt.Printf("%.4f%%\n", rate*100)
	// Output: 10.0000%
}

func ExampleSolve() {
	// A bond bought at 95 paying 5 a year and 100 back after three years.
	flows := []irr.CashFlow{
		{Amount: 5, TimeOffset: 1},
		{Amount: 5, TimeOffset: 2},
		{Amount: 105, TimeOffset: 3},
	}
	res := irr.Solve(95, flows, 0.05)
	fmt.Printf("converged=%v yield=%.6f\n", res.Converged, res.Rate)
	// Output: converged=true yield=0.069018
}

func ExampleSolver_Solve() {
	// Nothing to discount against a non-zero present value has no root.
	res := irr.Solver{MaxIterations: 10}.Solve(5, nil, 0.1)
	fmt.Println(res.Converged)
	// Output: false
}
