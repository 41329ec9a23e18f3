// File: solver/example_test.go
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/relax/grid"
	"github.com/katalvlaran/relax/solver"
)

// ExampleSolve demonstrates the canonical smallest run.
// Scenario:
//
//   - size=3: only the centre cell is mutable
//   - cycle 1 averages its neighbours (1+0+0+1)/4 = 0.5 and commits
//   - cycle 2 recomputes 0.5, nothing moves beyond 10⁻², run stops
//
// Complexity: O(N²) per cycle
func ExampleSolve() {
	g, _ := grid.New(3)

	opts := solver.DefaultOptions()
	opts.Workers = 1
	opts.Precision = 2

	res, _ := solver.Solve(g, &opts)
	fmt.Println("cycles:", res.Cycles, "converged:", res.Converged)
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			if col > 0 {
				fmt.Print(" ")
			}
			v, _ := g.At(row, col)
			fmt.Printf("%.2f", v)
		}
		fmt.Println()
	}

	// Output:
	// cycles: 2 converged: true
	// 1.00 1.00 1.00
	// 1.00 0.50 0.00
	// 1.00 0.00 0.00
}

// ExampleSolve_hooks shows per-phase instrumentation from the outside: the
// solver never does I/O, the collaborator installing the hooks does.
func ExampleSolve_hooks() {
	g, _ := grid.New(3)

	opts := solver.DefaultOptions()
	opts.Workers = 1
	opts.Precision = 2
	opts.Hooks = solver.Hooks{
		CommitEnd: func(cycle int) { fmt.Println("committed cycle", cycle) },
	}

	res, _ := solver.Solve(g, &opts)
	fmt.Println("cycles:", res.Cycles)

	// Output:
	// committed cycle 1
	// cycles: 2
}
