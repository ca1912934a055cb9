// Command wspsolve loads a workflow-satisfiability instance file (§6) and
// prints a satisfying assignment, if one exists.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wspplanner/instance"
	"github.com/katalvlaran/wspplanner/planner"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "usage: wspsolve <instance-file>\n")

		return 1
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "wspsolve: opening %s: %v\n", args[0], err)

		return 1
	}
	defer f.Close()

	inst, err := instance.Load(f, instance.WithWarnWriter(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "wspsolve: %v\n", err)

		return 1
	}

	sol, ok := planner.PlanAll(inst)
	if !ok {
		fmt.Fprintf(stderr, "wspsolve: no satisfying assignment exists for %s\n", args[0])

		return 1
	}

	for s := 0; s < sol.Len(); s++ {
		if s > 0 {
			fmt.Fprint(stdout, " ")
		}
		fmt.Fprintf(stdout, "%d", sol.Get(s)+1)
	}
	fmt.Fprintln(stdout)

	return 0
}
