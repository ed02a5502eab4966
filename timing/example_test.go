package timing_test

import (
	"fmt"

	"github.com/katalvlaran/benchplot/sizes"
	"github.com/katalvlaran/benchplot/timing"
)

// ExampleCollect compares two summation strategies over 0..1000 in steps of
// 250, five calls per size. Timings vary between machines, so only the table
// shape is printed.
func ExampleCollect() {
	r, _ := sizes.Between(0, 1000, 250)
	seq, _ := sizes.New(func(n int) []int {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i
		}
		return xs
	}, r)

	set, err := timing.NewSet(
		timing.Same("builtin_sum", timing.Pure(builtinSum)),
		timing.Same("manual_sum", timing.Pure(manualSum)),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	table, err := timing.Collect(set, seq, timing.WithRepetitions(5))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(table.Len(), table.Columns(), table.Sizes())
	// Output:
	// 5 3 [0 250 500 750 1000]
}
