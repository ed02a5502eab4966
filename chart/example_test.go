package chart_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/benchplot/chart"
	"github.com/katalvlaran/benchplot/timing"
)

// ExampleBuild describes a chart for a hand-made table without drawing it.
func ExampleBuild() {
	table, _ := timing.NewTable([]string{"fast", "slow"}, 5)
	_ = table.Append(1, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond})
	_ = table.Append(2, []time.Duration{300 * time.Millisecond, 400 * time.Millisecond})

	ch, err := chart.Build(table, chart.Spec{Title: "demo", XLabel: "n"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range ch.Series {
		fmt.Println(s.Name, s.X, s.Y)
	}
	fmt.Printf("%q\n", ch.XLabel)
	// Output:
	// fast [1 2] [0.1 0.3]
	// slow [1 2] [0.2 0.4]
	// "n\n\nrepetitions per size: 5"
}
