package easing_test

import (
	"fmt"

	"github.com/go-drift/easelab/pkg/easing"
)

// This example shows how to look up an easing and evaluate it.
func ExampleLookup() {
	e, err := easing.Lookup("quadOut")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s: %.2f %.2f %.2f\n", e.Name, e.Evaluate(0), e.Evaluate(0.5), e.Evaluate(1))
	// Output: Ease Out (Quad): 0.00 0.75 1.00
}

// This example shows that the default ID resolves through an alias.
func ExampleLookupOrDefault() {
	e := easing.LookupOrDefault(easing.DefaultID)
	fmt.Println(e.ID)
	// Output: quadInOut
}

// This example shows an interior overshoot with exact endpoints.
func ExampleBackOut() {
	for _, t := range []float64{0, 0.8, 1} {
		fmt.Printf("%.3f\n", easing.BackOut(t))
	}
	// Output:
	// 0.000
	// 1.046
	// 1.000
}

// This example shows a custom easing built from a CSS cubic-bezier.
func ExampleCubicBezier() {
	snappy := easing.Easing{ID: "snappy", Name: "Snappy", Fn: easing.CubicBezier(0.2, 0, 0, 1)}
	fmt.Printf("%.1f %.1f\n", snappy.Evaluate(0), snappy.Evaluate(1))
	// Output: 0.0 1.0
}
