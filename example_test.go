package vectortraits_test

import (
	"fmt"

	vectortraits "github.com/eadf/vector-traits"
	"github.com/eadf/vector-traits/vec"
)

func ExampleParseScalar() {
	v, err := vectortraits.ParseScalar[float64]("2.5")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	neg, err := vectortraits.ParseScalar[float64]("-inf")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%g %g\n", v, neg)
	// Output: 2.5 -Inf
}

func ExampleCentroid2() {
	points := []vec.Vec2[float64]{
		{0, 0},
		{2, 0},
		{2, 2},
		{0, 2},
	}

	c, ok := vectortraits.Centroid2[vec.Vec2[float64], float64](points)
	if !ok {
		fmt.Println("no points")
		return
	}

	fmt.Printf("centroid: (%g, %g)\n", c.X(), c.Y())
	// Output: centroid: (1, 1)
}

func ExampleClamp() {
	fmt.Println(vectortraits.Clamp(7.5, 0, 1))
	fmt.Println(vectortraits.Clamp(0.25, 0, 1))
	// Output:
	// 1
	// 0.25
}
