package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/proxnet/matrix"
)

// ExampleEuclideanDistances builds the distance matrix of three collared
// animals and lists the ordered pairs closer than 60 m.
func ExampleEuclideanDistances() {
	xs := []float64{0, 30, 200}
	ys := []float64{0, 40, 0}

	m, _ := matrix.EuclideanDistances(xs, ys)
	for _, p := range m.PairsBelow(60) {
		fmt.Printf("(%d,%d) %.0f\n", p.Row, p.Col, p.Value)
	}

	// Output:
	// (0,1) 50
	// (1,0) 50
}
