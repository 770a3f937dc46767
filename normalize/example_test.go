// SPDX-License-Identifier: MIT

package normalize_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/conformal/normalize"
)

// ExampleApply pins the diagonal of a layout to the x axis.
func ExampleApply() {
	coords := []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}}
	s, _ := normalize.Canonical(coords, [2]int{0, 1})
	if err := normalize.Apply(coords, [2]int{0, 1}); err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range coords {
		fmt.Printf("(%.1f, %.1f)\n", p.X, p.Y)
	}
	fmt.Printf("scale=%.3f rotation=%.0f°\n", s.Scale(), s.Rotation()*180/math.Pi)
	// Output:
	// (-1.0, 0.0)
	// (1.0, 0.0)
	// (0.0, -1.0)
	// scale=0.707 rotation=-45°
}
