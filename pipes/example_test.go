package pipes_test

import (
	"fmt"

	"github.com/katalvlaran/gridlab/pipes"
	"github.com/katalvlaran/gridlab/region"
)

// ExampleMap_Classify draws the labels around a small loop.
func ExampleMap_Classify() {
	m, err := pipes.Parse("F-7.\n|.|.\nS-J.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := m.Classify()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("furthest:", m.Furthest())
	fmt.Print(res.Labels.Render(region.Label.Glyph))
	// Output:
	// furthest: 4
	// ###O
	// #I#O
	// ###O
}
