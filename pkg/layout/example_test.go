package layout_test

import (
	"fmt"

	"github.com/matzehuels/seedpacket/pkg/layout"
)

func ExampleCompute() {
	g := layout.Compute()

	fmt.Println("Page:", g.Page.W, "x", g.Page.H)
	fmt.Println("Front:", g.FrontPanel)
	fmt.Println("Back:", g.BackPanel)
	fmt.Println("Notes:", g.Notes)
	for _, o := range g.Strokes() {
		fmt.Println(o.Name, o.Stroke)
	}
	// Output:
	// Page: 612 x 792
	// Front: (72,108 216x288)
	// Back: (288,108 216x288)
	// Notes: (318,198 156x168)
	// front dashed
	// back solid
	// flap solid
	// flap-fold dashed
	// left-tab solid
	// right-tab solid
	// bottom-tab solid
}
