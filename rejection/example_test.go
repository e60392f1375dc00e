package rejection_test

import (
	"fmt"

	"github.com/katalvlaran/randlab/rejection"
)

// ExampleSample replays fixed draws through f(x) = 2x on [0,1].
//
// Draws are consumed as (u1, u2) pairs; x = u1 and the acceptance threshold
// is f(x)/M = x.
func ExampleSample() {
	src := rejection.NewFixedSource(0.5, 0.4, 0.5, 0.6, 0.25, 0.1, 0.9, 0.95)

	res, err := rejection.Sample(rejection.Linear(), 4, src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tr := range res.Trials {
		fmt.Printf("x=%.2f u2=%.2f accepted=%v\n", tr.X, tr.U2, tr.Accepted)
	}
	fmt.Printf("rate=%.2f values=%v\n", res.AcceptanceRate, res.Values)
	// Output:
	// x=0.50 u2=0.40 accepted=true
	// x=0.50 u2=0.60 accepted=false
	// x=0.25 u2=0.10 accepted=true
	// x=0.90 u2=0.95 accepted=false
	// rate=0.50 values=[0.5 0.25]
}
