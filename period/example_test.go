package period_test

import (
	"fmt"

	"github.com/katalvlaran/randlab/period"
)

// ExampleValidate checks the classic textbook parameters (a=5, b=3, m=16).
func ExampleValidate() {
	r, err := period.Validate(5, 3, 16, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range r.Conditions {
		fmt.Printf("%-34s %v\n", c.Name, c.Satisfied)
	}
	fmt.Println("all:", r.AllSatisfied)
	// Output:
	// gcd(b, m) = 1                      true
	// prime divisors of m divide (a-1)   true
	// 4 | m implies 4 | (a-1)            true
	// all: true
}
