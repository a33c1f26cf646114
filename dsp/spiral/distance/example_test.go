package distance_test

import (
	"fmt"

	"github.com/cwbudde/algo-spiral/dsp/spiral/distance"
)

func ExampleNewRational() {
	d := distance.NewRational(100)
	fmt.Printf("%.2f %.2f %.2f\n", d.Distance(100), d.Distance(200), d.Distance(400))
	// Output:
	// 1.00 0.50 0.25
}

func ExampleNewLinear() {
	d := distance.NewLinear(100, 1000)
	fmt.Printf("%.2f %.2f %.2f\n", d.Distance(100), d.Distance(600), d.Distance(1000))
	// Output:
	// 1.00 0.50 0.10
}

func ExampleNewRationalLinearComb() {
	d := distance.NewRationalLinearComb(100, 1000, 0.5)
	fmt.Printf("%.2f %.2f\n", d.Distance(100), d.Distance(200))
	// Output:
	// 1.00 0.70
}

func ExampleNew() {
	d, err := distance.New(distance.TypeLinear, 100, distance.WithEnd(1000))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", d.Distance(1000))
	// Output:
	// 0.10
}
