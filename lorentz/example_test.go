package lorentz_test

import (
	"fmt"
	"math"

	"github.com/rjones30/diracxx/lorentz"
)

// ExampleFourVector_BoostToRest takes a photon into the rest frame of an
// electron that is moving along +z.
func ExampleFourVector_BoostToRest() {
	electron := lorentz.NewFourVector(5, 0, 0, 3) // mass 4
	photon := lorentz.NewFourVector(2, 0, 0, -2)

	k, err := photon.BoostToRest(electron)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("k0 = %.3f\n", k.Time())
	fmt.Printf("p·k = %.3f (frame independent: %.3f)\n",
		electron.ScalarProd(photon), 4*k.Time())
	// Output:
	// k0 = 4.000
	// p·k = 16.000 (frame independent: 16.000)
}

// ExampleNewRotationEuler shows the z-y-z convention.
func ExampleNewRotationEuler() {
	r := lorentz.NewRotationEuler(math.Pi/2, math.Pi/2, 0)
	v := r.Rotate(lorentz.NewThreeVector(0, 0, 1))
	fmt.Printf("%.3f %.3f %.3f\n", v[0], v[1], v[2])
	// Output:
	// 0.000 1.000 0.000
}
