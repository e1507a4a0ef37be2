package xsect_test

import (
	"fmt"
	"math"

	"github.com/rjones30/diracxx/kinematics"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
	"github.com/rjones30/diracxx/xsect"
)

// ExampleCompton scatters a 1 MeV photon through 90° off an electron at rest
// and compares the result with the Klein–Nishina formula.
func ExampleCompton() {
	pt, err := kinematics.Compton(0.001, mElectron, math.Pi/2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	gIn := particle.NewPhoton(pt.GammaIn, pauli.Unpolarized())
	eIn := particle.NewLepton(pt.LeptonIn, mElectron, pauli.Unpolarized())
	gOut := particle.NewPhoton(pt.GammaOut, pauli.Inclusive())
	eOut := particle.NewLepton(pt.LeptonOut, mElectron, pauli.Inclusive())

	sigma, err := xsect.Compton(gIn, eIn, gOut, eOut)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("k' = %.4f MeV\n", 1000*pt.GammaOut.Time())
	fmt.Printf("dσ/dΩ = %.2f μb/sr\n", sigma)
	fmt.Printf("ratio to Klein–Nishina = %.6f\n", sigma/xsect.KleinNishina(gIn, gOut, mElectron))
	// Output:
	// k' = 0.3382 MeV
	// dσ/dΩ = 10422.07 μb/sr
	// ratio to Klein–Nishina = 1.000000
}
