package main

import (
	"github.com/rjones30/diracxx/kinematics"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
	"github.com/spf13/cobra"
)

func newPairCmd(a *app) *cobra.Command {
	var (
		energy, mass          float64
		thetaMinus, thetaPlus float64
		phi, xMin, xMax       float64
		points                int
	)
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Scan γ → e⁻e⁺ in a Coulomb field over the electron energy share",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.scan(cmd.Context(), "pair", linspace(xMin, xMax, points), func(x float64) ([]float64, error) {
				pt, err := kinematics.PairLab(energy, mass, x, thetaMinus, thetaPlus, phi)
				if err != nil {
					return nil, err
				}
				sigma, err := a.engine.PairProduction(
					particle.NewPhoton(pt.Gamma, pauli.Unpolarized()),
					particle.NewLepton(pt.Electron, mass, pauli.Inclusive()),
					particle.NewLepton(pt.Positron, mass, pauli.Inclusive()),
				)
				if err != nil {
					return nil, err
				}
				return []float64{x, pt.Recoil.Length(), sigma}, nil
			})
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.format, report{
				Reaction:  "pair",
				Units:     "GeV, μb/GeV⁴/sr",
				Constants: a.engine.Constants(),
				Columns:   []string{"x", "q", "dsigma"},
				Rows:      rows,
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&energy, "energy", 6, "photon energy (GeV)")
	f.Float64Var(&mass, "mass", electronMass, "lepton mass (GeV)")
	f.Float64Var(&thetaMinus, "theta-minus", 2e-4, "electron polar angle (rad)")
	f.Float64Var(&thetaPlus, "theta-plus", 2e-4, "positron polar angle (rad)")
	f.Float64Var(&phi, "phi", 0, "electron azimuth; the positron is opposite (rad)")
	f.Float64Var(&xMin, "x-min", 0.05, "first electron energy fraction")
	f.Float64Var(&xMax, "x-max", 0.95, "last electron energy fraction")
	f.IntVar(&points, "points", 19, "number of energy fractions")
	return cmd
}
