package main

import (
	"github.com/rjones30/diracxx/kinematics"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
	"github.com/spf13/cobra"
)

func newBremsCmd(a *app) *cobra.Command {
	var (
		energy, mass   float64
		thetaK, thetaE float64
		phi, yMin      float64
		yMax           float64
		points         int
	)
	cmd := &cobra.Command{
		Use:   "brems",
		Short: "Scan e → e γ in a Coulomb field over the photon energy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.scan(cmd.Context(), "bremsstrahlung", linspace(yMin, yMax, points), func(y float64) ([]float64, error) {
				pt, err := kinematics.BremsstrahlungLab(energy, mass, y*energy, thetaK, thetaE, phi)
				if err != nil {
					return nil, err
				}
				sigma, err := a.engine.Bremsstrahlung(
					particle.NewLepton(pt.LeptonIn, mass, pauli.Unpolarized()),
					particle.NewLepton(pt.LeptonOut, mass, pauli.Inclusive()),
					particle.NewPhoton(pt.Gamma, pauli.Inclusive()),
				)
				if err != nil {
					return nil, err
				}
				return []float64{pt.Gamma.Time(), pt.Recoil.Length(), sigma}, nil
			})
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.format, report{
				Reaction:  "bremsstrahlung",
				Units:     "GeV, μb/GeV⁴/sr",
				Constants: a.engine.Constants(),
				Columns:   []string{"k", "q", "dsigma"},
				Rows:      rows,
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&energy, "energy", 6, "lepton energy (GeV)")
	f.Float64Var(&mass, "mass", electronMass, "lepton mass (GeV)")
	f.Float64Var(&thetaK, "theta-k", 1e-4, "photon polar angle (rad)")
	f.Float64Var(&thetaE, "theta-e", 2e-4, "outgoing lepton polar angle (rad)")
	f.Float64Var(&phi, "phi", 0, "photon azimuth; the lepton is opposite (rad)")
	f.Float64Var(&yMin, "y-min", 0.05, "first photon energy fraction")
	f.Float64Var(&yMax, "y-max", 0.95, "last photon energy fraction")
	f.IntVar(&points, "points", 19, "number of photon energies")
	return cmd
}
