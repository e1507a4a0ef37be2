package main

import (
	"math"

	"github.com/rjones30/diracxx/kinematics"
	"github.com/rjones30/diracxx/particle"
	"github.com/rjones30/diracxx/pauli"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

const electronMass = 0.000510998950 // GeV

func newComptonCmd(a *app) *cobra.Command {
	var (
		energy, mass, phi  float64
		thetaMin, thetaMax float64
		points             int
	)
	cmd := &cobra.Command{
		Use:   "compton",
		Short: "Scan dσ/dΩ of γ e → γ e over the photon angle, lepton at rest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.scan(cmd.Context(), "compton", linspace(thetaMin, thetaMax, points), func(theta float64) ([]float64, error) {
				pt, err := kinematics.Compton(energy, mass, theta, phi)
				if err != nil {
					return nil, err
				}
				gIn := particle.NewPhoton(pt.GammaIn, pauli.Unpolarized())
				eIn := particle.NewLepton(pt.LeptonIn, mass, pauli.Unpolarized())
				gOut := particle.NewPhoton(pt.GammaOut, pauli.Inclusive())
				eOut := particle.NewLepton(pt.LeptonOut, mass, pauli.Inclusive())
				sigma, err := a.engine.Compton(gIn, eIn, gOut, eOut)
				if err != nil {
					return nil, err
				}
				return []float64{theta, pt.GammaOut.Time(), sigma, sigma / a.engine.KleinNishina(gIn, gOut, mass)}, nil
			})
			if err != nil {
				return err
			}

			ratios := make([]float64, len(rows))
			for i, row := range rows {
				ratios[i] = row[3]
			}
			mean, std := stat.MeanStdDev(ratios, nil)
			if len(ratios) < 2 {
				std = 0
			}
			return write(cmd.OutOrStdout(), a.format, report{
				Reaction:  "compton",
				Units:     "GeV, μb/sr",
				Constants: a.engine.Constants(),
				Columns:   []string{"theta", "k_prime", "dsigma_domega", "kn_ratio"},
				Rows:      rows,
				Summary:   map[string]float64{"mean": mean, "stddev": std},
			})
		},
	}
	f := cmd.Flags()
	f.Float64Var(&energy, "energy", 0.001, "incident photon energy (GeV)")
	f.Float64Var(&mass, "mass", electronMass, "lepton mass (GeV)")
	f.Float64Var(&phi, "phi", 0, "azimuth of the scattered photon (rad)")
	f.Float64Var(&thetaMin, "theta-min", 0.05, "first polar angle (rad)")
	f.Float64Var(&thetaMax, "theta-max", math.Pi-0.05, "last polar angle (rad)")
	f.IntVar(&points, "points", 19, "number of angles")
	return cmd
}
