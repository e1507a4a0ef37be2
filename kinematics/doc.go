// Package kinematics builds consistent sets of four-momenta for the
// reactions in package xsect: two-body Compton points in the lepton rest
// frame, laboratory points for bremsstrahlung and pair production in a
// static field (zero recoil energy), and the photon-energy closure used to
// put the last particle of a three-body final state on its mass shell.
//
// All energies and masses share one unit (GeV in the rest of the module);
// angles are in radians, polar angles measured from the +z beam axis.
package kinematics
