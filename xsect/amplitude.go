// SPDX-License-Identifier: MIT

// Package xsect - helicity amplitude tensor and its SDM contraction.
//
// An Amplitude with L legs stores 2^L complex numbers, one per assignment
// of a binary state label to each leg; leg 0 is the most significant bit.
//
// Complexity:
//   - Contract: O(4^L · L) time, O(1) extra space. L ≤ 5 for every reaction
//     in this package, i.e. at most 5120 weight products.

package xsect

import (
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/rjones30/diracxx/pauli"
)

// Amplitude is a tensor of helicity amplitudes over binary-labelled legs.
type Amplitude struct {
	legs int
	amp  []complex128
}

// MaxLegs bounds the number of legs of an Amplitude (2^MaxLegs entries).
const MaxLegs = 16

// NewAmplitude returns a zero tensor over legs external legs.
// Errors: ErrBadLegs unless 0 ≤ legs ≤ MaxLegs.
func NewAmplitude(legs int) (*Amplitude, error) {
	if legs < 0 || legs > MaxLegs {
		return nil, errors.Wrapf(ErrBadLegs, "NewAmplitude(%d)", legs)
	}
	return newAmplitude(legs), nil
}

// newAmplitude skips the range check for the fixed leg counts of the reactions.
func newAmplitude(legs int) *Amplitude {
	return &Amplitude{legs: legs, amp: make([]complex128, 1<<legs)}
}

// Legs returns the number of legs.
func (a *Amplitude) Legs() int {
	return a.legs
}

// index packs one label per leg; labels must already be valid.
func (a *Amplitude) index(states []int) int {
	i := 0
	for _, s := range states {
		i = i<<1 | s
	}
	return i
}

// checkStates requires exactly one label in {0, 1} per leg.
func (a *Amplitude) checkStates(states []int) error {
	if len(states) != a.legs {
		return errors.Wrapf(ErrBadState, "%d labels for %d legs", len(states), a.legs)
	}
	for l, s := range states {
		if s != 0 && s != 1 {
			return errors.Wrapf(ErrBadState, "leg %d: label %d", l, s)
		}
	}
	return nil
}

// state returns the label of leg l inside the packed index i.
func (a *Amplitude) state(i, l int) int {
	return (i >> (a.legs - 1 - l)) & 1
}

// Add accumulates v into the entry labelled by states, one label in {0, 1}
// per leg. Errors: ErrBadState, leaving a untouched.
func (a *Amplitude) Add(v complex128, states ...int) error {
	if err := a.checkStates(states); err != nil {
		return errors.Wrap(err, "Amplitude.Add")
	}
	a.add(v, states...)
	return nil
}

// add is Add without validation, for labels produced by loops over {0, 1}.
func (a *Amplitude) add(v complex128, states ...int) {
	a.amp[a.index(states)] += v
}

// At returns the entry labelled by states.
// Errors: ErrBadState, with a zero value.
func (a *Amplitude) At(states ...int) (complex128, error) {
	if err := a.checkStates(states); err != nil {
		return 0, errors.Wrap(err, "Amplitude.At")
	}
	return a.amp[a.index(states)], nil
}

// Contract returns Σ A(s) A*(s̄) Π_l w_l[s_l][s̄_l] together with the same
// sum resolved on leg `resolve`: partial[r][r̄] holds the terms with
// s_resolve = r and s̄_resolve = r̄, so the four entries add up to the total.
//
// The weights w are SDMs already oriented by the caller: ρ for a leg that
// enters the amplitude as a column spinor u, v or as ε (incoming fermion,
// outgoing antifermion, incoming photon), ρᵀ for a leg entering as ū or ε*
// (see Incoming, Outgoing).
//
// Errors: ErrBadLegs when len(w) differs from the number of legs.
func (a *Amplitude) Contract(w []pauli.Matrix, resolve int) (complex128, [2][2]complex128, error) {
	var partial [2][2]complex128
	if len(w) != a.legs {
		return 0, partial, errors.Wrapf(ErrBadLegs, "Contract: %d weights for %d legs", len(w), a.legs)
	}
	var total complex128
	for i, ai := range a.amp {
		if ai == 0 {
			continue
		}
		for j, aj := range a.amp {
			if aj == 0 {
				continue
			}
			weight := ai * cmplx.Conj(aj)
			for l := 0; l < a.legs && weight != 0; l++ {
				weight *= w[l][a.state(i, l)][a.state(j, l)]
			}
			total += weight
			if resolve >= 0 && resolve < a.legs {
				partial[a.state(i, resolve)][a.state(j, resolve)] += weight
			}
		}
	}
	return total, partial, nil
}

// Incoming orients the SDM of a u, v or ε leg for Contract.
func Incoming(rho pauli.Matrix) pauli.Matrix {
	return rho
}

// Outgoing orients the SDM of a ū or ε* leg for Contract.
func Outgoing(rho pauli.Matrix) pauli.Matrix {
	return rho.Transpose()
}
