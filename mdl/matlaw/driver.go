// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/hafriis/opm-material/mdl/fluid"
)

// Driver runs saturation paths through the vertical-equilibrium law. It owns
// the per-column state, so the historical maximum saturation is tracked
// across the stations of the path the way an enclosing flow solver would
// track it across timesteps.
type Driver struct {

	// input
	Prm *VEParams    // finalized parameters
	Law VE           // upscaled law
	Liq *fluid.Model // wetting phase properties
	Gas *fluid.Model // non-wetting phase properties

	// results
	Sn   []float64 // non-wetting saturation stations
	Hh   []float64 // interface height at each station
	Hmax []float64 // historical-maximum height at each station
	Pc   []Values  // capillary pressures at each station
	Kr   []Values  // relative permeabilities at each station
	Sta  *State    // snapshot of the fluid state after the last station
}

// Init initialises the driver. The fluid models supply densities and
// viscosities at the bottom of the column (z = 0).
func (o *Driver) Init(prm *VEParams, liq, gas *fluid.Model) (err error) {
	if prm == nil || liq == nil || gas == nil {
		return chk.Err("Prm, Liq and Gas must be all non-nil\n")
	}
	if !prm.Finalized() {
		return chk.Err("driver: parameter object must be finalized\n")
	}
	o.Prm = prm
	o.Liq = liq
	o.Gas = gas
	return
}

// Run evaluates the upscaled law along the given non-wetting saturation path.
// Stations must stay within the reachable range: Sn cannot drop below the
// trapped saturation implied by the largest station seen so far.
func (o *Driver) Run(Sn []float64) (err error) {

	// fluid state at the bottom of the column
	var s State
	pw, rhow := o.Liq.Calc(0)
	pn, rhon := o.Gas.Calc(0)
	s.P[Wetting], s.Rho[Wetting] = pw, rhow
	s.P[NonWetting], s.Rho[NonWetting] = pn, rhon
	s.Mu[Wetting] = o.Liq.Visc
	s.Mu[NonWetting] = o.Gas.Visc

	// allocate results arrays; the stations are copied so that later changes
	// to the caller's slice cannot alias the recorded results
	np := len(Sn)
	o.Sn = utl.GetCopy(Sn)
	o.Hh = make([]float64, np)
	o.Hmax = make([]float64, np)
	o.Pc = make([]Values, np)
	o.Kr = make([]Values, np)

	// evaluate stations
	for i, sn := range Sn {
		s.SetSn(sn)
		if sn < o.Prm.Strap(s.Smax()) {
			return chk.Err("driver: station sn = %g is below the trapped saturation %g for smax = %g", sn, o.Prm.Strap(s.Smax()), s.Smax())
		}
		o.Hh[i] = o.Prm.Hn(sn, s.Smax())
		o.Hmax[i] = o.Prm.HnMax(sn, s.Smax())
		o.Law.CapillaryPressures(&o.Pc[i], o.Prm, &s)
		o.Law.RelativePermeabilities(&o.Kr[i], o.Prm, &s)
	}
	o.Sta = s.GetCopy()
	return
}
