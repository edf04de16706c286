// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

// State is a concrete fluid-state view for one cell. The enclosing solver is
// expected to keep one State per cell and persist SnMax across timesteps;
// SetSn maintains it. All laws read State through the FluidState interface.
type State struct {
	Sat   Values  // per-phase saturation [-]
	P     Values  // per-phase pressure [Pa]
	Rho   Values  // per-phase intrinsic density [kg/m³]
	Mu    Values  // per-phase dynamic viscosity [Pa·s]
	SnMax float64 // historical maximum non-wetting saturation [-]
}

// Saturation returns the saturation of a phase
func (o *State) Saturation(phase int) float64 { return o.Sat[phase] }

// Pressure returns the pressure of a phase
func (o *State) Pressure(phase int) float64 { return o.P[phase] }

// Density returns the intrinsic density of a phase
func (o *State) Density(phase int) float64 { return o.Rho[phase] }

// Viscosity returns the dynamic viscosity of a phase
func (o *State) Viscosity(phase int) float64 { return o.Mu[phase] }

// Smax returns the historical maximum non-wetting saturation
func (o *State) Smax() float64 { return o.SnMax }

// SetSn sets the non-wetting saturation (and the complementary wetting
// saturation) and raises the historical maximum if sn exceeds it
func (o *State) SetSn(sn float64) {
	o.Sat[NonWetting] = sn
	o.Sat[Wetting] = 1.0 - sn
	if sn > o.SnMax {
		o.SnMax = sn
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	s := *o
	return &s
}
