// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package matlaw implements saturation-dependent material laws for two-phase
// flow in porous media: capillary pressure and relative permeability as
// functions of phase saturation. The laws here are closed-form evaluators
// meant to be called by an enclosing flow solver; they keep no state of their
// own beyond a finalized parameter object.
//
//	References:
//	 [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//	     Hydrology Papers 3, Colorado State University, Fort Collins
//	 [2] Nordbotten JM and Celia MA (2012) Geological Storage of CO2: Modeling
//	     Approaches for Large-Scale Simulation. Wiley, Hoboken
package matlaw

// fixed two-phase indexing; the laws in this package do not support any other
// phase count
const (
	Wetting    = iota // wetting phase (e.g. brine)
	NonWetting        // non-wetting phase (e.g. CO2)
	NumPhases         // = 2
)

// Gravity is the standard gravity acceleration [m/s²]
const Gravity = 9.80665

// Values holds one scalar per fluid phase. Using a fixed-size array makes any
// attempt to evaluate with a different phase count a compile-time error.
type Values [NumPhases]float64

// FluidState is a read-only view of the fluid state of one cell, supplied by
// the enclosing solver for each evaluation call
type FluidState interface {
	Saturation(phase int) float64 // phase saturation [-]
	Pressure(phase int) float64   // phase pressure [Pa]
	Density(phase int) float64    // phase intrinsic density [kg/m³]
	Viscosity(phase int) float64  // phase dynamic viscosity [Pa·s]
	Smax() float64                // historical maximum non-wetting saturation [-]
}

// BaseLaw is the un-upscaled capillary-pressure/relative-permeability law the
// vertical-equilibrium extension delegates to
type BaseLaw interface {
	CapillaryPressures(values *Values, prm *RegBrooksCoreyParams, fs FluidState)
	RelativePermeabilities(values *Values, prm *RegBrooksCoreyParams, fs FluidState)
	Saturations(values *Values, prm *RegBrooksCoreyParams, fs FluidState)
}
