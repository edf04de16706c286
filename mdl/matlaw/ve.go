// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

// VE implements the vertical-equilibrium upscaled Brooks-Corey law. A coarse
// cell stands for a vertical column of height Htot in which the phases are
// assumed to have reached local equilibrium; the coarse non-wetting
// saturation S and its historical maximum Smax are converted into the
// sub-grid interface heights h and hmax, and the upscaled capillary pressure
// and relative permeabilities are derived from those heights. Path dependence
// (residual trapping on imbibition) enters only through the caller-supplied
// Smax; the law itself keeps no memory.
type VE struct {
	Base BaseLaw // un-upscaled law; nil means the regularized Brooks-Corey law
}

// base returns the law delegated to for the un-upscaled behavior
func (o VE) base() BaseLaw {
	if o.Base == nil {
		return RegBrooksCorey{}
	}
	return o.Base
}

// CapillaryPressures fills values with the upscaled per-phase capillary
// pressures. The wetting phase is the pressure reference; the non-wetting
// entry is the hydrostatic pressure of the displaced column segment,
//
//	pcn = (ρw - ρn)·g·h
//
// The fine-scale baseline is evaluated first and then overwritten: for now
// the case with zero fine-scale capillary pressure is treated, and the
// baseline only marks where a fine-scale correction would enter.
func (o VE) CapillaryPressures(values *Values, prm *VEParams, fs FluidState) {
	o.base().CapillaryPressures(values, &prm.RegBrooksCoreyParams, fs)
	rhow := fs.Density(Wetting)
	rhon := fs.Density(NonWetting)
	h := prm.Hn(fs.Saturation(NonWetting), fs.Smax())
	values[Wetting] = 0.0 // reference phase
	values[NonWetting] = (rhow - rhon) * Gravity * h
}

// RelativePermeabilities fills values with the upscaled per-phase relative
// permeabilities derived from the interface heights
func (o VE) RelativePermeabilities(values *Values, prm *VEParams, fs FluidState) {
	S := fs.Saturation(NonWetting)
	Smax := fs.Smax()
	h := prm.Hn(S, Smax)
	hmax := prm.HnMax(S, Smax)
	values[Wetting] = prm.Krw(h, hmax, fs.Viscosity(Wetting))
	values[NonWetting] = prm.Krn(h, hmax)
}

// Saturations fills values with the phase saturations recovered from the
// phase pressure difference. The inversion delegates to the un-upscaled law
// and ignores the height/hysteresis model entirely; results are only
// meaningful where the upscaled and the plain curves coincide.
func (o VE) Saturations(values *Values, prm *VEParams, fs FluidState) {
	o.base().Saturations(values, &prm.RegBrooksCoreyParams, fs)
}
