// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

// RegBrooksCorey implements the regularized Brooks-Corey capillary pressure /
// relative permeability law. The raw power-law curves predict infinite
// capillary pressures towards zero effective saturation; below the threshold
// saturation of the parameter object (and above full saturation) the curves
// are replaced by linear extensions so that values and gradients stay finite.
// Saturations handed in by the fluid state are taken as effective saturations;
// converting absolute to effective saturations is not a concern of this law.
type RegBrooksCorey struct{}

// Pcnw computes the regularized capillary pressure [Pa] for the wetting
// saturation sw
func (o RegBrooksCorey) Pcnw(prm *RegBrooksCoreyParams, sw float64) float64 {
	seThres := prm.SeThreshold()
	if sw <= seThres {
		// low saturation: linear extension keeps the gradient finite
		return prm.PcnwLow() + prm.PcnwSlopeLow()*(sw-seThres)
	}
	if sw > 1.0 {
		return prm.EntryPressure() + prm.PcnwSlopeHigh()*(sw-1.0)
	}
	return bcPcnw(prm.EntryPressure(), prm.Lambda(), sw)
}

// DpcnwDsw computes the slope of the regularized capillary pressure curve
func (o RegBrooksCorey) DpcnwDsw(prm *RegBrooksCoreyParams, sw float64) float64 {
	if sw <= prm.SeThreshold() {
		return prm.PcnwSlopeLow()
	}
	if sw > 1.0 {
		return prm.PcnwSlopeHigh()
	}
	return bcDpcnwDse(prm.EntryPressure(), prm.Lambda(), sw)
}

// Sw computes the wetting saturation from the capillary pressure pc [Pa],
// inverting the regularized curve branch by branch
func (o RegBrooksCorey) Sw(prm *RegBrooksCoreyParams, pc float64) float64 {
	if pc >= prm.PcnwLow() {
		return prm.SeThreshold() + (pc-prm.PcnwLow())/prm.PcnwSlopeLow()
	}
	if pc <= prm.EntryPressure() {
		return 1.0 + (pc-prm.EntryPressure())/prm.PcnwSlopeHigh()
	}
	return bcSe(prm.EntryPressure(), prm.Lambda(), pc)
}

// Krw computes the wetting relative permeability for the wetting saturation
// sw, clamped to [0,1] outside the physical range
func (o RegBrooksCorey) Krw(prm *RegBrooksCoreyParams, sw float64) float64 {
	if sw <= 0 {
		return 0
	}
	if sw >= 1 {
		return 1
	}
	return bcKrw(prm.Lambda(), sw)
}

// Krn computes the non-wetting relative permeability for the wetting
// saturation sw, clamped to [0,1] outside the physical range
func (o RegBrooksCorey) Krn(prm *RegBrooksCoreyParams, sw float64) float64 {
	if sw <= 0 {
		return 1
	}
	if sw >= 1 {
		return 0
	}
	return bcKrn(prm.Lambda(), sw)
}

// CapillaryPressures fills values with the per-phase capillary pressures.
// The wetting phase is the pressure reference.
func (o RegBrooksCorey) CapillaryPressures(values *Values, prm *RegBrooksCoreyParams, fs FluidState) {
	values[Wetting] = 0.0
	values[NonWetting] = o.Pcnw(prm, fs.Saturation(Wetting))
}

// RelativePermeabilities fills values with the per-phase relative
// permeabilities
func (o RegBrooksCorey) RelativePermeabilities(values *Values, prm *RegBrooksCoreyParams, fs FluidState) {
	sw := fs.Saturation(Wetting)
	values[Wetting] = o.Krw(prm, sw)
	values[NonWetting] = o.Krn(prm, sw)
}

// Saturations fills values with the phase saturations recovered from the
// phase pressure difference
func (o RegBrooksCorey) Saturations(values *Values, prm *RegBrooksCoreyParams, fs FluidState) {
	pc := fs.Pressure(NonWetting) - fs.Pressure(Wetting)
	sw := o.Sw(prm, pc)
	values[Wetting] = sw
	values[NonWetting] = 1.0 - sw
}
