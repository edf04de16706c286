// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/hafriis/opm-material/inp"
)

// BrooksCoreyParams holds the independent coefficients of the Brooks-Corey
// capillary pressure model. Setters may be called freely during model setup;
// Finalize validates the coefficients and freezes the object. Reading a
// coefficient before Finalize is a programming error and panics.
type BrooksCoreyParams struct {

	// parameters
	pcae float64 // entry pressure [Pa]
	lam  float64 // pore-size distribution index [-]

	// finalized flag
	fin bool
}

// SetEntryPressure sets the entry pressure [Pa]
func (o *BrooksCoreyParams) SetEntryPressure(value float64) {
	o.pcae = value
}

// SetLambda sets the pore-size distribution index
func (o *BrooksCoreyParams) SetLambda(value float64) {
	o.lam = value
}

// EntryPressure returns the entry pressure [Pa]
func (o *BrooksCoreyParams) EntryPressure() float64 {
	o.assertFinalized()
	return o.pcae
}

// Lambda returns the pore-size distribution index
func (o *BrooksCoreyParams) Lambda() float64 {
	o.assertFinalized()
	return o.lam
}

// Finalized tells whether Finalize has completed
func (o *BrooksCoreyParams) Finalized() bool {
	return o.fin
}

// Finalize validates the coefficients and freezes this object
func (o *BrooksCoreyParams) Finalize() (err error) {
	if !(o.pcae > 0) {
		return chk.Err("brooks-corey: entry pressure must be positive. pcae = %g is invalid", o.pcae)
	}
	if !(o.lam > 0) {
		return chk.Err("brooks-corey: pore-size distribution index must be positive. lam = %g is invalid", o.lam)
	}
	o.fin = true
	return
}

// assertFinalized panics if the parameter object has not been finalized.
// Evaluating a law with non-finalized parameters is a contract violation,
// not a recoverable error.
func (o *BrooksCoreyParams) assertFinalized() {
	if !o.fin {
		chk.Panic("parameter object was used before Finalize was called")
	}
}

// RegBrooksCoreyParams holds the coefficients of the regularized Brooks-Corey
// model: the base coefficients plus the threshold effective saturation below
// which the capillary pressure curve is replaced by a linear extension.
// Finalize recomputes the cached extension coefficients.
type RegBrooksCoreyParams struct {
	BrooksCoreyParams

	// parameters
	seThres float64 // threshold effective saturation for regularization

	// derived, recomputed by Finalize
	pcnwLow       float64 // pc at the low threshold saturation
	pcnwSlopeLow  float64 // dpc/dSw of the linear extension below the threshold
	pcnwSlopeHigh float64 // dpc/dSw of the linear extension above Sw=1
}

// SetSeThreshold sets the threshold effective saturation below which the
// capillary pressure curve is regularized
func (o *RegBrooksCoreyParams) SetSeThreshold(value float64) {
	o.seThres = value
}

// SeThreshold returns the threshold effective saturation
func (o *RegBrooksCoreyParams) SeThreshold() float64 {
	o.assertFinalized()
	return o.seThres
}

// PcnwLow returns the capillary pressure at the low threshold saturation
func (o *RegBrooksCoreyParams) PcnwLow() float64 {
	o.assertFinalized()
	return o.pcnwLow
}

// PcnwSlopeLow returns the slope of the linear extension below the threshold
func (o *RegBrooksCoreyParams) PcnwSlopeLow() float64 {
	o.assertFinalized()
	return o.pcnwSlopeLow
}

// PcnwSlopeHigh returns the slope of the linear extension above Sw=1
func (o *RegBrooksCoreyParams) PcnwSlopeHigh() float64 {
	o.assertFinalized()
	return o.pcnwSlopeHigh
}

// Finalize validates the coefficients, recomputes the cached linear-extension
// coefficients and freezes this object
func (o *RegBrooksCoreyParams) Finalize() (err error) {
	if o.seThres == 0 {
		o.seThres = 1e-2
	}
	if o.seThres < 0 || o.seThres >= 1 {
		return chk.Err("reg-brooks-corey: threshold saturation must be within [0,1). seThres = %g is invalid", o.seThres)
	}
	err = o.BrooksCoreyParams.Finalize()
	if err != nil {
		return
	}
	o.pcnwLow = bcPcnw(o.pcae, o.lam, o.seThres)
	o.pcnwSlopeLow = bcDpcnwDse(o.pcae, o.lam, o.seThres)
	o.pcnwSlopeHigh = bcDpcnwDse(o.pcae, o.lam, 1.0)
	return
}

// VEParams holds the coefficients of the vertical-equilibrium upscaled
// Brooks-Corey model: the regularized base coefficients, the residual
// saturations, the endpoint relative permeabilities and the total height of
// the upscaled column. The sub-grid interface heights and the upscaled
// relative permeabilities derived from them are evaluated here as well, since
// they are pure functions of the coefficients.
type VEParams struct {
	RegBrooksCoreyParams

	// parameters
	srw    float64 // residual wetting saturation [-]
	srn    float64 // residual non-wetting saturation [-]
	krwEnd float64 // wetting relative permeability at the endpoint [-]
	krnEnd float64 // non-wetting relative permeability at the endpoint [-]
	htot   float64 // total height of the upscaled column [m]
}

// NewVEParams returns a new parameter object with default coefficients:
// zero residual saturations and 0.01 endpoint relative permeabilities.
// Setters must be called and the object finalized before use.
func NewVEParams() (o *VEParams) {
	o = new(VEParams)
	o.krwEnd = 0.01
	o.krnEnd = 0.01
	return
}

// NewVEParamsPcLam returns a new, already finalized parameter object given
// the entry pressure and the pore-size distribution index, with all other
// coefficients at their defaults
func NewVEParamsPcLam(entryPressure, lambda float64) (o *VEParams, err error) {
	o = NewVEParams()
	o.SetEntryPressure(entryPressure)
	o.SetLambda(lambda)
	err = o.FinalizePlain()
	if err != nil {
		return nil, err
	}
	err = o.Finalize()
	if err != nil {
		return nil, err
	}
	return
}

// SetSrw sets the residual wetting saturation
func (o *VEParams) SetSrw(value float64) {
	o.srw = value
}

// SetSrn sets the residual non-wetting saturation
func (o *VEParams) SetSrn(value float64) {
	o.srn = value
}

// SetKrwEndPoint sets the wetting relative permeability endpoint
func (o *VEParams) SetKrwEndPoint(value float64) {
	o.krwEnd = value
}

// SetKrnEndPoint sets the non-wetting relative permeability endpoint
func (o *VEParams) SetKrnEndPoint(value float64) {
	o.krnEnd = value
}

// SetHtot sets the total height of the upscaled column [m]
func (o *VEParams) SetHtot(value float64) {
	o.htot = value
}

// Srw returns the residual wetting saturation
func (o *VEParams) Srw() float64 {
	o.assertFinalized()
	return o.srw
}

// Srn returns the residual non-wetting saturation
func (o *VEParams) Srn() float64 {
	o.assertFinalized()
	return o.srn
}

// KrwEndPoint returns the wetting relative permeability endpoint
func (o *VEParams) KrwEndPoint() float64 {
	o.assertFinalized()
	return o.krwEnd
}

// KrnEndPoint returns the non-wetting relative permeability endpoint
func (o *VEParams) KrnEndPoint() float64 {
	o.assertFinalized()
	return o.krnEnd
}

// Htot returns the total height of the upscaled column [m]
func (o *VEParams) Htot() float64 {
	o.assertFinalized()
	return o.htot
}

// FinalizePlain finalizes the embedded regularized base coefficients,
// recomputing their cached linear-extension coefficients
func (o *VEParams) FinalizePlain() (err error) {
	return o.RegBrooksCoreyParams.Finalize()
}

// Finalize validates the upscaling coefficients and freezes this object. The
// embedded base coefficients are finalized as well if FinalizePlain has not
// run yet, so a single Finalize call yields a fully usable object. It is
// idempotent; the heights and the upscaled curves are recomputed on every
// evaluation, nothing is cached here.
func (o *VEParams) Finalize() (err error) {
	if o.srw < 0 || o.srw > 1 {
		return chk.Err("ve: residual wetting saturation must be within [0,1]. srw = %g is invalid", o.srw)
	}
	if o.srn < 0 || o.srn > 1 {
		return chk.Err("ve: residual non-wetting saturation must be within [0,1]. srn = %g is invalid", o.srn)
	}
	if o.srw+o.srn >= 1 {
		return chk.Err("ve: residual saturations must satisfy srw + srn < 1. srw = %g and srn = %g are invalid", o.srw, o.srn)
	}
	if o.krwEnd <= 0 || o.krwEnd > 1 {
		return chk.Err("ve: endpoint relative permeability krwend must be within (0,1]. krwend = %g is invalid", o.krwEnd)
	}
	if o.krnEnd <= 0 || o.krnEnd > 1 {
		return chk.Err("ve: endpoint relative permeability krnend must be within (0,1]. krnend = %g is invalid", o.krnEnd)
	}
	if o.htot < 0 {
		return chk.Err("ve: column height must be non-negative. htot = %g is invalid", o.htot)
	}
	if o.fin {
		return
	}
	return o.FinalizePlain()
}

// Hn computes the current vertical extent [m] of the non-wetting phase within
// the column, at saturation equilibrium, given the coarse non-wetting
// saturation S and its historical maximum Smax
func (o *VEParams) Hn(S, Smax float64) float64 {
	o.assertFinalized()
	return o.htot * (S*(1.0-o.srw) - Smax*o.srn) / ((1.0 - o.srw) * (1.0 - o.srw - o.srn))
}

// HnMax computes the vertical extent [m] reached by the non-wetting phase at
// the highest saturation seen so far
func (o *VEParams) HnMax(S, Smax float64) float64 {
	o.assertFinalized()
	return o.htot * Smax / (1.0 - o.srw)
}

// Strap returns the trapped (irreducible) coarse non-wetting saturation for a
// given historical maximum: the saturation at which the current interface
// height vanishes on imbibition
func (o *VEParams) Strap(Smax float64) float64 {
	o.assertFinalized()
	return Smax * o.srn / (1.0 - o.srw)
}

// Krw computes the upscaled wetting relative permeability from the interface
// heights and the wetting phase viscosity muw [Pa·s]. The first term is the
// fraction of the column still fully wetting-saturated; the second is a
// viscosity-weighted correction for the trapped band between h and hmax.
func (o *VEParams) Krw(h, hmax, muw float64) float64 {
	o.assertFinalized()
	return (o.htot-hmax)/o.htot + muw*o.krwEnd*(hmax-h)/o.htot
}

// Krn computes the upscaled non-wetting relative permeability, linear in the
// current interface height
func (o *VEParams) Krn(h, hmax float64) float64 {
	o.assertFinalized()
	return o.krnEnd * h / o.htot
}

// Init sets the coefficients from a set of named parameters and finalizes
// both the base and the upscaling coefficients
func (o *VEParams) Init(prms inp.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pcae":
			o.SetEntryPressure(p.V)
		case "lam":
			o.SetLambda(p.V)
		case "sethres":
			o.SetSeThreshold(p.V)
		case "srw":
			o.SetSrw(p.V)
		case "srn":
			o.SetSrn(p.V)
		case "krwend":
			o.SetKrwEndPoint(p.V)
		case "krnend":
			o.SetKrnEndPoint(p.V)
		case "htot":
			o.SetHtot(p.V)
		default:
			return chk.Err("ve: parameter named %q is incorrect\n", p.N)
		}
	}
	err = o.FinalizePlain()
	if err != nil {
		return
	}
	return o.Finalize()
}

// GetPrms gets (an example) of parameters
func (o *VEParams) GetPrms(example bool) inp.Prms {
	if example {
		return inp.Prms{
			&inp.Prm{N: "pcae", V: 1e4},    // [Pa]
			&inp.Prm{N: "lam", V: 2.0},     // [-]
			&inp.Prm{N: "srw", V: 0.1},     // [-]
			&inp.Prm{N: "srn", V: 0.05},    // [-]
			&inp.Prm{N: "krwend", V: 0.01}, // [-]
			&inp.Prm{N: "krnend", V: 0.01}, // [-]
			&inp.Prm{N: "htot", V: 10.0},   // [m]
		}
	}
	return inp.Prms{
		&inp.Prm{N: "pcae", V: o.pcae},
		&inp.Prm{N: "lam", V: o.lam},
		&inp.Prm{N: "srw", V: o.srw},
		&inp.Prm{N: "srn", V: o.srn},
		&inp.Prm{N: "krwend", V: o.krwEnd},
		&inp.Prm{N: "krnend", V: o.krnEnd},
		&inp.Prm{N: "htot", V: o.htot},
	}
}

// raw Brooks-Corey curves as functions of the effective saturation se

// bcPcnw computes the raw capillary pressure pcae·se^(-1/lam)
func bcPcnw(pcae, lam, se float64) float64 {
	return pcae * math.Pow(se, -1.0/lam)
}

// bcSe computes the raw inverse (pc/pcae)^(-lam)
func bcSe(pcae, lam, pc float64) float64 {
	return math.Pow(pc/pcae, -lam)
}

// bcDpcnwDse computes the slope of the raw capillary pressure curve
func bcDpcnwDse(pcae, lam, se float64) float64 {
	return -pcae / lam * math.Pow(se, -1.0/lam-1.0)
}

// bcKrw computes the raw wetting relative permeability se^((2+3·lam)/lam)
func bcKrw(lam, se float64) float64 {
	return math.Pow(se, (2.0+3.0*lam)/lam)
}

// bcKrn computes the raw non-wetting relative permeability
// (1-se)²·(1-se^((2+lam)/lam))
func bcKrn(lam, se float64) float64 {
	return (1.0 - se) * (1.0 - se) * (1.0 - math.Pow(se, (2.0+lam)/lam))
}
