// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func veTestParams(tst *testing.T) *VEParams {
	prm := NewVEParams()
	if err := prm.Init(prm.GetPrms(true)); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return prm
}

func Test_ve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve01. interface heights")

	// srw=0.1, srn=0.05, htot=10
	prm := veTestParams(tst)

	S, Smax := 0.5, 0.6
	h := prm.Hn(S, Smax)
	hmax := prm.HnMax(S, Smax)
	chk.Float64(tst, "h", 1e-12, h, 5.490196078431373)
	chk.Float64(tst, "hmax", 1e-12, hmax, 6.666666666666666)

	// no hysteresis gap at the historical maximum
	chk.Float64(tst, "h(smax,smax) == hmax", 1e-12, prm.Hn(Smax, Smax), prm.HnMax(Smax, Smax))

	// interface height vanishes at the trapped saturation
	chk.Float64(tst, "h(strap,smax)", 1e-12, prm.Hn(prm.Strap(Smax), Smax), 0.0)
}

func Test_ve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve02. height invariants over the reachable states")

	prm := veTestParams(tst)
	H := prm.Htot()

	// smax cannot exceed the mobile non-wetting range
	for _, Smax := range utl.LinSpace(0, 1.0-prm.Srw(), 11) {
		for _, S := range utl.LinSpace(prm.Strap(Smax), Smax, 11) {
			h := prm.Hn(S, Smax)
			hmax := prm.HnMax(S, Smax)
			if h < -1e-14 || h > hmax+1e-14 || hmax > H+1e-12 {
				tst.Errorf("height invariant violated at S=%g, Smax=%g: h=%g, hmax=%g, H=%g\n", S, Smax, h, hmax, H)
				return
			}
		}
	}
}

func Test_ve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve03. upscaled relative permeabilities")

	prm := veTestParams(tst)
	var law VE

	var s State
	s.Mu[Wetting] = 1e-3
	s.Mu[NonWetting] = 1.48e-5
	s.SetSn(0.6) // drainage excursion
	s.SetSn(0.5) // imbibition back

	var kr Values
	law.RelativePermeabilities(&kr, prm, &s)
	chk.Float64(tst, "krn", 1e-12, kr[NonWetting], 0.005490196078431373)
	chk.Float64(tst, "krw", 1e-12, kr[Wetting], 0.3333345098039216)

	// fully wetting-saturated column
	var s0 State
	s0.Mu[Wetting] = 1e-3
	law.RelativePermeabilities(&kr, prm, &s0)
	chk.Float64(tst, "krw(h=0,hmax=0)", 1e-15, kr[Wetting], 1.0)
	chk.Float64(tst, "krn(h=0)", 1e-17, kr[NonWetting], 0.0)

	// krn endpoints and monotonicity in h
	chk.Float64(tst, "krn(0,·)", 1e-17, prm.Krn(0, 0), 0.0)
	chk.Float64(tst, "krn(H,·)", 1e-15, prm.Krn(prm.Htot(), prm.Htot()), prm.KrnEndPoint())
	hPrev := -1.0
	for _, h := range utl.LinSpace(0, prm.Htot(), 21) {
		if prm.Krn(h, prm.Htot()) < prm.Krn(hPrev, prm.Htot()) {
			tst.Errorf("krn must be non-decreasing in h\n")
			return
		}
		hPrev = h
	}
}

func Test_ve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve04. upscaled capillary pressures")

	// no residual saturations: h = htot·S
	prm := NewVEParams()
	prm.SetEntryPressure(1e4)
	prm.SetLambda(2.0)
	prm.SetHtot(10.0)
	if err := prm.FinalizePlain(); err != nil {
		tst.Fatalf("FinalizePlain failed: %v\n", err)
	}
	if err := prm.Finalize(); err != nil {
		tst.Fatalf("Finalize failed: %v\n", err)
	}

	var law VE
	var s State
	s.Rho[Wetting] = 1000.0
	s.Rho[NonWetting] = 700.0
	s.SetSn(0.5) // h = 5

	var pc Values
	law.CapillaryPressures(&pc, prm, &s)
	chk.Float64(tst, "pc[w]", 1e-17, pc[Wetting], 0.0)
	chk.Float64(tst, "pc[n]", 1e-9, pc[NonWetting], 14709.975)

	// sign of pcn follows the density difference
	s.Rho[NonWetting] = 1200.0
	law.CapillaryPressures(&pc, prm, &s)
	if pc[NonWetting] >= 0 {
		tst.Errorf("pcn must be negative when the non-wetting phase is denser\n")
	}
}

func Test_ve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve05. saturation inversion delegates to the plain law")

	prm := veTestParams(tst)
	var law VE
	var base RegBrooksCorey

	var s State
	s.SetSn(0.5)
	s.P[Wetting] = 1e5
	s.P[NonWetting] = 1e5 + 14142.135623730951

	var satVE, satPlain Values
	law.Saturations(&satVE, prm, &s)
	base.Saturations(&satPlain, &prm.RegBrooksCoreyParams, &s)
	chk.Float64(tst, "sat[w] ve == plain", 1e-17, satVE[Wetting], satPlain[Wetting])
	chk.Float64(tst, "sat[n] ve == plain", 1e-17, satVE[NonWetting], satPlain[NonWetting])
}

func Test_ve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ve06. evaluation with non-finalized parameters must panic")

	defer func() {
		if recover() == nil {
			tst.Errorf("evaluating with non-finalized parameters must panic\n")
		}
	}()

	prm := NewVEParams()
	var law VE
	var s State
	var kr Values
	law.RelativePermeabilities(&kr, prm, &s)
}
