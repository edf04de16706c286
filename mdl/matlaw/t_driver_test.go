// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/hafriis/opm-material/mdl/fluid"
)

func Test_drv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("drv01. drainage and imbibition path with trapping")

	prm := veTestParams(tst)

	liq := new(fluid.Model)
	liq.Init(liq.GetPrms(true), prm.Htot(), Gravity)
	gas := new(fluid.Model)
	gas.Gas = true
	gas.Init(gas.GetPrms(true), prm.Htot(), Gravity)

	var drv Driver
	err := drv.Init(prm, liq, gas)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// drainage up to sn = 0.6, then imbibition back towards the trapped
	// saturation (strap = 0.6·srn/(1-srw) ≈ 0.0333)
	ndrain, nimb := 31, 29
	path := make([]float64, ndrain+nimb)
	floats.Span(path[:ndrain], 0, 0.6)
	floats.Span(path[ndrain:], 0.58, 0.04)

	err = drv.Run(path)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// along drainage the current height follows the historical maximum
	for i := 0; i < ndrain; i++ {
		chk.Float64(tst, "drainage h == hmax", 1e-12, drv.Hh[i], drv.Hmax[i])
		if drv.Hh[i] < drv.Hh[0] {
			tst.Errorf("h must grow along drainage\n")
			return
		}
	}

	// on imbibition the trapped band opens up and krn falls with h
	for i := ndrain; i < len(path); i++ {
		if drv.Hh[i] >= drv.Hmax[i] {
			tst.Errorf("imbibition must leave a trapped band: h = %g >= hmax = %g\n", drv.Hh[i], drv.Hmax[i])
			return
		}
		if drv.Kr[i][NonWetting] > drv.Kr[i-1][NonWetting] {
			tst.Errorf("krn must fall along imbibition\n")
			return
		}
		chk.Float64(tst, "imbibition hmax frozen", 1e-12, drv.Hmax[i], drv.Hmax[ndrain-1])
	}

	// wetting phase stays the pressure reference everywhere
	for i := range path {
		chk.Float64(tst, "pc[w] == 0", 1e-17, drv.Pc[i][Wetting], 0.0)
	}

	// near the trapped saturation the interface height has almost closed
	last := len(path) - 1
	if drv.Hh[last] > 0.1 {
		tst.Errorf("interface height must approach zero at the trapped saturation: h = %g\n", drv.Hh[last])
	}

	// the recorded state carries the path history
	chk.Float64(tst, "state smax", 1e-17, drv.Sta.Smax(), 0.6)
	chk.Float64(tst, "state sn", 1e-17, drv.Sta.Saturation(NonWetting), 0.04)

	// the recorded stations are owned by the driver
	path[0] = 123.0
	chk.Float64(tst, "recorded sn[0]", 1e-17, drv.Sn[0], 0.0)

	if chk.Verbose {
		PlotVE(prm, liq, gas, 0.6, 31, "/tmp/opm-material", "drv01")
	}

	// a station below the trapped saturation is unreachable
	err = drv.Run([]float64{0, 0.6, 0.01})
	if err == nil {
		tst.Errorf("Run must fail for stations below the trapped saturation\n")
	}
}
