// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_co201(tst *testing.T) {

	//verbose()
	chk.PrintTitle("co201. gas properties")

	var co2 CO2
	T, p := 300.0, 1e5

	chk.Float64(tst, "molar mass", 1e-17, co2.MolarMass(), 44e-3)
	chk.Float64(tst, "Tcrit", 1e-12, co2.CriticalTemperature(), 304.10)
	chk.Float64(tst, "Ttriple", 1e-12, co2.TripleTemperature(), 216.80)

	rho := co2.GasDensity(T, p)
	chk.Float64(tst, "gas density", 1e-10, rho, 1.7639925501783715)
	chk.Float64(tst, "gas pressure round trip", 1e-6, co2.GasPressure(T, rho), p)

	chk.Float64(tst, "gas enthalpy", 1e-8, co2.GasEnthalpy(T, p), 572872.5)
	chk.Float64(tst, "liquid enthalpy", 1e-8, co2.LiquidEnthalpy(T, p), 9250.0)
	chk.Float64(tst, "gas internal energy", 1e-7, co2.GasInternalEnergy(T, p), 516182.91818181815)
}

func Test_co202(tst *testing.T) {

	//verbose()
	chk.PrintTitle("co202. gas viscosity (Chung et al.)")

	var co2 CO2
	chk.Float64(tst, "mu(300K)", 1e-12, co2.GasViscosity(300, 1e5), 1.4816493442926373e-05)

	// viscosity of a dilute gas grows with temperature
	muPrev := 0.0
	for T := 250.0; T <= 600.0; T += 50.0 {
		mu := co2.GasViscosity(T, 1e5)
		if mu <= muPrev {
			tst.Errorf("gas viscosity must grow with temperature: mu(%g) = %g\n", T, mu)
			return
		}
		muPrev = mu
	}
}

func Test_co203(tst *testing.T) {

	//verbose()
	chk.PrintTitle("co203. liquid properties are not modeled")

	var co2 CO2
	T, p := 300.0, 1e5

	for name, fn := range map[string]func() (float64, error){
		"vapor pressure":         func() (float64, error) { return co2.VaporPressure(T) },
		"liquid density":         func() (float64, error) { return co2.LiquidDensity(T, p) },
		"liquid pressure":        func() (float64, error) { return co2.LiquidPressure(T, 700) },
		"liquid viscosity":       func() (float64, error) { return co2.LiquidViscosity(T, p) },
		"liquid internal energy": func() (float64, error) { return co2.LiquidInternalEnergy(T, p) },
	} {
		v, err := fn()
		if err == nil {
			tst.Errorf("%s must return a not-modeled error\n", name)
			return
		}
		var nme *NotModeledError
		if !errors.As(err, &nme) {
			tst.Errorf("%s must return a *NotModeledError, got: %v\n", name, err)
			return
		}
		if v != 0 {
			tst.Errorf("%s must not return an approximated value: %g\n", name, v)
			return
		}
	}
}
