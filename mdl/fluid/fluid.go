// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements simple fluid property models: a linear
// compressibility model for pressure and intrinsic density along a column
// with gravity, and closed-form property correlations for single substances
package fluid

import (
	"math"

	"github.com/hafriis/opm-material/inp"
)

// Model computes pressure (p) and intrinsic density (R) of a fluid along a
// column with gravity (g). The model is:
//
//	R(p) = R0 + C・(p - p0)   thus   dR/dp = C
type Model struct {

	// material data
	R0   float64 // intrinsic density [kg/m³] corresponding to p0
	P0   float64 // pressure [Pa] corresponding to R0
	C    float64 // compressibility coefficient [kg/(m³·Pa)]; e.g. R0/Kbulk or M/(R・θ)
	Visc float64 // dynamic viscosity [Pa·s]
	Gas  bool    // is gas instead of liquid?

	// additional data
	H    float64 // elevation [m] where (R0,p0) is known
	Grav float64 // gravity acceleration (positive constant) [m/s²]
}

// Init initialises this structure
func (o *Model) Init(prms inp.Prms, H, grav float64) {
	for _, p := range prms {
		switch p.N {
		case "R0":
			o.R0 = p.V
		case "P0":
			o.P0 = p.V
		case "C":
			o.C = p.V
		case "mu":
			o.Visc = p.V
		case "gas":
			o.Gas = p.V > 0
		}
	}
	o.H = H
	o.Grav = grav
}

// GetPrms gets (an example of) parameters
//
//	Input:
//	 example -- returns example of parameters; othewise returns current parameters
//	Note:
//	 Gas variable is used to return CO2 properties instead of brine
func (o Model) GetPrms(example bool) inp.Prms {
	if example {
		if o.Gas {
			return inp.Prms{ // CO2-rich gas phase at ~300 K
				&inp.Prm{N: "R0", V: 1.77},    // [kg/m³]
				&inp.Prm{N: "P0", V: 1e5},     // [Pa]
				&inp.Prm{N: "C", V: 1.76e-5},  // [kg/(m³·Pa)]
				&inp.Prm{N: "mu", V: 1.48e-5}, // [Pa·s]
				&inp.Prm{N: "gas", V: 1},      // [-]
			}
		}
		return inp.Prms{ // brine
			&inp.Prm{N: "R0", V: 1000.0}, // [kg/m³]
			&inp.Prm{N: "P0", V: 1e5},    // [Pa]
			&inp.Prm{N: "C", V: 4.53e-7}, // [kg/(m³·Pa)]
			&inp.Prm{N: "mu", V: 1e-3},   // [Pa·s]
			&inp.Prm{N: "gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return inp.Prms{
		&inp.Prm{N: "R0", V: o.R0},
		&inp.Prm{N: "P0", V: o.P0},
		&inp.Prm{N: "C", V: o.C},
		&inp.Prm{N: "mu", V: o.Visc},
		&inp.Prm{N: "gas", V: gas},
	}
}

// Calc computes pressure and density at elevation z
func (o Model) Calc(z float64) (p, R float64) {
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}
