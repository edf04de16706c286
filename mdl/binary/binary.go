// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package binary implements correlations for binary mixture coefficients:
// gas diffusion coefficients and Henry coefficients of gases in liquid water
package binary

import "math"

// Fuller estimates the binary diffusion coefficient [m²/s] in a gas mixture
// using the method by Fuller. Only valid at "low" pressures.
//
//	Input:
//	 M       -- molar masses of both components [g/mol]
//	 sigmaNu -- atomic diffusion volumes of both components
//	 T       -- temperature [K]
//	 p       -- phase pressure [Pa]
//	Reference: Reid R, Prausnitz JM and Poling BE (1987) The Properties of
//	Gases and Liquids, 4th edition, McGraw-Hill, pp 587-588
func Fuller(M, sigmaNu [2]float64, T, p float64) float64 {

	// "effective" molar mass [g/mol]
	Mab := 2.0 / (1.0/M[0] + 1.0/M[1])

	tmp := math.Pow(sigmaNu[0], 1.0/3.0) + math.Pow(sigmaNu[1], 1.0/3.0)
	return 1e-4 * (143.0 * math.Pow(T, 1.75)) / (p * math.Sqrt(Mab) * tmp * tmp)
}

// water constants used by the IAPWS formulations
const (
	waterCriticalTemp = 647.096 // critical temperature of water [K]
	waterTripleTemp   = 273.16  // triple-point temperature of water [K]
)

// WaterVaporPressure computes the saturation (vapor) pressure [Pa] of water
// at temperature T [K] using the IAPWS-IF97 region-4 formulation
//
//	Reference: IAPWS (2007) Revised Release on the IAPWS Industrial
//	Formulation 1997 for the Thermodynamic Properties of Water and Steam
func WaterVaporPressure(T float64) float64 {
	n := [10]float64{
		0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
		0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
		-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
		0.65017534844798e3,
	}
	theta := T + n[8]/(T-n[9])
	A := theta*theta + n[0]*theta + n[1]
	B := n[2]*theta*theta + n[3]*theta + n[4]
	C := n[5]*theta*theta + n[6]*theta + n[7]
	tmp := 2.0 * C / (-B + math.Sqrt(B*B-4.0*A*C))
	tmp *= tmp
	tmp *= tmp
	return tmp * 1e6
}

// HenryIAPWS computes the Henry coefficient K_D [Pa] of a gas in liquid water
// using the IAPWS 2004 formulation, given the gas-specific fitting constants
// E, F, G and H
//
//	Note: K_D is formulated in mole fractions; it is multiplied by the vapor
//	pressure of water to obtain the derivative of the partial pressure
//	Reference: IAPWS (2004) Guideline on the Henry's Constant and
//	Vapor-Liquid Distribution Constant for Gases in H2O and D2O at High
//	Temperatures, http://www.iapws.org/relguide/HenGuide.pdf
func HenryIAPWS(E, F, G, H, T float64) float64 {
	c := [6]float64{
		1.99274064, 1.09965342, -0.510839303,
		-1.75493479, -45.5170352, -6.7469445e5,
	}
	d := [6]float64{
		1.0 / 3.0, 2.0 / 3.0, 5.0 / 3.0,
		16.0 / 3.0, 43.0 / 3.0, 110.0 / 3.0,
	}
	q := -0.023767

	Tr := T / waterCriticalTemp
	tau := 1.0 - Tr

	f := 0.0
	for i := 0; i < 6; i++ {
		f += c[i] * math.Pow(tau, d[i])
	}

	exponent := q*F +
		E/T*f +
		(F+G*math.Pow(tau, 2.0/3.0)+H*tau)*
			math.Exp((waterTripleTemp-T)/100.0)
	return math.Exp(exponent) * WaterVaporPressure(T)
}

// HenryCO2Water computes the Henry coefficient [Pa] of CO2 in liquid water
func HenryCO2Water(T float64) float64 {
	return HenryIAPWS(1672.9376, 28.1751, -112.4619, 85.3807, T)
}
