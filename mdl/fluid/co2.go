// Copyright 2017 The Opm-Material Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "math"

// Rgas is the universal gas constant [J/(mol·K)]
const Rgas = 8.314472

// IdealGasDensity computes the density [kg/m³] of an ideal gas with molar
// mass M [kg/mol] at temperature T [K] and pressure p [Pa]
func IdealGasDensity(M, T, p float64) float64 {
	return p * M / (Rgas * T)
}

// IdealGasPressure computes the pressure [Pa] of an ideal gas at temperature
// T [K] and molar density rhoMolar [mol/m³]
func IdealGasPressure(T, rhoMolar float64) float64 {
	return rhoMolar * Rgas * T
}

// CO2 implements property correlations for carbon dioxide. The gas phase is
// treated as an ideal gas; liquid-phase properties are not modeled and the
// corresponding operations return a NotModeledError instead of a silent
// approximation.
type CO2 struct{}

// Name returns the substance name
func (o CO2) Name() string { return "CO2" }

// MolarMass returns the molar mass [kg/mol]
func (o CO2) MolarMass() float64 { return 44e-3 }

// CriticalTemperature returns the critical temperature [K]
func (o CO2) CriticalTemperature() float64 { return 273.15 + 30.95 }

// CriticalPressure returns the critical pressure [Pa]
func (o CO2) CriticalPressure() float64 { return 73.8e5 }

// TripleTemperature returns the temperature [K] at the triple point
func (o CO2) TripleTemperature() float64 { return 273.15 - 56.35 }

// TriplePressure returns the pressure [Pa] at the triple point
func (o CO2) TriplePressure() float64 { return 5.11e5 }

// GasDensity computes the gas density [kg/m³] at temperature T [K] and
// pressure p [Pa], assuming an ideal gas
func (o CO2) GasDensity(T, p float64) float64 {
	return IdealGasDensity(o.MolarMass(), T, p)
}

// GasPressure computes the gas pressure [Pa] at temperature T [K] and density
// rho [kg/m³], assuming an ideal gas
func (o CO2) GasPressure(T, rho float64) float64 {
	return IdealGasPressure(T, rho/o.MolarMass())
}

// GasEnthalpy computes the specific enthalpy [J/kg] of gaseous CO2
func (o CO2) GasEnthalpy(T, p float64) float64 {
	return 571.3e3 + (T-298.15)*0.85e3
}

// LiquidEnthalpy computes the specific enthalpy [J/kg] of liquid CO2
func (o CO2) LiquidEnthalpy(T, p float64) float64 {
	return (T - 298.15) * 5e3
}

// GasInternalEnergy computes the specific internal energy [J/kg] of gaseous
// CO2; for an ideal gas, R·T/M equals pressure times specific volume
func (o CO2) GasInternalEnergy(T, p float64) float64 {
	return o.GasEnthalpy(T, p) - Rgas/o.MolarMass()*T
}

// GasViscosity computes the dynamic viscosity [Pa·s] of gaseous CO2 using the
// method of Chung et al.
//
//	Reference: Reid R, Prausnitz JM and Poling BE (1987) The Properties of
//	Gases and Liquids, 4th edition, McGraw-Hill, pp 396-397, 667
func (o CO2) GasViscosity(T, p float64) float64 {
	Tc := o.CriticalTemperature()
	Vc := 93.9               // critical specific volume [cm³/mol]
	omega := 0.239           // acentric factor
	M := o.MolarMass() * 1e3 // molar mass [g/mol]
	dipole := 0.0            // dipole moment [debye]

	muR4 := 131.3 * dipole / math.Sqrt(Vc*Tc)
	muR4 *= muR4
	muR4 *= muR4

	Fc := 1.0 - 0.2756*omega + 0.059035*muR4
	Tstar := 1.2593 * T / Tc
	OmegaV := 1.16145*math.Pow(Tstar, -0.14874) +
		0.52487*math.Exp(-0.77320*Tstar) +
		2.16178*math.Exp(-2.43787*Tstar)
	mu := 40.785 * Fc * math.Sqrt(M*T) / (math.Pow(Vc, 2.0/3.0) * OmegaV)

	// conversion from micro poise to Pa·s
	return mu / 1e6 / 10.0
}

// VaporPressure is not modeled
func (o CO2) VaporPressure(T float64) (float64, error) {
	return 0, &NotModeledError{Substance: o.Name(), Property: "vapor pressure"}
}

// LiquidDensity is not modeled
func (o CO2) LiquidDensity(T, p float64) (float64, error) {
	return 0, &NotModeledError{Substance: o.Name(), Property: "liquid density"}
}

// LiquidPressure is not modeled
func (o CO2) LiquidPressure(T, rho float64) (float64, error) {
	return 0, &NotModeledError{Substance: o.Name(), Property: "liquid pressure"}
}

// LiquidViscosity is not modeled
func (o CO2) LiquidViscosity(T, p float64) (float64, error) {
	return 0, &NotModeledError{Substance: o.Name(), Property: "liquid viscosity"}
}

// LiquidInternalEnergy is not modeled
func (o CO2) LiquidInternalEnergy(T, p float64) (float64, error) {
	return 0, &NotModeledError{Substance: o.Name(), Property: "liquid internal energy"}
}
