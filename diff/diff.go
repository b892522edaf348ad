/*
Copyright © 2018 the gasex authors.
This file is part of gasex.

gasex is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

gasex is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with gasex.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package diff calculates molecular diffusion coefficients and Schmidt
// numbers for dissolved gases in fresh and sea water, together with the
// kinematic viscosity of seawater.
//
// Freshwater diffusivities for He, Ne, Kr, Xe, CH4, and H2 follow the
// Eyring-equation fits of Jähne et al. (1987); Ar is extrapolated from the
// Jähne noble-gas data; O2 and N2 follow Ferrell and Himmelblau (1967).
// The salinity correction is the 4.9% diffusivity reduction observed by
// Jähne for He and H2 in a 35.5 ppt NaCl solution, applied linearly.
// CO2 takes a different route: its Schmidt number comes directly from the
// Wanninkhof (1992) seawater polynomial and its diffusivity from dividing
// viscosity by that Schmidt number.
package diff

import (
	"math"

	"github.com/ctessum/unit"
	"github.com/oceanmodel/gasex"
	"github.com/oceanmodel/gasex/teos"
)

// gasConstant is the universal gas constant [J mol-1 K-1].
const gasConstant = 8.314510

// eyring holds the coefficients of an Eyring-equation fit
// D0 = A·exp(−Ea/(R·T)) to freshwater diffusivity.
type eyring struct {
	A  float64 // pre-exponential factor [m2 s-1]
	Ea float64 // activation energy [J mol-1]
}

// freshwater maps each gas to its Eyring fit. The CO2 row (Jähne et al.,
// 1987) is deliberately never evaluated: Coefficient routes CO2 through
// the Wanninkhof (1992) Schmidt number relation instead, matching
// long-standing practice in air-sea gas exchange work. The row is kept so
// the table reproduces its source publication in full.
var freshwater = map[gasex.Gas]eyring{
	gasex.O2:  {4.286e-6, 18700},
	gasex.He:  {0.8180e-6, 11700},
	gasex.Ne:  {1.6080e-6, 14840},
	gasex.Ar:  {2.227e-6, 16680},
	gasex.Kr:  {6.3930e-6, 20200},
	gasex.Xe:  {9.0070e-6, 21610},
	gasex.N2:  {3.4120e-6, 18500},
	gasex.CH4: {3.0470e-6, 18360},
	gasex.CO2: {5.0190e-6, 19510},
	gasex.H2:  {3.3380e-6, 16060},
}

// Coefficient returns the molecular diffusion coefficient [m2 s-1] of gas
// in seawater of Practical Salinity SP (PSS-78) at potential temperature
// pt [°C, ITS-90].
func Coefficient(SP, pt float64, gas gasex.Gas) (float64, error) {
	if gas == gasex.CO2 {
		// Viscosity divided by the Wanninkhof (1992) Schmidt number,
		// not the shadowed Eyring row above.
		return KinematicViscosity(SP, pt) / co2Schmidt(pt), nil
	}
	c, ok := freshwater[gas]
	if !ok {
		return 0, &gasex.UnsupportedGasError{Gas: gas, Op: "diffusion coefficient"}
	}
	d0 := c.A * math.Exp(-c.Ea/(gasConstant*(pt+273.15)))
	return d0 * (1 - 0.049*SP/35.5), nil
}

// Schmidt returns the dimensionless Schmidt number of gas, the ratio of
// the kinematic viscosity of seawater to the molecular diffusion
// coefficient of the gas. CO2 is evaluated from the Wanninkhof (1992)
// polynomial directly, which keeps Schmidt and Coefficient from calling
// each other forever for that one gas; the identity Sc·D = ν still holds
// exactly because CO2's diffusivity is defined from the same polynomial.
func Schmidt(SP, pt float64, gas gasex.Gas) (float64, error) {
	if gas == gasex.CO2 {
		return co2Schmidt(pt), nil
	}
	d, err := Coefficient(SP, pt, gas)
	if err != nil {
		return 0, err
	}
	return KinematicViscosity(SP, pt) / d, nil
}

// co2Schmidt is the Wanninkhof (1992) fit to the Schmidt number of CO2 in
// seawater, a cubic in temperature [°C] valid between 0 and 30 °C.
func co2Schmidt(pt float64) float64 {
	return 2073.1 - 125.62*pt + 3.6276*pt*pt - 0.043219*pt*pt*pt
}

// KinematicViscosity returns the kinematic viscosity of seawater [m2 s-1]
// at Practical Salinity SP (PSS-78) and potential temperature pt
// [°C, ITS-90], following Dan Kelley's fit to Knauss's Table II-8 divided
// by in-situ density at zero sea pressure.
func KinematicViscosity(SP, pt float64) float64 {
	SA := teos.SAFromSP(SP)
	CT := teos.CTFromPt(SA, pt)
	dens := teos.Rho(SA, CT, 0)
	return 1e-4 * (17.91 - 0.5381*pt + 0.00694*pt*pt + 0.02305*SP) / dens
}

// meter2PerSecond is the dimension set of a diffusion coefficient or a
// kinematic viscosity.
var meter2PerSecond = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}

// CoefficientUnits is Coefficient with the result tagged as m2 s-1 for
// callers doing unit algebra.
func CoefficientUnits(SP, pt float64, gas gasex.Gas) (*unit.Unit, error) {
	d, err := Coefficient(SP, pt, gas)
	if err != nil {
		return nil, err
	}
	return unit.New(d, meter2PerSecond), nil
}

// KinematicViscosityUnits is KinematicViscosity with the result tagged as
// m2 s-1 for callers doing unit algebra.
func KinematicViscosityUnits(SP, pt float64) *unit.Unit {
	return unit.New(KinematicViscosity(SP, pt), meter2PerSecond)
}
