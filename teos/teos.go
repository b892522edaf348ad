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

// Package teos supplies the seawater thermodynamic relations that the sol
// and diff catalogues depend on: salinity-variable conversions and density.
//
// The relations here are light-weight stand-ins for a full TEOS-10
// implementation, accurate to well within the uncertainty of the gas fits
// they feed:
//
//   - Absolute Salinity and Practical Salinity are related through the
//     reference-composition ratio 35.16504/35 g/kg, which is exact for
//     Standard Seawater and neglects regional composition anomalies.
//   - Conservative Temperature and potential temperature are treated as
//     equal. They differ by less than about 0.12 °C anywhere in the
//     oceanographic range, far below the scatter of the solubility and
//     diffusivity fits.
//   - Density at zero sea pressure follows the one-atmosphere
//     International Equation of State of Seawater (Millero and Poisson,
//     1981), which takes IPTS-68 temperature.
//
// All functions are pure; out-of-range inputs propagate as NaN rather than
// being validated.
package teos

import "math"

// UPS is the ratio of Absolute Salinity of Reference-Composition seawater
// to its Practical Salinity [g kg-1], from IOC, SCOR and IAPSO (2010).
const UPS = 35.16504 / 35

// SAFromSP converts Practical Salinity (PSS-78) to Absolute Salinity
// [g kg-1] using the reference-composition ratio.
func SAFromSP(SP float64) float64 {
	return SP * UPS
}

// SPFromSA converts Absolute Salinity [g kg-1] to Practical Salinity
// (PSS-78). The sea pressure [dbar], longitude, and latitude arguments
// are accepted for interface compatibility with position-aware Absolute
// Salinity atlases but do not influence the reference-composition
// conversion used here.
func SPFromSA(SA, p, lon, lat float64) float64 {
	return SA / UPS
}

// CTFromPt returns Conservative Temperature [°C] given Absolute Salinity
// [g kg-1] and potential temperature [°C, ITS-90]. The two temperature
// variables are treated as equal; see the package comment.
func CTFromPt(SA, pt float64) float64 {
	return pt
}

// PtFromCT returns potential temperature [°C, ITS-90] given Absolute
// Salinity [g kg-1] and Conservative Temperature [°C]. The two temperature
// variables are treated as equal; see the package comment.
func PtFromCT(SA, CT float64) float64 {
	return CT
}

// Rho returns in-situ seawater density [kg m-3] given Absolute Salinity
// [g kg-1], Conservative Temperature [°C], and sea pressure [dbar], using
// the one-atmosphere International Equation of State of Seawater (Millero
// and Poisson, 1981). The pressure dependence is outside the scope of this
// package and p is ignored; callers in this module only ever request
// density at zero sea pressure.
func Rho(SA, CT, p float64) float64 {
	s := SA / UPS         // Practical Salinity
	t := CT * 1.00024     // IPTS-68 temperature [°C]
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t

	// Density of the Standard Mean Ocean Water reference
	// (Bigg, 1967, as refitted by Millero and Poisson, 1981).
	rhoW := 999.842594 + 6.793952e-2*t - 9.095290e-3*t2 +
		1.001685e-4*t3 - 1.120083e-6*t4 + 6.536332e-9*t5

	// Salinity terms, Millero and Poisson (1981) Table 1.
	a := 8.24493e-1 - 4.0899e-3*t + 7.6438e-5*t2 - 8.2467e-7*t3 + 5.3875e-9*t4
	b := -5.72466e-3 + 1.0227e-4*t - 1.6546e-6*t2
	const c = 4.8314e-4

	return rhoW + a*s + b*s*math.Sqrt(s) + c*s*s
}
