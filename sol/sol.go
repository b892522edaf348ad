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

// Package sol calculates the equilibrium solubility of dissolved
// atmospheric gases in fresh and sea water: the concentration expected in
// water in equilibrium with air at an absolute pressure of 101325 Pa (sea
// pressure of 0 dbar) including saturated water vapor.
//
// Each gas follows the fit of a distinct source publication, and the
// per-gas differences in temperature scale (ITS-90 versus IPTS-68),
// functional form, and output unit are faithful encodings of those
// sources, not inconsistencies to repair:
//
//	O2         Garcia and Gordon (1992, 1993)      µmol kg-1
//	Ne         Hamme and Emerson (2004)            nmol kg-1
//	Ar, N2     Hamme and Emerson (2004)            µmol kg-1
//	He         Weiss (1971)                        µmol kg-1
//	Kr         Weiss and Kyser (1978)              µmol kg-1
//	N2O        Weiss and Price (1980)              mol kg-1 atm-1
//	CO2        Weiss (1974); Weiss and Price (1980) mol kg-1 atm-1
//
// Salinity arguments are Practical Salinity (PSS-78), because the major
// ionic components of seawater related to Cl are what affect the
// solubility of non-electrolytes. Temperature arguments are potential
// temperature [°C, ITS-90] referenced to one standard atmosphere; fits
// published against IPTS-68 convert internally with the fixed factor
// 1.00024.
//
// Out-of-domain inputs (for example temperatures at which a logarithm
// argument turns negative) propagate as NaN per floating-point semantics;
// the only error produced here is for an unsupported gas identifier.
package sol

import (
	"math"

	"github.com/oceanmodel/gasex"
)

// Molar volumes at STP [L mol-1 scaled to convert mL kg-1 to µmol kg-1]
// from Dymond and Smith (1980).
const (
	heMolarConv = 44.55817671505537 // 1/22.44257e-3
	krMolarConv = 44.74052731185490 // 1/22.3511e-3
)

// Sol returns the equilibrium solubility of gas in water of Practical
// Salinity SP at potential temperature pt [°C, ITS-90]. Units are
// gas-specific: µmol kg-1 for O2, He, Ar, Kr, and N2; nmol kg-1 for Ne;
// and mol kg-1 atm-1 for N2O and CO2. Gases without a solubility fit
// (Xe, CH4, H2) return an UnsupportedGasError.
func Sol(SP, pt float64, gas gasex.Gas) (float64, error) {
	switch gas {
	case gasex.O2:
		return O2(SP, pt), nil
	case gasex.He:
		return He(SP, pt), nil
	case gasex.Ne:
		return Ne(SP, pt), nil
	case gasex.Ar:
		return Ar(SP, pt), nil
	case gasex.Kr:
		return Kr(SP, pt), nil
	case gasex.N2:
		return N2(SP, pt), nil
	case gasex.N2O:
		return N2O(SP, pt), nil
	case gasex.CO2:
		return CO2(SP, pt), nil
	default:
		return 0, &gasex.UnsupportedGasError{Gas: gas, Op: "solubility"}
	}
}

// scaledTempRatio is the log-temperature variable of the Garcia and Gordon
// (1992) and Hamme and Emerson (2004) fits, ln((298.15−t)/(273.15+t)) with
// t in °C.
func scaledTempRatio(t float64) float64 {
	return math.Log((298.15 - t) / (273.15 + t))
}

// O2 returns the solubility of oxygen [µmol kg-1], using the coefficients
// derived from the data of Benson and Krause (1984) as fitted by Garcia
// and Gordon (1992, 1993), second column of their Table 1. The fit was
// published against IPTS-68 temperature.
func O2(SP, pt float64) float64 {
	pt68 := pt * 1.00024
	y := scaledTempRatio(pt68)

	a := [6]float64{5.80871, 3.20291, 4.17887, 5.10006, -9.86643e-2, 3.80369}
	b := [4]float64{-7.01577e-3, -7.70028e-3, -1.13864e-2, -9.51519e-3}
	const c = -2.75915e-7

	lnC := a[0] + y*(a[1]+y*(a[2]+y*(a[3]+y*(a[4]+a[5]*y)))) +
		SP*(b[0]+y*(b[1]+y*(b[2]+b[3]*y))+c*SP)
	return math.Exp(lnC)
}

// Ne returns the solubility of neon [nmol kg-1] from the Hamme and Emerson
// (2004) Table 4 fit, which takes ITS-90 temperature directly.
func Ne(SP, pt float64) float64 {
	y := scaledTempRatio(pt)

	a := [3]float64{2.18156, 1.29108, 2.12504}
	b := [2]float64{-5.94737e-3, -5.13896e-3}

	return 1e3 * math.Exp(a[0]+y*(a[1]+a[2]*y)+SP*(b[0]+b[1]*y))
}

// Ar returns the solubility of argon [µmol kg-1] from the Hamme and
// Emerson (2004) Table 4 fit, which takes ITS-90 temperature directly.
func Ar(SP, pt float64) float64 {
	y := scaledTempRatio(pt)

	a := [4]float64{2.79150, 3.17609, 4.13116, 4.90379}
	b := [3]float64{-6.96233e-3, -7.66670e-3, -1.16888e-2}

	return math.Exp(a[0] + y*(a[1]+y*(a[2]+a[3]*y)) + SP*(b[0]+y*(b[1]+b[2]*y)))
}

// N2 returns the solubility of nitrogen [µmol kg-1] from the Hamme and
// Emerson (2004) Table 4 fit, which takes ITS-90 temperature directly.
func N2(SP, pt float64) float64 {
	y := scaledTempRatio(pt)

	a := [4]float64{6.42931, 2.92704, 4.32531, 4.69149}
	b := [3]float64{-7.44129e-3, -8.02566e-3, -1.46775e-2}

	return math.Exp(a[0] + y*(a[1]+y*(a[2]+a[3]*y)) + SP*(b[0]+y*(b[1]+b[2]*y)))
}

// He returns the solubility of helium [µmol kg-1] from the Weiss (1971)
// Table 3 fit. The fit yields mL kg-1 and was published against IPTS-68
// temperature.
func He(SP, pt float64) float64 {
	pt68 := pt * 1.00024
	y := pt68 + 273.15
	y100 := y * 1e-2

	a := [4]float64{-167.2178, 216.3442, 139.2032, -22.6202}
	b := [3]float64{-0.044781, 0.023541, -0.0034266}

	mL := math.Exp(a[0] + a[1]*100/y + a[2]*math.Log(y100) + a[3]*y100 +
		SP*(b[0]+y100*(b[1]+b[2]*y100)))
	return mL * heMolarConv
}

// Kr returns the solubility of krypton [µmol kg-1] from the Weiss and
// Kyser (1978) Table 2 fit. The fit yields mL kg-1 and was published
// against IPTS-68 temperature.
func Kr(SP, pt float64) float64 {
	pt68 := pt * 1.00024
	y := pt68 + 273.15
	y100 := y * 1e-2

	a := [4]float64{-112.6840, 153.5817, 74.4690, -10.0189}
	b := [3]float64{-0.011213, -0.001844, 0.0011201}

	mL := math.Exp(a[0] + a[1]*100/y + a[2]*math.Log(y100) + a[3]*y100 +
		SP*(b[0]+y100*(b[1]+b[2]*y100)))
	return mL * krMolarConv
}

// N2O returns the K' solubility of nitrous oxide [mol kg-1 atm-1], the
// solubility in moist air at a total pressure of one atmosphere, from the
// Weiss and Price (1980) Table 2 mol kg-1 atm-1 coefficients. Unlike the
// He and Kr fits, the final temperature term is quadratic in y/100. The
// moist-air correction divides by (1 − pH2O), with the water vapor
// pressure fitted by Weiss and Price to Goff and Gratch (1946) and the
// salt lowering of Robinson (1954).
func N2O(SP, pt float64) float64 {
	pt68 := pt * 1.00024
	y := pt68 + 273.15
	y100 := y * 1e-2

	a := [4]float64{-168.2459, 226.0894, 93.2817, -1.48693}
	b := [3]float64{-0.060361, 0.033765, -0.0051862}
	m := [4]float64{24.4543, 67.4509, 4.8489, 0.000544}

	ph2odP := math.Exp(m[0] - m[1]*100/y - m[2]*math.Log(y100) - m[3]*SP)

	return math.Exp(a[0]+a[1]*100/y+a[2]*math.Log(y100)+a[3]*y100*y100+
		SP*(b[0]+y100*(b[1]+b[2]*y100))) / (1 - ph2odP)
}

// CO2 returns the solubility of carbon dioxide [mol kg-1 atm-1] at one
// atmosphere of moist air, using the Weiss (1974) data as refit in Weiss
// and Price (1980), their Table 6. As for N2O the final temperature term
// is quadratic in y/100; no further moist-air division applies because the
// Table 6 coefficients already describe equilibrium with moist air.
func CO2(SP, pt float64) float64 {
	pt68 := pt * 1.00024
	y := pt68 + 273.15
	y100 := y * 1e-2

	a := [4]float64{-162.8301, 218.2968, 90.9241, -1.47696}
	b := [3]float64{0.025695, -0.025225, 0.0049867}

	return math.Exp(a[0] + a[1]*100/y + a[2]*math.Log(y100) + a[3]*y100*y100 +
		SP*(b[0]+y100*(b[1]+b[2]*y100)))
}
