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

package sol

import (
	"github.com/oceanmodel/gasex"
	"github.com/oceanmodel/gasex/teos"
)

// The FromSACT variants take Absolute Salinity SA [g kg-1], Conservative
// Temperature CT [°C], sea pressure p [dbar], and position (longitude,
// latitude in degrees), convert to Practical Salinity and potential
// temperature through the teos package, and delegate to the corresponding
// SP/pt form. They add no numerics of their own.

// SolFromSACT is Sol keyed by Absolute Salinity and Conservative
// Temperature.
func SolFromSACT(SA, CT, p, lon, lat float64, gas gasex.Gas) (float64, error) {
	return Sol(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT), gas)
}

// O2FromSACT is O2 keyed by Absolute Salinity and Conservative Temperature.
func O2FromSACT(SA, CT, p, lon, lat float64) float64 {
	return O2(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// HeFromSACT is He keyed by Absolute Salinity and Conservative Temperature.
func HeFromSACT(SA, CT, p, lon, lat float64) float64 {
	return He(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// NeFromSACT is Ne keyed by Absolute Salinity and Conservative Temperature.
func NeFromSACT(SA, CT, p, lon, lat float64) float64 {
	return Ne(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// ArFromSACT is Ar keyed by Absolute Salinity and Conservative Temperature.
func ArFromSACT(SA, CT, p, lon, lat float64) float64 {
	return Ar(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// KrFromSACT is Kr keyed by Absolute Salinity and Conservative Temperature.
func KrFromSACT(SA, CT, p, lon, lat float64) float64 {
	return Kr(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// N2FromSACT is N2 keyed by Absolute Salinity and Conservative Temperature.
func N2FromSACT(SA, CT, p, lon, lat float64) float64 {
	return N2(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// N2OFromSACT is N2O keyed by Absolute Salinity and Conservative
// Temperature.
func N2OFromSACT(SA, CT, p, lon, lat float64) float64 {
	return N2O(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}

// CO2FromSACT is CO2 keyed by Absolute Salinity and Conservative
// Temperature.
func CO2FromSACT(SA, CT, p, lon, lat float64) float64 {
	return CO2(teos.SPFromSA(SA, p, lon, lat), teos.PtFromCT(SA, CT))
}
