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
	"math"
	"testing"

	"github.com/gonum/floats"
	"github.com/oceanmodel/gasex"
)

// supported lists the gases with solubility fits.
var supported = []gasex.Gas{gasex.O2, gasex.He, gasex.Ne, gasex.Ar,
	gasex.Kr, gasex.N2, gasex.N2O, gasex.CO2}

// TestRegressionValues pins each fit at one point so a transposed
// coefficient or a missed 1968/1990 temperature-scale conversion cannot
// slip through as a plausible-looking value.
func TestRegressionValues(t *testing.T) {
	const tol = 1e-12
	cases := []struct {
		gas    gasex.Gas
		SP, pt float64
		want   float64
	}{
		{gasex.O2, 35, 20, 225.51707835115207},
		{gasex.O2, 0, 10, 352.8441227216508},
		{gasex.He, 35, 10, 1.7016129633734035e-3},
		{gasex.Ne, 35, 10, 7341.214775985051},
		{gasex.Ar, 35, 10, 13.462171936424465},
		{gasex.Kr, 35, 10, 3.1373989049389853e-3},
		{gasex.N2, 35, 10, 500.8852268083584},
		{gasex.N2O, 35, 10, 0.03203479851398891},
		{gasex.CO2, 35, 20, 0.031567173581209085},
		{gasex.CO2, 0, 0, 0.07681282718188043},
	}
	for _, c := range cases {
		got, err := Sol(c.SP, c.pt, c.gas)
		if err != nil {
			t.Fatalf("%v: %v", c.gas, err)
		}
		if !floats.EqualWithinAbsOrRel(got, c.want, tol, tol) {
			t.Errorf("%v(%g, %g) = %g; want %g", c.gas, c.SP, c.pt, got, c.want)
		}
	}
}

// TestO2PublishedCheckValue compares against the Garcia and Gordon check
// value of 225.067 µmol kg-1 at SP = 35, pt = 20 °C, which the fit must
// reproduce to three significant figures.
func TestO2PublishedCheckValue(t *testing.T) {
	got := O2(35, 20)
	if !floats.EqualWithinAbsOrRel(got, 225.067, 0.5, 0.5/225.) {
		t.Errorf("O2(35, 20) = %g; want 225.067 to 3 significant figures", got)
	}
}

// TestHeWeissTable compares against the value derived from Weiss (1971)
// Table 3 at SP = 35, pt = 10 °C, which must agree to within 0.1%.
func TestHeWeissTable(t *testing.T) {
	// 3.8188e-5 mL kg-1 from the Table 3 fit, times the Dymond and Smith
	// molar volume conversion.
	const want = 3.8188e-5 * 44.55817671505537 // µmol kg-1
	got := He(35, 10)
	if !floats.EqualWithinAbsOrRel(got, want, 0, 1e-3) {
		t.Errorf("He(35, 10) = %g; want within 0.1%% of %g", got, want)
	}
}

// TestPositiveFinite checks that every supported gas yields a strictly
// positive, finite solubility across the oceanographic domain.
func TestPositiveFinite(t *testing.T) {
	for _, gas := range supported {
		for SP := 0.; SP <= 40; SP += 5 {
			for pt := -2.; pt <= 40; pt += 2 {
				c, err := Sol(SP, pt, gas)
				if err != nil {
					t.Fatalf("%v: %v", gas, err)
				}
				if !(c > 0) || math.IsInf(c, 0) || math.IsNaN(c) {
					t.Errorf("%v(%g, %g) = %g; want positive and finite",
						gas, SP, pt, c)
				}
			}
		}
	}
}

// TestDegassingWithWarming checks that O2, N2, and Ar solubility strictly
// decreases with temperature at fixed salinity.
func TestDegassingWithWarming(t *testing.T) {
	for _, gas := range []gasex.Gas{gasex.O2, gasex.N2, gasex.Ar} {
		for _, SP := range []float64{0, 35} {
			prev := math.Inf(1)
			for pt := 0.; pt <= 30; pt++ {
				c, err := Sol(SP, pt, gas)
				if err != nil {
					t.Fatalf("%v: %v", gas, err)
				}
				if c >= prev {
					t.Errorf("%v(%g, %g) = %g did not decrease from %g",
						gas, SP, pt, c, prev)
				}
				prev = c
			}
		}
	}
}

// TestSaltingOut checks that solubility decreases with salinity at fixed
// temperature.
func TestSaltingOut(t *testing.T) {
	for _, gas := range supported {
		fresh, err := Sol(0, 15, gas)
		if err != nil {
			t.Fatal(err)
		}
		salty, err := Sol(35, 15, gas)
		if err != nil {
			t.Fatal(err)
		}
		if salty >= fresh {
			t.Errorf("%v: solubility at SP=35 (%g) not below SP=0 (%g)",
				gas, salty, fresh)
		}
	}
}

// TestUnsupportedGases checks that gases without a solubility fit are
// rejected with a typed error rather than defaulting.
func TestUnsupportedGases(t *testing.T) {
	for _, gas := range []gasex.Gas{gasex.Xe, gasex.CH4, gasex.H2, gasex.Gas(42)} {
		if _, err := Sol(35, 10, gas); err == nil {
			t.Errorf("Sol(35, 10, %v): want error, got none", gas)
		} else if _, ok := err.(*gasex.UnsupportedGasError); !ok {
			t.Errorf("Sol(35, 10, %v): error type %T, want *gasex.UnsupportedGasError",
				gas, err)
		}
	}
}

// TestSACTAdapters checks that the Absolute-Salinity/Conservative-
// Temperature variants are pure pre-conversion layers over the SP/pt
// forms.
func TestSACTAdapters(t *testing.T) {
	const (
		SA  = 35.16504 // corresponds to SP = 35
		CT  = 10.
		tol = 1e-12
	)
	for _, gas := range supported {
		want, err := Sol(35, 10, gas)
		if err != nil {
			t.Fatal(err)
		}
		got, err := SolFromSACT(SA, CT, 0, -30, 40, gas)
		if err != nil {
			t.Fatal(err)
		}
		if !floats.EqualWithinAbsOrRel(got, want, tol, tol) {
			t.Errorf("%v: SolFromSACT = %g, Sol = %g", gas, got, want)
		}
	}
	if got, want := O2FromSACT(SA, CT, 0, -30, 40), O2(35, 10); got != want {
		t.Errorf("O2FromSACT = %g, O2 = %g", got, want)
	}
	if got, want := N2OFromSACT(SA, CT, 0, -30, 40), N2O(35, 10); got != want {
		t.Errorf("N2OFromSACT = %g, N2O = %g", got, want)
	}
}

// TestNaNPropagation checks that out-of-domain temperatures surface as NaN
// instead of being intercepted.
func TestNaNPropagation(t *testing.T) {
	if c := Ar(35, 300); !math.IsNaN(c) {
		t.Errorf("Ar(35, 300) = %g; want NaN", c)
	}
}
