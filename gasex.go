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

// Package gasex calculates equilibrium solubilities, molecular diffusion
// coefficients, and Schmidt numbers for atmospheric gases dissolved in
// fresh and sea water. The numerical catalogues live in the sol and diff
// subpackages; this package holds the gas identifiers shared between them
// and the shape-preserving array application layer.
package gasex

import "fmt"

// Gas identifies a dissolved atmospheric gas. The set is closed: operations
// dispatch on it exhaustively and reject identifiers outside the subset
// they have coefficients for.
type Gas int

// The supported gases.
const (
	He Gas = iota // helium
	Ne            // neon
	Ar            // argon
	Kr            // krypton
	Xe            // xenon
	N2            // nitrogen
	N2O           // nitrous oxide
	O2            // oxygen
	CO2           // carbon dioxide
	CH4           // methane
	H2            // hydrogen
)

var gasSymbols = []string{"He", "Ne", "Ar", "Kr", "Xe", "N2", "N2O", "O2",
	"CO2", "CH4", "H2"}

func (g Gas) String() string {
	if g < 0 || int(g) >= len(gasSymbols) {
		return fmt.Sprintf("Gas(%d)", int(g))
	}
	return gasSymbols[g]
}

// ParseGas converts a gas symbol such as "O2" or "N2O" to its Gas
// identifier. Matching is case-sensitive to avoid ambiguity between,
// for example, "He" and a hypothetical "HE".
func ParseGas(symbol string) (Gas, error) {
	for i, s := range gasSymbols {
		if s == symbol {
			return Gas(i), nil
		}
	}
	return -1, fmt.Errorf("gasex: unknown gas symbol %q", symbol)
}

// UnsupportedGasError reports a request for a gas that the named operation
// has no coefficients for.
type UnsupportedGasError struct {
	Gas Gas
	Op  string // the operation that rejected the gas, e.g. "solubility"
}

func (e *UnsupportedGasError) Error() string {
	return fmt.Sprintf("gasex: gas %v is not supported for %s", e.Gas, e.Op)
}
