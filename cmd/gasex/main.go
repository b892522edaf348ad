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

// Command gasex evaluates the dissolved-gas solubility and diffusivity
// catalogues from the command line.
package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/oceanmodel/gasex"
	"github.com/oceanmodel/gasex/diff"
	"github.com/oceanmodel/gasex/sol"
)

var (
	salinity    float64 // Practical Salinity [PSS-78]
	temperature float64 // potential temperature [°C, ITS-90]

	tMin, tMax, tStep float64 // table temperature range [°C]
)

var root = &cobra.Command{
	Use:   "gasex",
	Short: "gasex calculates dissolved gas solubilities and diffusivities in seawater",
}

var solCmd = &cobra.Command{
	Use:   "sol gas",
	Short: "equilibrium solubility for a gas (units are gas-specific)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gasex.ParseGas(args[0])
		if err != nil {
			return err
		}
		c, err := sol.Sol(salinity, temperature, g)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", c)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff gas",
	Short: "molecular diffusion coefficient for a gas [m2 s-1]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gasex.ParseGas(args[0])
		if err != nil {
			return err
		}
		d, err := diff.Coefficient(salinity, temperature, g)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", d)
		return nil
	},
}

var schmidtCmd = &cobra.Command{
	Use:   "schmidt gas",
	Short: "Schmidt number for a gas (dimensionless)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gasex.ParseGas(args[0])
		if err != nil {
			return err
		}
		sc, err := diff.Schmidt(salinity, temperature, g)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", sc)
		return nil
	},
}

var viscCmd = &cobra.Command{
	Use:   "visc",
	Short: "kinematic viscosity of seawater [m2 s-1]",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%g\n", diff.KinematicViscosity(salinity, temperature))
	},
}

var tableCmd = &cobra.Command{
	Use:   "table gas [tmin tmax tstep]",
	Short: "CSV table of solubility, diffusivity, and Schmidt number over a temperature range",
	Args:  cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gasex.ParseGas(args[0])
		if err != nil {
			return err
		}
		if len(args) != 1 && len(args) != 4 {
			return fmt.Errorf("table takes either a gas or a gas with tmin tmax tstep")
		}
		lo, hi, step := tMin, tMax, tStep
		if len(args) == 4 {
			if lo, err = cast.ToFloat64E(args[1]); err != nil {
				return err
			}
			if hi, err = cast.ToFloat64E(args[2]); err != nil {
				return err
			}
			if step, err = cast.ToFloat64E(args[3]); err != nil {
				return err
			}
		}
		if step <= 0 || hi < lo {
			return fmt.Errorf("invalid temperature range %g..%g step %g", lo, hi, step)
		}
		fmt.Println("temperature_degC,solubility,diffusivity_m2_s,schmidt")
		for pt := lo; pt <= hi; pt += step {
			// Not every gas appears in every catalogue (Xe, CH4, and
			// H2 have no solubility fit; N2O has no diffusivity row);
			// leave the missing columns empty for them.
			solCol, err := column(sol.Sol(salinity, pt, g))
			if err != nil {
				return err
			}
			dCol, err := column(diff.Coefficient(salinity, pt, g))
			if err != nil {
				return err
			}
			scCol, err := column(diff.Schmidt(salinity, pt, g))
			if err != nil {
				return err
			}
			fmt.Printf("%g,%s,%s,%s\n", pt, solCol, dCol, scCol)
		}
		return nil
	},
}

// column formats a catalogue value for CSV output, mapping an
// unsupported-gas result to an empty field.
func column(v float64, err error) (string, error) {
	if err != nil {
		if _, ok := err.(*gasex.UnsupportedGasError); ok {
			return "", nil
		}
		return "", err
	}
	return fmt.Sprintf("%g", v), nil
}

func init() {
	root.PersistentFlags().Float64VarP(&salinity, "salinity", "s", 35,
		"Practical Salinity (PSS-78)")
	root.PersistentFlags().Float64VarP(&temperature, "temperature", "t", 20,
		"potential temperature [°C, ITS-90]")
	tableCmd.Flags().Float64Var(&tMin, "tmin", 0, "table start temperature [°C]")
	tableCmd.Flags().Float64Var(&tMax, "tmax", 30, "table end temperature [°C]")
	tableCmd.Flags().Float64Var(&tStep, "tstep", 1, "table temperature step [°C]")
	root.AddCommand(solCmd, diffCmd, schmidtCmd, viscCmd, tableCmd)
}

func main() {
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
