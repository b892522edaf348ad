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

package gasex

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// An Operand is either a scalar float64 or a *sparse.DenseArray. Salinity
// and temperature operands for a single call must be broadcastable to a
// common shape: a scalar combines with an array of any shape, and two
// arrays must have equal shapes.
type Operand interface{}

// Apply2 evaluates the element function f over two operands, broadcasting
// scalars against arrays. The result has the kind and shape of the first
// array operand; when both operands are scalars the result is a scalar
// float64, never a one-element array.
func Apply2(f func(a, b float64) float64, a, b Operand) (Operand, error) {
	return Apply2Err(func(x, y float64) (float64, error) { return f(x, y), nil }, a, b)
}

// Apply2Err is Apply2 for element functions that can fail, such as the
// gas-dispatching catalogue entries. The first element error aborts the
// evaluation.
func Apply2Err(f func(a, b float64) (float64, error), a, b Operand) (Operand, error) {
	av, aArr, err := operandValues(a)
	if err != nil {
		return nil, err
	}
	bv, bArr, err := operandValues(b)
	if err != nil {
		return nil, err
	}
	switch {
	case aArr == nil && bArr == nil:
		return f(av, bv)
	case aArr != nil && bArr != nil:
		if !shapesEqual(aArr.Shape, bArr.Shape) {
			return nil, fmt.Errorf("gasex: operand shapes %v and %v do not match",
				aArr.Shape, bArr.Shape)
		}
		o := sparse.ZerosDense(aArr.Shape...)
		for i, x := range aArr.Elements {
			if o.Elements[i], err = f(x, bArr.Elements[i]); err != nil {
				return nil, err
			}
		}
		return o, nil
	case aArr != nil:
		o := sparse.ZerosDense(aArr.Shape...)
		for i, x := range aArr.Elements {
			if o.Elements[i], err = f(x, bv); err != nil {
				return nil, err
			}
		}
		return o, nil
	default:
		o := sparse.ZerosDense(bArr.Shape...)
		for i, y := range bArr.Elements {
			if o.Elements[i], err = f(av, y); err != nil {
				return nil, err
			}
		}
		return o, nil
	}
}

func operandValues(op Operand) (scalar float64, arr *sparse.DenseArray, err error) {
	switch v := op.(type) {
	case float64:
		return v, nil, nil
	case int:
		return float64(v), nil, nil
	case *sparse.DenseArray:
		return 0, v, nil
	default:
		return 0, nil, fmt.Errorf("gasex: invalid operand type %T", op)
	}
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, n := range a {
		if b[i] != n {
			return false
		}
	}
	return true
}
