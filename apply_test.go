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
	"errors"
	"testing"

	"github.com/ctessum/sparse"
)

func add(a, b float64) float64 { return a + b }

// TestApply2Scalars checks that scalar inputs return a scalar, not a
// one-element array.
func TestApply2Scalars(t *testing.T) {
	o, err := Apply2(add, 35., 10.)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := o.(float64)
	if !ok {
		t.Fatalf("result type %T; want float64", o)
	}
	if v != 45 {
		t.Errorf("result = %g; want 45", v)
	}
}

// TestApply2Shape checks that array inputs return an array of the same
// shape and that scalars broadcast against arrays.
func TestApply2Shape(t *testing.T) {
	a := sparse.ZerosDense(2, 3)
	b := sparse.ZerosDense(2, 3)
	for i := range a.Elements {
		a.Elements[i] = float64(i)
		b.Elements[i] = 10
	}

	o, err := Apply2(add, a, b)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := o.(*sparse.DenseArray)
	if !ok {
		t.Fatalf("result type %T; want *sparse.DenseArray", o)
	}
	if !shapesEqual(arr.Shape, []int{2, 3}) {
		t.Errorf("result shape %v; want [2 3]", arr.Shape)
	}
	for i, v := range arr.Elements {
		if v != float64(i)+10 {
			t.Errorf("element %d = %g; want %g", i, v, float64(i)+10)
		}
	}

	// Scalar second operand broadcasts over the first.
	o, err = Apply2(add, a, 1.)
	if err != nil {
		t.Fatal(err)
	}
	arr = o.(*sparse.DenseArray)
	if arr.Elements[4] != 5 {
		t.Errorf("broadcast element = %g; want 5", arr.Elements[4])
	}

	// Scalar first operand takes the shape of the array operand.
	o, err = Apply2(add, 1., b)
	if err != nil {
		t.Fatal(err)
	}
	arr = o.(*sparse.DenseArray)
	if !shapesEqual(arr.Shape, []int{2, 3}) {
		t.Errorf("result shape %v; want [2 3]", arr.Shape)
	}
}

func TestApply2ShapeMismatch(t *testing.T) {
	a := sparse.ZerosDense(2, 3)
	b := sparse.ZerosDense(3, 2)
	if _, err := Apply2(add, a, b); err == nil {
		t.Error("mismatched shapes: want error, got none")
	}
}

func TestApply2ErrPropagation(t *testing.T) {
	boom := errors.New("boom")
	a := sparse.ZerosDense(4)
	_, err := Apply2Err(func(x, y float64) (float64, error) {
		return 0, boom
	}, a, 0.)
	if err != boom {
		t.Errorf("err = %v; want %v", err, boom)
	}
}

func TestApply2BadOperand(t *testing.T) {
	if _, err := Apply2(add, "35", 10.); err == nil {
		t.Error("string operand: want error, got none")
	}
}
