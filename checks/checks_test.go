//
// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package checks

import (
	"errors"
	"math"
	"testing"
)

func TestCheckPairedLengths(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		x, y    []float64
		wantErr bool
	}{
		{"both empty",
			nil,
			[]float64{},
			false},
		{"equal lengths",
			[]float64{1, 2, 3},
			[]float64{3, 2, 1},
			false},
		{"x shorter",
			[]float64{1, 2, 3},
			[]float64{1, 2, 3, 4},
			true},
		{"y shorter",
			[]float64{1, 2},
			[]float64{1},
			true},
	} {
		err := CheckPairedLengths(tc.x, tc.y)
		if (err != nil) != tc.wantErr {
			t.Errorf("CheckPairedLengths: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
		if tc.wantErr && !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("CheckPairedLengths: when %s got err %v, want it to wrap ErrLengthMismatch", tc.desc, err)
		}
	}
}

func TestCheckVectorLength(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		x         []float64
		minLength int
		wantErr   bool
	}{
		{"empty vector, min 1",
			nil,
			1,
			true},
		{"empty vector, min 0",
			nil,
			0,
			false},
		{"single value, min 2",
			[]float64{4},
			2,
			true},
		{"two values, min 2",
			[]float64{4, 4},
			2,
			false},
	} {
		err := CheckVectorLength(tc.x, tc.minLength)
		if (err != nil) != tc.wantErr {
			t.Errorf("CheckVectorLength: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
		if tc.wantErr && !errors.Is(err, ErrDegenerateInput) {
			t.Errorf("CheckVectorLength: when %s got err %v, want it to wrap ErrDegenerateInput", tc.desc, err)
		}
	}
}

func TestCheckNoNaN(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		x       []float64
		wantErr bool
	}{
		{"no NaN",
			[]float64{1, 2, math.Inf(1)},
			false},
		{"NaN at the end",
			[]float64{1, 2, math.NaN()},
			true},
		{"empty vector",
			nil,
			false},
	} {
		if err := CheckNoNaN(tc.x, "labels"); (err != nil) != tc.wantErr {
			t.Errorf("CheckNoNaN: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckCategories(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		k       float64
		wantErr bool
	}{
		{"k is zero",
			0,
			true},
		{"k is NaN",
			math.NaN(),
			true},
		{"k is positive infinity",
			math.Inf(1),
			true},
		{"k is negative infinity",
			math.Inf(-1),
			true},
		{"k is one",
			1,
			false},
		{"k is between zero and one",
			0.5,
			false},
		{"k is negative",
			-3,
			false},
		{"k is large",
			1000,
			false},
	} {
		if err := CheckCategories(tc.k); (err != nil) != tc.wantErr {
			t.Errorf("CheckCategories: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckSmoothing(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		c       float64
		wantErr bool
	}{
		{"negative smoothing",
			-0.1,
			true},
		{"zero smoothing",
			0,
			false},
		{"positive smoothing",
			0.1,
			false},
		{"smoothing is NaN",
			math.NaN(),
			true},
		{"smoothing is infinity",
			math.Inf(1),
			true},
	} {
		if err := CheckSmoothing(tc.c); (err != nil) != tc.wantErr {
			t.Errorf("CheckSmoothing: when %s for err got %v, want %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestCheckIterationsAndWorkers(t *testing.T) {
	if err := CheckIterations(0); err == nil {
		t.Errorf("CheckIterations(0): got nil err, want error")
	}
	if err := CheckIterations(100); err != nil {
		t.Errorf("CheckIterations(100): got err %v, want nil", err)
	}
	if err := CheckWorkers(-1); err == nil {
		t.Errorf("CheckWorkers(-1): got nil err, want error")
	}
	if err := CheckWorkers(0); err != nil {
		t.Errorf("CheckWorkers(0): got err %v, want nil", err)
	}
}

func TestVerifyNameRejectsMultipleNames(t *testing.T) {
	if err := CheckSmoothing(1, "a", "b"); err == nil {
		t.Errorf("CheckSmoothing with two names: got nil err, want error")
	}
}
